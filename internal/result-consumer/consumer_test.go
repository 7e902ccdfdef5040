package result_consumer

import (
	"errors"
	"io"
	"testing"
	"time"

	apperrors "VCS_Link_Checker/internal/link-service/errors"
	mockservice "VCS_Link_Checker/internal/link-service/mocks/service"
	"VCS_Link_Checker/internal/link-service/model"
	"VCS_Link_Checker/pkg/infra"

	"github.com/segmentio/kafka-go"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func boolPtr(v bool) *bool {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func newTestResultConsumer(reader *infra.MockKafkaReader, resultService *mockservice.MockResultService) *resultConsumer {
	c := NewResultConsumer(reader, resultService, zap.NewNop()).(*resultConsumer)
	c.retry = infra.NewRetryPolicy(time.Millisecond, 2*time.Millisecond)
	return c
}

func TestResultConsumer_Start(t *testing.T) {
	aliveMessage := kafka.Message{Value: []byte(`{"resource_id":"res-1","alive":true,"status":200}`)}
	deadMessage := kafka.Message{Value: []byte(`{"resource_id":"res-2","alive":false,"status":404,"reason":"Not Found"}`)}
	missingAliveMessage := kafka.Message{Value: []byte(`{"resource_id":"res-3","status":500}`)}
	stringAliveMessage := kafka.Message{Value: []byte(`{"resource_id":"res-3","alive":"yes"}`)}
	negativeStatusMessage := kafka.Message{Value: []byte(`{"resource_id":"res-4","alive":false,"status":-1}`)}
	blankIDMessage := kafka.Message{Value: []byte(`{"resource_id":"  ","alive":true}`)}
	invalidJSONMessage := kafka.Message{Value: []byte("{not-a-json'")}

	testCases := []struct {
		name       string
		setupMocks func(mockReader *infra.MockKafkaReader, mockService *mockservice.MockResultService)
	}{
		{
			name: "Success Store alive result",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockService *mockservice.MockResultService) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(aliveMessage, nil),
					mockService.EXPECT().Upsert(gomock.Any(), "res-1", boolPtr(true), intPtr(200), nil).Return(model.LinkCheckResult{}, nil).Times(1),
					mockReader.EXPECT().CommitMessages(gomock.Any(), aliveMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Success Store failed result with reason",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockService *mockservice.MockResultService) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(deadMessage, nil),
					mockService.EXPECT().Upsert(gomock.Any(), "res-2", boolPtr(false), intPtr(404), strPtr("Not Found")).Return(model.LinkCheckResult{}, nil).Times(1),
					mockReader.EXPECT().CommitMessages(gomock.Any(), deadMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Skip Missing alive is committed without storing",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockService *mockservice.MockResultService) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(missingAliveMessage, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), missingAliveMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Skip Non boolean alive is committed without storing",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockService *mockservice.MockResultService) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(stringAliveMessage, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), stringAliveMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Skip Negative status is committed without storing",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockService *mockservice.MockResultService) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(negativeStatusMessage, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), negativeStatusMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Skip Service validation error is committed",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockService *mockservice.MockResultService) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(blankIDMessage, nil),
					mockService.EXPECT().Upsert(gomock.Any(), "  ", boolPtr(true), nil, nil).Return(model.LinkCheckResult{}, apperrors.NewValidationError("resource_id", "must not be empty")),
					mockReader.EXPECT().CommitMessages(gomock.Any(), blankIDMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Skip Message value is nil",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockService *mockservice.MockResultService) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{Value: nil}, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure FetchMessage returns a generic error",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockService *mockservice.MockResultService) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, errors.New("kafka broker unavailable")),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure JSON unmarshal fails and commit succeeds",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockService *mockservice.MockResultService) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(invalidJSONMessage, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), invalidJSONMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Retry Store error is retried on the same message before commit",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockService *mockservice.MockResultService) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(deadMessage, nil),
					mockService.EXPECT().Upsert(gomock.Any(), "res-2", boolPtr(false), intPtr(404), strPtr("Not Found")).Return(model.LinkCheckResult{}, errors.New("database error")),
					mockService.EXPECT().Upsert(gomock.Any(), "res-2", boolPtr(false), intPtr(404), strPtr("Not Found")).Return(model.LinkCheckResult{}, errors.New("database error")),
					mockService.EXPECT().Upsert(gomock.Any(), "res-2", boolPtr(false), intPtr(404), strPtr("Not Found")).Return(model.LinkCheckResult{}, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), deadMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(aliveMessage, nil),
					mockService.EXPECT().Upsert(gomock.Any(), "res-1", boolPtr(true), intPtr(200), nil).Return(model.LinkCheckResult{}, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), aliveMessage).Return(nil),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
		{
			name: "Failure Commit fails after successful store",
			setupMocks: func(mockReader *infra.MockKafkaReader, mockService *mockservice.MockResultService) {
				gomock.InOrder(
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(aliveMessage, nil),
					mockService.EXPECT().Upsert(gomock.Any(), "res-1", boolPtr(true), intPtr(200), nil).Return(model.LinkCheckResult{}, nil),
					mockReader.EXPECT().CommitMessages(gomock.Any(), aliveMessage).Return(errors.New("commit failed")),
					mockReader.EXPECT().FetchMessage(gomock.Any()).Return(kafka.Message{}, io.EOF),
				)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockReader := infra.NewMockKafkaReader(ctrl)
			mockService := mockservice.NewMockResultService(ctrl)
			tc.setupMocks(mockReader, mockService)
			consumer := newTestResultConsumer(mockReader, mockService)
			consumer.Start()
			time.Sleep(50 * time.Millisecond)
		})
	}
}

func TestResultConsumer_StopWhileRetrying(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockReader := infra.NewMockKafkaReader(ctrl)
	mockService := mockservice.NewMockResultService(ctrl)
	message := kafka.Message{Value: []byte(`{"resource_id":"res-1","alive":true}`)}

	mockReader.EXPECT().FetchMessage(gomock.Any()).Return(message, nil)
	mockService.EXPECT().Upsert(gomock.Any(), "res-1", boolPtr(true), nil, nil).
		Return(model.LinkCheckResult{}, errors.New("database error")).MinTimes(1)
	mockReader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).Times(0)
	mockReader.EXPECT().Close().Return(nil).Times(1)

	consumer := newTestResultConsumer(mockReader, mockService)
	consumer.Start()
	time.Sleep(20 * time.Millisecond)
	consumer.Stop()
}

func TestResultConsumer_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := infra.NewMockKafkaReader(ctrl)
	mockReader.EXPECT().Close().Times(1)

	consumer := NewResultConsumer(mockReader, nil, zap.NewNop())
	consumer.Stop()
}
