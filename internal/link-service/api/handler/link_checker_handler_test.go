package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"VCS_Link_Checker/internal/link-service/api/dto/response"
	apperrors "VCS_Link_Checker/internal/link-service/errors"
	mockservice "VCS_Link_Checker/internal/link-service/mocks/service"
	"VCS_Link_Checker/internal/link-service/model"
	"VCS_Link_Checker/internal/link-service/service"
	"VCS_Link_Checker/internal/link-service/verdict"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type handlerMocks struct {
	scheduler *mockservice.MockSchedulerService
	result    *mockservice.MockResultService
	report    *mockservice.MockReportService
}

func setupHandler(t *testing.T) (*gin.Engine, handlerMocks) {
	ctrl := gomock.NewController(t)
	mocks := handlerMocks{
		scheduler: mockservice.NewMockSchedulerService(ctrl),
		result:    mockservice.NewMockResultService(ctrl),
		report:    mockservice.NewMockReportService(ctrl),
	}
	h := NewLinkCheckerHandler(NewLogger(zap.NewNop()), mocks.scheduler, mocks.result, mocks.report, 50)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/get_resources_to_check", h.GetResourcesToCheck())
	r.POST("/upsert", h.Upsert())
	r.GET("/get", h.GetResult())
	r.GET("/broken_links_by_organization", h.BrokenLinksByOrganization())
	r.GET("/broken_links_by_email", h.BrokenLinksByEmail())
	r.GET("/health", h.Health())
	return r, mocks
}

func serve(r *gin.Engine, method string, path string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLinkCheckerHandler_GetResourcesToCheck(t *testing.T) {
	testErr := errors.New("test error")

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(m handlerMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success Empty Body Uses Defaults",
			body: "",
			setupMocks: func(m handlerMocks) {
				m.scheduler.EXPECT().GetResourcesToCheck(gomock.Any(), 50, time.Duration(0), time.Duration(0)).
					Return([]string{"a", "b"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `["a","b"]`,
		},
		{
			name: "Success With Overrides",
			body: `{"n": 10, "since_hours": 12, "pending_since_hours": 1}`,
			setupMocks: func(m handlerMocks) {
				m.scheduler.EXPECT().GetResourcesToCheck(gomock.Any(), 10, 12*time.Hour, time.Hour).
					Return([]string{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "Success Zero N Is Passed Through",
			body: `{"n": 0}`,
			setupMocks: func(m handlerMocks) {
				m.scheduler.EXPECT().GetResourcesToCheck(gomock.Any(), 0, time.Duration(0), time.Duration(0)).
					Return([]string{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "Error Negative Interval",
			body:           `{"since_hours": -1}`,
			setupMocks:     func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"The SinceHours field must be greater than 0"}`,
		},
		{
			name:           "Error Zero Interval",
			body:           `{"since_hours": 0}`,
			setupMocks:     func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"The SinceHours field must be greater than 0"}`,
		},
		{
			name:           "Error Zero Pending Interval",
			body:           `{"pending_since_hours": 0}`,
			setupMocks:     func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"The PendingSinceHours field must be greater than 0"}`,
		},
		{
			name:           "Error Interval Too Large",
			body:           `{"pending_since_hours": 9223372036854}`,
			setupMocks:     func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"The PendingSinceHours field must be less than or equal to 87600"}`,
		},
		{
			name:           "Error Malformed Body",
			body:           `{"n": "ten"}`,
			setupMocks:     func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Invalid request body"}`,
		},
		{
			name: "Error Service",
			body: `{"n": 5}`,
			setupMocks: func(m handlerMocks) {
				m.scheduler.EXPECT().GetResourcesToCheck(gomock.Any(), 5, time.Duration(0), time.Duration(0)).
					Return(nil, testErr)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal Server Error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := setupHandler(t)
			tc.setupMocks(m)

			w := serve(r, http.MethodPost, "/get_resources_to_check", tc.body)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestLinkCheckerHandler_Upsert(t *testing.T) {
	testErr := errors.New("test error")

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(m handlerMocks)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: `{"resource_id": "res-1", "alive": false, "status": 404, "reason": "Not Found"}`,
			setupMocks: func(m handlerMocks) {
				status := 404
				reason := "Not Found"
				alive := false
				m.result.EXPECT().Upsert(gomock.Any(), "res-1", &alive, &status, &reason).
					Return(model.LinkCheckResult{ResourceID: "res-1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Link check result saved"}`,
		},
		{
			name:           "Error Missing Alive",
			body:           `{"resource_id": "res-1"}`,
			setupMocks:     func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"The Alive field is required"}`,
		},
		{
			name:           "Error Alive Not Boolean",
			body:           `{"resource_id": "res-1", "alive": "yes"}`,
			setupMocks:     func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"Invalid request body"}`,
		},
		{
			name:           "Error Missing Resource ID",
			body:           `{"alive": true}`,
			setupMocks:     func(m handlerMocks) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"The ResourceID field is required"}`,
		},
		{
			name: "Error Service Validation",
			body: `{"resource_id": " ", "alive": true}`,
			setupMocks: func(m handlerMocks) {
				m.result.EXPECT().Upsert(gomock.Any(), " ", gomock.Any(), nil, nil).
					Return(model.LinkCheckResult{}, apperrors.NewValidationError("resource_id", "must not be empty"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"invalid resource_id: must not be empty"}`,
		},
		{
			name: "Error Service",
			body: `{"resource_id": "res-1", "alive": true}`,
			setupMocks: func(m handlerMocks) {
				m.result.EXPECT().Upsert(gomock.Any(), "res-1", gomock.Any(), nil, nil).
					Return(model.LinkCheckResult{}, testErr)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"Internal Server Error"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := setupHandler(t)
			tc.setupMocks(m)

			w := serve(r, http.MethodPost, "/upsert", tc.body)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestLinkCheckerHandler_GetResult(t *testing.T) {
	checked := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	alive := false
	testErr := errors.New("test error")

	t.Run("Success Broken", func(t *testing.T) {
		r, m := setupHandler(t)
		m.result.EXPECT().Get(gomock.Any(), "res-1").Return(service.ResourceResult{
			Result: model.LinkCheckResult{
				ResourceID:     "res-1",
				Alive:          &alive,
				LastChecked:    &checked,
				LastSuccessful: &checked,
				NumFails:       4,
			},
			Verdict: verdict.Broken,
		}, nil)

		w := serve(r, http.MethodGet, "/get?resource_id=res-1", "")

		require.Equal(t, http.StatusOK, w.Code)
		var res response.LinkCheckResultResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "res-1", res.ResourceID)
		assert.Equal(t, 4, res.NumFails)
		assert.False(t, res.Pending)
		assert.Equal(t, "failing", res.State)
		require.NotNil(t, res.Broken)
		assert.True(t, *res.Broken)
	})

	t.Run("Success Unknown Verdict Is Null", func(t *testing.T) {
		r, m := setupHandler(t)
		m.result.EXPECT().Get(gomock.Any(), "res-1").Return(service.ResourceResult{
			Result:  model.NewPendingResult("res-1", checked),
			Verdict: verdict.Unknown,
		}, nil)

		w := serve(r, http.MethodGet, "/get?resource_id=res-1", "")

		require.Equal(t, http.StatusOK, w.Code)
		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Nil(t, raw["broken"])
		assert.Contains(t, raw, "broken")
		assert.Equal(t, true, raw["pending"])
	})

	t.Run("Success Not Found Returns Null", func(t *testing.T) {
		r, m := setupHandler(t)
		m.result.EXPECT().Get(gomock.Any(), "res-1").Return(service.ResourceResult{}, apperrors.ErrResultNotFound)

		w := serve(r, http.MethodGet, "/get?resource_id=res-1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", w.Body.String())
	})

	t.Run("Error Missing Resource ID", func(t *testing.T) {
		r, _ := setupHandler(t)

		w := serve(r, http.MethodGet, "/get", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error Service", func(t *testing.T) {
		r, m := setupHandler(t)
		m.result.EXPECT().Get(gomock.Any(), "res-1").Return(service.ResourceResult{}, testErr)

		w := serve(r, http.MethodGet, "/get?resource_id=res-1", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLinkCheckerHandler_BrokenLinksByOrganization(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, m := setupHandler(t)
		m.report.EXPECT().BrokenLinksByOrganization(gomock.Any()).Return([]service.OrganizationReport{
			{
				Name:           "org-a",
				Title:          "Org A",
				NumBrokenLinks: 2,
				Datasets: []service.DatasetReport{
					{Name: "ds", Title: "DS", URL: "https://data.example.com/dataset/ds", NumBrokenLinks: 2, BrokenResourceIDs: []string{"r1", "r2"}},
				},
			},
			{Name: "org-b", Title: "Org B", Datasets: []service.DatasetReport{}},
		}, nil)

		w := serve(r, http.MethodGet, "/broken_links_by_organization", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"name":"org-a","title":"Org A","num_broken_links":2,"datasets_with_broken_links":[
				{"name":"ds","title":"DS","url":"https://data.example.com/dataset/ds","num_broken_links":2,"resources_with_broken_links":["r1","r2"]}
			]},
			{"name":"org-b","title":"Org B","num_broken_links":0,"datasets_with_broken_links":[]}
		]`, w.Body.String())
	})

	t.Run("Error Service", func(t *testing.T) {
		r, m := setupHandler(t)
		m.report.EXPECT().BrokenLinksByOrganization(gomock.Any()).Return(nil, errors.New("es down"))

		w := serve(r, http.MethodGet, "/broken_links_by_organization", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLinkCheckerHandler_BrokenLinksByEmail(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, m := setupHandler(t)
		m.report.EXPECT().BrokenLinksByEmail(gomock.Any()).Return([]service.EmailReport{
			{
				Email:          "m@x.com",
				NumBrokenLinks: 1,
				Datasets:       []service.DatasetReport{{Name: "ds", Title: "DS", URL: "u", NumBrokenLinks: 1, BrokenResourceIDs: []string{"r1"}}},
				MailtoLink:     "mailto:m@x.com?subject=s&body=b",
			},
			{
				NumBrokenLinks: 1,
				Datasets:       []service.DatasetReport{{Name: "orphan", Title: "Orphan", URL: "v", NumBrokenLinks: 1, BrokenResourceIDs: []string{"r2"}}},
				MailtoLink:     "mailto:?subject=s&body=b",
			},
		}, nil)

		w := serve(r, http.MethodGet, "/broken_links_by_email", "")

		require.Equal(t, http.StatusOK, w.Code)
		var res []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		require.Len(t, res, 2)
		assert.Equal(t, "m@x.com", res[0]["email"])
		assert.Equal(t, "mailto:m@x.com?subject=s&body=b", res[0]["mailto_link"])
		assert.Contains(t, res[1], "email")
		assert.Nil(t, res[1]["email"])
	})

	t.Run("Error Service", func(t *testing.T) {
		r, m := setupHandler(t)
		m.report.EXPECT().BrokenLinksByEmail(gomock.Any()).Return(nil, errors.New("db down"))

		w := serve(r, http.MethodGet, "/broken_links_by_email", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestLinkCheckerHandler_Health(t *testing.T) {
	r, _ := setupHandler(t)

	w := serve(r, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"OK"}`, w.Body.String())
}
