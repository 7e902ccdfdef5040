package infra

import (
	"time"

	"github.com/failsafe-go/failsafe-go/retrypolicy"
)

// NewRetryPolicy retries without limit, backing off exponentially from
// baseDelay up to maxDelay. Executions end when their context is done.
func NewRetryPolicy(baseDelay time.Duration, maxDelay time.Duration) retrypolicy.RetryPolicy[any] {
	return retrypolicy.NewBuilder[any]().
		WithBackoff(baseDelay, maxDelay).
		WithMaxRetries(-1).
		WithJitterFactor(0.1).
		Build()
}
