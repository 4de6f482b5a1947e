package filescomwr

import (
	"context"
	"errors"
	"slices"

	files_sdk "github.com/Files-com/files-sdk-go/v3"
	"github.com/avast/retry-go/v4"

	"github.com/rise-and-shine/filescom/logger"
)

// retryableCodes are the HTTP statuses worth another attempt.
//
//nolint:gochecknoglobals // static lookup table
var retryableCodes = []int{
	429, // Too Many Requests
	500, // Internal Server Error
	502, // Bad Gateway
	503, // Service Unavailable
	504, // Gateway Timeout
	509, // Bandwidth Limit Exceeded
}

func isRetryable(err error) bool {
	var apiErr files_sdk.ResponseError
	if errors.As(err, &apiErr) {
		return slices.Contains(retryableCodes, apiErr.HttpCode)
	}
	return false
}

type retrier struct {
	cfg       NetworkConfig
	logger    logger.Logger
	retryable func(error) bool
}

// do runs fn, retrying retryable failures with exponential backoff.
func (r retrier) do(ctx context.Context, op string, fn func() error) error {
	log := r.logger.WithContext(ctx)

	return retry.Do(
		fn,
		retry.Attempts(uint(r.cfg.MaxRetries)+1), //nolint:gosec // MaxRetries is validated non-negative
		retry.Delay(r.cfg.MinRetryDelay),
		retry.MaxDelay(r.cfg.MaxRetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(r.retryable),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.With(
				"operation", op,
				"attempt", n+1,
				"max_retries", r.cfg.MaxRetries,
				"error", err.Error(),
			).Warn("retrying Files.com call")
		}),
		retry.Context(ctx),
	)
}
