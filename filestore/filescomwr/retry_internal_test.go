package filescomwr

import (
	"errors"
	"fmt"
	"testing"
	"time"

	files_sdk "github.com/Files-com/files-sdk-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/filescom/logger"
)

var errTransient = errors.New("transient")

func fastRetrier(maxRetries int) retrier {
	return retrier{
		cfg: NetworkConfig{
			MaxRetries:    maxRetries,
			MinRetryDelay: time.Millisecond,
			MaxRetryDelay: 2 * time.Millisecond,
			Timeout:       time.Second,
		},
		logger:    logger.Nop(),
		retryable: func(err error) bool { return errors.Is(err, errTransient) },
	}
}

func TestRetrierRetriesTransientFailures(t *testing.T) {
	attempts := 0
	err := fastRetrier(3).do(t.Context(), "list", func() error {
		attempts++
		return errTransient
	})

	require.ErrorIs(t, err, errTransient)
	assert.Equal(t, 4, attempts)
}

func TestRetrierStopsOnSuccess(t *testing.T) {
	attempts := 0
	err := fastRetrier(3).do(t.Context(), "list", func() error {
		attempts++
		if attempts < 2 {
			return errTransient
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRetrierDoesNotRetryPermanentFailures(t *testing.T) {
	permanent := errors.New("permanent")
	attempts := 0
	err := fastRetrier(3).do(t.Context(), "list", func() error {
		attempts++
		return permanent
	})

	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, attempts)
}

func TestRetrierZeroRetries(t *testing.T) {
	attempts := 0
	err := fastRetrier(0).do(t.Context(), "list", func() error {
		attempts++
		return errTransient
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "service unavailable", err: files_sdk.ResponseError{HttpCode: 503}, want: true},
		{name: "too many requests", err: files_sdk.ResponseError{HttpCode: 429}, want: true},
		{name: "wrapped bad gateway", err: fmt.Errorf("list: %w", files_sdk.ResponseError{HttpCode: 502}), want: true},
		{name: "not found", err: files_sdk.ResponseError{HttpCode: 404}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryable(tc.err))
		})
	}
}

func TestNetworkConfigWithDefaults(t *testing.T) {
	n := NetworkConfig{MaxRetries: -1, MinRetryDelay: time.Second}.WithDefaults()

	assert.Equal(t, 0, n.MaxRetries)
	assert.Equal(t, time.Second, n.MinRetryDelay)
	assert.Equal(t, 1500*time.Millisecond, n.MaxRetryDelay)
	assert.Equal(t, 30*time.Second, n.Timeout)
}
