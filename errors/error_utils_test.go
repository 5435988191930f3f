package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "system error",
			err:      NewSystemError("hub unreachable"),
			expected: true,
		},
		{
			name:     "system error wrapping cancellation",
			err:      NewSystemError("validation cancelled", context.Canceled),
			expected: true,
		},
		{
			name:     "network timeout error",
			err:      NewNetworkTimeoutError("request timed out"),
			expected: true,
		},
		{
			name:     "service unavailable",
			err:      NewServiceUnavailableError("hub down"),
			expected: true,
		},
		{
			name:     "connection refused",
			err:      NewNetworkConnectionRefusedError("connection refused"),
			expected: true,
		},
		{
			name:     "invalid response - not retryable",
			err:      NewNetworkInvalidResponseError("malformed response"),
			expected: false,
		},
		{
			name:     "policy failure - not retryable",
			err:      NewEscrowAmountMismatchError(1, 2),
			expected: false,
		},
		{
			name:     "context canceled - not retryable",
			err:      context.Canceled,
			expected: false,
		},
		{
			name:     "wrapped system error",
			err:      fmt.Errorf("outer: %w", NewSystemError("inner")),
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsRetryableError(tt.err))
		})
	}
}

func TestIsPolicyError(t *testing.T) {
	assert.False(t, IsPolicyError(nil))
	assert.False(t, IsPolicyError(NewSystemError("x")))
	assert.False(t, IsPolicyError(fmt.Errorf("plain")))
	assert.True(t, IsPolicyError(NewNoMessagesError()))
	assert.True(t, IsPolicyError(NewPayloadMismatchError()))
	assert.True(t, IsPolicyError(NewNextAnchorNotFoundError()))
	assert.True(t, IsPolicyError(fmt.Errorf("wrapped: %w", NewMultipleAnchorsError(1, 2))))
}

func TestIsContextError(t *testing.T) {
	assert.True(t, IsContextError(context.Canceled))
	assert.True(t, IsContextError(context.DeadlineExceeded))
	assert.True(t, IsContextError(NewContextCanceledError("stop")))
	assert.True(t, IsContextError(NewSystemError("cancelled", context.Canceled)))
	assert.False(t, IsContextError(NewNoMessagesError()))
	assert.False(t, IsContextError(nil))
}

func TestIsNetworkError(t *testing.T) {
	assert.True(t, IsNetworkError(NewNetworkError("down")))
	assert.True(t, IsNetworkError(fmt.Errorf("dial tcp 127.0.0.1:1317: connect: connection refused")))
	assert.False(t, IsNetworkError(NewPayloadMismatchError()))
	assert.False(t, IsNetworkError(nil))
}

func TestGetErrorCategory(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "none"},
		{NewMissingOutputsError(1), "policy"},
		{NewSystemError("x"), "system"},
		{context.Canceled, "context"},
		{NewNetworkInvalidResponseError("bad"), "network"},
		{NewConfigurationError("bad"), "configuration"},
		{NewSigningError("bad"), "signing"},
		{fmt.Errorf("something"), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetErrorCategory(tt.err), "%v", tt.err)
	}
}
