// Package errors provides utilities for categorizing and handling errors in the validator.
package errors

import (
	"context"
	"errors"
	"strings"
)

// policyCodes are the permanent rejections of a withdrawal batch. The same batch must not be retried.
var policyCodes = map[ERR]struct{}{
	ERR_DOUBLE_SPENDING:               {},
	ERR_FAILED_GENERAL_VERIFICATION:   {},
	ERR_MESSAGE_NOT_DISPATCHED:        {},
	ERR_MESSAGES_NOT_UNPROCESSED:      {},
	ERR_MESSAGE_CACHE_LENGTH_MISMATCH: {},
	ERR_SIGHASH_TYPE:                  {},
	ERR_NO_MESSAGES:                   {},
	ERR_ANCHOR_NOT_FOUND:              {},
	ERR_PAYLOAD_MISMATCH:              {},
	ERR_ESCROW_WITHDRAWAL_NOT_ALLOWED: {},
	ERR_MULTIPLE_ANCHORS:              {},
	ERR_MISSING_OUTPUTS:               {},
	ERR_ESCROW_AMOUNT_MISMATCH:        {},
	ERR_NEXT_ANCHOR_NOT_FOUND:         {},
}

// IsPolicyError reports whether err is a permanent rejection of a withdrawal batch.
func IsPolicyError(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if !errors.As(err, &tErr) {
		return false
	}

	_, ok := policyCodes[tErr.Code()]

	return ok
}

// IsRetryableError determines if an error is transient and the operation should be retried.
// A system error is always retryable, including one caused by a cancelled request.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if IsPolicyError(err) {
		return false
	}

	// connection refused might be retryable if the hub node is starting up
	for _, target := range []*Error{ErrSystem, ErrNetworkTimeout, ErrNetworkError, ErrServiceUnavailable, ErrNetworkConnectionRefused} {
		if errors.Is(err, target) {
			return true
		}
	}

	// a bare cancellation is the caller giving up, not a transient failure
	return false
}

// IsNetworkError determines if an error is network-related.
// This includes timeouts, connection failures, and invalid responses.
//
// Parameters:
//   - err: Error to check
//
// Returns:
//   - bool: true if error is network-related
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}

	var tErr *Error
	if errors.As(err, &tErr) {
		switch tErr.Code() {
		case ERR_NETWORK_ERROR,
			ERR_NETWORK_TIMEOUT,
			ERR_NETWORK_CONNECTION_REFUSED,
			ERR_NETWORK_INVALID_RESPONSE:
			return true
		}
	}

	errStr := strings.ToLower(err.Error())
	networkStrings := []string{
		"connection refused",
		"connection reset",
		"dial tcp",
		"no such host",
		"broken pipe",
		"i/o timeout",
	}

	for _, s := range networkStrings {
		if strings.Contains(errStr, s) {
			return true
		}
	}

	return false
}

// IsContextError determines if an error is related to context cancellation or deadline.
func IsContextError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var tErr *Error
	if errors.As(err, &tErr) {
		if tErr.Code() == ERR_CONTEXT_CANCELED || tErr.Code() == ERR_CONTEXT {
			return true
		}
	}

	return false
}

// GetErrorCategory returns a string representing the category of the error.
// This is used as a metrics label.
func GetErrorCategory(err error) string {
	if err == nil {
		return "none"
	}

	if IsPolicyError(err) {
		return "policy"
	}

	if IsRetryableError(err) {
		return "system"
	}

	if IsContextError(err) {
		return "context"
	}

	if IsNetworkError(err) {
		return "network"
	}

	var tErr *Error
	if errors.As(err, &tErr) {
		switch code := tErr.Code(); {
		case code == ERR_CONFIGURATION:
			return "configuration"
		case code == ERR_SIGNING:
			return "signing"
		case code == ERR_INVALID_ARGUMENT:
			return "invalid_argument"
		}
	}

	return "unknown"
}
