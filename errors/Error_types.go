package errors

var (
	ErrUnknown                  = New(ERR_UNKNOWN, "unknown error")
	ErrInvalidArgument          = New(ERR_INVALID_ARGUMENT, "invalid argument")
	ErrThresholdExceeded        = New(ERR_THRESHOLD_EXCEEDED, "threshold exceeded")
	ErrNotFound                 = New(ERR_NOT_FOUND, "not found")
	ErrProcessing               = New(ERR_PROCESSING, "error processing")
	ErrConfiguration            = New(ERR_CONFIGURATION, "configuration error")
	ErrContext                  = New(ERR_CONTEXT, "context error")
	ErrContextCanceled          = New(ERR_CONTEXT_CANCELED, "context canceled")
	ErrError                    = New(ERR_ERROR, "generic error")
	ErrSigning                  = New(ERR_SIGNING, "signing error")
	ErrServiceUnavailable       = New(ERR_SERVICE_UNAVAILABLE, "service unavailable")
	ErrServiceNotStarted        = New(ERR_SERVICE_NOT_STARTED, "service not started")
	ErrServiceError             = New(ERR_SERVICE_ERROR, "service error")
	ErrNetworkError             = New(ERR_NETWORK_ERROR, "network error")
	ErrNetworkTimeout           = New(ERR_NETWORK_TIMEOUT, "network timeout")
	ErrNetworkConnectionRefused = New(ERR_NETWORK_CONNECTION_REFUSED, "network connection refused")
	ErrNetworkInvalidResponse   = New(ERR_NETWORK_INVALID_RESPONSE, "network invalid response")
	ErrSystem                   = New(ERR_SYSTEM, "system error")

	ErrDoubleSpending              = New(ERR_DOUBLE_SPENDING, "double spending")
	ErrFailedGeneralVerification   = New(ERR_FAILED_GENERAL_VERIFICATION, "failed general verification")
	ErrMessageNotDispatched        = New(ERR_MESSAGE_NOT_DISPATCHED, "message not dispatched")
	ErrMessagesNotUnprocessed      = New(ERR_MESSAGES_NOT_UNPROCESSED, "messages not unprocessed")
	ErrMessageCacheLengthMismatch  = New(ERR_MESSAGE_CACHE_LENGTH_MISMATCH, "message cache length mismatch")
	ErrSigHashType                 = New(ERR_SIGHASH_TYPE, "sighash type not allowed")
	ErrNoMessages                  = New(ERR_NO_MESSAGES, "no messages")
	ErrAnchorNotFound              = New(ERR_ANCHOR_NOT_FOUND, "anchor not found")
	ErrPayloadMismatch             = New(ERR_PAYLOAD_MISMATCH, "payload mismatch")
	ErrEscrowWithdrawalNotAllowed  = New(ERR_ESCROW_WITHDRAWAL_NOT_ALLOWED, "escrow withdrawal not allowed")
	ErrMultipleAnchors             = New(ERR_MULTIPLE_ANCHORS, "multiple anchors")
	ErrMissingOutputs              = New(ERR_MISSING_OUTPUTS, "missing outputs")
	ErrEscrowAmountMismatch        = New(ERR_ESCROW_AMOUNT_MISMATCH, "escrow amount mismatch")
	ErrNextAnchorNotFound          = New(ERR_NEXT_ANCHOR_NOT_FOUND, "next anchor not found")
)

// errors initialization functions

func NewUnknownError(message string, params ...interface{}) error {
	return New(ERR_UNKNOWN, message, params...)
}
func NewInvalidArgumentError(message string, params ...interface{}) error {
	return New(ERR_INVALID_ARGUMENT, message, params...)
}
func NewThresholdExceededError(message string, params ...interface{}) error {
	return New(ERR_THRESHOLD_EXCEEDED, message, params...)
}
func NewNotFoundError(message string, params ...interface{}) error {
	return New(ERR_NOT_FOUND, message, params...)
}
func NewProcessingError(message string, params ...interface{}) error {
	return New(ERR_PROCESSING, message, params...)
}
func NewConfigurationError(message string, params ...interface{}) error {
	return New(ERR_CONFIGURATION, message, params...)
}
func NewContextError(message string, params ...interface{}) error {
	return New(ERR_CONTEXT, message, params...)
}
func NewContextCanceledError(message string, params ...interface{}) error {
	return New(ERR_CONTEXT_CANCELED, message, params...)
}
func NewError(message string, params ...interface{}) error {
	return New(ERR_ERROR, message, params...)
}
func NewSigningError(message string, params ...interface{}) error {
	return New(ERR_SIGNING, message, params...)
}
func NewServiceUnavailableError(message string, params ...interface{}) error {
	return New(ERR_SERVICE_UNAVAILABLE, message, params...)
}
func NewServiceNotStartedError(message string, params ...interface{}) error {
	return New(ERR_SERVICE_NOT_STARTED, message, params...)
}
func NewServiceError(message string, params ...interface{}) error {
	return New(ERR_SERVICE_ERROR, message, params...)
}
func NewNetworkError(message string, params ...interface{}) error {
	return New(ERR_NETWORK_ERROR, message, params...)
}
func NewNetworkTimeoutError(message string, params ...interface{}) error {
	return New(ERR_NETWORK_TIMEOUT, message, params...)
}
func NewNetworkConnectionRefusedError(message string, params ...interface{}) error {
	return New(ERR_NETWORK_CONNECTION_REFUSED, message, params...)
}
func NewNetworkInvalidResponseError(message string, params ...interface{}) error {
	return New(ERR_NETWORK_INVALID_RESPONSE, message, params...)
}

// NewSystemError wraps a transport or collaborator failure. Callers may retry the same request.
func NewSystemError(message string, params ...interface{}) error {
	return New(ERR_SYSTEM, message, params...)
}
