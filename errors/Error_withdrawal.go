package errors

// Constructors for withdrawal batch policy failures. Each attaches the structured fields a caller
// needs to explain the rejection.

func NewDoubleSpendingError(messageID string) error {
	e := New(ERR_DOUBLE_SPENDING, "message %s appears more than once in the batch", messageID)
	e.SetData("message_id", messageID)

	return e
}

func NewFailedGeneralVerificationError(reason string, params ...interface{}) error {
	e := New(ERR_FAILED_GENERAL_VERIFICATION, reason, params...)
	e.SetData("reason", e.message)

	return e
}

func NewMessageNotDispatchedError(messageID string) error {
	e := New(ERR_MESSAGE_NOT_DISPATCHED, "message %s is not dispatched on the hub", messageID)
	e.SetData("message_id", messageID)

	return e
}

func NewMessagesNotUnprocessedError(requested, pending int) error {
	e := New(ERR_MESSAGES_NOT_UNPROCESSED, "%d of %d messages are already processed", requested-pending, requested)
	e.SetData("requested", requested)
	e.SetData("pending", pending)

	return e
}

func NewMessageCacheLengthMismatchError(expected, actual int) error {
	e := New(ERR_MESSAGE_CACHE_LENGTH_MISMATCH, "bundle has %d pskts but %d message groups", expected, actual)
	e.SetData("expected", expected)
	e.SetData("actual", actual)

	return e
}

func NewSigHashTypeError(inputIndex int, sighashType uint8) error {
	e := New(ERR_SIGHASH_TYPE, "input %d uses sighash type 0x%02x", inputIndex, sighashType)
	e.SetData("input", inputIndex)
	e.SetData("sighash_type", sighashType)

	return e
}

func NewNoMessagesError() error {
	return New(ERR_NO_MESSAGES, "pskt has no messages to process")
}

func NewAnchorNotFoundError(outpoint string) error {
	e := New(ERR_ANCHOR_NOT_FOUND, "no input spends anchor %s", outpoint)
	e.SetData("outpoint", outpoint)

	return e
}

func NewPayloadMismatchError() error {
	return New(ERR_PAYLOAD_MISMATCH, "pskt payload does not encode the expected message ids")
}

func NewEscrowWithdrawalNotAllowedError(messageID string) error {
	e := New(ERR_ESCROW_WITHDRAWAL_NOT_ALLOWED, "message %s withdraws to the escrow", messageID)
	e.SetData("message_id", messageID)

	return e
}

func NewMultipleAnchorsError(first, second int) error {
	e := New(ERR_MULTIPLE_ANCHORS, "outputs %d and %d both pay the escrow", first, second)
	e.SetData("first", first)
	e.SetData("second", second)

	return e
}

func NewMissingOutputsError(missing int) error {
	e := New(ERR_MISSING_OUTPUTS, "%d expected withdrawal outputs not found", missing)
	e.SetData("missing", missing)

	return e
}

func NewNextAnchorNotFoundError() error {
	return New(ERR_NEXT_ANCHOR_NOT_FOUND, "no output pays the escrow")
}
