package model

import (
	"bytes"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/holiman/uint256"
)

// TokenMessageLength is the encoded size of a token message without metadata.
const TokenMessageLength = 32 + 32

// TokenMessage is the warp route transfer instruction carried in a message body.
type TokenMessage struct {
	Recipient [32]byte
	Amount    uint64
	Metadata  []byte
}

func NewTokenMessageFromBytes(b []byte) (*TokenMessage, error) {
	if len(b) < TokenMessageLength {
		return nil, errors.NewInvalidArgumentError("token message should be at least %d bytes long, got %d", TokenMessageLength, len(b))
	}

	amount := new(uint256.Int).SetBytes32(b[32:64])
	if !amount.IsUint64() {
		return nil, errors.NewInvalidArgumentError("token message amount %s does not fit in 64 bits", amount.Dec())
	}

	tm := &TokenMessage{
		Amount: amount.Uint64(),
	}

	copy(tm.Recipient[:], b[:32])

	if len(b) > TokenMessageLength {
		tm.Metadata = bytes.Clone(b[TokenMessageLength:])
	}

	return tm, nil
}

func (tm *TokenMessage) Bytes() []byte {
	buf := make([]byte, 0, TokenMessageLength+len(tm.Metadata))

	amount := uint256.NewInt(tm.Amount).Bytes32()

	buf = append(buf, tm.Recipient[:]...)
	buf = append(buf, amount[:]...)
	buf = append(buf, tm.Metadata...)

	return buf
}
