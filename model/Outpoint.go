package model

import (
	"encoding/hex"
	"fmt"

	"github.com/dymensionxyz/kaspa-validator/errors"
)

const TxIDLength = 32

// TxID is a Kaspa transaction id, rendered as lowercase hex.
type TxID [TxIDLength]byte

func NewTxIDFromBytes(b []byte) (TxID, error) {
	var id TxID

	if len(b) != TxIDLength {
		return id, errors.NewInvalidArgumentError("transaction id should be %d bytes long, got %d", TxIDLength, len(b))
	}

	copy(id[:], b)

	return id, nil
}

func NewTxIDFromString(s string) (TxID, error) {
	b, err := NewHexBytesFromString(s)
	if err != nil {
		return TxID{}, err
	}

	return NewTxIDFromBytes(b)
}

func (id TxID) String() string {
	return hex.EncodeToString(id[:])
}

func (id TxID) IsZero() bool {
	return id == TxID{}
}

func (id TxID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *TxID) UnmarshalText(text []byte) error {
	parsed, err := NewTxIDFromString(string(text))
	if err != nil {
		return err
	}

	*id = parsed

	return nil
}

// Outpoint references an output of a Kaspa transaction.
type Outpoint struct {
	TransactionID TxID   `json:"transactionId"`
	Index         uint32 `json:"index"`
}

func NewOutpoint(txID TxID, index uint32) Outpoint {
	return Outpoint{TransactionID: txID, Index: index}
}

func (o Outpoint) String() string {
	return fmt.Sprintf("%s:%d", o.TransactionID, o.Index)
}
