package model

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/dymensionxyz/kaspa-validator/errors"
)

// HexBytes marshals to and from a hex string. An optional 0x prefix is accepted when decoding.
type HexBytes []byte

func NewHexBytesFromString(s string) (HexBytes, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("invalid hex string", err)
	}

	return b, nil
}

func (h HexBytes) String() string {
	return hex.EncodeToString(h)
}

func (h HexBytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(h)), nil
}

func (h *HexBytes) UnmarshalText(text []byte) error {
	b, err := NewHexBytesFromString(string(text))
	if err != nil {
		return err
	}

	*h = b

	return nil
}

func (h HexBytes) Equal(other []byte) bool {
	return bytes.Equal(h, other)
}

func (h HexBytes) Clone() HexBytes {
	if h == nil {
		return nil
	}

	return bytes.Clone(h)
}
