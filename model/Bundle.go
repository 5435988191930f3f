package model

import (
	"github.com/dymensionxyz/kaspa-validator/errors"
	jsoniter "github.com/json-iterator/go"
)

// Bundle is an ordered chain of PSKTs where each spends the escrow anchor created by the previous one.
type Bundle []*PSKT

func NewBundleFromBytes(b []byte) (Bundle, error) {
	var bundle Bundle

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, &bundle); err != nil {
		return nil, errors.NewInvalidArgumentError("failed to decode pskt bundle", err)
	}

	return bundle, nil
}

func (b Bundle) Serialize() ([]byte, error) {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(b)
	if err != nil {
		return nil, errors.NewProcessingError("failed to encode pskt bundle", err)
	}

	return data, nil
}

func (b Bundle) Clone() Bundle {
	c := make(Bundle, len(b))
	for i, p := range b {
		c[i] = p.Clone()
	}

	return c
}

// WithdrawFXG is a signing request: the bundle to sign and, per PSKT, the messages it settles.
type WithdrawFXG struct {
	Bundle   Bundle                `json:"bundle"`
	Messages [][]*HyperlaneMessage `json:"messages"`
}

func NewWithdrawFXGFromBytes(b []byte) (*WithdrawFXG, error) {
	fxg := &WithdrawFXG{}

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, fxg); err != nil {
		return nil, errors.NewInvalidArgumentError("failed to decode withdrawal request", err)
	}

	return fxg, nil
}

func (w *WithdrawFXG) Bytes() ([]byte, error) {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(w)
	if err != nil {
		return nil, errors.NewProcessingError("failed to encode withdrawal request", err)
	}

	return data, nil
}
