package validator

import (
	"context"

	"github.com/dymensionxyz/kaspa-validator/model"
)

// Info describes the validator to relayers and operators.
type Info struct {
	PubKey        string `json:"pubkey"`
	EscrowAddress string `json:"escrowAddress"`
	Network       string `json:"network"`
}

// Interface is the signing service the HTTP boundary talks to.
type Interface interface {
	Health(ctx context.Context, checkLiveness bool) (int, string, error)

	// SignWithdrawal normalizes, validates and signs a proposed withdrawal batch.
	SignWithdrawal(ctx context.Context, requestID string, fxg *model.WithdrawFXG) (model.Bundle, error)

	Info(ctx context.Context) (*Info, error)
}
