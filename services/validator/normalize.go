package validator

import (
	"math"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
)

// Canonical values for the transaction fields a relayer does not get to choose.
const (
	CanonicalTxVersion uint16 = 0
	CanonicalLockTime  uint64 = 0
	CanonicalSequence  uint64 = math.MaxUint64
)

// SafePSKT rebuilds an untrusted PSKT from the fields validation and signing read. Everything else
// is reset to its canonical value or dropped.
func SafePSKT(untrusted *model.PSKT) (*model.PSKT, error) {
	if untrusted == nil {
		return nil, errors.NewInvalidArgumentError("pskt is nil")
	}

	safe := &model.PSKT{
		Global: model.Global{
			Version:     CanonicalTxVersion,
			LockTime:    CanonicalLockTime,
			Payload:     untrusted.Global.Payload.Clone(),
			InputCount:  len(untrusted.Inputs),
			OutputCount: len(untrusted.Outputs),
		},
		Inputs:  make([]*model.Input, len(untrusted.Inputs)),
		Outputs: make([]*model.Output, len(untrusted.Outputs)),
	}

	for i, in := range untrusted.Inputs {
		if in == nil {
			return nil, errors.NewInvalidArgumentError("pskt input %d is nil", i)
		}

		sequence := CanonicalSequence

		safeIn := &model.Input{
			PreviousOutpoint: in.PreviousOutpoint,
			Sequence:         &sequence,
			SighashType:      in.SighashType,
			RedeemScript:     in.RedeemScript.Clone(),
		}

		if in.UTXOEntry != nil {
			safeIn.UTXOEntry = &model.UTXOEntry{
				Amount:          in.UTXOEntry.Amount,
				ScriptPublicKey: in.UTXOEntry.ScriptPublicKey.Clone(),
				BlockDAAScore:   in.UTXOEntry.BlockDAAScore,
				IsCoinbase:      in.UTXOEntry.IsCoinbase,
			}
		}

		if in.SigOpCount != nil {
			n := *in.SigOpCount
			safeIn.SigOpCount = &n
		}

		safe.Inputs[i] = safeIn
	}

	for i, out := range untrusted.Outputs {
		if out == nil {
			return nil, errors.NewInvalidArgumentError("pskt output %d is nil", i)
		}

		safe.Outputs[i] = &model.Output{
			Amount:          out.Amount,
			ScriptPublicKey: out.ScriptPublicKey.Clone(),
		}
	}

	return safe, nil
}

// SafeBundle normalizes every PSKT of an untrusted bundle.
func SafeBundle(untrusted model.Bundle) (model.Bundle, error) {
	safe := make(model.Bundle, len(untrusted))

	for i, p := range untrusted {
		s, err := SafePSKT(p)
		if err != nil {
			return nil, errors.NewInvalidArgumentError("failed to normalize pskt %d", i, err)
		}

		safe[i] = s
	}

	return safe, nil
}
