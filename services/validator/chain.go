package validator

import (
	"context"
	"encoding/hex"
	"math/bits"
	"time"

	"github.com/dolthub/swiss"
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/kaspa"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/dymensionxyz/kaspa-validator/services/hub"
)

// ValidateWithdrawalBatch validates the message set against the hub and then the PSKT chain starting
// at the anchor the hub reports.
func ValidateWithdrawalBatch(ctx context.Context, bundle model.Bundle, groups [][]*model.HyperlaneMessage, hubClient hub.ClientI, tmpl *MatchTemplate, opts ...Option) error {
	anchor, err := ValidateMessages(ctx, groups, hubClient, tmpl, opts...)
	if err != nil {
		return err
	}

	return ValidateChain(bundle, groups, anchor, tmpl, ProcessOptions(opts...).sighashPolicy)
}

// ValidateChain checks that bundle spends the anchor chain starting at hubAnchor, with the i-th PSKT
// settling exactly groups[i].
func ValidateChain(bundle model.Bundle, groups [][]*model.HyperlaneMessage, hubAnchor model.Outpoint, tmpl *MatchTemplate, policy *SighashPolicy) error {
	initPrometheusMetrics()

	start := time.Now()
	defer func() {
		prometheusValidateChain.Observe(float64(time.Since(start).Microseconds()) / 1_000)
	}()

	if len(bundle) != len(groups) {
		return errors.NewMessageCacheLengthMismatchError(len(bundle), len(groups))
	}

	anchor := hubAnchor

	for i, pskt := range bundle {
		idx, err := validateOne(pskt, anchor, groups[i], tmpl, policy)
		if err != nil {
			return err
		}

		txID, err := kaspa.TransactionID(pskt)
		if err != nil {
			return errors.NewFailedGeneralVerificationError("pskt %d has no transaction id", i, err)
		}

		anchor = model.NewOutpoint(txID, idx)
	}

	return nil
}

type expectedOutput struct {
	amount uint64
	script string
}

// validateOne checks a single PSKT and returns the index of the output that becomes the next anchor.
func validateOne(pskt *model.PSKT, mustSpend model.Outpoint, msgs []*model.HyperlaneMessage, tmpl *MatchTemplate, policy *SighashPolicy) (uint32, error) {
	if pskt == nil {
		return 0, errors.NewFailedGeneralVerificationError("pskt is nil")
	}

	escrow := tmpl.Escrow

	for i, in := range pskt.Inputs {
		if in == nil {
			return 0, errors.NewFailedGeneralVerificationError("input %d is nil", i)
		}

		if !policy.Allowed(in.SighashType) {
			return 0, errors.NewSigHashTypeError(i, in.SighashType)
		}
	}

	if len(msgs) == 0 {
		return 0, errors.NewNoMessagesError()
	}

	for i, m := range msgs {
		if m == nil {
			return 0, errors.NewFailedGeneralVerificationError("message %d is nil", i)
		}
	}

	if pskt.SpendsOutpoint(mustSpend) < 0 {
		return 0, errors.NewAnchorNotFoundError(mustSpend.String())
	}

	if !pskt.Global.Payload.Equal(model.EncodeMessageIDs(model.MessageIDsOf(msgs))) {
		return 0, errors.NewPayloadMismatchError()
	}

	// multiset of (amount, script) pairs the messages still need paid out
	expected := swiss.NewMap[expectedOutput, int](uint32(len(msgs)))

	for _, m := range msgs {
		tm, err := m.TokenMessage()
		if err != nil {
			return 0, errors.NewFailedGeneralVerificationError("message %s has an invalid token message", model.MessageIDHex(m.ID()), err)
		}

		script := kaspa.RecipientScript(tm.Recipient)
		if escrow.IsEscrowScript(script) {
			return 0, errors.NewEscrowWithdrawalNotAllowedError(model.MessageIDHex(m.ID()))
		}

		key := expectedOutput{amount: tm.Amount, script: hex.EncodeToString(script.Bytes())}
		n, _ := expected.Get(key)
		expected.Put(key, n+1)
	}

	var (
		escrowIn uint64
		carry    uint64
	)

	for i, in := range pskt.Inputs {
		if !escrow.IsEscrowRedeemScript(in.RedeemScript) {
			continue
		}

		if in.UTXOEntry == nil {
			return 0, errors.NewFailedGeneralVerificationError("escrow input %d has no utxo entry", i)
		}

		escrowIn, carry = bits.Add64(escrowIn, in.UTXOEntry.Amount, 0)
		if carry != 0 {
			return 0, errors.NewFailedGeneralVerificationError("escrow input sum overflows")
		}
	}

	var (
		escrowOut  uint64
		nextAnchor = -1
	)

	for i, out := range pskt.Outputs {
		if out == nil {
			return 0, errors.NewFailedGeneralVerificationError("output %d is nil", i)
		}

		key := expectedOutput{amount: out.Amount, script: hex.EncodeToString(out.ScriptPublicKey.Bytes())}

		remaining, _ := expected.Get(key)

		switch {
		case remaining > 0:
			expected.Put(key, remaining-1)
		case escrow.IsEscrowScript(out.ScriptPublicKey):
			if nextAnchor >= 0 {
				return 0, errors.NewMultipleAnchorsError(nextAnchor, i)
			}

			nextAnchor = i
		default:
			continue
		}

		escrowOut, carry = bits.Add64(escrowOut, out.Amount, 0)
		if carry != 0 {
			return 0, errors.NewFailedGeneralVerificationError("escrow output sum overflows")
		}
	}

	missing := 0
	expected.Iter(func(_ expectedOutput, n int) bool {
		missing += n
		return false
	})

	if missing > 0 {
		return 0, errors.NewMissingOutputsError(missing)
	}

	if escrowIn != escrowOut {
		return 0, errors.NewEscrowAmountMismatchError(escrowIn, escrowOut)
	}

	if nextAnchor < 0 {
		return 0, errors.NewNextAnchorNotFoundError()
	}

	return uint32(nextAnchor), nil
}
