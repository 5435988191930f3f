package validator

import (
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/kaspa"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/dymensionxyz/kaspa-validator/settings"
)

// NewEscrowFromSettings builds the escrow from validator_escrowRedeemScript, or from
// validator_escrowPubKeys and validator_escrowThreshold when no redeem script is configured.
func NewEscrowFromSettings(tSettings *settings.Settings) (*kaspa.Escrow, error) {
	v := tSettings.Validator

	if v.EscrowRedeemScript != "" {
		redeemScript, err := model.NewHexBytesFromString(v.EscrowRedeemScript)
		if err != nil {
			return nil, errors.NewConfigurationError("invalid validator_escrowRedeemScript", err)
		}

		return kaspa.NewEscrow(redeemScript)
	}

	pubKeys := make([][]byte, len(v.EscrowPubKeys))

	for i, k := range v.EscrowPubKeys {
		b, err := model.NewHexBytesFromString(k)
		if err != nil {
			return nil, errors.NewConfigurationError("invalid escrow public key %d", i, err)
		}

		pubKeys[i] = b
	}

	escrow, err := kaspa.NewEscrowFromPubKeys(v.EscrowThreshold, pubKeys)
	if err != nil {
		return nil, errors.NewConfigurationError("invalid escrow configuration", err)
	}

	return escrow, nil
}
