package kaspa

import (
	"bytes"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
)

// Escrow is the multisig vault the bridge holds deposits in.
type Escrow struct {
	RedeemScript []byte
	P2SH         model.ScriptPublicKey
}

func NewEscrow(redeemScript []byte) (*Escrow, error) {
	if len(redeemScript) == 0 {
		return nil, errors.NewInvalidArgumentError("escrow redeem script is empty")
	}

	return &Escrow{
		RedeemScript: bytes.Clone(redeemScript),
		P2SH:         PayToScriptHashScript(redeemScript),
	}, nil
}

// NewEscrowFromPubKeys builds a threshold-of-n Schnorr multisig escrow.
func NewEscrowFromPubKeys(threshold int, pubKeys [][]byte) (*Escrow, error) {
	redeemScript, err := MultiSigRedeemScript(threshold, pubKeys)
	if err != nil {
		return nil, err
	}

	return NewEscrow(redeemScript)
}

// IsEscrowScript reports whether spk pays to the escrow.
func (e *Escrow) IsEscrowScript(spk model.ScriptPublicKey) bool {
	return e.P2SH.Equal(spk)
}

// IsEscrowRedeemScript reports whether an input carrying redeemScript spends from the escrow.
func (e *Escrow) IsEscrowRedeemScript(redeemScript []byte) bool {
	return len(redeemScript) > 0 && bytes.Equal(e.RedeemScript, redeemScript)
}

func (e *Escrow) Address(prefix string) (*Address, error) {
	return NewAddressFromScript(e.P2SH, prefix)
}
