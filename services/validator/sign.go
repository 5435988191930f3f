package validator

import (
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/kaspa"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/kaspanet/kaspad/domain/consensus/utils/consensushashing"
)

// InputFilter selects the inputs a key signs.
type InputFilter func(in *model.Input) bool

// EscrowInputFilter selects the inputs spending from the escrow.
func EscrowInputFilter(escrow *kaspa.Escrow) InputFilter {
	return func(in *model.Input) bool {
		return escrow.IsEscrowRedeemScript(in.RedeemScript)
	}
}

// SignBundle adds a Schnorr signature by key to every input selected by filter, or to every input
// when filter is nil. The signatures are stored under the hex compressed public key. The given
// bundle is not modified.
func SignBundle(bundle model.Bundle, key *btcec.PrivateKey, filter InputFilter) (model.Bundle, error) {
	initPrometheusMetrics()

	start := time.Now()
	defer func() {
		prometheusSignBundle.Observe(float64(time.Since(start).Microseconds()) / 1_000)
	}()

	if key == nil {
		return nil, errors.NewSigningError("signing key is nil")
	}

	pubKey := hex.EncodeToString(key.PubKey().SerializeCompressed())
	signed := bundle.Clone()

	for i, pskt := range signed {
		tx, err := kaspa.ToDomainTransaction(pskt)
		if err != nil {
			return nil, errors.NewSigningError("failed to build transaction for pskt %d", i, err)
		}

		reused := &consensushashing.SighashReusedValues{}

		for j, in := range pskt.Inputs {
			if filter != nil && !filter(in) {
				continue
			}

			hash, err := kaspa.SignatureHash(tx, j, in.SighashType, reused)
			if err != nil {
				return nil, errors.NewSigningError("failed to hash pskt %d input %d", i, j, err)
			}

			sig, err := schnorr.Sign(key, hash)
			if err != nil {
				return nil, errors.NewSigningError("failed to sign pskt %d input %d", i, j, err)
			}

			if in.PartialSigs == nil {
				in.PartialSigs = make(map[string]model.HexBytes, 1)
			}

			in.PartialSigs[pubKey] = sig.Serialize()
		}
	}

	return signed, nil
}
