package kaspa

import (
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/kaspanet/kaspad/domain/consensus/model/externalapi"
	"github.com/kaspanet/kaspad/domain/consensus/utils/consensushashing"
	"github.com/kaspanet/kaspad/domain/consensus/utils/subnetworks"
	"github.com/kaspanet/kaspad/domain/consensus/utils/utxo"
)

// Sighash type tags.
const (
	SigHashAll          uint8 = uint8(consensushashing.SigHashAll)
	SigHashNone         uint8 = uint8(consensushashing.SigHashNone)
	SigHashSingle       uint8 = uint8(consensushashing.SigHashSingle)
	SigHashAnyOneCanPay uint8 = uint8(consensushashing.SigHashAnyOneCanPay)
)

// ToDomainTransaction builds the consensus transaction a PSKT describes. UTXO entries are attached
// when present so that signature hashes can be computed.
func ToDomainTransaction(p *model.PSKT) (*externalapi.DomainTransaction, error) {
	if p == nil {
		return nil, errors.NewInvalidArgumentError("pskt is nil")
	}

	tx := &externalapi.DomainTransaction{
		Version:      p.Global.Version,
		Inputs:       make([]*externalapi.DomainTransactionInput, len(p.Inputs)),
		Outputs:      make([]*externalapi.DomainTransactionOutput, len(p.Outputs)),
		LockTime:     p.Global.LockTime,
		SubnetworkID: subnetworks.SubnetworkIDNative,
		Payload:      p.Global.Payload,
	}

	for i, in := range p.Inputs {
		if in == nil {
			return nil, errors.NewInvalidArgumentError("pskt input %d is nil", i)
		}

		txID := [externalapi.DomainHashSize]byte(in.PreviousOutpoint.TransactionID)

		txIn := &externalapi.DomainTransactionInput{
			PreviousOutpoint: externalapi.DomainOutpoint{
				TransactionID: *externalapi.NewDomainTransactionIDFromByteArray(&txID),
				Index:         in.PreviousOutpoint.Index,
			},
		}

		if in.Sequence != nil {
			txIn.Sequence = *in.Sequence
		}

		if in.SigOpCount != nil {
			txIn.SigOpCount = *in.SigOpCount
		}

		if in.UTXOEntry != nil {
			txIn.UTXOEntry = utxo.NewUTXOEntry(
				in.UTXOEntry.Amount,
				&externalapi.ScriptPublicKey{
					Script:  in.UTXOEntry.ScriptPublicKey.Script,
					Version: in.UTXOEntry.ScriptPublicKey.Version,
				},
				in.UTXOEntry.IsCoinbase,
				in.UTXOEntry.BlockDAAScore,
			)
		}

		tx.Inputs[i] = txIn
	}

	for i, out := range p.Outputs {
		if out == nil {
			return nil, errors.NewInvalidArgumentError("pskt output %d is nil", i)
		}

		tx.Outputs[i] = &externalapi.DomainTransactionOutput{
			Value: out.Amount,
			ScriptPublicKey: &externalapi.ScriptPublicKey{
				Script:  out.ScriptPublicKey.Script,
				Version: out.ScriptPublicKey.Version,
			},
		}
	}

	return tx, nil
}

// TransactionID returns the id the PSKT's transaction will have once finalized. Signature scripts
// do not contribute to it.
func TransactionID(p *model.PSKT) (model.TxID, error) {
	tx, err := ToDomainTransaction(p)
	if err != nil {
		return model.TxID{}, err
	}

	return model.TxID(*consensushashing.TransactionID(tx).ByteArray()), nil
}

// SignatureHash computes the Schnorr signature hash of input inputIndex under its sighash type.
func SignatureHash(tx *externalapi.DomainTransaction, inputIndex int, sighashType uint8, reused *consensushashing.SighashReusedValues) ([]byte, error) {
	if inputIndex < 0 || inputIndex >= len(tx.Inputs) {
		return nil, errors.NewInvalidArgumentError("input index %d out of range", inputIndex)
	}

	if tx.Inputs[inputIndex].UTXOEntry == nil {
		return nil, errors.NewSigningError("input %d has no utxo entry", inputIndex)
	}

	hashType := consensushashing.SigHashType(sighashType)
	if !hashType.IsStandardSigHashType() {
		return nil, errors.NewSigningError("input %d has non standard sighash type 0x%02x", inputIndex, sighashType)
	}

	if reused == nil {
		reused = &consensushashing.SighashReusedValues{}
	}

	hash, err := consensushashing.CalculateSignatureHashSchnorr(tx, inputIndex, hashType, reused)
	if err != nil {
		return nil, errors.NewSigningError("failed to calculate signature hash for input %d", inputIndex, err)
	}

	return hash.ByteSlice(), nil
}
