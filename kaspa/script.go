package kaspa

import (
	"bytes"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
	"golang.org/x/crypto/blake2b"
)

// Opcodes used by the standard Kaspa locking scripts.
const (
	OpData32          = 0x20
	Op1               = 0x51
	Op16              = 0x60
	OpEqual           = 0x87
	OpBlake2b         = 0xaa
	OpCheckSig        = 0xac
	OpCheckMultiSig   = 0xae
	XOnlyPubKeyLength = 32
)

// PayToPubKeyScript returns the locking script paying to a 32-byte x-only Schnorr public key.
func PayToPubKeyScript(pubKey []byte) (model.ScriptPublicKey, error) {
	if len(pubKey) != XOnlyPubKeyLength {
		return model.ScriptPublicKey{}, errors.NewInvalidArgumentError("public key should be %d bytes long, got %d", XOnlyPubKeyLength, len(pubKey))
	}

	script := make([]byte, 0, XOnlyPubKeyLength+2)
	script = append(script, OpData32)
	script = append(script, pubKey...)
	script = append(script, OpCheckSig)

	return model.ScriptPublicKey{Version: 0, Script: script}, nil
}

// RecipientScript is the locking script a withdrawal to a token message recipient must pay to.
func RecipientScript(recipient [32]byte) model.ScriptPublicKey {
	spk, _ := PayToPubKeyScript(recipient[:])
	return spk
}

// PayToScriptHashScript returns OP_BLAKE2B <blake2b-256(redeemScript)> OP_EQUAL.
func PayToScriptHashScript(redeemScript []byte) model.ScriptPublicKey {
	hash := blake2b.Sum256(redeemScript)

	script := make([]byte, 0, len(hash)+3)
	script = append(script, OpBlake2b, OpData32)
	script = append(script, hash[:]...)
	script = append(script, OpEqual)

	return model.ScriptPublicKey{Version: 0, Script: script}
}

// MultiSigRedeemScript builds OP_m <pk1> ... <pkn> OP_n OP_CHECKMULTISIG over x-only Schnorr keys.
func MultiSigRedeemScript(threshold int, pubKeys [][]byte) ([]byte, error) {
	n := len(pubKeys)
	if n == 0 || n > 16 {
		return nil, errors.NewInvalidArgumentError("multisig needs between 1 and 16 public keys, got %d", n)
	}

	if threshold < 1 || threshold > n {
		return nil, errors.NewInvalidArgumentError("multisig threshold %d is out of range for %d keys", threshold, n)
	}

	script := make([]byte, 0, 3+n*(XOnlyPubKeyLength+1))
	script = append(script, byte(Op1-1+threshold))

	for i, pk := range pubKeys {
		if len(pk) != XOnlyPubKeyLength {
			return nil, errors.NewInvalidArgumentError("public key %d should be %d bytes long, got %d", i, XOnlyPubKeyLength, len(pk))
		}

		script = append(script, OpData32)
		script = append(script, pk...)
	}

	script = append(script, byte(Op1-1+n), OpCheckMultiSig)

	return script, nil
}

// IsPayToScriptHash reports whether spk is a version 0 P2SH script.
func IsPayToScriptHash(spk model.ScriptPublicKey) bool {
	s := spk.Script

	return spk.Version == 0 && len(s) == 35 && s[0] == OpBlake2b && s[1] == OpData32 && s[34] == OpEqual
}

// IsPayToPubKey reports whether spk is a version 0 Schnorr P2PK script.
func IsPayToPubKey(spk model.ScriptPublicKey) bool {
	s := spk.Script

	return spk.Version == 0 && len(s) == 34 && s[0] == OpData32 && s[33] == OpCheckSig
}

// scriptPayload returns the address version and payload for a standard script.
func scriptPayload(spk model.ScriptPublicKey) (byte, []byte, error) {
	switch {
	case IsPayToPubKey(spk):
		return AddressVersionPubKey, bytes.Clone(spk.Script[1:33]), nil
	case IsPayToScriptHash(spk):
		return AddressVersionScriptHash, bytes.Clone(spk.Script[2:34]), nil
	default:
		return 0, nil, errors.NewInvalidArgumentError("script is not a standard P2PK or P2SH script")
	}
}
