package kaspa

import (
	"github.com/dymensionxyz/kaspa-validator/chaincfg"
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/kaspanet/kaspad/util/bech32"
)

// Address versions as encoded in the bech32 payload.
const (
	AddressVersionPubKey     byte = 0
	AddressVersionScriptHash byte = 8
)

// Address is a decoded Kaspa address.
type Address struct {
	Prefix  string
	Version byte
	Payload []byte
}

func NewAddressFromScript(spk model.ScriptPublicKey, prefix string) (*Address, error) {
	version, payload, err := scriptPayload(spk)
	if err != nil {
		return nil, err
	}

	return &Address{Prefix: prefix, Version: version, Payload: payload}, nil
}

// DecodeAddress parses a "prefix:payload" bech32 Kaspa address. The prefix must be a registered network.
func DecodeAddress(s string) (*Address, error) {
	prefix, payload, version, err := bech32.Decode(s)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("invalid kaspa address %q", s, err)
	}

	if !chaincfg.IsKnownPrefix(prefix) {
		return nil, errors.NewInvalidArgumentError("unknown address prefix %q", prefix)
	}

	switch version {
	case AddressVersionPubKey, AddressVersionScriptHash:
		if len(payload) != 32 {
			return nil, errors.NewInvalidArgumentError("address payload should be 32 bytes long, got %d", len(payload))
		}
	default:
		return nil, errors.NewInvalidArgumentError("unsupported address version %d", version)
	}

	return &Address{Prefix: prefix, Version: version, Payload: payload}, nil
}

func (a *Address) String() string {
	return bech32.Encode(a.Prefix, a.Payload, a.Version)
}

// ScriptPublicKey returns the locking script the address stands for.
func (a *Address) ScriptPublicKey() (model.ScriptPublicKey, error) {
	switch a.Version {
	case AddressVersionPubKey:
		return PayToPubKeyScript(a.Payload)
	case AddressVersionScriptHash:
		script := make([]byte, 0, 35)
		script = append(script, OpBlake2b, OpData32)
		script = append(script, a.Payload...)
		script = append(script, OpEqual)

		return model.ScriptPublicKey{Script: script}, nil
	default:
		return model.ScriptPublicKey{}, errors.NewInvalidArgumentError("unsupported address version %d", a.Version)
	}
}
