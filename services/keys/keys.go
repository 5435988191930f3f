// Package keys loads the validator's escrow signing key.
package keys

import (
	"context"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
)

const (
	SourceDirect = "direct"
	SourceS3     = "s3"
)

// Loader returns the escrow signing key. It is called once per signing request so that a key held
// in an external store is never cached in memory longer than needed.
type Loader func(ctx context.Context) (*btcec.PrivateKey, error)

// ParsePrivateKey decodes a hex secret. The value must be a valid non-zero secp256k1 scalar.
func ParsePrivateKey(secretHex string) (*btcec.PrivateKey, error) {
	b, err := model.NewHexBytesFromString(strings.TrimSpace(secretHex))
	if err != nil {
		return nil, errors.NewConfigurationError("escrow key is not hex", err)
	}

	if len(b) != btcec.PrivKeyBytesLen {
		return nil, errors.NewConfigurationError("escrow key should be %d bytes long, got %d", btcec.PrivKeyBytesLen, len(b))
	}

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow || scalar.IsZero() {
		return nil, errors.NewConfigurationError("escrow key is not a valid secp256k1 secret")
	}

	return btcec.PrivKeyFromScalar(&scalar), nil
}

// NewDirectLoader returns a loader for a key given in the settings.
func NewDirectLoader(secretHex string) (Loader, error) {
	key, err := ParsePrivateKey(secretHex)
	if err != nil {
		return nil, err
	}

	return func(_ context.Context) (*btcec.PrivateKey, error) {
		return key, nil
	}, nil
}

// NewLoaderFromSettings picks the key source configured by validator_keySource.
func NewLoaderFromSettings(ctx context.Context, logger ulogger.Logger, tSettings *settings.Settings) (Loader, error) {
	v := tSettings.Validator

	switch v.KeySource {
	case SourceDirect:
		logger.Infof("[Keys] using escrow key from settings")
		return NewDirectLoader(v.EscrowKeyHex)
	case SourceS3:
		logger.Infof("[Keys] using escrow key from %s", v.EscrowKeyS3URL.Redacted())

		client, err := NewS3ClientFromURL(ctx, v.EscrowKeyS3URL)
		if err != nil {
			return nil, err
		}

		return NewS3Loader(logger, client, v.EscrowKeyS3URL)
	default:
		return nil, errors.NewConfigurationError("unknown validator_keySource %q", v.KeySource)
	}
}
