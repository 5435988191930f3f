package validator

import (
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/kaspa"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/ethereum/go-ethereum/common"
)

// HyperlaneMessageVersion is the only message version the hub dispatches.
const HyperlaneMessageVersion uint8 = 3

// MatchTemplate describes what a legitimate withdrawal message looks like.
type MatchTemplate struct {
	AddressPrefix       string
	Escrow              *kaspa.Escrow
	HubDomain           uint32
	HubTokenID          common.Hash
	KasDomain           uint32
	KasTokenPlaceholder common.Hash
	HubMailboxID        string
}

func NewMatchTemplate(prefix string, escrow *kaspa.Escrow, hubDomain uint32, hubTokenID common.Hash, kasDomain uint32, kasTokenPlaceholder common.Hash, hubMailboxID string) *MatchTemplate {
	return &MatchTemplate{
		AddressPrefix:       prefix,
		Escrow:              escrow,
		HubDomain:           hubDomain,
		HubTokenID:          hubTokenID,
		KasDomain:           kasDomain,
		KasTokenPlaceholder: kasTokenPlaceholder,
		HubMailboxID:        hubMailboxID,
	}
}

// NewMatchTemplateFromSettings builds the template from validator settings. The escrow is built separately
// since it may come from a redeem script or from public keys.
func NewMatchTemplateFromSettings(tSettings *settings.Settings, escrow *kaspa.Escrow) (*MatchTemplate, error) {
	v := tSettings.Validator

	hubTokenID, err := parseHash("validator_hubTokenID", v.HubTokenID)
	if err != nil {
		return nil, err
	}

	placeholder, err := parseHash("validator_kasTokenPlaceholder", v.KasTokenPlaceholder)
	if err != nil {
		return nil, err
	}

	return NewMatchTemplate(tSettings.ChainCfgParams.AddressPrefix, escrow, v.HubDomain, hubTokenID, v.KasDomain, placeholder, v.HubMailboxID), nil
}

func parseHash(key, value string) (common.Hash, error) {
	b, err := model.NewHexBytesFromString(value)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, errors.NewConfigurationError("%s must be a 32 byte hex value, got %q", key, value)
	}

	return common.BytesToHash(b), nil
}

// Matches checks the message against the template and reports the first field that differs.
func (t *MatchTemplate) Matches(m *model.HyperlaneMessage) error {
	switch {
	case m.Version != HyperlaneMessageVersion:
		return errors.NewFailedGeneralVerificationError("version is incorrect, expected: %d, got: %d", HyperlaneMessageVersion, m.Version)
	case m.Origin != t.HubDomain:
		return errors.NewFailedGeneralVerificationError("origin is incorrect, expected: %d, got: %d", t.HubDomain, m.Origin)
	case m.Sender != t.HubTokenID:
		return errors.NewFailedGeneralVerificationError("sender is incorrect, expected: %s, got: %s", t.HubTokenID.Hex(), m.Sender.Hex())
	case m.Destination != t.KasDomain:
		return errors.NewFailedGeneralVerificationError("destination is incorrect, expected: %d, got: %d", t.KasDomain, m.Destination)
	case m.Recipient != t.KasTokenPlaceholder:
		return errors.NewFailedGeneralVerificationError("recipient is incorrect, expected: %s, got: %s", t.KasTokenPlaceholder.Hex(), m.Recipient.Hex())
	}

	return nil
}
