package settings

import (
	"net/url"
	"strings"
	"testing"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// check settings object is initialised
func TestInitialiseSettings(t *testing.T) {
	tSettings := NewSettings()

	require.NotNil(t, tSettings.ChainCfgParams)
	assert.NotEmpty(t, tSettings.Validator.HTTPListenAddress)
	assert.Positive(t, tSettings.Validator.HubQueryConcurrency)
	assert.Positive(t, tSettings.Validator.MaxBodyBytes)
	assert.NotEmpty(t, tSettings.Validator.SighashTypes)
	require.NotNil(t, tSettings.Hub.RESTURL)
}

func validSettings() *Settings {
	return &Settings{
		Validator: ValidatorSettings{
			HubMailboxID:        "0x68797065726c616e650000000000000000000000000000000000000000000000",
			HubTokenID:          "0x726f757465725f617070" + strings.Repeat("00", 22),
			KasTokenPlaceholder: strings.Repeat("00", 31) + "01",
			EscrowPubKeys:       []string{"aa", "bb", "cc"},
			EscrowThreshold:     2,
			KeySource:           "direct",
			EscrowKeyHex:        "01",
			HubQueryConcurrency: 4,
		},
		Hub: HubSettings{
			RESTURL: &url.URL{Scheme: "http", Host: "localhost:1317"},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr assert.ErrorAssertionFunc
	}{
		{"valid", func(s *Settings) {}, assert.NoError},
		{"missing mailbox", func(s *Settings) { s.Validator.HubMailboxID = "" }, assert.Error},
		{"short token id", func(s *Settings) { s.Validator.HubTokenID = "0x01" }, assert.Error},
		{"no escrow", func(s *Settings) { s.Validator.EscrowPubKeys = nil }, assert.Error},
		{"redeem script instead of keys", func(s *Settings) {
			s.Validator.EscrowPubKeys = nil
			s.Validator.EscrowRedeemScript = "51"
		}, assert.NoError},
		{"threshold too high", func(s *Settings) { s.Validator.EscrowThreshold = 4 }, assert.Error},
		{"threshold zero", func(s *Settings) { s.Validator.EscrowThreshold = 0 }, assert.Error},
		{"direct without key", func(s *Settings) { s.Validator.EscrowKeyHex = "" }, assert.Error},
		{"s3 with url", func(s *Settings) {
			s.Validator.KeySource = "s3"
			s.Validator.EscrowKeyS3URL = &url.URL{Scheme: "s3", Host: "bucket", Path: "/key"}
		}, assert.NoError},
		{"s3 without url", func(s *Settings) { s.Validator.KeySource = "s3" }, assert.Error},
		{"unknown key source", func(s *Settings) { s.Validator.KeySource = "hsm" }, assert.Error},
		{"zero concurrency", func(s *Settings) { s.Validator.HubQueryConcurrency = 0 }, assert.Error},
		{"no hub url", func(s *Settings) { s.Hub.RESTURL = nil }, assert.Error},
		{"negative hub query rate", func(s *Settings) { s.Hub.QueriesPerSecond = -1 }, assert.Error},
		{"json logger", func(s *Settings) { s.LoggerType = "json" }, assert.NoError},
		{"unknown logger type", func(s *Settings) { s.LoggerType = "gocore" }, assert.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(s)

			err := s.Validate()
			tt.wantErr(t, err)

			if err != nil {
				assert.True(t, errors.Is(err, errors.ErrConfiguration))
			}
		})
	}
}
