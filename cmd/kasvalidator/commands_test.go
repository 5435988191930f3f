package kasvalidator

import (
	"bytes"
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/dymensionxyz/kaspa-validator/chaincfg"
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/dymensionxyz/kaspa-validator/services/hub"
	"github.com/dymensionxyz/kaspa-validator/services/keys"
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testKeyHex(b byte) string {
	return strings.Repeat("00", 31) + hex.EncodeToString([]byte{b})
}

func testSettings(t *testing.T) *settings.Settings {
	t.Helper()

	pubKeys := make([]string, 0, 3)

	for b := byte(1); b <= 3; b++ {
		key, err := keys.ParsePrivateKey(testKeyHex(b))
		require.NoError(t, err)

		pubKeys = append(pubKeys, hex.EncodeToString(schnorr.SerializePubKey(key.PubKey())))
	}

	return &settings.Settings{
		ChainCfgParams: &chaincfg.TestNetParams,
		Validator: settings.ValidatorSettings{
			HubDomain:           1260813472,
			HubTokenID:          "0x" + strings.Repeat("11", 32),
			KasDomain:           897658017,
			KasTokenPlaceholder: "0x" + strings.Repeat("00", 32),
			HubMailboxID:        "0x" + strings.Repeat("22", 32),
			EscrowPubKeys:       pubKeys,
			EscrowThreshold:     2,
			KeySource:           keys.SourceDirect,
			EscrowKeyHex:        testKeyHex(1),
			HubQueryConcurrency: 2,
			SighashTypes:        []string{"1", "129"},
		},
	}
}

func TestRunInfo(t *testing.T) {
	tSettings := testSettings(t)

	loadKey, err := keys.NewDirectLoader(testKeyHex(1))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runInfo(context.Background(), &out, ulogger.TestLogger{}, tSettings, loadKey))

	var result map[string]string
	require.NoError(t, jsoniter.Unmarshal(out.Bytes(), &result))

	key, err := keys.ParsePrivateKey(testKeyHex(1))
	require.NoError(t, err)

	assert.Equal(t, hex.EncodeToString(key.PubKey().SerializeCompressed()), result["pubkey"])
	assert.True(t, strings.HasPrefix(result["escrowAddress"], "kaspatest:"), result["escrowAddress"])
	assert.Equal(t, "kaspa-testnet", result["network"])
}

func TestRunInfo_KeyFailure(t *testing.T) {
	failing := func(context.Context) (*btcec.PrivateKey, error) {
		return nil, errors.NewServiceUnavailableError("bucket unreachable")
	}

	err := runInfo(context.Background(), &bytes.Buffer{}, ulogger.TestLogger{}, testSettings(t), failing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSigning))
}

func TestRunValidate_BadInput(t *testing.T) {
	dir := t.TempDir()

	malformed := filepath.Join(dir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{not json"), 0o600))

	nilPSKT := filepath.Join(dir, "nil-pskt.json")
	require.NoError(t, os.WriteFile(nilPSKT, []byte(`{"bundle":[null],"messages":[[]]}`), 0o600))

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.json")},
		{"malformed json", malformed},
		{"nil pskt", nilPSKT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hubClient := &hub.MockClient{}

			err := runValidate(context.Background(), &bytes.Buffer{}, testSettings(t), hubClient, tt.path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidArgument), err.Error())
			assert.Empty(t, hubClient.Calls)
		})
	}
}

func TestRunValidate_Rejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"bundle":[{"global":{},"inputs":[],"outputs":[]}],"messages":[]}`), 0o600))

	anchor := model.NewOutpoint(model.TxID{0x01}, 0)

	hubClient := &hub.MockClient{}
	hubClient.On("WithdrawalStatus", mock.Anything, mock.Anything, mock.Anything).
		Return(&hub.WithdrawalStatusResponse{Outpoint: &anchor}, nil)

	var out bytes.Buffer

	// one pskt but no message groups
	err := runValidate(context.Background(), &out, testSettings(t), hubClient, path)
	require.Error(t, err)
	assert.True(t, errors.IsPolicyError(err), err.Error())
	assert.True(t, errors.Is(err, errors.ErrMessageCacheLengthMismatch), err.Error())
	assert.Contains(t, out.String(), "REJECTED")
}
