package model

import (
	"strings"
	"testing"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPSKT() *PSKT {
	seq := uint64(7)
	sigOps := uint8(1)

	return &PSKT{
		Global: Global{
			Version:     1,
			LockTime:    99,
			Payload:     EncodeMessageIDs([]common.Hash{common.HexToHash("0x01")}),
			InputCount:  1,
			OutputCount: 1,
		},
		Inputs: []*Input{
			{
				PreviousOutpoint: Outpoint{TransactionID: TxID{0xaa}, Index: 3},
				UTXOEntry: &UTXOEntry{
					Amount:          1000,
					ScriptPublicKey: ScriptPublicKey{Version: 0, Script: []byte{0xaa, 0x20}},
					BlockDAAScore:   12,
				},
				Sequence:     &seq,
				SighashType:  0x81,
				RedeemScript: HexBytes{0x51},
				SigOpCount:   &sigOps,
				PartialSigs:  map[string]HexBytes{"02ab": {0x01}},
			},
		},
		Outputs: []*Output{
			{Amount: 900, ScriptPublicKey: ScriptPublicKey{Script: []byte{0x20, 0xac}}},
		},
	}
}

func TestOutpoint(t *testing.T) {
	o := NewOutpoint(TxID{0x01}, 2)
	assert.True(t, strings.HasPrefix(o.String(), "0100"))
	assert.True(t, strings.HasSuffix(o.String(), ":2"))

	_, err := NewTxIDFromBytes([]byte{1})
	require.Error(t, err)

	id, err := NewTxIDFromString("0x" + strings.Repeat("ab", 32))
	require.NoError(t, err)
	assert.Equal(t, byte(0xab), id[31])
	assert.False(t, id.IsZero())
	assert.True(t, TxID{}.IsZero())
}

func TestScriptPublicKey_Text(t *testing.T) {
	spk := ScriptPublicKey{Version: 1, Script: []byte{0xab, 0xcd}}

	text, err := spk.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "0001abcd", string(text))

	var decoded ScriptPublicKey
	require.NoError(t, decoded.UnmarshalText(text))
	assert.True(t, spk.Equal(decoded))

	require.Error(t, decoded.UnmarshalText([]byte("00")))
	require.Error(t, decoded.UnmarshalText([]byte("zz")))
}

func TestBundle_RoundTrip(t *testing.T) {
	bundle := Bundle{testPSKT(), testPSKT()}

	data, err := bundle.Serialize()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"transactionId":"aa00`)
	assert.Contains(t, string(data), `"partialSigs":{"02ab":"01"}`)

	decoded, err := NewBundleFromBytes(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, bundle[0], decoded[0])

	_, err = NewBundleFromBytes([]byte(`{"not":"a list"}`))
	require.Error(t, err)
}

func TestPSKT_Clone(t *testing.T) {
	p := testPSKT()
	c := p.Clone()

	require.Equal(t, p, c)

	c.Inputs[0].UTXOEntry.ScriptPublicKey.Script[0] = 0x00
	c.Inputs[0].PartialSigs["02ab"][0] = 0x02
	c.Global.Payload[0] = 0x00
	c.Outputs[0].Amount = 1

	assert.Equal(t, byte(0xaa), p.Inputs[0].UTXOEntry.ScriptPublicKey.Script[0])
	assert.Equal(t, byte(0x01), p.Inputs[0].PartialSigs["02ab"][0])
	assert.Equal(t, byte(0x0a), p.Global.Payload[0])
	assert.Equal(t, uint64(900), p.Outputs[0].Amount)

	var nilPSKT *PSKT
	assert.Nil(t, nilPSKT.Clone())
}

func TestPSKT_SpendsOutpoint(t *testing.T) {
	p := testPSKT()

	assert.Equal(t, 0, p.SpendsOutpoint(Outpoint{TransactionID: TxID{0xaa}, Index: 3}))
	assert.Equal(t, -1, p.SpendsOutpoint(Outpoint{TransactionID: TxID{0xaa}, Index: 4}))
}

func TestWithdrawFXG_RoundTrip(t *testing.T) {
	fxg := &WithdrawFXG{
		Bundle:   Bundle{testPSKT()},
		Messages: [][]*HyperlaneMessage{{testMessage(1, 100), testMessage(2, 200)}},
	}

	data, err := fxg.Bytes()
	require.NoError(t, err)

	decoded, err := NewWithdrawFXGFromBytes(data)
	require.NoError(t, err)
	require.Len(t, decoded.Messages, 1)
	assert.Equal(t, fxg.Messages[0][1].ID(), decoded.Messages[0][1].ID())
	assert.Equal(t, fxg.Bundle[0], decoded.Bundle[0])

	_, err = NewWithdrawFXGFromBytes([]byte("{"))
	require.Error(t, err)
}

func TestRejectedWithdrawalNotification(t *testing.T) {
	fxg := &WithdrawFXG{Messages: [][]*HyperlaneMessage{{testMessage(1, 100)}}}

	n := NewRejectedWithdrawalNotification("req-1", fxg, errorForTest())
	assert.Equal(t, NotificationTypeWithdrawalRejected, n.Type)
	assert.Equal(t, "NO_MESSAGES", n.Code)
	assert.Equal(t, "pskt has no messages to process", n.Reason)
	assert.Equal(t, []string{MessageIDHex(testMessage(1, 100).ID())}, n.MessageIDs)

	data, err := n.Bytes()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"requestId":"req-1"`)
}

func errorForTest() error {
	return errors.NewNoMessagesError()
}
