package validator

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/kaspa"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

const (
	testHubDomain uint32 = 1260813472
	testKasDomain uint32 = 897658017
	testMailbox          = "0x68797065726c616e650000000000000000000000000000000000000000000000"
)

var (
	testHubTokenID   = common.HexToHash("0x726f757465725f61707000000000000000000000000000010000000000000000")
	testPlaceholder  = common.HexToHash("0x0000000000000000000000000000000000000000000000000000000000000000")
	testRecipientR   = testRecipient(0x01)
	testRecipientR2  = testRecipient(0x02)
	testHubAnchorTx  = testTxID(0xa1)
	testFeeOutpoint  = model.NewOutpoint(testTxID(0xfe), 0)
	testHubAnchor    = model.NewOutpoint(testHubAnchorTx, 1)
	testThirdParty   = kaspa.RecipientScript(testRecipient(0x33))
	testRelayerSpk   = kaspa.RecipientScript(testRecipient(0x44))
	testSighashAllAC = kaspa.SigHashAll | kaspa.SigHashAnyOneCanPay
)

func testPrivateKey(t *testing.T, b byte) *btcec.PrivateKey {
	t.Helper()

	secret := make([]byte, 32)
	secret[31] = b

	key, _ := btcec.PrivKeyFromBytes(secret)
	require.NotNil(t, key)

	return key
}

// testEscrow is a 2-of-3 escrow over keys 1, 2 and 3. Key 1 is the one the tests sign with.
func testEscrow(t *testing.T) (*kaspa.Escrow, *btcec.PrivateKey) {
	t.Helper()

	var pubKeys [][]byte

	for b := byte(1); b <= 3; b++ {
		pubKeys = append(pubKeys, schnorr.SerializePubKey(testPrivateKey(t, b).PubKey()))
	}

	escrow, err := kaspa.NewEscrowFromPubKeys(2, pubKeys)
	require.NoError(t, err)

	return escrow, testPrivateKey(t, 1)
}

func testTemplate(escrow *kaspa.Escrow) *MatchTemplate {
	return NewMatchTemplate("kaspatest", escrow, testHubDomain, testHubTokenID, testKasDomain, testPlaceholder, testMailbox)
}

func testRecipient(b byte) [32]byte {
	var r [32]byte
	r[0] = b
	r[31] = b

	return r
}

func testTxID(b byte) model.TxID {
	var id model.TxID
	for i := range id {
		id[i] = b
	}

	return id
}

func testMessage(nonce uint32, recipient [32]byte, amount uint64) *model.HyperlaneMessage {
	tm := &model.TokenMessage{Recipient: recipient, Amount: amount}

	return &model.HyperlaneMessage{
		Version:     HyperlaneMessageVersion,
		Nonce:       nonce,
		Origin:      testHubDomain,
		Sender:      testHubTokenID,
		Destination: testKasDomain,
		Recipient:   testPlaceholder,
		Body:        tm.Bytes(),
	}
}

func escrowInput(escrow *kaspa.Escrow, outpoint model.Outpoint, amount uint64) *model.Input {
	return &model.Input{
		PreviousOutpoint: outpoint,
		SighashType:      kaspa.SigHashAll,
		RedeemScript:     escrow.RedeemScript,
		UTXOEntry: &model.UTXOEntry{
			Amount:          amount,
			ScriptPublicKey: escrow.P2SH,
		},
	}
}

func feeInput(amount uint64) *model.Input {
	return &model.Input{
		PreviousOutpoint: testFeeOutpoint,
		SighashType:      testSighashAllAC,
		UTXOEntry: &model.UTXOEntry{
			Amount:          amount,
			ScriptPublicKey: testRelayerSpk,
		},
	}
}

func recipientOutput(recipient [32]byte, amount uint64) *model.Output {
	return &model.Output{Amount: amount, ScriptPublicKey: kaspa.RecipientScript(recipient)}
}

func escrowOutput(escrow *kaspa.Escrow, amount uint64) *model.Output {
	return &model.Output{Amount: amount, ScriptPublicKey: escrow.P2SH}
}

func testPSKT(msgs []*model.HyperlaneMessage, inputs []*model.Input, outputs []*model.Output) *model.PSKT {
	return &model.PSKT{
		Global: model.Global{
			Payload:     model.EncodeMessageIDs(model.MessageIDsOf(msgs)),
			InputCount:  len(inputs),
			OutputCount: len(outputs),
		},
		Inputs:  inputs,
		Outputs: outputs,
	}
}

func requireCode(t *testing.T, err error, code errors.ERR) {
	t.Helper()

	require.Error(t, err)
	require.Equal(t, code, errors.CodeOf(err), err.Error())
}
