package model

import (
	"bytes"
	"encoding/binary"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// HyperlaneMessageHeaderLength is the encoded size of a message without its body.
const HyperlaneMessageHeaderLength = 1 + 4 + 4 + 32 + 4 + 32

// HyperlaneMessage is a cross-chain message dispatched on the hub.
type HyperlaneMessage struct {
	Version     uint8         `json:"version"`
	Nonce       uint32        `json:"nonce"`
	Origin      uint32        `json:"origin"`
	Sender      common.Hash   `json:"sender"`
	Destination uint32        `json:"destination"`
	Recipient   common.Hash   `json:"recipient"`
	Body        hexutil.Bytes `json:"body"`
}

func NewHyperlaneMessageFromBytes(b []byte) (*HyperlaneMessage, error) {
	if len(b) < HyperlaneMessageHeaderLength {
		return nil, errors.NewInvalidArgumentError("hyperlane message should be at least %d bytes long, got %d", HyperlaneMessageHeaderLength, len(b))
	}

	m := &HyperlaneMessage{
		Version:     b[0],
		Nonce:       binary.BigEndian.Uint32(b[1:5]),
		Origin:      binary.BigEndian.Uint32(b[5:9]),
		Sender:      common.BytesToHash(b[9:41]),
		Destination: binary.BigEndian.Uint32(b[41:45]),
		Recipient:   common.BytesToHash(b[45:77]),
		Body:        bytes.Clone(b[77:]),
	}

	return m, nil
}

// Bytes returns the canonical encoding the message id is computed over.
func (m *HyperlaneMessage) Bytes() []byte {
	buf := make([]byte, 0, HyperlaneMessageHeaderLength+len(m.Body))

	buf = append(buf, m.Version)
	buf = binary.BigEndian.AppendUint32(buf, m.Nonce)
	buf = binary.BigEndian.AppendUint32(buf, m.Origin)
	buf = append(buf, m.Sender.Bytes()...)
	buf = binary.BigEndian.AppendUint32(buf, m.Destination)
	buf = append(buf, m.Recipient.Bytes()...)
	buf = append(buf, m.Body...)

	return buf
}

// ID is the keccak256 hash of the encoded message.
func (m *HyperlaneMessage) ID() common.Hash {
	return crypto.Keccak256Hash(m.Bytes())
}

// TokenMessage decodes the warp route transfer carried in the body.
func (m *HyperlaneMessage) TokenMessage() (*TokenMessage, error) {
	return NewTokenMessageFromBytes(m.Body)
}

// FlattenMessages returns the groups concatenated in order.
func FlattenMessages(groups [][]*HyperlaneMessage) []*HyperlaneMessage {
	n := 0
	for _, g := range groups {
		n += len(g)
	}

	flat := make([]*HyperlaneMessage, 0, n)
	for _, g := range groups {
		flat = append(flat, g...)
	}

	return flat
}

// MessageIDsOf returns the ids of msgs in order.
func MessageIDsOf(msgs []*HyperlaneMessage) []common.Hash {
	ids := make([]common.Hash, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID()
	}

	return ids
}
