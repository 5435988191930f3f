package model

import (
	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/ethereum/go-ethereum/common"
	"google.golang.org/protobuf/encoding/protowire"
)

// messageIDsField is the field number of `repeated bytes message_ids` in the hub's MessageIDs proto.
const messageIDsField protowire.Number = 1

// MessageIDs is the ordered list of message ids a withdrawal transaction commits to in its payload.
type MessageIDs []common.Hash

// EncodeMessageIDs encodes ids as the MessageIDs protobuf message. The output is deterministic and
// preserves order; an empty list encodes to an empty slice.
func EncodeMessageIDs(ids []common.Hash) []byte {
	buf := make([]byte, 0, len(ids)*(common.HashLength+2))

	for _, id := range ids {
		buf = protowire.AppendTag(buf, messageIDsField, protowire.BytesType)
		buf = protowire.AppendBytes(buf, id.Bytes())
	}

	return buf
}

// DecodeMessageIDs is the strict inverse of EncodeMessageIDs.
func DecodeMessageIDs(b []byte) (MessageIDs, error) {
	ids := make(MessageIDs, 0, len(b)/(common.HashLength+2))

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, errors.NewInvalidArgumentError("invalid message ids tag", protowire.ParseError(n))
		}

		if num != messageIDsField || typ != protowire.BytesType {
			return nil, errors.NewInvalidArgumentError("unexpected field %d with wire type %d in message ids", num, typ)
		}

		b = b[n:]

		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, errors.NewInvalidArgumentError("invalid message id bytes", protowire.ParseError(n))
		}

		if len(v) != common.HashLength {
			return nil, errors.NewInvalidArgumentError("message id should be %d bytes long, got %d", common.HashLength, len(v))
		}

		ids = append(ids, common.BytesToHash(v))
		b = b[n:]
	}

	return ids, nil
}

func (ids MessageIDs) Bytes() []byte {
	return EncodeMessageIDs(ids)
}

// MessageIDHex renders a message id as bare lowercase hex, the form the hub's delivered query and
// rejection reports use.
func MessageIDHex(id common.Hash) string {
	return common.Bytes2Hex(id[:])
}

func (ids MessageIDs) Strings() []string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = MessageIDHex(id)
	}

	return s
}
