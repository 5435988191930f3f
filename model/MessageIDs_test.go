package model

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestMessageIDs_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ids  []common.Hash
	}{
		{"empty", nil},
		{"single", []common.Hash{common.HexToHash("0x01")}},
		{"ordered", []common.Hash{
			common.HexToHash("0x03"),
			common.HexToHash("0x01"),
			common.HexToHash("0x02"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeMessageIDs(tt.ids)

			decoded, err := DecodeMessageIDs(encoded)
			require.NoError(t, err)
			assert.Len(t, decoded, len(tt.ids))

			for i := range tt.ids {
				assert.Equal(t, tt.ids[i], decoded[i])
			}

			assert.Equal(t, encoded, EncodeMessageIDs(decoded))
		})
	}
}

func TestEncodeMessageIDs_Layout(t *testing.T) {
	assert.Empty(t, EncodeMessageIDs(nil))

	id := common.HexToHash("0xff")
	encoded := EncodeMessageIDs([]common.Hash{id})

	// tag (field 1, length delimited), length 32, id
	require.Len(t, encoded, 34)
	assert.Equal(t, byte(0x0a), encoded[0])
	assert.Equal(t, byte(0x20), encoded[1])
	assert.Equal(t, id.Bytes(), encoded[2:])
}

func TestDecodeMessageIDs_Strict(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{
			name:  "truncated",
			input: EncodeMessageIDs([]common.Hash{common.HexToHash("0x01")})[:20],
		},
		{
			name:  "short id",
			input: protowire.AppendBytes(protowire.AppendTag(nil, 1, protowire.BytesType), []byte{1, 2, 3}),
		},
		{
			name:  "unknown field",
			input: protowire.AppendBytes(protowire.AppendTag(nil, 2, protowire.BytesType), make([]byte, 32)),
		},
		{
			name:  "wrong wire type",
			input: protowire.AppendVarint(protowire.AppendTag(nil, 1, protowire.VarintType), 5),
		},
		{
			name:  "garbage tag",
			input: []byte{0xff},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMessageIDs(tt.input)
			require.Error(t, err)
		})
	}
}

func TestMessageIDs_Strings(t *testing.T) {
	ids := MessageIDs{common.HexToHash("0x01")}
	assert.Equal(t, []string{"0000000000000000000000000000000000000000000000000000000000000001"}, ids.Strings())
	assert.Equal(t, EncodeMessageIDs(ids), ids.Bytes())
}
