package model

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"

	"github.com/dymensionxyz/kaspa-validator/errors"
)

// ScriptPublicKey is a versioned locking script. Its JSON form is the hex of version(2 BE) | script.
type ScriptPublicKey struct {
	Version uint16
	Script  []byte
}

func (s ScriptPublicKey) Bytes() []byte {
	b := make([]byte, 2, 2+len(s.Script))
	binary.BigEndian.PutUint16(b, s.Version)

	return append(b, s.Script...)
}

func (s ScriptPublicKey) Equal(other ScriptPublicKey) bool {
	return s.Version == other.Version && bytes.Equal(s.Script, other.Script)
}

func (s ScriptPublicKey) Clone() ScriptPublicKey {
	return ScriptPublicKey{Version: s.Version, Script: bytes.Clone(s.Script)}
}

func (s ScriptPublicKey) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(s.Bytes())), nil
}

func (s *ScriptPublicKey) UnmarshalText(text []byte) error {
	b, err := NewHexBytesFromString(string(text))
	if err != nil {
		return err
	}

	if len(b) < 2 {
		return errors.NewInvalidArgumentError("script public key should be at least 2 bytes long, got %d", len(b))
	}

	s.Version = binary.BigEndian.Uint16(b[:2])
	s.Script = bytes.Clone(b[2:])

	return nil
}

// UTXOEntry describes the output an input spends. It is needed to compute the input's signature hash.
type UTXOEntry struct {
	Amount          uint64          `json:"amount"`
	ScriptPublicKey ScriptPublicKey `json:"scriptPublicKey"`
	BlockDAAScore   uint64          `json:"blockDaaScore"`
	IsCoinbase      bool            `json:"isCoinbase"`
}

type Global struct {
	Version       uint16         `json:"version"`
	LockTime      uint64         `json:"lockTime"`
	Payload       HexBytes       `json:"payload,omitempty"`
	InputCount    int            `json:"inputCount"`
	OutputCount   int            `json:"outputCount"`
	Proprietaries map[string]any `json:"proprietaries,omitempty"`
}

type Input struct {
	PreviousOutpoint Outpoint            `json:"previousOutpoint"`
	UTXOEntry        *UTXOEntry          `json:"utxoEntry,omitempty"`
	Sequence         *uint64             `json:"sequence,omitempty"`
	SighashType      uint8               `json:"sighashType"`
	RedeemScript     HexBytes            `json:"redeemScript,omitempty"`
	SigOpCount       *uint8              `json:"sigOpCount,omitempty"`
	PartialSigs      map[string]HexBytes `json:"partialSigs,omitempty"`
	FinalScriptSig   HexBytes            `json:"finalScriptSig,omitempty"`
	Proprietaries    map[string]any      `json:"proprietaries,omitempty"`
}

type Output struct {
	Amount          uint64          `json:"amount"`
	ScriptPublicKey ScriptPublicKey `json:"scriptPublicKey"`
	RedeemScript    HexBytes        `json:"redeemScript,omitempty"`
	Proprietaries   map[string]any  `json:"proprietaries,omitempty"`
}

// PSKT is a partially signed Kaspa transaction.
type PSKT struct {
	Global  Global    `json:"global"`
	Inputs  []*Input  `json:"inputs"`
	Outputs []*Output `json:"outputs"`
}

// SpendsOutpoint returns the index of the input spending o, or -1.
func (p *PSKT) SpendsOutpoint(o Outpoint) int {
	for i, in := range p.Inputs {
		if in != nil && in.PreviousOutpoint == o {
			return i
		}
	}

	return -1
}

// Clone returns a deep copy of the fields the validator reads and writes. Proprietaries are shared.
func (p *PSKT) Clone() *PSKT {
	if p == nil {
		return nil
	}

	c := &PSKT{
		Global:  p.Global,
		Inputs:  make([]*Input, len(p.Inputs)),
		Outputs: make([]*Output, len(p.Outputs)),
	}

	c.Global.Payload = p.Global.Payload.Clone()

	for i, in := range p.Inputs {
		if in == nil {
			continue
		}

		ci := *in
		ci.RedeemScript = in.RedeemScript.Clone()
		ci.FinalScriptSig = in.FinalScriptSig.Clone()

		if in.UTXOEntry != nil {
			entry := *in.UTXOEntry
			entry.ScriptPublicKey = in.UTXOEntry.ScriptPublicKey.Clone()
			ci.UTXOEntry = &entry
		}

		if in.PartialSigs != nil {
			ci.PartialSigs = make(map[string]HexBytes, len(in.PartialSigs))
			for k, v := range in.PartialSigs {
				ci.PartialSigs[k] = v.Clone()
			}
		}

		c.Inputs[i] = &ci
	}

	for i, out := range p.Outputs {
		if out == nil {
			continue
		}

		co := *out
		co.ScriptPublicKey = out.ScriptPublicKey.Clone()
		co.RedeemScript = out.RedeemScript.Clone()
		c.Outputs[i] = &co
	}

	return c
}
