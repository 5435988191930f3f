/*
Package validator implements withdrawal batch validation and signing for the Kaspa escrow.

A relayer proposes a Bundle of PSKTs together with the Hyperlane messages each PSKT settles. Before
contributing a signature the validator checks that:
  - every message is unique, matches the configured template, is dispatched on the hub and is not yet
    settled there
  - the PSKTs form a chain starting at the hub's current escrow anchor
  - each PSKT commits to its message ids in the payload, pays every withdrawal exactly once, returns all
    remaining escrow funds to exactly one new anchor, and takes nothing else from the escrow

Usage:

	bundle, err := validator.ValidateSignWithdrawalFXG(ctx, fxg, true, hubClient, escrow, loadKey, tmpl)
*/
package validator

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/kaspa"
)

// SighashPolicy is the allow-list of sighash types an input may carry. Anything not listed is denied.
type SighashPolicy struct {
	allowed map[uint8]struct{}
}

// DefaultSighashPolicy allows SIGHASH_ALL and SIGHASH_ALL|ANYONECANPAY. The relayer uses the latter so
// it can add its own fee input next to the escrow inputs. ANYONECANPAY only narrows the inputs a
// signature covers; every output stays committed, and NONE or SINGLE (partial output cover) are denied.
func DefaultSighashPolicy() *SighashPolicy {
	return NewSighashPolicy(kaspa.SigHashAll, kaspa.SigHashAll|kaspa.SigHashAnyOneCanPay)
}

func NewSighashPolicy(allowed ...uint8) *SighashPolicy {
	p := &SighashPolicy{allowed: make(map[uint8]struct{}, len(allowed))}
	for _, t := range allowed {
		p.allowed[t] = struct{}{}
	}

	return p
}

// NewSighashPolicyFromStrings parses decimal or 0x-prefixed hex sighash tags.
func NewSighashPolicyFromStrings(values []string) (*SighashPolicy, error) {
	allowed := make([]uint8, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}

		n, err := strconv.ParseUint(v, 0, 8)
		if err != nil {
			return nil, errors.NewConfigurationError("invalid sighash type %q", v, err)
		}

		allowed = append(allowed, uint8(n))
	}

	if len(allowed) == 0 {
		return nil, errors.NewConfigurationError("sighash policy allows nothing")
	}

	return NewSighashPolicy(allowed...), nil
}

func (p *SighashPolicy) Allowed(sighashType uint8) bool {
	if p == nil {
		return false
	}

	_, ok := p.allowed[sighashType]

	return ok
}

// Types returns the allowed tags in ascending order.
func (p *SighashPolicy) Types() []uint8 {
	types := make([]uint8, 0, len(p.allowed))
	for t := range p.allowed {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	return types
}
