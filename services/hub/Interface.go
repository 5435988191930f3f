// Package hub queries the Dymension hub for the dispatch and settlement state of Hyperlane messages.
package hub

import (
	"context"

	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/ethereum/go-ethereum/common"
)

type WithdrawalStatus string

const (
	WithdrawalStatusUnspecified WithdrawalStatus = "WITHDRAWAL_STATUS_UNSPECIFIED"
	WithdrawalStatusUnprocessed WithdrawalStatus = "WITHDRAWAL_STATUS_UNPROCESSED"
	WithdrawalStatusProcessed   WithdrawalStatus = "WITHDRAWAL_STATUS_PROCESSED"
)

// WithdrawalStatusResponse carries one status per queried id, in query order, and the escrow anchor
// the hub currently considers live.
type WithdrawalStatusResponse struct {
	Statuses []WithdrawalStatus
	Outpoint *model.Outpoint
}

// ClientI is the read-only view of the hub the validator depends on.
type ClientI interface {
	// Delivered reports whether the mailbox has dispatched the message. An error means the answer is
	// unknown, never that the message was not dispatched.
	Delivered(ctx context.Context, mailboxID string, messageID common.Hash) (bool, error)

	// WithdrawalStatus returns the settlement status of each id and the current anchor, optionally
	// at a specific hub height.
	WithdrawalStatus(ctx context.Context, ids []common.Hash, height *uint64) (*WithdrawalStatusResponse, error)
}
