package hub

import (
	"context"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
)

// FilterPendingWithdrawals asks the hub for the settlement status of msgs and returns the current
// escrow anchor together with the messages that are still unprocessed, in their original order.
func FilterPendingWithdrawals(ctx context.Context, client ClientI, msgs []*model.HyperlaneMessage, height *uint64) (model.Outpoint, []*model.HyperlaneMessage, error) {
	ids := model.MessageIDsOf(msgs)

	resp, err := client.WithdrawalStatus(ctx, ids, height)
	if err != nil {
		return model.Outpoint{}, nil, err
	}

	if resp == nil || resp.Outpoint == nil {
		return model.Outpoint{}, nil, errors.NewNetworkInvalidResponseError("[HubClient] withdrawal status response has no outpoint")
	}

	if len(resp.Statuses) != len(msgs) {
		return model.Outpoint{}, nil, errors.NewNetworkInvalidResponseError("[HubClient] withdrawal status response has %d statuses for %d messages", len(resp.Statuses), len(msgs))
	}

	pending := make([]*model.HyperlaneMessage, 0, len(msgs))

	for i, status := range resp.Statuses {
		if status == WithdrawalStatusUnprocessed {
			pending = append(pending, msgs[i])
		}
	}

	return *resp.Outpoint, pending, nil
}
