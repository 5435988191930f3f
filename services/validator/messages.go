package validator

import (
	"context"
	"time"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/dymensionxyz/kaspa-validator/services/hub"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

// ValidateMessages checks the message set of a batch against the template and the hub, and returns
// the escrow anchor the first PSKT of the batch must spend.
func ValidateMessages(ctx context.Context, groups [][]*model.HyperlaneMessage, hubClient hub.ClientI, tmpl *MatchTemplate, opts ...Option) (model.Outpoint, error) {
	initPrometheusMetrics()

	start := time.Now()
	defer func() {
		prometheusValidateMessages.Observe(float64(time.Since(start).Microseconds()) / 1_000)
	}()

	options := ProcessOptions(opts...)

	if err := ctx.Err(); err != nil {
		return model.Outpoint{}, errors.NewSystemError("message validation cancelled", err)
	}

	msgs := model.FlattenMessages(groups)
	for i, m := range msgs {
		if m == nil {
			return model.Outpoint{}, errors.NewFailedGeneralVerificationError("message %d is nil", i)
		}
	}

	ids := model.MessageIDsOf(msgs)

	prometheusBatchMessages.Observe(float64(len(msgs)))

	seen := make(map[common.Hash]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return model.Outpoint{}, errors.NewDoubleSpendingError(model.MessageIDHex(id))
		}

		seen[id] = struct{}{}
	}

	for _, m := range msgs {
		if err := tmpl.Matches(m); err != nil {
			return model.Outpoint{}, err
		}
	}

	if err := checkDispatched(ctx, hubClient, tmpl.HubMailboxID, ids, options.hubQueryConcurrency); err != nil {
		return model.Outpoint{}, err
	}

	anchor, pending, err := hub.FilterPendingWithdrawals(ctx, hubClient, msgs, options.hubHeight)
	if err != nil {
		return model.Outpoint{}, errors.NewSystemError("failed to query pending withdrawals", err)
	}

	if len(pending) != len(msgs) {
		return model.Outpoint{}, errors.NewMessagesNotUnprocessedError(len(msgs), len(pending))
	}

	return anchor, nil
}

// checkDispatched asks the hub about every id with at most limit queries in flight. The first
// failure cancels the remaining queries.
func checkDispatched(ctx context.Context, hubClient hub.ClientI, mailboxID string, ids []common.Hash, limit int) error {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, id := range ids {
		g.Go(func() error {
			delivered, err := hubClient.Delivered(gCtx, mailboxID, id)
			if err != nil {
				return errors.NewSystemError("failed to query dispatch of message %s", model.MessageIDHex(id), err)
			}

			if !delivered {
				return errors.NewMessageNotDispatchedError(model.MessageIDHex(id))
			}

			return nil
		})
	}

	err := g.Wait()

	// a cancelled caller must see a retryable error even when a query lost the race with a policy answer
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.NewSystemError("message validation cancelled", ctxErr)
	}

	return err
}
