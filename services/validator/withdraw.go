package validator

import (
	"context"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/kaspa"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/dymensionxyz/kaspa-validator/services/hub"
	"github.com/dymensionxyz/kaspa-validator/services/keys"
)

// ValidateSignWithdrawalFXG normalizes the proposed bundle, validates it unless validation is disabled,
// and signs its escrow inputs. The key is only loaded once validation has passed.
func ValidateSignWithdrawalFXG(ctx context.Context, fxg *model.WithdrawFXG, validationEnabled bool, hubClient hub.ClientI,
	escrow *kaspa.Escrow, loadKey keys.Loader, tmpl *MatchTemplate, opts ...Option) (model.Bundle, error) {
	if fxg == nil {
		return nil, errors.NewInvalidArgumentError("withdrawal request is nil")
	}

	bundle, err := SafeBundle(fxg.Bundle)
	if err != nil {
		return nil, err
	}

	if validationEnabled {
		if err = ValidateWithdrawalBatch(ctx, bundle, fxg.Messages, hubClient, tmpl, opts...); err != nil {
			return nil, err
		}
	}

	key, err := loadKey(ctx)
	if err != nil {
		return nil, errors.NewSigningError("failed to load escrow key", err)
	}

	return SignBundle(bundle, key, EscrowInputFilter(escrow))
}
