package kasvalidator

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/dymensionxyz/kaspa-validator/services/hub"
	"github.com/dymensionxyz/kaspa-validator/services/keys"
	"github.com/dymensionxyz/kaspa-validator/services/validator"
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
	jsoniter "github.com/json-iterator/go"
	"github.com/urfave/cli/v2"
)

func validate(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.NewInvalidArgumentError("expected exactly one withdrawal request file")
	}

	tSettings := settings.NewSettings()
	logger := newLogger(c.App.Name, tSettings)

	hubClient, err := hub.NewClient(logger, tSettings)
	if err != nil {
		return err
	}

	var opts []validator.Option
	if c.IsSet("height") {
		opts = append(opts, validator.WithHubHeight(c.Uint64("height")))
	}

	return runValidate(c.Context, c.App.Writer, tSettings, hubClient, c.Args().First(), opts...)
}

// runValidate checks the request in path the same way the service does before signing.
func runValidate(ctx context.Context, w io.Writer, tSettings *settings.Settings, hubClient hub.ClientI, path string, opts ...validator.Option) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewInvalidArgumentError("failed to read %s", path, err)
	}

	fxg, err := model.NewWithdrawFXGFromBytes(data)
	if err != nil {
		return err
	}

	bundle, err := validator.SafeBundle(fxg.Bundle)
	if err != nil {
		return err
	}

	escrow, err := validator.NewEscrowFromSettings(tSettings)
	if err != nil {
		return err
	}

	tmpl, err := validator.NewMatchTemplateFromSettings(tSettings, escrow)
	if err != nil {
		return err
	}

	policy, err := validator.NewSighashPolicyFromStrings(tSettings.Validator.SighashTypes)
	if err != nil {
		return err
	}

	opts = append([]validator.Option{
		validator.WithHubQueryConcurrency(tSettings.Validator.HubQueryConcurrency),
		validator.WithSighashPolicy(policy),
	}, opts...)

	if err = validator.ValidateWithdrawalBatch(ctx, bundle, fxg.Messages, hubClient, tmpl, opts...); err != nil {
		_, _ = fmt.Fprintf(w, "REJECTED: %s\n", errors.CodeOf(err))
		return err
	}

	_, _ = fmt.Fprintf(w, "OK: %d pskts, %d messages\n", len(bundle), len(model.FlattenMessages(fxg.Messages)))

	return nil
}

func info(c *cli.Context) error {
	tSettings := settings.NewSettings()
	logger := newLogger(c.App.Name, tSettings)

	loadKey, err := keys.NewLoaderFromSettings(c.Context, logger, tSettings)
	if err != nil {
		return err
	}

	return runInfo(c.Context, c.App.Writer, logger, tSettings, loadKey)
}

func runInfo(ctx context.Context, w io.Writer, logger ulogger.Logger, tSettings *settings.Settings, loadKey keys.Loader) error {
	escrow, err := validator.NewEscrowFromSettings(tSettings)
	if err != nil {
		return err
	}

	result, err := validator.New(logger, tSettings, nil, escrow, loadKey, nil).Info(ctx)
	if err != nil {
		return err
	}

	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.NewProcessingError("failed to encode validator info", err)
	}

	_, _ = fmt.Fprintln(w, string(out))

	return nil
}
