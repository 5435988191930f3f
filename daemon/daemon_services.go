package daemon

import (
	"context"

	"github.com/dymensionxyz/kaspa-validator/services/hub"
	"github.com/dymensionxyz/kaspa-validator/services/keys"
	"github.com/dymensionxyz/kaspa-validator/services/validator"
	"github.com/dymensionxyz/kaspa-validator/services/validator/http_impl"
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
)

func (d *Daemon) startServices(ctx context.Context, logger ulogger.Logger, tSettings *settings.Settings) error {
	if err := tSettings.Validate(); err != nil {
		return err
	}

	hubClient, err := d.getHubClient(logger, tSettings)
	if err != nil {
		return err
	}

	escrow, err := validator.NewEscrowFromSettings(tSettings)
	if err != nil {
		return err
	}

	escrowAddress, err := escrow.Address(tSettings.ChainCfgParams.AddressPrefix)
	if err != nil {
		return err
	}

	logger.Infof("[Daemon] escrow address %s", escrowAddress)

	loadKey := d.keyLoader
	if loadKey == nil {
		if loadKey, err = keys.NewLoaderFromSettings(ctx, logger, tSettings); err != nil {
			return err
		}
	}

	rejectedProducer := d.rejectedProducer
	if rejectedProducer == nil {
		if rejectedProducer, err = getKafkaRejectedWithdrawalsProducer(logger, tSettings); err != nil {
			return err
		}
	}

	validatorService := validator.New(d.loggerFactory("Validator"), tSettings, hubClient, escrow, loadKey, rejectedProducer)

	if err = d.ServiceManager.AddService("Validator", validatorService); err != nil {
		return err
	}

	return d.ServiceManager.AddService("ValidatorHTTP",
		http_impl.New(d.loggerFactory("ValidatorHTTP"), tSettings, validatorService),
	)
}

// getHubClient puts a delivery cache in front of the REST client.
func (d *Daemon) getHubClient(logger ulogger.Logger, tSettings *settings.Settings) (hub.ClientI, error) {
	client := d.hubClient

	if client == nil {
		restClient, err := hub.NewClient(d.loggerFactory("Hub"), tSettings)
		if err != nil {
			return nil, err
		}

		client = restClient
	}

	if tSettings.Hub.DeliveredCacheTTL <= 0 {
		return client, nil
	}

	logger.Infof("[Daemon] caching hub deliveries for %s", tSettings.Hub.DeliveredCacheTTL)

	cached := hub.NewCachedClient(client, tSettings.Hub.DeliveredCacheTTL)
	cached.Start()
	d.addCleanup(cached.Stop)

	return cached, nil
}
