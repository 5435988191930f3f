package daemon

import (
	"context"

	"github.com/dymensionxyz/kaspa-validator/services/hub"
	"github.com/dymensionxyz/kaspa-validator/services/keys"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
	"github.com/dymensionxyz/kaspa-validator/util/kafka"
)

// Option is a functional option type for configuring the Daemon.
type Option func(*Daemon)

// WithLoggerFactory provides a custom logger factory for the Daemon and its services.
func WithLoggerFactory(factory func(serviceName string) ulogger.Logger) Option {
	return func(d *Daemon) {
		d.loggerFactory = factory
	}
}

// WithContext allows setting a custom context for the Daemon.
func WithContext(ctx context.Context) Option {
	return func(d *Daemon) {
		d.Ctx = ctx
	}
}

// WithHubClient replaces the REST client built from hub_restURL.
func WithHubClient(client hub.ClientI) Option {
	return func(d *Daemon) {
		d.hubClient = client
	}
}

// WithKeyLoader replaces the key loader built from validator_keySource.
func WithKeyLoader(loader keys.Loader) Option {
	return func(d *Daemon) {
		d.keyLoader = loader
	}
}

// WithRejectedProducer replaces the producer built from kafka_rejectedWithdrawalsURL.
func WithRejectedProducer(producer kafka.KafkaAsyncProducerI) Option {
	return func(d *Daemon) {
		d.rejectedProducer = producer
	}
}
