// Package daemon wires the validator services together and runs them until shutdown.
package daemon

import (
	"context"
	"sync"

	"github.com/dymensionxyz/kaspa-validator/services/hub"
	"github.com/dymensionxyz/kaspa-validator/services/keys"
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
	"github.com/dymensionxyz/kaspa-validator/util/kafka"
	"github.com/dymensionxyz/kaspa-validator/util/servicemanager"
)

type Daemon struct {
	Ctx            context.Context
	ServiceManager *servicemanager.ServiceManager

	loggerFactory    func(serviceName string) ulogger.Logger
	hubClient        hub.ClientI
	keyLoader        keys.Loader
	rejectedProducer kafka.KafkaAsyncProducerI

	// cleanups run after every service has stopped
	cleanupMu sync.Mutex
	cleanups  []func()
}

func New(opts ...Option) *Daemon {
	d := &Daemon{
		Ctx: context.Background(),
		loggerFactory: ulogger.Factory(),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.ServiceManager = servicemanager.NewServiceManager(d.Ctx, d.loggerFactory("ServiceManager"))

	return d
}

// Start builds the services and blocks until they have all stopped.
func (d *Daemon) Start(logger ulogger.Logger, tSettings *settings.Settings, readyCh ...chan struct{}) error {
	if err := d.startServices(d.ServiceManager.Ctx, logger, tSettings); err != nil {
		logger.Errorf("[Daemon] failed to start services: %v", err)
		d.ServiceManager.ForceShutdown()
		_ = d.ServiceManager.Wait()
		d.runCleanups()

		return err
	}

	if len(readyCh) > 0 && readyCh[0] != nil {
		go func() {
			if err := d.ServiceManager.WaitForServicesToBeReady(d.ServiceManager.Ctx); err == nil {
				close(readyCh[0])
			}
		}()
	}

	err := d.ServiceManager.Wait()

	d.runCleanups()

	return err
}

// Stop triggers a shutdown. Start returns once the services have stopped.
func (d *Daemon) Stop() {
	d.ServiceManager.ForceShutdown()
}

func (d *Daemon) addCleanup(fn func()) {
	d.cleanupMu.Lock()
	defer d.cleanupMu.Unlock()

	d.cleanups = append(d.cleanups, fn)
}

func (d *Daemon) runCleanups() {
	d.cleanupMu.Lock()
	defer d.cleanupMu.Unlock()

	for i := len(d.cleanups) - 1; i >= 0; i-- {
		d.cleanups[i]()
	}

	d.cleanups = nil
}
