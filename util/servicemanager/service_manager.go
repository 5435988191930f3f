// Package servicemanager runs a set of services under one context, stopping all of them when any
// fails or the process receives SIGINT or SIGTERM.
package servicemanager

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"
)

// stopTimeout bounds how long each service gets to stop.
const stopTimeout = 5 * time.Second

type serviceWrapper struct {
	name     string
	instance Service
	readyCh  chan struct{}
}

type ServiceManager struct {
	services   []serviceWrapper
	logger     ulogger.Logger
	Ctx        context.Context
	cancelFunc context.CancelFunc
	g          *errgroup.Group
}

func NewServiceManager(ctx context.Context, logger ulogger.Logger) *ServiceManager {
	ctx, cancelFunc := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)

	sm := &ServiceManager{
		logger:     logger,
		Ctx:        ctx,
		cancelFunc: cancelFunc,
		g:          g,
	}

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigs)

		select {
		case <-sigs:
			sm.logger.Infof("🟠 Received shutdown signal. Stopping services...")
			sm.cancelFunc()
		case <-ctx.Done():
		}
	}()

	return sm
}

// AddService initialises service and starts it in the background. A service is only started once
// the one added before it is ready.
func (sm *ServiceManager) AddService(name string, service Service) error {
	var previous chan struct{}
	if len(sm.services) > 0 {
		previous = sm.services[len(sm.services)-1].readyCh
	}

	sw := serviceWrapper{
		name:     name,
		instance: service,
		readyCh:  make(chan struct{}),
	}

	sm.services = append(sm.services, sw)

	sm.logger.Infof("⚪️ Initializing service %s...", name)

	if err := service.Init(sm.Ctx); err != nil {
		return errors.NewServiceError("failed to initialise service %s", name, err)
	}

	sm.g.Go(func() error {
		if previous != nil {
			select {
			case <-previous:
			case <-sm.Ctx.Done():
				return nil
			}
		}

		sm.logger.Infof("🟢 Starting service %s...", name)

		if err := service.Start(sm.Ctx, sw.readyCh); err != nil {
			sm.logger.Errorf("Error from service start %s: %v", name, err)
			return err
		}

		return nil
	})

	return nil
}

// WaitForServicesToBeReady blocks until every service is ready or ctx is done.
func (sm *ServiceManager) WaitForServicesToBeReady(ctx context.Context) error {
	for _, s := range sm.services {
		select {
		case <-s.readyCh:
			sm.logger.Infof("🟢 Service %s is ready", s.name)
		case <-ctx.Done():
			return errors.NewContextCanceledError("waiting for service %s", s.name, ctx.Err())
		}
	}

	return nil
}

// ServicesNotReady returns the names of the services that have not closed their ready channel.
func (sm *ServiceManager) ServicesNotReady() []string {
	var notReady []string

	for _, s := range sm.services {
		select {
		case <-s.readyCh:
		default:
			notReady = append(notReady, s.name)
		}
	}

	return notReady
}

func (sm *ServiceManager) ForceShutdown() {
	sm.cancelFunc()
}

// Wait blocks until all services have returned, then stops them in reverse order. A shutdown by
// signal or ForceShutdown is not an error.
func (sm *ServiceManager) Wait() error {
	err := sm.g.Wait()
	if err != nil {
		sm.logger.Errorf("Received error: %v", err)
	}

	for i := len(sm.services) - 1; i >= 0; i-- {
		service := sm.services[i]

		stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)

		sm.logger.Infof("🟠 Stopping service %s...", service.name)

		if stopErr := service.instance.Stop(stopCtx); stopErr != nil {
			sm.logger.Warnf("[%s] Failed to stop service: %v", service.name, stopErr)
		} else {
			sm.logger.Infof("[%s] Service stopped gracefully", service.name)
		}

		stopCancel()
	}

	sm.cancelFunc()

	sm.logger.Infof("🛑 All services stopped.")

	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

type serviceHealth struct {
	Service string `json:"service"`
	Status  int    `json:"status"`
	Details string `json:"details,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthHandler aggregates the health of every service. Any unhealthy service makes the whole
// report 503.
func (sm *ServiceManager) HealthHandler(ctx context.Context, checkLiveness bool) (int, string, error) {
	overall := http.StatusOK
	results := make([]serviceHealth, 0, len(sm.services))

	for _, s := range sm.services {
		status, details, err := s.instance.Health(ctx, checkLiveness)
		if err != nil || status != http.StatusOK {
			overall = http.StatusServiceUnavailable
		}

		h := serviceHealth{Service: s.name, Status: status, Details: details}
		if err != nil {
			h.Error = err.Error()
		}

		results = append(results, h)
	}

	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(map[string]any{
		"status":   overall,
		"services": results,
	}, "", "  ")
	if err != nil {
		return http.StatusInternalServerError, "", err
	}

	return overall, string(body), nil
}
