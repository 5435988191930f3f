package validator

import (
	"context"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/kaspa"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/dymensionxyz/kaspa-validator/services/hub"
	"github.com/dymensionxyz/kaspa-validator/services/keys"
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
	"github.com/dymensionxyz/kaspa-validator/util/health"
	"github.com/dymensionxyz/kaspa-validator/util/kafka"
)

var _ Interface = (*Validator)(nil)

// Validator signs withdrawal batches for the escrow once they pass validation.
type Validator struct {
	logger            ulogger.Logger
	settings          *settings.Settings
	hubClient         hub.ClientI
	escrow            *kaspa.Escrow
	loadKey           keys.Loader
	template          *MatchTemplate
	options           []Option
	rejectedProducer  kafka.KafkaAsyncProducerI
	rejectedChan      chan *kafka.Message
	hubHealthCheck    func(context.Context, bool) (int, string, error)
	validationEnabled bool
}

// New creates the service. rejectedProducer may be nil, in which case rejections are only logged.
func New(logger ulogger.Logger, tSettings *settings.Settings, hubClient hub.ClientI, escrow *kaspa.Escrow,
	loadKey keys.Loader, rejectedProducer kafka.KafkaAsyncProducerI) *Validator {
	initPrometheusMetrics()

	return &Validator{
		logger:            logger,
		settings:          tSettings,
		hubClient:         hubClient,
		escrow:            escrow,
		loadKey:           loadKey,
		rejectedProducer:  rejectedProducer,
		validationEnabled: tSettings.Validator.WithdrawalEnabled,
	}
}

func (v *Validator) Init(_ context.Context) error {
	tmpl, err := NewMatchTemplateFromSettings(v.settings, v.escrow)
	if err != nil {
		return err
	}

	policy, err := NewSighashPolicyFromStrings(v.settings.Validator.SighashTypes)
	if err != nil {
		return err
	}

	v.template = tmpl
	v.options = []Option{
		WithHubQueryConcurrency(v.settings.Validator.HubQueryConcurrency),
		WithSighashPolicy(policy),
	}

	if v.settings.Hub.RESTURL != nil {
		v.hubHealthCheck = health.CheckHTTPServer(v.settings.Hub.RESTURL.String(), hub.NodeInfoPath)
	}

	if !v.validationEnabled {
		v.logger.Warnf("[Validator] withdrawal validation is DISABLED, batches will be signed unchecked")
	}

	return nil
}

func (v *Validator) Start(ctx context.Context, readyCh chan<- struct{}) error {
	if v.rejectedProducer != nil {
		v.rejectedChan = make(chan *kafka.Message, 256)
		v.rejectedProducer.Start(ctx, v.rejectedChan)
	}

	close(readyCh)

	<-ctx.Done()

	return nil
}

func (v *Validator) Stop(_ context.Context) error {
	if v.rejectedProducer != nil {
		return v.rejectedProducer.Stop()
	}

	return nil
}

func (v *Validator) Health(ctx context.Context, checkLiveness bool) (int, string, error) {
	if checkLiveness {
		return http.StatusOK, "OK", nil
	}

	var checks []health.Check

	if v.hubHealthCheck != nil {
		checks = append(checks, health.Check{Name: "Hub", Check: v.hubHealthCheck})
	}

	return health.CheckAll(ctx, checkLiveness, checks)
}

// SignWithdrawal runs the batch through ValidateSignWithdrawalFXG under the configured request timeout.
// Policy rejections are counted and published.
func (v *Validator) SignWithdrawal(ctx context.Context, requestID string, fxg *model.WithdrawFXG) (model.Bundle, error) {
	prometheusSignRequests.Inc()

	if v.template == nil {
		return nil, errors.NewServiceNotStartedError("[Validator] service is not initialised")
	}

	if timeout := v.settings.Validator.RequestTimeout; timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()

	signed, err := ValidateSignWithdrawalFXG(ctx, fxg, v.validationEnabled, v.hubClient, v.escrow, v.loadKey, v.template, v.options...)
	if err != nil {
		if errors.IsPolicyError(err) {
			v.reject(requestID, fxg, err)
		} else {
			v.logger.Errorf("[Validator][%s] failed to sign withdrawal batch: %v", requestID, err)
		}

		return nil, err
	}

	v.logger.Infof("[Validator][%s] signed withdrawal batch of %d pskts in %s", requestID, len(signed), time.Since(start))

	return signed, nil
}

func (v *Validator) reject(requestID string, fxg *model.WithdrawFXG, err error) {
	code := errors.CodeOf(err).String()
	prometheusRejectedBatches.WithLabelValues(code).Inc()

	v.logger.Warnf("[Validator][%s] rejected withdrawal batch: %v", requestID, err)

	if v.rejectedProducer == nil {
		return
	}

	value, mErr := model.NewRejectedWithdrawalNotification(requestID, fxg, err).Bytes()
	if mErr != nil {
		v.logger.Errorf("[Validator][%s] failed to encode rejection notification: %v", requestID, mErr)
		return
	}

	if !v.rejectedProducer.Publish(&kafka.Message{Key: []byte(requestID), Value: value}) {
		v.logger.Warnf("[Validator][%s] rejection notification dropped", requestID)
	}
}

func (v *Validator) Info(ctx context.Context) (*Info, error) {
	key, err := v.loadKey(ctx)
	if err != nil {
		return nil, errors.NewSigningError("failed to load escrow key", err)
	}

	addr, err := v.escrow.Address(v.settings.ChainCfgParams.AddressPrefix)
	if err != nil {
		return nil, err
	}

	return &Info{
		PubKey:        hex.EncodeToString(key.PubKey().SerializeCompressed()),
		EscrowAddress: addr.String(),
		Network:       v.settings.ChainCfgParams.Name,
	}, nil
}
