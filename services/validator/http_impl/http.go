// Package http_impl exposes the withdrawal signer over HTTP.
package http_impl

import (
	"context"
	"net/http"
	"time"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/services/validator"
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTP struct {
	logger       ulogger.Logger
	settings     *settings.Settings
	validator    validator.Interface
	e            *echo.Echo
	maxBodyBytes int64
}

func New(logger ulogger.Logger, tSettings *settings.Settings, v validator.Interface) *HTTP {
	initPrometheusMetrics()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	h := &HTTP{
		logger:       logger,
		settings:     tSettings,
		validator:    v,
		e:            e,
		maxBodyBytes: int64(tSettings.Validator.MaxBodyBytes),
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/health/readiness", h.Readiness)
	e.GET("/version", h.Version)
	e.GET("/validator-info", h.ValidatorInfo)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/kaspa/withdrawal/sign", h.SignWithdrawal)

	return h
}

func (h *HTTP) Init(_ context.Context) error {
	return nil
}

// Start serves until ctx is done.
func (h *HTTP) Start(ctx context.Context, readyCh chan<- struct{}) error {
	addr := h.settings.Validator.HTTPListenAddress
	h.logger.Infof("[Validator_http] HTTP service listening on %s", addr)

	go func() {
		<-ctx.Done()
		h.logger.Infof("[Validator_http] HTTP service shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.e.Shutdown(shutdownCtx); err != nil {
			h.logger.Errorf("[Validator_http] HTTP service shutdown error: %s", err)
		}
	}()

	close(readyCh)

	if err := h.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.NewServiceError("[Validator_http] failed to serve on %s", addr, err)
	}

	return nil
}

func (h *HTTP) Stop(ctx context.Context) error {
	return h.e.Shutdown(ctx)
}

func (h *HTTP) Health(ctx context.Context, checkLiveness bool) (int, string, error) {
	return h.validator.Health(ctx, checkLiveness)
}

// ServeHTTP lets tests drive the router directly.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.e.ServeHTTP(w, r)
}

func (h *HTTP) Readiness(c echo.Context) error {
	status, details, err := h.validator.Health(c.Request().Context(), false)
	if err != nil {
		return sendError(c, http.StatusServiceUnavailable, err)
	}

	return c.String(status, details)
}

func (h *HTTP) Version(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"version": h.settings.Version,
		"commit":  h.settings.Commit,
	})
}

func (h *HTTP) ValidatorInfo(c echo.Context) error {
	info, err := h.validator.Info(c.Request().Context())
	if err != nil {
		return sendError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, info)
}
