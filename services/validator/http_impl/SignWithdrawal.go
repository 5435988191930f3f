package http_impl

import (
	"io"
	"net/http"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/labstack/echo/v4"
)

// SignWithdrawal handles POST /kaspa/withdrawal/sign. The body is a withdrawal request and the answer
// the signed bundle.
func (h *HTTP) SignWithdrawal(c echo.Context) error {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, h.maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			prometheusSignWithdrawal.WithLabelValues("too_large").Inc()
			return sendError(c, http.StatusRequestEntityTooLarge, errors.NewInvalidArgumentError("request body exceeds %d bytes", maxErr.Limit))
		}

		prometheusSignWithdrawal.WithLabelValues("bad_request").Inc()

		return sendError(c, http.StatusBadRequest, errors.NewInvalidArgumentError("failed to read request body", err))
	}

	fxg, err := model.NewWithdrawFXGFromBytes(body)
	if err != nil {
		prometheusSignWithdrawal.WithLabelValues("bad_request").Inc()
		return sendError(c, http.StatusBadRequest, err)
	}

	h.logger.Debugf("[Validator_http][%s] sign withdrawal request with %d pskts", requestID, len(fxg.Bundle))

	signed, err := h.validator.SignWithdrawal(c.Request().Context(), requestID, fxg)
	if err != nil {
		status := statusForError(err)
		prometheusSignWithdrawal.WithLabelValues(resultLabel(status)).Inc()

		return sendError(c, status, err)
	}

	out, err := signed.Serialize()
	if err != nil {
		prometheusSignWithdrawal.WithLabelValues("error").Inc()
		return sendError(c, http.StatusInternalServerError, err)
	}

	prometheusSignWithdrawal.WithLabelValues("signed").Inc()

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, out)
}

// statusForError maps a signing failure to the status a relayer acts on: 503 means try again later,
// 422 means the batch was read but will never be signed as is, so it must not be retried unchanged.
func statusForError(err error) int {
	switch {
	case errors.IsRetryableError(err):
		return http.StatusServiceUnavailable
	case errors.IsPolicyError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func resultLabel(status int) string {
	switch status {
	case http.StatusServiceUnavailable:
		return "retryable"
	case http.StatusUnprocessableEntity:
		return "rejected"
	case http.StatusBadRequest:
		return "bad_request"
	default:
		return "error"
	}
}
