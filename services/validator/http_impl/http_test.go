package http_impl

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/dymensionxyz/kaspa-validator/services/validator"
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHTTP(t *testing.T, maxBody int) (*HTTP, *validator.MockValidator) {
	t.Helper()

	tSettings := &settings.Settings{
		Version: "v1.2.3",
		Commit:  "abcdef",
		Validator: settings.ValidatorSettings{
			HTTPListenAddress: "localhost:0",
			MaxBodyBytes:      maxBody,
		},
	}

	v := &validator.MockValidator{}

	return New(ulogger.TestLogger{}, tSettings, v), v
}

func signRequest(body []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/kaspa/withdrawal/sign", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()

	var resp errorResponse
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestHealth(t *testing.T) {
	h, _ := newTestHTTP(t, 1024)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestVersion(t *testing.T) {
	h, _ := newTestHTTP(t, 1024)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "v1.2.3", resp["version"])
	assert.Equal(t, "abcdef", resp["commit"])
}

func TestValidatorInfo(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h, v := newTestHTTP(t, 1024)
		v.On("Info", mock.Anything).Return(&validator.Info{
			PubKey:        "02aa",
			EscrowAddress: "kaspatest:pq",
			Network:       "kaspa-testnet",
		}, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/validator-info", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var info validator.Info
		require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "02aa", info.PubKey)
		assert.Equal(t, "kaspatest:pq", info.EscrowAddress)
	})

	t.Run("key unavailable", func(t *testing.T) {
		h, v := newTestHTTP(t, 1024)
		v.On("Info", mock.Anything).Return(nil, errors.NewSigningError("no key"))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/validator-info", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, int32(errors.ERR_SIGNING), decodeError(t, rec).Code)
	})
}

func TestReadiness(t *testing.T) {
	h, v := newTestHTTP(t, 1024)
	v.On("Health", mock.Anything, false).Return(http.StatusOK, "ready", nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/readiness", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", rec.Body.String())
}

func TestSignWithdrawal(t *testing.T) {
	fxg := &model.WithdrawFXG{
		Bundle:   model.Bundle{{Global: model.Global{Payload: model.HexBytes{0x01}}}},
		Messages: [][]*model.HyperlaneMessage{{}},
	}

	body, err := fxg.Bytes()
	require.NoError(t, err)

	t.Run("signed", func(t *testing.T) {
		h, v := newTestHTTP(t, 1<<20)

		signed := model.Bundle{{Global: model.Global{Payload: model.HexBytes{0x02}}}}
		v.On("SignWithdrawal", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("*model.WithdrawFXG")).
			Return(signed, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, signRequest(body))

		require.Equal(t, http.StatusOK, rec.Code)

		got, err := model.NewBundleFromBytes(rec.Body.Bytes())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, model.HexBytes{0x02}, got[0].Global.Payload)

		// request id from the middleware is handed to the validator
		requestID := v.Calls[0].Arguments.String(1)
		assert.NotEmpty(t, requestID)
		assert.Equal(t, requestID, rec.Header().Get(echo.HeaderXRequestID))
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   errors.ERR
	}{
		{"policy rejection", errors.NewDoubleSpendingError("ab"), http.StatusUnprocessableEntity, errors.ERR_DOUBLE_SPENDING},
		{"payload mismatch", errors.NewPayloadMismatchError(), http.StatusUnprocessableEntity, errors.ERR_PAYLOAD_MISMATCH},
		{"hub unavailable", errors.NewSystemError("hub down"), http.StatusServiceUnavailable, errors.ERR_SYSTEM},
		{"invalid argument", errors.NewInvalidArgumentError("bad pskt"), http.StatusBadRequest, errors.ERR_INVALID_ARGUMENT},
		{"signing failure", errors.NewSigningError("no key"), http.StatusInternalServerError, errors.ERR_SIGNING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, v := newTestHTTP(t, 1<<20)
			v.On("SignWithdrawal", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, signRequest(body))

			require.Equal(t, tt.wantStatus, rec.Code)

			resp := decodeError(t, rec)
			assert.Equal(t, int32(tt.wantStatus), resp.Status)
			assert.Equal(t, int32(tt.wantCode), resp.Code)
			assert.NotEmpty(t, resp.Err)
		})
	}

	t.Run("malformed body", func(t *testing.T) {
		h, v := newTestHTTP(t, 1<<20)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, signRequest([]byte("{not json")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, int32(errors.ERR_INVALID_ARGUMENT), decodeError(t, rec).Code)
		v.AssertNotCalled(t, "SignWithdrawal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("body too large", func(t *testing.T) {
		h, v := newTestHTTP(t, 16)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, signRequest([]byte(strings.Repeat(" ", 64)+"{}")))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		v.AssertNotCalled(t, "SignWithdrawal", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, statusForError(errors.NewServiceUnavailableError("s3")))
	assert.Equal(t, http.StatusUnprocessableEntity, statusForError(errors.NewNoMessagesError()))

	// a rejected batch must never read as success or as retry-later
	for _, err := range []error{
		errors.NewDoubleSpendingError("ab"),
		errors.NewMessageNotDispatchedError("ab"),
		errors.NewMessagesNotUnprocessedError(2, 1),
		errors.NewEscrowAmountMismatchError(1000, 950),
		errors.NewNextAnchorNotFoundError(),
	} {
		status := statusForError(err)
		assert.GreaterOrEqual(t, status, 400, err.Error())
		assert.NotEqual(t, http.StatusServiceUnavailable, status, err.Error())
	}
	assert.Equal(t, http.StatusBadRequest, statusForError(errors.NewInvalidArgumentError("x")))
	assert.Equal(t, http.StatusInternalServerError, statusForError(errors.NewProcessingError("x")))
}
