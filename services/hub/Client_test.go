package hub

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHubURL  = "http://hub.test:1317"
	testMailbox = "0x68797065726c616e650000000000000000000000000000000000000000000000"
)

func newTestClient(t *testing.T, opts ...func(*settings.HubSettings)) *Client {
	t.Helper()

	u, err := url.Parse(testHubURL)
	require.NoError(t, err)

	tSettings := &settings.Settings{
		Hub: settings.HubSettings{
			RESTURL:      u,
			Timeout:      time.Second,
			RetryCount:   3,
			RetryBackoff: time.Millisecond,
		},
	}

	for _, opt := range opts {
		opt(&tSettings.Hub)
	}

	c, err := NewClient(ulogger.TestLogger{}, tSettings)
	require.NoError(t, err)

	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)

	return c
}

func deliveredURL(id common.Hash) string {
	return testHubURL + "/hyperlane/v1/mailboxes/" + testMailbox + "/delivered/" + model.MessageIDHex(id)
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(ulogger.TestLogger{}, &settings.Settings{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConfiguration))
}

func TestClient_Delivered(t *testing.T) {
	id := common.HexToHash("0x01")

	tests := []struct {
		name      string
		status    int
		body      string
		want      bool
		wantErr   bool
		retryable bool
	}{
		{name: "delivered", status: 200, body: `{"delivered":true}`, want: true},
		{name: "not delivered", status: 200, body: `{"delivered":false}`, want: false},
		{name: "missing field", status: 200, body: `{}`, wantErr: true},
		{name: "malformed", status: 200, body: `{"delivered":`, wantErr: true},
		{name: "server error", status: 500, body: `oops`, wantErr: true, retryable: true},
		{name: "bad request", status: 400, body: `bad`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t)

			httpmock.RegisterResponder(http.MethodGet, deliveredURL(id), httpmock.NewStringResponder(tt.status, tt.body))

			delivered, err := c.Delivered(context.Background(), testMailbox, id)
			if tt.wantErr {
				require.Error(t, err)
				assert.False(t, delivered)
				assert.Equal(t, tt.retryable, errors.IsRetryableError(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, delivered)
		})
	}
}

func TestClient_DeliveredPathIsBareHex(t *testing.T) {
	c := newTestClient(t)

	id := common.HexToHash("0xab")
	path := testHubURL + "/hyperlane/v1/mailboxes/" + testMailbox +
		"/delivered/00000000000000000000000000000000000000000000000000000000000000ab"

	httpmock.RegisterResponder(http.MethodGet, path, httpmock.NewStringResponder(200, `{"delivered":true}`))

	delivered, err := c.Delivered(context.Background(), testMailbox, id)
	require.NoError(t, err)
	assert.True(t, delivered)
	assert.Equal(t, 1, httpmock.GetCallCountInfo()["GET "+path])
}

func TestClient_RateLimit(t *testing.T) {
	c := newTestClient(t, func(h *settings.HubSettings) {
		h.QueriesPerSecond = 1
		h.QueryBurst = 1
	})

	id := common.HexToHash("0x01")
	httpmock.RegisterResponder(http.MethodGet, deliveredURL(id), httpmock.NewStringResponder(200, `{"delivered":true}`))

	_, err := c.Delivered(context.Background(), testMailbox, id)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.Delivered(ctx, testMailbox, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrContextCanceled))
	assert.False(t, errors.IsRetryableError(err))
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestClient_DeliveredRetries(t *testing.T) {
	c := newTestClient(t)
	id := common.HexToHash("0x02")

	calls := 0

	httpmock.RegisterResponder(http.MethodGet, deliveredURL(id), func(req *http.Request) (*http.Response, error) {
		calls++
		if calls < 3 {
			return httpmock.NewStringResponse(503, "busy"), nil
		}

		return httpmock.NewStringResponse(200, `{"delivered":true}`), nil
	})

	delivered, err := c.Delivered(context.Background(), testMailbox, id)
	require.NoError(t, err)
	assert.True(t, delivered)
	assert.Equal(t, 3, calls)
}

func TestClient_DeliveredNoRetryOnClientError(t *testing.T) {
	c := newTestClient(t)
	id := common.HexToHash("0x03")

	httpmock.RegisterResponder(http.MethodGet, deliveredURL(id), httpmock.NewStringResponder(400, "bad"))

	_, err := c.Delivered(context.Background(), testMailbox, id)
	require.Error(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestClient_DeliveredCancelled(t *testing.T) {
	c := newTestClient(t)
	id := common.HexToHash("0x04")

	httpmock.RegisterResponder(http.MethodGet, deliveredURL(id), httpmock.NewStringResponder(200, `{"delivered":true}`))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Delivered(ctx, testMailbox, id)
	require.Error(t, err)
	assert.True(t, errors.IsContextError(err))
}

func TestClient_WithdrawalStatus(t *testing.T) {
	ids := []common.Hash{common.HexToHash("0x01"), common.HexToHash("0x02")}
	txID := make([]byte, 32)
	txID[0] = 0xab

	t.Run("decodes statuses and outpoint", func(t *testing.T) {
		c := newTestClient(t)
		height := uint64(42)

		httpmock.RegisterResponder(http.MethodGet, testHubURL+"/dymensionxyz/dymension/kas/withdrawal_status",
			func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "42", req.Header.Get(BlockHeightHeader))
				assert.Equal(t, []string{ids[0].Hex(), ids[1].Hex()}, req.URL.Query()["withdrawal_id"])

				return httpmock.NewStringResponse(200, `{
					"status": ["WITHDRAWAL_STATUS_UNPROCESSED", "WITHDRAWAL_STATUS_PROCESSED"],
					"outpoint": {"transaction_id": "`+base64.StdEncoding.EncodeToString(txID)+`", "index": 2}
				}`), nil
			})

		resp, err := c.WithdrawalStatus(context.Background(), ids, &height)
		require.NoError(t, err)
		assert.Equal(t, []WithdrawalStatus{WithdrawalStatusUnprocessed, WithdrawalStatusProcessed}, resp.Statuses)
		require.NotNil(t, resp.Outpoint)
		assert.Equal(t, byte(0xab), resp.Outpoint.TransactionID[0])
		assert.Equal(t, uint32(2), resp.Outpoint.Index)
	})

	t.Run("no height header by default", func(t *testing.T) {
		c := newTestClient(t)

		httpmock.RegisterResponder(http.MethodGet, testHubURL+"/dymensionxyz/dymension/kas/withdrawal_status",
			func(req *http.Request) (*http.Response, error) {
				assert.Empty(t, req.Header.Get(BlockHeightHeader))

				return httpmock.NewStringResponse(200, `{"status":[]}`), nil
			})

		resp, err := c.WithdrawalStatus(context.Background(), nil, nil)
		require.NoError(t, err)
		assert.Nil(t, resp.Outpoint)
	})

	t.Run("hex transaction id", func(t *testing.T) {
		c := newTestClient(t)

		httpmock.RegisterResponder(http.MethodGet, testHubURL+"/dymensionxyz/dymension/kas/withdrawal_status",
			httpmock.NewStringResponder(200, `{"status":[],"outpoint":{"transaction_id":"`+strings.Repeat("cd", 32)+`","index":0}}`))

		resp, err := c.WithdrawalStatus(context.Background(), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, byte(0xcd), resp.Outpoint.TransactionID[31])
	})

	t.Run("short transaction id", func(t *testing.T) {
		c := newTestClient(t)

		httpmock.RegisterResponder(http.MethodGet, testHubURL+"/dymensionxyz/dymension/kas/withdrawal_status",
			httpmock.NewStringResponder(200, `{"status":[],"outpoint":{"transaction_id":"AAEC","index":0}}`))

		_, err := c.WithdrawalStatus(context.Background(), nil, nil)
		require.Error(t, err)
	})
}
