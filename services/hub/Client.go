package hub

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dymensionxyz/kaspa-validator/errors"
	"github.com/dymensionxyz/kaspa-validator/model"
	"github.com/dymensionxyz/kaspa-validator/settings"
	"github.com/dymensionxyz/kaspa-validator/ulogger"
	"github.com/dymensionxyz/kaspa-validator/util"
	"github.com/dymensionxyz/kaspa-validator/util/retry"
	"github.com/ethereum/go-ethereum/common"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"
)

// BlockHeightHeader selects the hub height a gRPC-gateway query is answered at.
const BlockHeightHeader = "x-cosmos-block-height"

// NodeInfoPath answers as long as the hub node's REST gateway is up.
const NodeInfoPath = "/cosmos/base/tendermint/v1beta1/node_info"

// Client talks to the hub over its REST gateway.
type Client struct {
	logger       ulogger.Logger
	baseURL      *url.URL
	httpClient   *http.Client
	retryCount   int
	retryBackoff time.Duration
	limiter      *rate.Limiter
}

func NewClient(logger ulogger.Logger, tSettings *settings.Settings) (*Client, error) {
	if tSettings.Hub.RESTURL == nil {
		return nil, errors.NewConfigurationError("[HubClient] hub_restURL is not set")
	}

	initPrometheusMetrics()

	limiter := rate.NewLimiter(rate.Inf, 0)
	if tSettings.Hub.QueriesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(tSettings.Hub.QueriesPerSecond), max(tSettings.Hub.QueryBurst, 1))
	}

	return &Client{
		logger:       logger,
		baseURL:      tSettings.Hub.RESTURL,
		httpClient:   &http.Client{Timeout: tSettings.Hub.Timeout},
		retryCount:   tSettings.Hub.RetryCount,
		retryBackoff: tSettings.Hub.RetryBackoff,
		limiter:      limiter,
	}, nil
}

type deliveredResponse struct {
	Delivered *bool `json:"delivered"`
}

type outpointResponse struct {
	TransactionID string `json:"transaction_id"`
	Index         uint32 `json:"index"`
}

type withdrawalStatusResponse struct {
	Status   []WithdrawalStatus `json:"status"`
	Outpoint *outpointResponse  `json:"outpoint"`
}

func (c *Client) Delivered(ctx context.Context, mailboxID string, messageID common.Hash) (bool, error) {
	u := c.baseURL.JoinPath("hyperlane", "v1", "mailboxes", mailboxID, "delivered", model.MessageIDHex(messageID))

	body, err := c.get(ctx, "delivered", u, nil)
	if err != nil {
		return false, err
	}

	var resp deliveredResponse
	if err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &resp); err != nil {
		return false, errors.NewNetworkInvalidResponseError("[HubClient] failed to decode delivered response", err)
	}

	if resp.Delivered == nil {
		return false, errors.NewNetworkInvalidResponseError("[HubClient] delivered response for %s has no delivered field", model.MessageIDHex(messageID))
	}

	return *resp.Delivered, nil
}

func (c *Client) WithdrawalStatus(ctx context.Context, ids []common.Hash, height *uint64) (*WithdrawalStatusResponse, error) {
	u := c.baseURL.JoinPath("dymensionxyz", "dymension", "kas", "withdrawal_status")

	q := url.Values{}
	for _, id := range ids {
		q.Add("withdrawal_id", id.Hex())
	}

	u.RawQuery = q.Encode()

	var headers map[string]string
	if height != nil {
		headers = map[string]string{BlockHeightHeader: strconv.FormatUint(*height, 10)}
	}

	body, err := c.get(ctx, "withdrawal_status", u, headers)
	if err != nil {
		return nil, err
	}

	var resp withdrawalStatusResponse
	if err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &resp); err != nil {
		return nil, errors.NewNetworkInvalidResponseError("[HubClient] failed to decode withdrawal status response", err)
	}

	result := &WithdrawalStatusResponse{
		Statuses: resp.Status,
	}

	if resp.Outpoint != nil {
		txID, err := decodeGatewayBytes(resp.Outpoint.TransactionID)
		if err != nil {
			return nil, errors.NewNetworkInvalidResponseError("[HubClient] invalid outpoint transaction id %q", resp.Outpoint.TransactionID, err)
		}

		id, err := model.NewTxIDFromBytes(txID)
		if err != nil {
			return nil, errors.NewNetworkInvalidResponseError("[HubClient] invalid outpoint transaction id", err)
		}

		outpoint := model.NewOutpoint(id, resp.Outpoint.Index)
		result.Outpoint = &outpoint
	}

	return result, nil
}

func (c *Client) get(ctx context.Context, endpoint string, u *url.URL, headers map[string]string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		prometheusHubQueries.WithLabelValues(endpoint, "rate_limited").Inc()
		return nil, errors.NewContextCanceledError("[HubClient] %s query rate limited", endpoint, err)
	}

	start := time.Now()

	body, err := retry.Retry(ctx, c.logger, func() ([]byte, error) {
		return util.DoHTTPRequest(ctx, c.httpClient, util.HTTPRequest{URL: u.String(), Headers: headers})
	},
		retry.WithRetryCount(c.retryCount),
		retry.WithBackoffMultiplier(2),
		retry.WithBackoffDurationType(c.retryBackoff),
		retry.WithShouldRetry(errors.IsRetryableError),
		retry.WithMessage("[HubClient] "+endpoint+" query failed, retrying"),
	)

	prometheusHubQueryDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		prometheusHubQueries.WithLabelValues(endpoint, errors.GetErrorCategory(err)).Inc()

		if errors.IsContextError(err) {
			return nil, errors.NewContextCanceledError("[HubClient] %s query cancelled", endpoint, err)
		}

		return nil, err
	}

	prometheusHubQueries.WithLabelValues(endpoint, "ok").Inc()

	return body, nil
}

// decodeGatewayBytes decodes a bytes field rendered by the gRPC gateway, which uses standard base64.
// Hex is accepted too, since some gateways are configured to emit it.
func decodeGatewayBytes(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || (len(s) == 2*model.TxIDLength && isHex(s)) {
		return model.NewHexBytesFromString(s)
	}

	return base64.StdEncoding.DecodeString(s)
}

func isHex(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}

	return true
}
