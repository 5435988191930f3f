package hub

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
)

type deliveredKey struct {
	mailboxID string
	messageID common.Hash
}

// CachedClient remembers positive Delivered answers. Dispatch on the hub is permanent, so a true
// answer can be reused; false answers and errors always go back to the hub. Withdrawal status is
// never cached since it changes with every settled batch.
type CachedClient struct {
	client    ClientI
	delivered *ttlcache.Cache[deliveredKey, struct{}]
}

func NewCachedClient(client ClientI, ttl time.Duration) *CachedClient {
	initPrometheusMetrics()

	return &CachedClient{
		client: client,
		delivered: ttlcache.New[deliveredKey, struct{}](
			ttlcache.WithTTL[deliveredKey, struct{}](ttl),
			ttlcache.WithDisableTouchOnHit[deliveredKey, struct{}](),
		),
	}
}

// Start runs the expiry loop until Stop is called.
func (c *CachedClient) Start() {
	go c.delivered.Start()
}

func (c *CachedClient) Stop() {
	c.delivered.Stop()
}

func (c *CachedClient) Delivered(ctx context.Context, mailboxID string, messageID common.Hash) (bool, error) {
	key := deliveredKey{mailboxID: mailboxID, messageID: messageID}

	if item := c.delivered.Get(key); item != nil && !item.IsExpired() {
		prometheusDeliveredCacheHits.Inc()
		return true, nil
	}

	prometheusDeliveredCacheMiss.Inc()

	delivered, err := c.client.Delivered(ctx, mailboxID, messageID)
	if err != nil {
		return false, err
	}

	if delivered {
		c.delivered.Set(key, struct{}{}, ttlcache.DefaultTTL)
	}

	return delivered, nil
}

func (c *CachedClient) WithdrawalStatus(ctx context.Context, ids []common.Hash, height *uint64) (*WithdrawalStatusResponse, error) {
	return c.client.WithdrawalStatus(ctx, ids, height)
}

func (c *CachedClient) Len() int {
	return c.delivered.Len()
}
