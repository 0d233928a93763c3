package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Insights is the auxiliary marketing snapshot shown next to the catalog.
// Nothing in the pricing or checkout core depends on it.
type Insights struct {
	TopSellerIDs       []string  `json:"top_seller_ids"`
	WeeklyForecast     []float64 `json:"weekly_forecast"`
	AverageTicketCents int64     `json:"average_ticket_cents"`
	FetchedAt          time.Time `json:"fetched_at"`
}

// Client polls the metrics provider in the background. Failures only delay
// the next snapshot; callers keep whatever was last fetched, or the
// unavailable state if nothing ever succeeded.
type Client struct {
	url      string
	interval time.Duration
	http     *http.Client
	log      *zap.Logger

	mu     sync.RWMutex
	latest Insights
	loaded bool
}

func NewClient(url string, interval time.Duration, log *zap.Logger) *Client {
	return &Client{
		url:      url,
		interval: interval,
		http:     &http.Client{Timeout: 10 * time.Second},
		log:      log,
	}
}

// Run fetches immediately, then on every tick, until ctx is cancelled. The
// caller launches it in a goroutine and never waits on it.
func (c *Client) Run(ctx context.Context) {
	c.refresh(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) refresh(ctx context.Context) {
	snap, err := c.fetch(ctx)
	if err != nil {
		c.log.Warn("insights fetch failed", zap.Error(err))
		return
	}
	c.mu.Lock()
	c.latest = snap
	c.loaded = true
	c.mu.Unlock()
	c.log.Debug("insights refreshed", zap.Int("top_sellers", len(snap.TopSellerIDs)))
}

func (c *Client) fetch(ctx context.Context) (Insights, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Insights{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Insights{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Insights{}, fmt.Errorf("insights provider returned %d", resp.StatusCode)
	}
	var snap Insights
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return Insights{}, err
	}
	snap.FetchedAt = time.Now()
	return snap, nil
}

// Snapshot returns the latest successful fetch. ok is false until one has
// happened; the display layer then shows its unavailable notice.
func (c *Client) Snapshot() (Insights, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.latest, c.loaded
}
