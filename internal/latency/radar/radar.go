package radar

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/hemant838/goquant-assignment/internal/latency"
	"github.com/sony/gobreaker"
)

// DefaultBaseURL is the Cloudflare Radar API root.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4/radar"

// cacheTTL bounds upstream call volume per country code.
const cacheTTL = 60 * time.Second

// Client implements latency.Gateway against the Cloudflare Radar
// network-quality API.
//
// Lookups are keyed by the ORIGIN site's country only; the destination
// is accepted but deliberately unused, so Fetch(A, B) and Fetch(A, C)
// can return the same upstream figure. Radar reports regional internet
// quality, not path quality, and callers must not assume
// destination-sensitivity.
type Client struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker

	mu    sync.Mutex
	cache map[string]cachedLatency
}

type cachedLatency struct {
	latency int
	expires time.Time
}

// NewClient creates a Radar client. apiKey may be empty; some Radar
// endpoints accept unauthenticated requests. baseURL falls back to
// DefaultBaseURL when empty.
func NewClient(client *http.Client, apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "cloudflare-radar",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		name:    "cloudflare-radar",
		apiKey:  apiKey,
		baseURL: baseURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      2,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
		cache:   make(map[string]cachedLatency),
	}
}

func (c *Client) Name() string {
	return c.name
}

// Fetch resolves a latency figure for the origin site's country. Every
// failure path resolves to latency.ErrUnavailable; nothing else escapes
// this boundary.
func (c *Client) Fetch(ctx context.Context, from, to latency.Site) (latency.Data, error) {
	code := latency.CountryCode(from.CountryName())

	if ms, ok := c.cached(code); ok {
		return c.data(from, to, ms), nil
	}

	ms, ok := c.fetchSpeedSummary(ctx, code)
	if !ok {
		ms, ok = c.fetchIQISeries(ctx, code)
	}
	if !ok {
		return latency.Data{}, fmt.Errorf("%w: no usable figure for %s", latency.ErrUnavailable, code)
	}

	c.store(code, ms)
	return c.data(from, to, ms), nil
}

func (c *Client) data(from, to latency.Site, ms int) latency.Data {
	return latency.Data{
		From:      from.SiteID(),
		To:        to.SiteID(),
		Latency:   ms,
		Timestamp: time.Now().UnixMilli(),
		Source:    latency.SourceRadar,
	}
}

func (c *Client) cached(code string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.cache[code]
	if !ok || time.Now().After(entry.expires) {
		return 0, false
	}
	return entry.latency, true
}

func (c *Client) store(code string, ms int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[code] = cachedLatency{latency: ms, expires: time.Now().Add(cacheTTL)}
}

// fetchSpeedSummary queries the speed-test summary endpoint. The
// latency field may be a scalar or a percentile object; both are
// handled by an explicit parser.
func (c *Client) fetchSpeedSummary(ctx context.Context, code string) (int, bool) {
	resp, err := c.get(ctx, "/quality/speed/summary", url.Values{"location": {code}})
	if err != nil {
		return 0, false
	}
	defer resp.Body.Close()

	var payload struct {
		Result struct {
			Latency json.RawMessage `json:"latency"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, false
	}

	return parseLatencyField(payload.Result.Latency)
}

// fetchIQISeries queries the internet-quality time series and takes the
// most recent sample.
func (c *Client) fetchIQISeries(ctx context.Context, code string) (int, bool) {
	resp, err := c.get(ctx, "/quality/iqi/timeseries_groups", url.Values{
		"location": {code},
		"metric":   {"latency"},
	})
	if err != nil {
		return 0, false
	}
	defer resp.Body.Close()

	var payload struct {
		Result struct {
			Timeseries []struct {
				Value json.Number `json:"value"`
			} `json:"timeseries"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, false
	}

	series := payload.Result.Timeseries
	if len(series) == 0 {
		return 0, false
	}

	v, err := series[len(series)-1].Value.Float64()
	if err != nil {
		return 0, false
	}
	return roundLatency(v)
}

func (c *Client) get(ctx context.Context, path string, values url.Values) (*http.Response, error) {
	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}

		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}
		return req, nil
	}

	return doRequestWithResilience(ctx, c.httpCfg, c.circuit, buildRequest)
}

// parseLatencyField accepts either a bare number or a percentile object,
// preferring p50, then median, then mean. Anything else is an explicit
// "unparseable" outcome, never a silent zero.
func parseLatencyField(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}

	var scalar float64
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return roundLatency(scalar)
	}

	var percentiles struct {
		P50    *float64 `json:"p50"`
		Median *float64 `json:"median"`
		Mean   *float64 `json:"mean"`
	}
	if err := json.Unmarshal(raw, &percentiles); err != nil {
		return 0, false
	}

	for _, v := range []*float64{percentiles.P50, percentiles.Median, percentiles.Mean} {
		if v != nil {
			return roundLatency(*v)
		}
	}
	return 0, false
}

func roundLatency(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return int(math.Round(v)), true
}
