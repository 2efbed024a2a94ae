// Package worldbank fetches the latest values of World Development Indicators
// for the metric facts in the bank.
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/stateanchor/stateanchor/internal/model"
)

const maxResponseBytes = 1 << 20

// Client queries the World Bank v2 API. Responses are cached in memory for
// the lifetime of the process only; nothing persists between runs.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	cache      *gocache.Cache
	limiter    *rate.Limiter
}

// New creates a Client from configuration.
func New(cfg model.WorldBankConfig, httpCfg model.HTTPConfig) *Client {
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent: httpCfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: newProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		cache:   gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		limiter: rate.NewLimiter(rate.Limit(cfg.Rate), burst),
	}
}

// indicatorRow is one entry of the v2 payload's data list.
type indicatorRow struct {
	Country struct {
		ID string `json:"id"`
	} `json:"country"`
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// Latest returns the most recent non-null observation for each requested
// country. It errors on unexpected payload shapes and on countries with no
// data at all; callers fall back to static values in that case.
func (c *Client) Latest(ctx context.Context, indicator string, countries []string) (map[string]model.Observation, error) {
	body, err := c.fetch(ctx, indicator, countries)
	if err != nil {
		return nil, err
	}

	// The v2 JSON payload is a two-element list: paging metadata, then rows
	// ordered newest-first per country.
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode payload for %s: %w", indicator, err)
	}
	if len(payload) < 2 {
		return nil, fmt.Errorf("unexpected World Bank response shape for %s", indicator)
	}
	var rows []indicatorRow
	if err := json.Unmarshal(payload[1], &rows); err != nil {
		return nil, fmt.Errorf("unexpected World Bank response shape for %s: %w", indicator, err)
	}

	needed := make(map[string]bool, len(countries))
	for _, cc := range countries {
		needed[cc] = true
	}

	latest := make(map[string]model.Observation, len(countries))
	for _, row := range rows {
		code := row.Country.ID
		if !needed[code] || row.Value == nil {
			continue
		}
		if _, ok := latest[code]; ok {
			continue
		}
		latest[code] = model.Observation{Year: row.Date, Value: *row.Value}
		if len(latest) == len(countries) {
			break
		}
	}

	var missing []string
	for cc := range needed {
		if _, ok := latest[cc]; !ok {
			missing = append(missing, cc)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("missing latest values for %s: %v", indicator, missing)
	}
	return latest, nil
}

func (c *Client) fetch(ctx context.Context, indicator string, countries []string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/country/%s/indicator/%s?format=json&per_page=400",
		c.baseURL, strings.Join(countries, ";"), indicator)

	if cached, found := c.cache.Get(endpoint); found {
		log.Debug().Str("indicator", indicator).Msg("worldbank cache hit")
		return cached.([]byte), nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", indicator, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", indicator, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	c.cache.Set(endpoint, body, gocache.DefaultExpiration)
	return body, nil
}

// newProxyFunc prefers explicit proxy settings, falling back to the
// environment.
func newProxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}
	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

