// Package verify checks the fact bank's source URLs for citation rot.
//
// It is adjacent to, not part of, the daily send: the bank is hand-curated,
// and this is the tool that keeps the curation honest.
package verify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/stateanchor/stateanchor/internal/model"
)

const titleReadLimit = 256 << 10

// Result is the outcome of checking one source URL.
type Result struct {
	URL        string `json:"url"`
	Accessible bool   `json:"accessible"`
	StatusCode int    `json:"status_code,omitempty"`
	Title      string `json:"title,omitempty"`
	Authority  Tier   `json:"authority"`
	Skipped    bool   `json:"skipped,omitempty"` // Disallowed by robots.txt
	Error      string `json:"error,omitempty"`
}

// Checker validates source links concurrently, honoring robots.txt and
// per-host rate limits.
type Checker struct {
	httpClient *http.Client
	userAgent  string
	workers    int
	robots     *robotsChecker

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter
	hostRate  rate.Limit
	hostBurst int
}

// NewChecker creates a Checker from configuration.
func NewChecker(cfg model.VerifyConfig, httpCfg model.HTTPConfig) *Checker {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 8
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return &Checker{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: httpCfg.UserAgent,
		workers:   workers,
		robots:    newRobotsChecker(httpCfg.UserAgent, cfg.Timeout),
		limiters:  make(map[string]*rate.Limiter),
		hostRate:  rate.Limit(cfg.Rate),
		hostBurst: burst,
	}
}

// Check validates all URLs concurrently. Results keep input order.
func (c *Checker) Check(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, c.workers)

	for i, u := range urls {
		wg.Add(1)
		go func(idx int, rawURL string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = Result{URL: rawURL, Error: "context cancelled"}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = c.checkOne(ctx, rawURL)
		}(i, u)
	}

	wg.Wait()
	return results
}

func (c *Checker) checkOne(ctx context.Context, rawURL string) Result {
	result := Result{URL: rawURL, Authority: Classify(rawURL)}

	allowed, err := c.robots.canFetch(ctx, rawURL)
	if err != nil {
		result.Error = fmt.Sprintf("robots check: %v", err)
		return result
	}
	if !allowed {
		result.Skipped = true
		log.Debug().Str("url", rawURL).Msg("disallowed by robots.txt")
		return result
	}

	if err := c.waitForHost(ctx, rawURL); err != nil {
		result.Error = fmt.Sprintf("rate limit: %v", err)
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("create request: %v", err)
		return result
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/pdf;q=0.9,*/*;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	result.Accessible = resp.StatusCode >= 200 && resp.StatusCode < 400

	if result.Accessible && strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		result.Title = extractTitle(io.LimitReader(resp.Body, titleReadLimit))
	}
	return result
}

// waitForHost applies the per-host rate limit.
func (c *Checker) waitForHost(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}

	c.limiterMu.Lock()
	limiter, ok := c.limiters[parsed.Host]
	if !ok {
		limiter = rate.NewLimiter(c.hostRate, c.hostBurst)
		c.limiters[parsed.Host] = limiter
	}
	c.limiterMu.Unlock()

	return limiter.Wait(ctx)
}

// extractTitle pulls the <title> text out of an HTML stream.
func extractTitle(r io.Reader) string {
	tokenizer := html.NewTokenizer(r)
	inTitle := false
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			inTitle = string(name) == "title"
		case html.TextToken:
			if inTitle {
				return strings.TrimSpace(string(tokenizer.Text()))
			}
		case html.EndTagToken:
			inTitle = false
		}
	}
}

// Summary aggregates a check run for display.
type Summary struct {
	Total      int
	Accessible int
	Dead       int
	Skipped    int
	Primary    int
	Elapsed    time.Duration
}

// Summarize computes aggregate counts over results.
func Summarize(results []Result, elapsed time.Duration) Summary {
	s := Summary{Total: len(results), Elapsed: elapsed}
	for _, r := range results {
		switch {
		case r.Skipped:
			s.Skipped++
		case r.Accessible:
			s.Accessible++
		default:
			s.Dead++
		}
		if r.Authority == TierPrimary {
			s.Primary++
		}
	}
	return s
}
