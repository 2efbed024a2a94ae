package verify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stateanchor/stateanchor/internal/model"
)

func newTestChecker() *Checker {
	return NewChecker(model.VerifyConfig{
		Workers: 4,
		Timeout: 5 * time.Second,
		Rate:    100,
		Burst:   10,
	}, model.HTTPConfig{UserAgent: "stateanchor-test/0.0"})
}

func TestCheck_AccessibleWithTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><head><title>  Canada Health Act  </title></head><body>ok</body></html>"))
	}))
	defer server.Close()

	results := newTestChecker().Check(context.Background(), []string{server.URL + "/page"})
	require.Len(t, results, 1)

	r := results[0]
	assert.True(t, r.Accessible)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, "Canada Health Act", r.Title)
	assert.False(t, r.Skipped)
	assert.Empty(t, r.Error)
}

func TestCheck_DeadLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	results := newTestChecker().Check(context.Background(), []string{server.URL + "/gone"})
	require.Len(t, results, 1)

	assert.False(t, results[0].Accessible)
	assert.Equal(t, http.StatusNotFound, results[0].StatusCode)
	assert.Empty(t, results[0].Title)
}

func TestCheck_RobotsDisallow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		_, _ = w.Write([]byte("should not be fetched"))
	}))
	defer server.Close()

	results := newTestChecker().Check(context.Background(), []string{
		server.URL + "/private/report",
		server.URL + "/public/report",
	})
	require.Len(t, results, 2)

	assert.True(t, results[0].Skipped)
	assert.False(t, results[0].Accessible)
	assert.False(t, results[1].Skipped)
	assert.True(t, results[1].Accessible)
}

func TestCheck_KeepsInputOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/slow") {
			time.Sleep(50 * time.Millisecond)
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	urls := []string{
		server.URL + "/slow/1",
		server.URL + "/fast/2",
		server.URL + "/slow/3",
		server.URL + "/fast/4",
	}
	results := newTestChecker().Check(context.Background(), urls)
	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, urls[i], r.URL, "result %d out of order", i)
	}
}

func TestCheck_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	deadURL := server.URL + "/page"
	server.Close()

	results := newTestChecker().Check(context.Background(), []string{deadURL})
	require.Len(t, results, 1)
	assert.False(t, results[0].Accessible)
	assert.NotEmpty(t, results[0].Error)
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Hello", extractTitle(strings.NewReader("<html><head><title>Hello</title></head></html>")))
	assert.Equal(t, "", extractTitle(strings.NewReader("<html><body>no title</body></html>")))
	assert.Equal(t, "", extractTitle(strings.NewReader("")))
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Accessible: true, Authority: TierPrimary},
		{Accessible: true, Authority: TierSecondary},
		{Accessible: false},
		{Skipped: true, Authority: TierPrimary},
	}
	s := Summarize(results, 2*time.Second)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Accessible)
	assert.Equal(t, 1, s.Dead)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 2, s.Primary)
	assert.Equal(t, 2*time.Second, s.Elapsed)
}
