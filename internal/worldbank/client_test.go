package worldbank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stateanchor/stateanchor/internal/model"
)

const samplePayload = `[
  {"page": 1, "pages": 1, "per_page": 400, "total": 6},
  [
    {"indicator": {"id": "SP.DYN.LE00.IN"}, "country": {"id": "CA"}, "date": "2024", "value": null},
    {"indicator": {"id": "SP.DYN.LE00.IN"}, "country": {"id": "CA"}, "date": "2023", "value": 81.6},
    {"indicator": {"id": "SP.DYN.LE00.IN"}, "country": {"id": "CA"}, "date": "2022", "value": 81.3},
    {"indicator": {"id": "SP.DYN.LE00.IN"}, "country": {"id": "US"}, "date": "2024", "value": null},
    {"indicator": {"id": "SP.DYN.LE00.IN"}, "country": {"id": "US"}, "date": "2023", "value": 78.4},
    {"indicator": {"id": "SP.DYN.LE00.IN"}, "country": {"id": "US"}, "date": "2022", "value": 77.5}
  ]
]`

func newTestClient(baseURL string) *Client {
	return New(model.WorldBankConfig{
		BaseURL:  baseURL,
		Timeout:  5 * time.Second,
		CacheTTL: time.Minute,
		Rate:     100,
		Burst:    10,
	}, model.HTTPConfig{UserAgent: "stateanchor-test/0.0"})
}

func TestLatest_SkipsNullsAndTakesNewest(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/country/CA;US/indicator/SP.DYN.LE00.IN", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "stateanchor-test/0.0", r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	latest, err := client.Latest(context.Background(), "SP.DYN.LE00.IN", []string{"CA", "US"})
	require.NoError(t, err)

	assert.Equal(t, model.Observation{Year: "2023", Value: 81.6}, latest["CA"])
	assert.Equal(t, model.Observation{Year: "2023", Value: 78.4}, latest["US"])
	assert.Equal(t, 1, requests)
}

func TestLatest_CacheAvoidsSecondRequest(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Latest(context.Background(), "SP.DYN.LE00.IN", []string{"CA", "US"})
	require.NoError(t, err)
	_, err = client.Latest(context.Background(), "SP.DYN.LE00.IN", []string{"CA", "US"})
	require.NoError(t, err)

	assert.Equal(t, 1, requests)
}

func TestLatest_MissingCountry(t *testing.T) {
	payload := `[
  {"page": 1},
  [{"country": {"id": "CA"}, "date": "2023", "value": 81.6}]
]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Latest(context.Background(), "SP.DYN.LE00.IN", []string{"CA", "US"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing latest values for SP.DYN.LE00.IN: [US]")
}

func TestLatest_AllNullValues(t *testing.T) {
	payload := `[
  {"page": 1},
  [{"country": {"id": "CA"}, "date": "2023", "value": null}]
]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Latest(context.Background(), "SP.DYN.LE00.IN", []string{"CA"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing latest values")
}

func TestLatest_UnexpectedShape(t *testing.T) {
	cases := map[string]string{
		"error object":   `{"message": "Invalid format"}`,
		"single element": `[{"page": 1}]`,
		"rows not list":  `[{"page": 1}, {"oops": true}]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(payload))
			}))
			defer server.Close()

			client := newTestClient(server.URL)
			_, err := client.Latest(context.Background(), "SP.DYN.LE00.IN", []string{"CA"})
			require.Error(t, err)
		})
	}
}

func TestLatest_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Latest(context.Background(), "SP.DYN.LE00.IN", []string{"CA"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}
