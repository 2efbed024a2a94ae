package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		url  string
		want Tier
	}{
		{"https://www.canada.ca/en/services/benefits.html", TierPrimary},
		{"https://laws-lois.justice.gc.ca/eng/acts/C-6/", TierPrimary},
		{"https://www.bankofcanada.ca/core-functions/monetary-policy/", TierPrimary},
		{"https://data.worldbank.org/indicator/SP.DYN.LE00.IN?locations=CA-US", TierPrimary},
		{"https://freedomhouse.org/country/canada", TierSecondary},
		{"https://www.transparency.org/en/cpi/2024", TierSecondary},
		{"https://rsf.org/en/index", TierSecondary},
		{"https://example.com/blog/canada", TierTertiary},
		{"https://notcanada.ca.evil.example/", TierTertiary},
		{"not a url", TierUnknown},
		{"/relative/path", TierUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.url), "url %q", tc.url)
	}
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "primary", TierPrimary.String())
	assert.Equal(t, "secondary", TierSecondary.String())
	assert.Equal(t, "tertiary", TierTertiary.String())
	assert.Equal(t, "unknown", TierUnknown.String())
}
