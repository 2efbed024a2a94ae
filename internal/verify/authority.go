package verify

import (
	"net/url"
	"strings"
)

// Tier classifies source authority. The bank's citation rules lean on
// official sources, so the checker surfaces where each link actually sits.
type Tier int

const (
	TierUnknown   Tier = 0
	TierPrimary   Tier = 1 // Legislation, government programs, official statistics
	TierSecondary Tier = 2 // Established indices, research institutes, major publishers
	TierTertiary  Tier = 3 // Everything else
)

func (t Tier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierSecondary:
		return "secondary"
	case TierTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// primaryHosts match official legislation, government, and statistics sources.
var primaryHosts = []string{
	"canada.ca",
	"gc.ca", // laws.justice.gc.ca, laws-lois.justice.gc.ca, ised-isde.canada.ca peers
	"bankofcanada.ca",
	"cdic.ca",
	"worldbank.org",
	"data.worldbank.org",
	"u.ae",
}

// secondaryHosts match the indices and institutes the bank cites.
var secondaryHosts = []string{
	"freedomhouse.org",
	"transparency.org",
	"rsf.org",
	"worldjusticeproject.org",
	"commonwealthfund.org",
	"economicsandpeace.org",
}

// Classify returns the authority tier for a source URL.
func Classify(rawURL string) Tier {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return TierUnknown
	}
	host := strings.ToLower(parsed.Host)

	matches := func(suffixes []string) bool {
		for _, s := range suffixes {
			if host == s || strings.HasSuffix(host, "."+s) {
				return true
			}
		}
		return false
	}

	switch {
	case matches(primaryHosts):
		return TierPrimary
	case matches(secondaryHosts):
		return TierSecondary
	default:
		return TierTertiary
	}
}
