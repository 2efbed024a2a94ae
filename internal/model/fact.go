package model

// Fact is a fully resolved, source-backed claim ready for the evidence pack.
// Facts are immutable per run; nothing about them persists between invocations.
type Fact struct {
	ID         string   `json:"id"`          // Stable identifier, e.g. "F003"
	Category   string   `json:"category"`    // One of bank.Categories
	Tags       []string `json:"tags"`        // Selection tags (comparison profiles match on these)
	Claim      string   `json:"claim"`       // The Canada advantage statement
	Contrast   string   `json:"contrast"`    // Contrasting context for the comparison
	SourceName string   `json:"source_name"` // Human-readable source label
	SourceURLs []string `json:"source_urls"` // Verification links
	AsOf       string   `json:"as_of"`       // As-of label, e.g. "2024" or "Current"
}

// HasTag reports whether the fact carries any of the given tags.
func (f Fact) HasTag(tags ...string) bool {
	for _, want := range tags {
		for _, have := range f.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// PolicyFact is a hand-authored blueprint. It resolves to a Fact verbatim.
type PolicyFact struct {
	ID         string
	Category   string
	Tags       []string
	Claim      string
	Contrast   string
	SourceName string
	SourceURLs []string
	AsOf       string
}

// Resolve converts the blueprint into a Fact.
func (p PolicyFact) Resolve() Fact {
	return Fact{
		ID:         p.ID,
		Category:   p.Category,
		Tags:       p.Tags,
		Claim:      p.Claim,
		Contrast:   p.Contrast,
		SourceName: p.SourceName,
		SourceURLs: p.SourceURLs,
		AsOf:       p.AsOf,
	}
}

// Observation is a single (year, value) data point for one country.
type Observation struct {
	Year  string  `json:"year"`
	Value float64 `json:"value"`
}

// MetricFact is a blueprint for a cross-country indicator comparison. It is
// resolved at runtime by merging a live World Bank lookup (or the hardcoded
// fallback pair) into a sentence template.
type MetricFact struct {
	ID             string
	Category       string
	Tags           []string
	Indicator      string // World Bank indicator code, e.g. "SP.DYN.LE00.IN"
	IndicatorName  string
	CompareCountry string // ISO-2 country code of the comparison country
	HigherIsBetter bool
	Decimals       int
	SourceName     string
	Fallback       map[string]Observation // Country code -> static fallback point
}

// Focus is the day-of-year-derived selection bias: three categories plus one
// comparison profile.
type Focus struct {
	Categories      []string `json:"categories"`
	ComparisonLabel string   `json:"comparison_label"`
	ComparisonTags  []string `json:"comparison_tags"`
}
