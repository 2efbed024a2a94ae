package bank

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stateanchor/stateanchor/internal/model"
)

// stubResolver serves canned observations or a fixed error.
type stubResolver struct {
	data map[string]map[string]model.Observation // indicator -> country -> obs
	err  error
}

func (s *stubResolver) Latest(_ context.Context, indicator string, countries []string) (map[string]model.Observation, error) {
	if s.err != nil {
		return nil, s.err
	}
	byCountry, ok := s.data[indicator]
	if !ok {
		return nil, fmt.Errorf("no data for %s", indicator)
	}
	out := make(map[string]model.Observation)
	for _, cc := range countries {
		if obs, ok := byCountry[cc]; ok {
			out[cc] = obs
		}
	}
	return out, nil
}

func TestBuildFactPack_SizeAndUniqueness(t *testing.T) {
	for day := 1; day <= 366; day++ {
		focus := ChooseFocus(day)
		pack, err := BuildFactPack(context.Background(), day, focus, nil)
		require.NoError(t, err, "day %d", day)
		assert.Len(t, pack, 9, "day %d", day)

		seen := map[string]bool{}
		for _, f := range pack {
			assert.False(t, seen[f.ID], "day %d repeats %s", day, f.ID)
			seen[f.ID] = true
		}
	}
}

func TestBuildFactPack_Deterministic(t *testing.T) {
	focus := ChooseFocus(100)
	a, err := BuildFactPack(context.Background(), 100, focus, nil)
	require.NoError(t, err)
	b, err := BuildFactPack(context.Background(), 100, focus, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildFactPack_FocusBias(t *testing.T) {
	focus := ChooseFocus(33)
	pack, err := BuildFactPack(context.Background(), 33, focus, nil)
	require.NoError(t, err)

	focusSet := map[string]bool{}
	for _, c := range focus.Categories {
		focusSet[c] = true
	}

	// The first selections come from the focus categories (as far as the
	// bank can supply them), then from the comparison profile.
	inFocus := 0
	matchesProfile := 0
	for _, f := range pack {
		if focusSet[f.Category] {
			inFocus++
		}
		if f.HasTag(focus.ComparisonTags...) {
			matchesProfile++
		}
	}
	assert.Greater(t, inFocus+matchesProfile, 0, "pack ignores the daily focus entirely")
}

func TestResolveMetric_FallbackOnError(t *testing.T) {
	mf := MetricFacts[0] // F101, life expectancy vs US
	fact, err := resolveMetric(context.Background(), mf, &stubResolver{err: fmt.Errorf("boom")})
	require.NoError(t, err)

	assert.Equal(t, "F101", fact.ID)
	assert.Contains(t, fact.Claim, "81.6 (2023)")
	assert.Contains(t, fact.Claim, "78.4 in United States (2023)")
	assert.Equal(t, "2023/2023", fact.AsOf)
	assert.Equal(t, []string{"https://data.worldbank.org/indicator/SP.DYN.LE00.IN?locations=CA-US"}, fact.SourceURLs)
}

func TestResolveMetric_LiveValuesWin(t *testing.T) {
	mf := MetricFacts[0]
	resolver := &stubResolver{data: map[string]map[string]model.Observation{
		"SP.DYN.LE00.IN": {
			"CA": {Year: "2024", Value: 81.9},
			"US": {Year: "2024", Value: 78.6},
		},
	}}

	fact, err := resolveMetric(context.Background(), mf, resolver)
	require.NoError(t, err)
	assert.Contains(t, fact.Claim, "81.9 (2024)")
	assert.Contains(t, fact.Claim, "versus 78.6 in United States (2024)")
	assert.Equal(t, "2024/2024", fact.AsOf)
}

func TestResolveMetric_PartialLiveFillsFromFallback(t *testing.T) {
	mf := MetricFacts[0]
	resolver := &stubResolver{data: map[string]map[string]model.Observation{
		"SP.DYN.LE00.IN": {
			"CA": {Year: "2024", Value: 81.9},
			// US missing from the live response
		},
	}}

	fact, err := resolveMetric(context.Background(), mf, resolver)
	require.NoError(t, err)
	assert.Contains(t, fact.Claim, "81.9 (2024)")
	assert.Contains(t, fact.Claim, "78.4 in United States (2023)")
}

func TestResolveMetric_PercentFormatting(t *testing.T) {
	var electricity model.MetricFact
	for _, m := range MetricFacts {
		if m.ID == "F105" {
			electricity = m
		}
	}
	require.NotEmpty(t, electricity.ID)

	fact, err := resolveMetric(context.Background(), electricity, nil)
	require.NoError(t, err)
	assert.Contains(t, fact.Claim, "100.0% (2023)")
	assert.Contains(t, fact.Claim, "62.0% in Zimbabwe (2023)")
}

func TestResolveMetric_LowerIsBetterTemplate(t *testing.T) {
	var inflation model.MetricFact
	for _, m := range MetricFacts {
		if m.ID == "F108" {
			inflation = m
		}
	}
	require.NotEmpty(t, inflation.ID)

	fact, err := resolveMetric(context.Background(), inflation, nil)
	require.NoError(t, err)
	assert.Contains(t, fact.Claim, "compared with 219.9% in Argentina (2024)")
	assert.Contains(t, fact.Contrast, "lower values are preferable")
	assert.Contains(t, fact.Contrast, "Canada is lower than Argentina")
}

func TestResolveMetric_MissingBothIsError(t *testing.T) {
	mf := model.MetricFact{
		ID:             "F999",
		Indicator:      "X",
		IndicatorName:  "X",
		CompareCountry: "US",
	}
	_, err := resolveMetric(context.Background(), mf, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing both live and fallback value")
}

func TestFactTables_IDsUniqueAndCategoriesKnown(t *testing.T) {
	known := map[string]bool{}
	for _, c := range Categories {
		known[c] = true
	}

	seen := map[string]bool{}
	for _, p := range PolicyFacts {
		assert.False(t, seen[p.ID], "duplicate ID %s", p.ID)
		seen[p.ID] = true
		assert.True(t, known[p.Category], "%s has unknown category %q", p.ID, p.Category)
		assert.NotEmpty(t, p.SourceURLs, "%s has no sources", p.ID)
	}
	for _, m := range MetricFacts {
		assert.False(t, seen[m.ID], "duplicate ID %s", m.ID)
		seen[m.ID] = true
		assert.True(t, known[m.Category], "%s has unknown category %q", m.ID, m.Category)
		assert.Contains(t, m.Fallback, "CA", "%s lacks a CA fallback", m.ID)
		assert.Contains(t, m.Fallback, m.CompareCountry, "%s lacks a %s fallback", m.ID, m.CompareCountry)
	}
	assert.Len(t, seen, len(PolicyFacts)+len(MetricFacts))
}
