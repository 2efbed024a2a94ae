package bank

import (
	"context"
	"fmt"
	"strings"

	"github.com/stateanchor/stateanchor/internal/model"
)

// packSize is the target number of facts in a daily pack.
const packSize = 9

// MetricResolver looks up the latest non-null observation per country for a
// World Bank indicator. Implementations may fail freely; resolution falls back
// to the blueprint's static pair.
type MetricResolver interface {
	Latest(ctx context.Context, indicator string, countries []string) (map[string]model.Observation, error)
}

// blueprint is the uniform selection view over both fact tables.
type blueprint struct {
	id       string
	category string
	tags     []string
	policy   *model.PolicyFact
	metric   *model.MetricFact
}

func allBlueprints() []blueprint {
	out := make([]blueprint, 0, len(PolicyFacts)+len(MetricFacts))
	for i := range PolicyFacts {
		p := &PolicyFacts[i]
		out = append(out, blueprint{id: p.ID, category: p.Category, tags: p.Tags, policy: p})
	}
	for i := range MetricFacts {
		m := &MetricFacts[i]
		out = append(out, blueprint{id: m.ID, category: m.Category, tags: m.Tags, metric: m})
	}
	return out
}

// selectBlueprints picks the day's blueprints: four biased toward the focus
// categories, then up to seven total matching the comparison tags, padded to
// the target from the full bank. Order is stable for a given day.
func selectBlueprints(dayOfYear int, focus model.Focus) []blueprint {
	all := allBlueprints()

	focusSet := make(map[string]bool, len(focus.Categories))
	for _, c := range focus.Categories {
		focusSet[c] = true
	}
	tagSet := make(map[string]bool, len(focus.ComparisonTags))
	for _, t := range focus.ComparisonTags {
		tagSet[t] = true
	}

	var byCategory, byComparison []blueprint
	for _, b := range all {
		if focusSet[b.category] {
			byCategory = append(byCategory, b)
		}
		for _, t := range b.tags {
			if tagSet[t] {
				byComparison = append(byComparison, b)
				break
			}
		}
	}

	var selected []blueprint
	seen := make(map[string]bool)
	addFromPool := func(pool []blueprint, desired, seed int) {
		for _, b := range rotate(pool, seed) {
			if seen[b.id] {
				continue
			}
			selected = append(selected, b)
			seen[b.id] = true
			if len(selected) >= desired {
				return
			}
		}
	}

	// Core: 4 from focus categories, then 3 from the comparison profile.
	addFromPool(byCategory, 4, dayOfYear)
	addFromPool(byComparison, 7, dayOfYear+5)
	// Fill remainder from the full bank for breadth.
	addFromPool(all, packSize, dayOfYear+11)
	return selected
}

// BuildFactPack selects and resolves the daily evidence pack. A nil resolver
// resolves every metric blueprint from its fallback pair.
func BuildFactPack(ctx context.Context, dayOfYear int, focus model.Focus, resolver MetricResolver) ([]model.Fact, error) {
	blueprints := selectBlueprints(dayOfYear, focus)
	pack := make([]model.Fact, 0, len(blueprints))
	for _, b := range blueprints {
		if b.metric != nil {
			fact, err := resolveMetric(ctx, *b.metric, resolver)
			if err != nil {
				return nil, err
			}
			pack = append(pack, fact)
			continue
		}
		pack = append(pack, b.policy.Resolve())
	}
	return pack, nil
}

// resolveMetric merges the latest (or fallback) observations into the
// comparison sentence template.
func resolveMetric(ctx context.Context, mf model.MetricFact, resolver MetricResolver) (model.Fact, error) {
	countries := []string{"CA", mf.CompareCountry}

	var latest map[string]model.Observation
	if resolver != nil {
		var err error
		latest, err = resolver.Latest(ctx, mf.Indicator, countries)
		if err != nil {
			// Live lookup is best-effort; the fallback pair keeps the pack total.
			latest = nil
		}
	}

	point := func(code string) (model.Observation, error) {
		if obs, ok := latest[code]; ok {
			return obs, nil
		}
		if obs, ok := mf.Fallback[code]; ok {
			return obs, nil
		}
		return model.Observation{}, fmt.Errorf("metric %s: missing both live and fallback value for %s", mf.ID, code)
	}

	ca, err := point("CA")
	if err != nil {
		return model.Fact{}, err
	}
	cmp, err := point(mf.CompareCountry)
	if err != nil {
		return model.Fact{}, err
	}

	isPercent := strings.Contains(mf.IndicatorName, "(%") || strings.HasSuffix(mf.IndicatorName, "%)")
	caStr := formatValue(ca.Value, mf.Decimals, isPercent)
	cmpStr := formatValue(cmp.Value, mf.Decimals, isPercent)

	cmpName := mf.CompareCountry
	if name, ok := CountryName[mf.CompareCountry]; ok {
		cmpName = name
	}

	var claim, contrast string
	if mf.HigherIsBetter {
		claim = fmt.Sprintf(
			"World Bank latest data shows Canada at %s (%s) on '%s', versus %s in %s (%s).",
			caStr, ca.Year, mf.IndicatorName, cmpStr, cmpName, cmp.Year,
		)
		contrast = fmt.Sprintf(
			"On this measure, Canada is higher than %s, which improves baseline predictability and long-run option value.",
			cmpName,
		)
	} else {
		claim = fmt.Sprintf(
			"World Bank latest data shows Canada at %s (%s) on '%s', compared with %s in %s (%s).",
			caStr, ca.Year, mf.IndicatorName, cmpStr, cmpName, cmp.Year,
		)
		contrast = fmt.Sprintf(
			"On this measure, lower values are preferable; Canada is lower than %s, which reduces structural downside risk.",
			cmpName,
		)
	}

	sourceURL := fmt.Sprintf("https://data.worldbank.org/indicator/%s?locations=CA-%s", mf.Indicator, mf.CompareCountry)

	return model.Fact{
		ID:         mf.ID,
		Category:   mf.Category,
		Tags:       mf.Tags,
		Claim:      claim,
		Contrast:   contrast,
		SourceName: mf.SourceName,
		SourceURLs: []string{sourceURL},
		AsOf:       ca.Year + "/" + cmp.Year,
	}, nil
}

func formatValue(value float64, decimals int, isPercent bool) string {
	num := fmt.Sprintf("%.*f", decimals, value)
	if isPercent {
		return num + "%"
	}
	return num
}
