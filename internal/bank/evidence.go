package bank

import (
	"fmt"
	"strings"

	"github.com/stateanchor/stateanchor/internal/model"
)

// RenderEvidence renders the deterministic daily focus + evidence pack text
// that gets appended to the base prompt. The evidence-use rules are part of
// the contract with the model: every claim it makes must cite a pack ID.
func RenderEvidence(focus model.Focus, pack []model.Fact) string {
	lines := []string{
		"Today's focus (you MUST use this to make the daily output meaningfully different):",
		fmt.Sprintf("- Focus categories: (1) %s (2) %s (3) %s",
			focus.Categories[0], focus.Categories[1], focus.Categories[2]),
		fmt.Sprintf("- Contrast emphasis: %s.", focus.ComparisonLabel),
		"",
		"Verified evidence pack for today (use these IDs for factual claims):",
		"- You may paraphrase, but do not introduce new numeric/ranking claims not grounded in these facts.",
		"",
	}

	for _, fact := range pack {
		lines = append(lines,
			fmt.Sprintf("%s | Category: %s", fact.ID, fact.Category),
			fmt.Sprintf("Canada advantage: %s", fact.Claim),
			fmt.Sprintf("Contrast context: %s", fact.Contrast),
			fmt.Sprintf("Source(s): %s", strings.Join(fact.SourceURLs, " ; ")),
			fmt.Sprintf("As-of: %s", fact.AsOf),
			"",
		)
	}

	lines = append(lines,
		"Evidence-use rules (non-negotiable):",
		"- Use at least 4 different fact IDs from the pack.",
		"- Every numeric, ranking, policy, or country-specific claim must cite a fact ID at sentence end, e.g. [F003].",
		"- If a claim is not in the pack, omit it.",
		"- Include a final section titled **Sources (Fact IDs):** mapping each used ID to URL(s).",
	)
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// IDSet returns the set of fact IDs in the pack.
func IDSet(pack []model.Fact) map[string]bool {
	ids := make(map[string]bool, len(pack))
	for _, f := range pack {
		ids[f.ID] = true
	}
	return ids
}

// SourceURLs returns every source URL in the bank, deduplicated in first-seen
// order. The verify command checks these for citation rot.
func SourceURLs() []string {
	seen := make(map[string]bool)
	var urls []string
	add := func(u string) {
		if !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	for _, p := range PolicyFacts {
		for _, u := range p.SourceURLs {
			add(u)
		}
	}
	for _, m := range MetricFacts {
		add(fmt.Sprintf("https://data.worldbank.org/indicator/%s?locations=CA-%s", m.Indicator, m.CompareCountry))
	}
	return urls
}
