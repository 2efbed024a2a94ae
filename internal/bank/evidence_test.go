package bank

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stateanchor/stateanchor/internal/model"
)

func TestRenderEvidence(t *testing.T) {
	focus := ChooseFocus(42)
	pack, err := BuildFactPack(context.Background(), 42, focus, nil)
	require.NoError(t, err)

	text := RenderEvidence(focus, pack)

	assert.Contains(t, text, "Today's focus")
	assert.Contains(t, text, "- Focus categories: (1) "+focus.Categories[0])
	assert.Contains(t, text, "- Contrast emphasis: "+focus.ComparisonLabel+".")
	assert.Contains(t, text, "Verified evidence pack for today")
	assert.Contains(t, text, "Evidence-use rules (non-negotiable):")
	assert.Contains(t, text, "**Sources (Fact IDs):**")

	for _, fact := range pack {
		assert.Contains(t, text, fact.ID+" | Category: "+fact.Category)
		assert.Contains(t, text, "Canada advantage: "+fact.Claim)
		assert.Contains(t, text, "As-of: "+fact.AsOf)
	}

	assert.False(t, strings.HasSuffix(text, "\n"), "rendered evidence has trailing whitespace")
}

func TestRenderEvidence_JoinsMultipleSources(t *testing.T) {
	focus := model.Focus{
		Categories:      []string{"a", "b", "c"},
		ComparisonLabel: "test",
	}
	pack := []model.Fact{{
		ID:         "F001",
		Category:   "a",
		Claim:      "claim",
		Contrast:   "contrast",
		SourceURLs: []string{"https://one.example", "https://two.example"},
		AsOf:       "2025",
	}}

	text := RenderEvidence(focus, pack)
	assert.Contains(t, text, "Source(s): https://one.example ; https://two.example")
}

func TestIDSet(t *testing.T) {
	pack := []model.Fact{{ID: "F001"}, {ID: "F105"}}
	ids := IDSet(pack)
	assert.True(t, ids["F001"])
	assert.True(t, ids["F105"])
	assert.False(t, ids["F002"])
	assert.Len(t, ids, 2)
}

func TestSourceURLs_DedupedFirstSeen(t *testing.T) {
	urls := SourceURLs()
	require.NotEmpty(t, urls)

	seen := map[string]bool{}
	for _, u := range urls {
		assert.False(t, seen[u], "duplicate URL %s", u)
		seen[u] = true
	}

	// Policy sources come first, constructed indicator links after.
	assert.Equal(t, PolicyFacts[0].SourceURLs[0], urls[0])
	assert.Contains(t, urls, "https://data.worldbank.org/indicator/SP.DYN.LE00.IN?locations=CA-US")
}
