package llm

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stateanchor/stateanchor/internal/model"
)

// fakeProvider returns a canned response or error.
type fakeProvider struct {
	resp *Response
	err  error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Reflect(_ context.Context, _ Request) (*Response, error) {
	return f.resp, f.err
}

func (f *fakeProvider) IsAvailable(_ context.Context) bool { return true }

func testPack() []model.Fact {
	return []model.Fact{
		{ID: "F001", SourceURLs: []string{"https://www.canada.ca/one"}},
		{ID: "F002", SourceURLs: []string{"https://www.canada.ca/two"}},
		{ID: "F003", SourceURLs: []string{"https://www.canada.ca/three", "https://www.canada.ca/three-b"}},
		{ID: "F101", SourceURLs: []string{"https://data.worldbank.org/indicator/SP.DYN.LE00.IN?locations=CA-US"}},
		{ID: "F108", SourceURLs: []string{"https://data.worldbank.org/indicator/FP.CPI.TOTL.ZG?locations=CA-AR"}},
	}
}

func newTestReflector(p Provider) *Reflector {
	return &Reflector{provider: p, cfg: model.LLMConfig{MaxWords: 550, StrictEvidence: true}}
}

func TestGenerate_ExtractsCitationsAndAppendsLinks(t *testing.T) {
	raw := "Canada does well on life expectancy [F101].\n\nHealthcare is universal [F001]. Again life expectancy [F101]."
	r := newTestReflector(&fakeProvider{resp: &Response{Text: raw, Model: "m1", TokensUsed: 42}})

	out, err := r.Generate(context.Background(), "prompt", testPack())
	require.NoError(t, err)

	assert.Equal(t, []string{"F101", "F001"}, out.CitedIDs)
	assert.Equal(t, "fake", out.Provider)
	assert.Equal(t, "m1", out.Model)
	assert.Equal(t, 42, out.TokensUsed)
	assert.Empty(t, out.Warnings)

	assert.Contains(t, out.Text, "**Verification links (auto-added):**")
	assert.Contains(t, out.Text, "- F101: https://data.worldbank.org/indicator/SP.DYN.LE00.IN?locations=CA-US")
	assert.Contains(t, out.Text, "- F001: https://www.canada.ca/one")
	assert.NotContains(t, out.Text, "- F002:")
}

func TestGenerate_StrictEvidenceWarnsOnStrayIDs(t *testing.T) {
	raw := "A made-up citation [F999] and a real one [F002]."
	r := newTestReflector(&fakeProvider{resp: &Response{Text: raw}})

	out, err := r.Generate(context.Background(), "prompt", testPack())
	require.NoError(t, err)

	assert.Equal(t, []string{"F002"}, out.CitedIDs)
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "F999")
}

func TestGenerate_NoWarningsWhenStrictOff(t *testing.T) {
	raw := "A made-up citation [F999]."
	r := &Reflector{
		provider: &fakeProvider{resp: &Response{Text: raw}},
		cfg:      model.LLMConfig{MaxWords: 550},
	}

	out, err := r.Generate(context.Background(), "prompt", testPack())
	require.NoError(t, err)
	assert.Empty(t, out.Warnings)
}

func TestGenerate_EmptyTextIsError(t *testing.T) {
	r := newTestReflector(&fakeProvider{resp: &Response{Text: ""}})
	_, err := r.Generate(context.Background(), "prompt", testPack())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty reflection content")
}

func TestGenerate_ProviderErrorIsWrapped(t *testing.T) {
	r := newTestReflector(&fakeProvider{err: fmt.Errorf("rate limited")})
	_, err := r.Generate(context.Background(), "prompt", testPack())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate reflection")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestGenerate_FirstFourFallbackWhenNothingCited(t *testing.T) {
	raw := "No citations here at all."
	r := newTestReflector(&fakeProvider{resp: &Response{Text: raw}})

	out, err := r.Generate(context.Background(), "prompt", testPack())
	require.NoError(t, err)

	assert.Empty(t, out.CitedIDs)
	assert.Contains(t, out.Text, "- F001:")
	assert.Contains(t, out.Text, "- F002:")
	assert.Contains(t, out.Text, "- F003: https://www.canada.ca/three ; https://www.canada.ca/three-b")
	assert.Contains(t, out.Text, "- F101:")
	assert.NotContains(t, out.Text, "- F108:")
}

func TestTruncateWords_UnderBudgetUntouched(t *testing.T) {
	text := "First paragraph here.\n\nSecond paragraph here."
	assert.Equal(t, text, TruncateWords(text, 550))
}

func TestTruncateWords_DropsParagraphsOverBudget(t *testing.T) {
	first := strings.Repeat("word ", 10)
	second := strings.Repeat("word ", 10)
	text := strings.TrimSpace(first) + "\n\n" + strings.TrimSpace(second)

	out := TruncateWords(text, 15)
	assert.Equal(t, strings.TrimSpace(first), out)
}

func TestTruncateWords_OversizedFirstParagraphHardCut(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 100))
	out := TruncateWords(text, 10)
	assert.Len(t, strings.Fields(out), 10)
}

func TestTruncateWords_SkipsBlankParagraphs(t *testing.T) {
	text := "one two\n\n   \n\nthree four"
	out := TruncateWords(text, 10)
	assert.Equal(t, "one two\n\nthree four", out)
}

func TestExtractCitedIDs(t *testing.T) {
	valid := map[string]bool{"F001": true, "F101": true}
	text := "cites [F001] then [F101] then [F001] again, plus [F777] and a bare F001"

	cited, stray := extractCitedIDs(text, valid)
	assert.Equal(t, []string{"F001", "F101"}, cited)
	assert.Equal(t, []string{"F777"}, stray)
}

func TestExtractCitedIDs_IgnoresMalformed(t *testing.T) {
	valid := map[string]bool{"F001": true}
	cited, stray := extractCitedIDs("[F1] [F0001] [G001] [F001]", valid)
	assert.Equal(t, []string{"F001"}, cited)
	assert.Empty(t, stray)
}
