package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/stateanchor/stateanchor/internal/bank"
	"github.com/stateanchor/stateanchor/internal/model"
)

var (
	factIDRe    = regexp.MustCompile(`\[(F\d{3})\]`)
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
)

// Reflection is the post-processed model output, ready for rendering.
type Reflection struct {
	// Text is the truncated reflection with verification links appended.
	Text string

	// CitedIDs are the pack fact IDs the model cited, in first-seen order.
	CitedIDs []string

	Provider   string
	Model      string
	TokensUsed int

	// Warnings records strict-evidence violations (IDs cited outside the pack).
	Warnings []string
}

// Reflector drives a Provider and enforces the output contract: non-empty
// text, bounded word count, and verifiable citations on every run.
type Reflector struct {
	provider Provider
	cfg      model.LLMConfig
}

// NewReflector creates a Reflector for the configured provider.
func NewReflector(cfg model.LLMConfig) (*Reflector, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return &Reflector{provider: provider, cfg: cfg}, nil
}

// Provider exposes the underlying provider.
func (r *Reflector) Provider() Provider {
	return r.provider
}

// Generate produces the daily reflection for the given prompt and fact pack.
func (r *Reflector) Generate(ctx context.Context, prompt string, pack []model.Fact) (*Reflection, error) {
	resp, err := r.provider.Reflect(ctx, Request{
		Prompt:    prompt,
		MaxTokens: r.cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate reflection: %w", err)
	}
	if resp.Text == "" {
		return nil, fmt.Errorf("model returned empty reflection content")
	}

	maxWords := r.cfg.MaxWords
	if maxWords <= 0 {
		maxWords = 550
	}
	text := TruncateWords(resp.Text, maxWords)

	valid := bank.IDSet(pack)
	cited, stray := extractCitedIDs(text, valid)

	var warnings []string
	if r.cfg.StrictEvidence {
		for _, id := range stray {
			warnings = append(warnings, fmt.Sprintf("model cited %s which is not in today's pack", id))
			log.Warn().Str("fact_id", id).Msg("citation outside the evidence pack")
		}
	}

	text = appendVerificationLinks(text, pack, cited)

	return &Reflection{
		Text:       text,
		CitedIDs:   cited,
		Provider:   r.provider.Name(),
		Model:      resp.Model,
		TokensUsed: resp.TokensUsed,
		Warnings:   warnings,
	}, nil
}

// TruncateWords truncates at paragraph boundaries while preserving formatting
// blocks. A lone oversized first paragraph is hard-cut at the word budget.
func TruncateWords(text string, maxWords int) string {
	paragraphs := paragraphRe.Split(text, -1)
	var result []string
	wordCount := 0
	for _, paragraph := range paragraphs {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		words := strings.Fields(paragraph)
		if wordCount+len(words) <= maxWords {
			result = append(result, paragraph)
			wordCount += len(words)
		} else if wordCount == 0 {
			result = append(result, strings.Join(words[:maxWords], " "))
			break
		} else {
			break
		}
	}
	return strings.Join(result, "\n\n")
}

// extractCitedIDs returns the pack IDs cited in the text in first-seen order,
// plus any cited IDs that are not in the pack.
func extractCitedIDs(text string, valid map[string]bool) (cited, stray []string) {
	seen := make(map[string]bool)
	for _, match := range factIDRe.FindAllStringSubmatch(text, -1) {
		id := match[1]
		if seen[id] {
			continue
		}
		seen[id] = true
		if valid[id] {
			cited = append(cited, id)
		} else {
			stray = append(stray, id)
		}
	}
	return cited, stray
}

// appendVerificationLinks always appends compact source links so every run has
// verifiable references, even if the model forgets the sources block.
func appendVerificationLinks(reflection string, pack []model.Fact, cited []string) string {
	if len(cited) == 0 {
		for i, f := range pack {
			if i >= 4 {
				break
			}
			cited = append(cited, f.ID)
		}
	}

	byID := make(map[string]model.Fact, len(pack))
	for _, f := range pack {
		byID[f.ID] = f
	}

	lines := []string{"**Verification links (auto-added):**", ""}
	for _, id := range cited {
		fact, ok := byID[id]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s", id, strings.Join(fact.SourceURLs, " ; ")))
	}
	return strings.TrimRight(reflection, " \t\n") + "\n\n" + strings.Join(lines, "\n")
}
