// Package pipeline orchestrates one daily invocation: focus, fact pack,
// prompt, reflection, HTML, delivery.
package pipeline

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/stateanchor/stateanchor/internal/bank"
	"github.com/stateanchor/stateanchor/internal/llm"
	"github.com/stateanchor/stateanchor/internal/mailer"
	"github.com/stateanchor/stateanchor/internal/model"
	"github.com/stateanchor/stateanchor/internal/render"
	"github.com/stateanchor/stateanchor/internal/worldbank"
)

//go:embed prompt.txt
var defaultPrompt string

// Pipeline wires the run's components together.
type Pipeline struct {
	cfg       *model.Config
	resolver  bank.MetricResolver
	reflector *llm.Reflector
}

// New creates a Pipeline from configuration.
func New(cfg *model.Config) (*Pipeline, error) {
	reflector, err := llm.NewReflector(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}
	return &Pipeline{
		cfg:       cfg,
		resolver:  worldbank.New(cfg.WorldBank, cfg.HTTP),
		reflector: reflector,
	}, nil
}

// Result is everything one invocation produces before delivery.
type Result struct {
	DayOfYear  int
	Focus      model.Focus
	Pack       []model.Fact
	Prompt     string
	Reflection *llm.Reflection
	HTML       string
}

// Run assembles the daily reflection for the given time. The date alone
// determines the focus and pack; the World Bank lookup is best-effort.
func (p *Pipeline) Run(ctx context.Context, now time.Time) (*Result, error) {
	day := now.UTC().YearDay()
	focus := bank.ChooseFocus(day)
	log.Info().Int("day_of_year", day).Strs("categories", focus.Categories).Msg("daily focus chosen")

	pack, err := bank.BuildFactPack(ctx, day, focus, p.resolver)
	if err != nil {
		return nil, fmt.Errorf("build fact pack: %w", err)
	}
	log.Info().Int("facts", len(pack)).Msg("fact pack resolved")

	prompt, err := p.loadPrompt()
	if err != nil {
		return nil, err
	}
	prompt = prompt + "\n\n" + bank.RenderEvidence(focus, pack)

	reflection, err := p.reflector.Generate(ctx, prompt, pack)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("provider", reflection.Provider).
		Str("model", reflection.Model).
		Int("tokens", reflection.TokensUsed).
		Int("cited", len(reflection.CitedIDs)).
		Msg("reflection generated")

	htmlBody, err := render.Email(reflection.Text)
	if err != nil {
		return nil, err
	}

	return &Result{
		DayOfYear:  day,
		Focus:      focus,
		Pack:       pack,
		Prompt:     prompt,
		Reflection: reflection,
		HTML:       htmlBody,
	}, nil
}

// Deliver sends the rendered reflection by email.
func (p *Pipeline) Deliver(result *Result) error {
	m, err := mailer.New(p.cfg.Mail)
	if err != nil {
		return err
	}
	return m.Send(result.HTML)
}

// loadPrompt returns the base prompt: the configured file if set, otherwise
// the embedded default.
func (p *Pipeline) loadPrompt() (string, error) {
	if p.cfg.LLM.PromptFile == "" {
		return strings.TrimSpace(defaultPrompt), nil
	}
	data, err := os.ReadFile(p.cfg.LLM.PromptFile)
	if err != nil {
		return "", fmt.Errorf("read prompt file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
