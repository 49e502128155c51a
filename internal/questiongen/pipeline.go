// Package questiongen produces the question set of an assessment: one batch
// per difficulty tier, generated concurrently and accepted all-or-nothing.
package questiongen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/abhisek/skilleval/internal/gateway"
	"github.com/abhisek/skilleval/internal/llm"
	"github.com/abhisek/skilleval/internal/logger"
	"github.com/abhisek/skilleval/internal/store"
)

// ErrTestGenerationFailed is returned when any tier batch is unavailable,
// malformed or fails validation.
var ErrTestGenerationFailed = errors.New("test generation failed")

// StructuredGenerator is the gateway operation the pipeline needs.
type StructuredGenerator interface {
	Generate(ctx context.Context, call gateway.Call, out any) error
}

// Pipeline generates complete question sets.
type Pipeline struct {
	gen    StructuredGenerator
	config Config
	log    *logger.Logger
}

// New creates a Pipeline with the given generator and config.
func New(gen StructuredGenerator, cfg Config, log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.Nop()
	}
	return &Pipeline{gen: gen, config: cfg, log: log}
}

// GenerateQuestionSet returns PerTier questions for each tier, EASY first,
// with positions assigned in that order. Any failure in any tier fails the
// whole set with ErrTestGenerationFailed; remaining tier calls are
// cancelled.
func (p *Pipeline) GenerateQuestionSet(ctx context.Context, conceptKey, description string) ([]store.Question, error) {
	start := time.Now()
	tiers := store.Difficulties()
	batches := make([][]Question, len(tiers))

	g, gctx := errgroup.WithContext(ctx)
	for i, tier := range tiers {
		input := GenerateInput{
			ConceptKey:  conceptKey,
			Description: description,
			Difficulty:  tier,
			Count:       p.config.PerTier,
		}
		g.Go(func() error {
			batch, err := p.generateTier(gctx, input)
			if err != nil {
				return fmt.Errorf("%s tier: %w", tier, err)
			}
			batches[i] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.log.Warn("question generation failed", "concept", conceptKey, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrTestGenerationFailed, err)
	}

	out := make([]store.Question, 0, len(tiers)*p.config.PerTier)
	for _, batch := range batches {
		for _, q := range batch {
			out = append(out, store.Question{
				Position:      len(out),
				Text:          q.Text,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Difficulty:    q.Difficulty,
				ConceptTag:    q.ConceptTag,
				Explanation:   q.Explanation,
			})
		}
	}

	p.log.Info("question set generated",
		"concept", conceptKey,
		"questions", len(out),
		"duration", time.Since(start),
	)
	return out, nil
}

// generateTier produces and validates one batch.
func (p *Pipeline) generateTier(ctx context.Context, input GenerateInput) ([]Question, error) {
	var raw []questionOutput
	err := p.gen.Generate(ctx, gateway.Call{
		Purpose:     llm.PurposeQuestionBatch,
		System:      systemPrompt,
		Prompt:      buildUserMessage(input),
		Shape:       gateway.ShapeArray,
		Schema:      BatchSchema,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
	}, &raw)
	if err != nil {
		return nil, err
	}

	if len(raw) != input.Count {
		return nil, &ValidationError{
			Validator: "count",
			Index:     -1,
			Message:   fmt.Sprintf("got %d questions, want %d", len(raw), input.Count),
		}
	}

	out := make([]Question, len(raw))
	for i, r := range raw {
		q := Question{
			Text:          strings.TrimSpace(r.Question),
			Options:       r.Options,
			CorrectAnswer: r.CorrectAnswer,
			Difficulty:    input.Difficulty,
			ConceptTag:    normalizeTag(r.ConceptTag, input.ConceptKey),
			Explanation:   strings.TrimSpace(r.Explanation),
		}
		for _, v := range p.config.Validators {
			if verr := v.Validate(&q, input); verr != nil {
				verr.Index = i
				return nil, verr
			}
		}
		out[i] = q
	}
	return out, nil
}

// normalizeTag lowercases a concept tag, falling back to the subject key.
func normalizeTag(tag, conceptKey string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return conceptKey
	}
	return tag
}
