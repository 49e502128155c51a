// Package recommend builds remediation guidance for a completed attempt.
//
// PersonalizedResources never fails: on any generation failure it returns
// a locally built fallback. StudyRecommendations returns nil instead, and
// callers treat nil as "unavailable", not as an error.
package recommend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/abhisek/skilleval/internal/gateway"
	"github.com/abhisek/skilleval/internal/llm"
	"github.com/abhisek/skilleval/internal/logger"
)

// StructuredGenerator is the gateway operation the engine needs.
type StructuredGenerator interface {
	Generate(ctx context.Context, call gateway.Call, out any) error
}

// Config controls generation budgets.
type Config struct {
	ResourcesMaxTokens int
	StudyMaxTokens     int
	Temperature        float64
}

// DefaultConfig returns the recommended budgets.
func DefaultConfig() Config {
	return Config{
		ResourcesMaxTokens: 3072,
		StudyMaxTokens:     2048,
		Temperature:        0.5,
	}
}

// Engine generates recommendation payloads.
type Engine struct {
	gen    StructuredGenerator
	config Config
	log    *logger.Logger
}

// New creates an Engine.
func New(gen StructuredGenerator, cfg Config, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{gen: gen, config: cfg, log: log}
}

// PersonalizedResources returns generated resources, or the fallback
// payload when generation is unavailable or malformed.
func (e *Engine) PersonalizedResources(ctx context.Context, in Input) Resources {
	var out Resources
	err := e.gen.Generate(ctx, gateway.Call{
		Purpose:     llm.PurposeResources,
		System:      resourcesSystemPrompt,
		Prompt:      buildUserMessage(in),
		Shape:       gateway.ShapeObject,
		Schema:      ResourcesSchema,
		MaxTokens:   e.config.ResourcesMaxTokens,
		Temperature: e.config.Temperature,
	}, &out)
	if err != nil || len(out.Resources) == 0 {
		e.log.Warn("using fallback resources", "concept", in.ConceptKey, "error", err)
		return Fallback(in)
	}
	if len(out.Resources) > MaxResources {
		out.Resources = out.Resources[:MaxResources]
	}
	if out.PracticeAreas == nil {
		out.PracticeAreas = append([]string{}, in.WeakAreas...)
	}
	out.Fallback = false
	return out
}

// MaxResources caps the resource list. Replies are asked for six to eight
// and longer lists are trimmed in order.
const MaxResources = 8

// StudyRecommendations returns generated recommendations, or nil when
// generation is unavailable or malformed.
func (e *Engine) StudyRecommendations(ctx context.Context, in Input) *StudyRecommendations {
	var out StudyRecommendations
	err := e.gen.Generate(ctx, gateway.Call{
		Purpose:     llm.PurposeStudyPlan,
		System:      studySystemPrompt,
		Prompt:      buildUserMessage(in),
		Shape:       gateway.ShapeObject,
		Schema:      StudySchema,
		MaxTokens:   e.config.StudyMaxTokens,
		Temperature: e.config.Temperature,
	}, &out)
	if err != nil {
		e.log.Warn("study recommendations unavailable", "concept", in.ConceptKey, "error", err)
		return nil
	}
	return &out
}

// Fallback builds the deterministic single-resource payload for in.
func Fallback(in Input) Resources {
	practice := append([]string{}, in.WeakAreas...)
	return Resources{
		Resources: []Resource{{
			Title:          fmt.Sprintf("%s fundamentals", in.ConceptKey),
			Description:    fmt.Sprintf("Review the core concepts of %s before revisiting the topics you missed.", in.ConceptKey),
			Type:           "documentation",
			URL:            "https://www.google.com/search?q=" + url.QueryEscape(in.ConceptKey+" fundamentals tutorial"),
			Priority:       "high",
			EstimatedTime:  "2-3 hours",
			Difficulty:     "beginner",
			TargetWeakness: "fundamentals",
		}},
		StudyPlan: StudyPlan{
			Immediate: fmt.Sprintf("Revisit the questions you missed and read the explanations for each %s topic.", in.ConceptKey),
			ShortTerm: "Work through beginner and intermediate exercises on each weak area.",
			LongTerm:  fmt.Sprintf("Build a small project that uses %s end to end, then retake the assessment.", in.ConceptKey),
		},
		PracticeAreas: practice,
		Fallback:      true,
	}
}
