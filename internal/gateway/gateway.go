// Package gateway turns free-form generative replies into structured
// values. Every call goes through the same two-stage decode: a strict parse
// of the whole reply, then a salvage scan for the first balanced JSON span
// of the expected shape.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/abhisek/skilleval/internal/llm"
	"github.com/abhisek/skilleval/internal/logger"
)

const tracerName = "github.com/abhisek/skilleval/internal/gateway"

// Shape is the expected top-level JSON shape of a reply.
type Shape int

const (
	ShapeObject Shape = iota
	ShapeArray
)

func (s Shape) open() byte {
	if s == ShapeArray {
		return '['
	}
	return '{'
}

func (s Shape) String() string {
	if s == ShapeArray {
		return "array"
	}
	return "object"
}

// Call describes one structured generation request.
type Call struct {
	Purpose     string
	System      string
	Prompt      string
	Shape       Shape
	Schema      *llm.Schema // optional; validated after decode
	MaxTokens   int
	Temperature float64
}

// Gateway wraps a provider with timeout, decode and salvage.
type Gateway struct {
	provider llm.Provider
	timeout  time.Duration
	log      *logger.Logger
	tracer   trace.Tracer
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout bounds every call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) { g.timeout = d }
}

// WithLogger sets the logger used for salvage and failure reports.
func WithLogger(l *logger.Logger) Option {
	return func(g *Gateway) { g.log = l }
}

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(g *Gateway) { g.tracer = tp.Tracer(tracerName) }
}

// New creates a Gateway over provider.
func New(provider llm.Provider, opts ...Option) *Gateway {
	g := &Gateway{
		provider: provider,
		log:      logger.Nop(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate sends call to the provider and decodes the reply into out.
// It fails with ErrGenerationUnavailable when the backend errors, times out
// or replies with nothing, and with ErrGenerationMalformed when the reply
// cannot be recovered into the requested shape and schema.
func (g *Gateway) Generate(ctx context.Context, call Call, out any) error {
	ctx, span := g.tracer.Start(ctx, "gateway.generate", trace.WithAttributes(
		attribute.String("gen.purpose", call.Purpose),
		attribute.String("gen.shape", call.Shape.String()),
	))
	defer span.End()

	err := g.generate(ctx, call, out, span)
	outcome := "ok"
	switch {
	case errors.Is(err, ErrGenerationUnavailable):
		outcome = "unavailable"
	case errors.Is(err, ErrGenerationMalformed):
		outcome = "malformed"
	}
	span.SetAttributes(attribute.String("gen.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		g.log.Warn("structured generation failed", "purpose", call.Purpose, "error", err)
	}
	return err
}

func (g *Gateway) generate(ctx context.Context, call Call, out any, span trace.Span) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	if call.Purpose != "" {
		ctx = llm.WithPurpose(ctx, call.Purpose)
	}

	req := llm.Request{
		System:      call.System,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: call.Prompt}},
		Schema:      call.Schema,
		MaxTokens:   call.MaxTokens,
		Temperature: call.Temperature,
	}

	var raw []byte
	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		// A truncated reply may still hold a complete span.
		var maxTok *llm.ErrMaxTokensExceeded
		if !errors.As(err, &maxTok) {
			return fmt.Errorf("%w: %w", ErrGenerationUnavailable, err)
		}
		raw = maxTok.Content
	} else {
		raw = resp.Content
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return fmt.Errorf("%w: empty reply", ErrGenerationUnavailable)
	}

	doc, stage := extract(raw, call.Shape)
	span.SetAttributes(attribute.String("gen.stage", stage))
	if doc == nil {
		return fmt.Errorf("%w: no %s found in reply", ErrGenerationMalformed, call.Shape)
	}
	if stage != "strict" {
		g.log.Debug("salvaged generation reply", "purpose", call.Purpose, "stage", stage)
	}

	if call.Schema != nil {
		if err := llm.Validate(call.Schema, doc); err != nil {
			return fmt.Errorf("%w: %w", ErrGenerationMalformed, err)
		}
	}

	if err := json.Unmarshal(doc, out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrGenerationMalformed, call.Shape, err)
	}
	return nil
}

// extract finds the JSON document of the wanted shape in raw and names the
// stage that produced it.
func extract(raw []byte, shape Shape) ([]byte, string) {
	if json.Valid(raw) {
		switch first := firstByte(raw); {
		case first == shape.open():
			return raw, "strict"
		case shape == ShapeArray && first == '{':
			if arr := unwrapArray(raw); arr != nil {
				return arr, "unwrap"
			}
		}
	}

	if span := salvage(raw, shape.open()); span != nil {
		return span, "salvage"
	}

	if shape == ShapeArray {
		if obj := salvage(raw, '{'); obj != nil {
			if arr := unwrapArray(obj); arr != nil {
				return arr, "salvage"
			}
		}
	}
	return nil, "salvage"
}
