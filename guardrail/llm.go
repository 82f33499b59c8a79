// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package guardrail

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/sosanzma/spade-llm-go/model"
)

// DefaultSafetyPrompt instructs the model to answer with a JSON verdict. The
// {content} placeholder is replaced with the text under review.
const DefaultSafetyPrompt = `You are a content safety filter. Analyze the following text and respond with a JSON object: {"safe": true/false, "reason": "explanation"}

Text to analyze: {content}`

// LLMGuardrailOption configures an LLMGuardrail
type LLMGuardrailOption func(*LLMGuardrail)

// WithSafetyPrompt replaces the default safety prompt template. The template
// must contain a {content} placeholder.
func WithSafetyPrompt(prompt string) LLMGuardrailOption {
	return func(g *LLMGuardrail) {
		g.safetyPrompt = prompt
	}
}

// WithLLMLogger sets the logger used to report fail-open events
func WithLLMLogger(logger *zap.Logger) LLMGuardrailOption {
	return func(g *LLMGuardrail) {
		g.logger = logger
	}
}

// WithBlockedMessage sets the user-facing message for blocked content
func WithBlockedMessage(message string) LLMGuardrailOption {
	return func(g *LLMGuardrail) {
		g.Base = NewBase(g.Name(), message)
	}
}

// LLMGuardrail delegates the safety decision to a language model.
//
// It fails open: a provider error, an unparseable verdict or a missing response
// never blocks content. A misbehaving safety model must not deny service.
type LLMGuardrail struct {
	Base
	provider     model.Provider
	safetyPrompt string
	logger       *zap.Logger
}

// NewLLMGuardrail creates an LLM-backed safety guardrail
func NewLLMGuardrail(name string, provider model.Provider, opts ...LLMGuardrailOption) (*LLMGuardrail, error) {
	if provider == nil {
		return nil, errors.New("LLM guardrail requires a model provider")
	}

	g := &LLMGuardrail{
		Base:         NewBase(name, ""),
		provider:     provider,
		safetyPrompt: DefaultSafetyPrompt,
		logger:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// safetyVerdict is the JSON shape the safety prompt asks the model to produce
type safetyVerdict struct {
	Safe   bool   `json:"safe"`
	Reason string `json:"reason"`
}

// Check sends the content to the safety model and blocks only on an explicit
// unsafe verdict. Every failure mode passes the original content through.
func (g *LLMGuardrail) Check(ctx context.Context, content string, gctx Context) (GuardrailResult, error) {
	prompt := strings.ReplaceAll(g.safetyPrompt, "{content}", content)

	settings := model.DefaultSettings()
	settings.ResponseFormat = "json_object"

	response, err := model.GetResponse(ctx, g.provider, []model.Message{
		{Role: "user", Content: prompt},
	}, settings)
	if err != nil {
		g.logger.Warn("safety check failed, passing content through",
			zap.String("guardrail", g.Name()),
			zap.Error(err),
		)
		return NewPassResult(content), nil
	}

	var verdict safetyVerdict
	if err := json.Unmarshal([]byte(response), &verdict); err != nil {
		g.logger.Warn("unparseable safety verdict, passing content through",
			zap.String("guardrail", g.Name()),
			zap.String("response", response),
			zap.Error(err),
		)
		return NewPassResult(content), nil
	}

	if !verdict.Safe {
		reason := verdict.Reason
		if reason == "" {
			reason = "Content flagged as unsafe"
		}
		return NewBlockResult(reason), nil
	}

	return NewPassResult(content), nil
}
