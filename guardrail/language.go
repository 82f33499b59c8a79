// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package guardrail

import (
	"context"
	"fmt"

	"github.com/abadojack/whatlanggo"
)

// Confidence below this threshold is treated as "language unknown" and the
// content passes.
const languageConfidenceThreshold = 0.5

// LanguageGuardrailConfig configures a language guardrail
type LanguageGuardrailConfig struct {
	// Allowed lists the permitted languages, e.g. whatlanggo.Eng.
	Allowed []whatlanggo.Lang

	// Action is taken when the detected language is not allowed. Only block
	// and warning are meaningful; defaults to block.
	Action GuardrailAction

	// BlockedMessage is surfaced to the user when content is blocked.
	BlockedMessage string
}

// LanguageGuardrail restricts content to an allow-list of detected languages.
type LanguageGuardrail struct {
	Base
	allowed map[whatlanggo.Lang]bool
	action  GuardrailAction
}

// NewLanguageGuardrail creates a language guardrail from the given config
func NewLanguageGuardrail(name string, config LanguageGuardrailConfig) (*LanguageGuardrail, error) {
	action := config.Action
	if action == "" {
		action = GuardrailActionBlock
	}
	if action != GuardrailActionBlock && action != GuardrailActionWarning {
		return nil, fmt.Errorf("language guardrail %q: unsupported action %q", name, action)
	}
	if len(config.Allowed) == 0 {
		return nil, fmt.Errorf("language guardrail %q: at least one allowed language is required", name)
	}

	allowed := make(map[whatlanggo.Lang]bool, len(config.Allowed))
	for _, lang := range config.Allowed {
		allowed[lang] = true
	}

	return &LanguageGuardrail{
		Base:    NewBase(name, config.BlockedMessage),
		allowed: allowed,
		action:  action,
	}, nil
}

// Check detects the content's language and applies the configured action when
// it falls outside the allow-list. Empty content and low-confidence detections
// pass.
func (g *LanguageGuardrail) Check(ctx context.Context, content string, gctx Context) (GuardrailResult, error) {
	if content == "" {
		return NewPassResult(content), nil
	}

	info := whatlanggo.Detect(content)
	if info.Confidence <= languageConfidenceThreshold || g.allowed[info.Lang] {
		return NewPassResult(content), nil
	}

	reason := fmt.Sprintf("Disallowed language detected: %s", whatlanggo.LangToString(info.Lang))
	if g.action == GuardrailActionWarning {
		return NewWarningResult(content, reason), nil
	}
	return NewBlockResult(reason), nil
}
