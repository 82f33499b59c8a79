// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package guardrail

import (
	"context"
)

// Context is the read-only mapping of ambient information (sender,
// conversation id, original message) passed to every check call.
type Context map[string]any

// Guardrail is a named, independently enable-able content check/transform unit.
//
// Implementations hold no per-call mutable state: configuration is immutable
// after construction, so one instance may be shared across concurrent pipeline
// invocations without locking.
type Guardrail interface {
	Name() string
	Enabled() bool

	// BlockedMessage returns the message surfaced to the end user when this
	// guardrail blocks content, or the empty string if none is configured.
	BlockedMessage() string

	// Check inspects content and decides an action. Check is invoked through
	// Run, which handles the enabled flag and blocked-message injection.
	Check(ctx context.Context, content string, gctx Context) (GuardrailResult, error)
}

// Base provides the common identity and policy fields of a guardrail.
// Concrete guardrails embed it and implement only Check.
type Base struct {
	name           string
	enabled        bool
	blockedMessage string
}

// NewBase creates the embeddable base for a guardrail. Guardrails start enabled.
func NewBase(name, blockedMessage string) Base {
	return Base{
		name:           name,
		enabled:        true,
		blockedMessage: blockedMessage,
	}
}

// Name returns the guardrail's name
func (b *Base) Name() string {
	return b.name
}

// Enabled reports whether the guardrail is active
func (b *Base) Enabled() bool {
	return b.enabled
}

// SetEnabled toggles the guardrail. Intended for configuration time, before
// the guardrail is shared across pipeline invocations.
func (b *Base) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// BlockedMessage returns the configured user-facing block message
func (b *Base) BlockedMessage() string {
	return b.blockedMessage
}

// Run invokes a guardrail with the common wrapper semantics:
//
//   - A disabled guardrail passes content through unchanged; Check is never invoked.
//   - On a block result, a configured blocked message unconditionally overwrites
//     the result's custom message. CustomFunctionGuardrail applies the opposite
//     precedence inside its Check; see its documentation.
//   - Errors from Check propagate unchanged.
func Run(ctx context.Context, g Guardrail, content string, gctx Context) (GuardrailResult, error) {
	if !g.Enabled() {
		return NewPassResult(content), nil
	}

	result, err := g.Check(ctx, content, gctx)
	if err != nil {
		return result, err
	}

	if result.Action == GuardrailActionBlock && g.BlockedMessage() != "" {
		result.CustomMessage = g.BlockedMessage()
	}

	return result, nil
}

// InputGuardrail marks a guardrail as applying to inbound user content.
// The distinct type keeps an output guardrail from being handed to the
// input pipeline by accident.
type InputGuardrail struct {
	Guardrail
}

// Input wraps a guardrail for use with ApplyInputGuardrails
func Input(g Guardrail) InputGuardrail {
	return InputGuardrail{Guardrail: g}
}

// OutputGuardrail marks a guardrail as applying to LLM output content.
type OutputGuardrail struct {
	Guardrail
}

// Output wraps a guardrail for use with ApplyOutputGuardrails
func Output(g Guardrail) OutputGuardrail {
	return OutputGuardrail{Guardrail: g}
}
