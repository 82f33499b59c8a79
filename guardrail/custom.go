// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package guardrail

import (
	"context"
	"errors"
)

// CheckFunc is a caller-supplied check function. A blocking function does not
// stall concurrent pipeline runs; each pipeline invocation waits only for its
// own guardrails.
type CheckFunc func(ctx context.Context, content string, gctx Context) (GuardrailResult, error)

// CustomFunctionGuardrail lets a plain function act as a guardrail without
// implementing the full interface.
type CustomFunctionGuardrail struct {
	Base
	checkFunc CheckFunc
}

// NewCustomFunctionGuardrail wraps checkFunc as a guardrail
func NewCustomFunctionGuardrail(name string, checkFunc CheckFunc, blockedMessage string) (*CustomFunctionGuardrail, error) {
	if checkFunc == nil {
		return nil, errors.New("custom function guardrail requires a check function")
	}
	return &CustomFunctionGuardrail{
		Base:      NewBase(name, blockedMessage),
		checkFunc: checkFunc,
	}, nil
}

// Check delegates to the wrapped function and passes its result through as-is,
// with one adjustment: a block result with no custom message picks up the
// guardrail's configured blocked message. A message the function already set is
// preserved — the opposite precedence from Run, which overwrites. Callers going
// through Run therefore see the guardrail-level message win; the function-level
// message is observable only on direct Check calls. Errors from the function
// propagate unchanged.
func (g *CustomFunctionGuardrail) Check(ctx context.Context, content string, gctx Context) (GuardrailResult, error) {
	result, err := g.checkFunc(ctx, content, gctx)
	if err != nil {
		return result, err
	}

	if result.Action == GuardrailActionBlock && result.CustomMessage == "" && g.BlockedMessage() != "" {
		result.CustomMessage = g.BlockedMessage()
	}

	return result, nil
}
