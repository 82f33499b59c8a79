// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package guardrail

import (
	"context"
	"fmt"
	"strings"
)

// CompositeGuardrail applies an ordered list of child guardrails as one
// logical guardrail, merging their outcomes. Children are shared references;
// the composite does not own their lifecycle, and each child's own enabled
// flag and blocked message still apply.
type CompositeGuardrail struct {
	Base
	guardrails  []Guardrail
	stopOnBlock bool
}

// NewCompositeGuardrail creates a composite over the given children. With
// stopOnBlock, a blocking child halts the chain immediately; otherwise the
// block is recorded and remaining children still run.
func NewCompositeGuardrail(name string, guardrails []Guardrail, stopOnBlock bool, blockedMessage string) *CompositeGuardrail {
	return &CompositeGuardrail{
		Base:        NewBase(name, blockedMessage),
		guardrails:  guardrails,
		stopOnBlock: stopOnBlock,
	}
}

// Guardrails returns the child guardrails in application order
func (g *CompositeGuardrail) Guardrails() []Guardrail {
	result := make([]Guardrail, len(g.guardrails))
	copy(result, g.guardrails)
	return result
}

// Check runs each enabled child in order, threading modified content forward
// and accumulating "name: reason" entries for every non-pass outcome. The
// final result is modify when any child changed the content, otherwise pass.
func (g *CompositeGuardrail) Check(ctx context.Context, content string, gctx Context) (GuardrailResult, error) {
	current := content
	var reasons []string

	for _, child := range g.guardrails {
		if !child.Enabled() {
			continue
		}

		result, err := Run(ctx, child, current, gctx)
		if err != nil {
			return result, err
		}

		switch result.Action {
		case GuardrailActionBlock:
			if g.stopOnBlock {
				if g.BlockedMessage() != "" {
					result.CustomMessage = g.BlockedMessage()
				}
				return result, nil
			}
			// Record the block and keep going; content is unchanged.
			reasons = append(reasons, fmt.Sprintf("%s: %s", child.Name(), result.Reason))

		case GuardrailActionModify:
			current = result.Content
			reasons = append(reasons, fmt.Sprintf("%s: %s", child.Name(), result.Reason))

		case GuardrailActionWarning:
			reasons = append(reasons, fmt.Sprintf("%s: %s", child.Name(), result.Reason))
		}
	}

	if current != content {
		return NewModifyResult(current, strings.Join(reasons, "; ")), nil
	}

	return NewPassResult(current), nil
}
