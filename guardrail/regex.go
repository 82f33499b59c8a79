// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package guardrail

import (
	"context"
	"fmt"
	"regexp"
)

// RegexRule is one independent pattern rule: either a global substitution or a
// block directive.
type RegexRule struct {
	// Pattern is the regular expression to search for.
	Pattern string

	// Action is modify (substitute) or block. Defaults to modify.
	Action GuardrailAction

	// Replacement is the substitution text when the action is modify.
	Replacement string
}

// RegexGuardrail applies an ordered set of pattern rules to content.
//
// Substitution rules are cumulative: every matching rule's replacement is
// applied. A block rule short-circuits and discards any substitutions already
// made in the same call.
type RegexGuardrail struct {
	Base
	rules []compiledRule
}

type compiledRule struct {
	regex       *regexp.Regexp
	action      GuardrailAction
	replacement string
}

// NewRegexGuardrail creates a regex guardrail. Rules are evaluated in the
// given order. An invalid pattern or action fails construction.
func NewRegexGuardrail(name string, rules []RegexRule, blockedMessage string) (*RegexGuardrail, error) {
	g := &RegexGuardrail{
		Base:  NewBase(name, blockedMessage),
		rules: make([]compiledRule, 0, len(rules)),
	}

	for i, rule := range rules {
		regex, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("regex guardrail %q: invalid pattern at index %d: %w", name, i, err)
		}

		action := rule.Action
		if action == "" {
			action = GuardrailActionModify
		}
		if action != GuardrailActionBlock && action != GuardrailActionModify {
			return nil, fmt.Errorf("regex guardrail %q: unsupported action %q at index %d", name, action, i)
		}

		g.rules = append(g.rules, compiledRule{
			regex:       regex,
			action:      action,
			replacement: rule.Replacement,
		})
	}

	return g, nil
}

// Check evaluates every rule against the original content. Match detection
// always runs on the unmodified input; substitutions accumulate onto the
// working copy so independent rules compose.
func (g *RegexGuardrail) Check(ctx context.Context, content string, gctx Context) (GuardrailResult, error) {
	modified := content
	changed := false

	for _, rule := range g.rules {
		if !rule.regex.MatchString(content) {
			continue
		}

		if rule.action == GuardrailActionBlock {
			// All or nothing: in-flight substitutions are discarded.
			return NewBlockResult(fmt.Sprintf("Blocked pattern detected: %s", rule.regex.String())), nil
		}

		modified = rule.regex.ReplaceAllString(modified, rule.replacement)
		changed = true
	}

	if changed {
		return NewModifyResult(modified, "Patterns replaced"), nil
	}

	return NewPassResult(content), nil
}
