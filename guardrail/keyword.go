// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package guardrail

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// KeywordGuardrailConfig configures a keyword guardrail
type KeywordGuardrailConfig struct {
	// Keywords are the literal keywords to detect, checked in order.
	Keywords []string

	// Action is taken when a keyword matches. Only block and modify are
	// meaningful; defaults to block.
	Action GuardrailAction

	// Replacement substitutes matched keywords when the action is modify.
	// Defaults to "[REDACTED]".
	Replacement string

	// CaseSensitive controls keyword comparison. When false, keywords are
	// lower-cased at construction time and matching folds case.
	CaseSensitive bool

	// BlockedMessage is surfaced to the user when content is blocked.
	BlockedMessage string
}

// KeywordGuardrail detects or redacts configured literal keywords.
//
// Matching is plain substring matching: a keyword is flagged even inside a
// larger word.
type KeywordGuardrail struct {
	Base
	keywords      []string
	action        GuardrailAction
	replacement   string
	caseSensitive bool

	// replacePatterns holds one case-insensitive pattern per keyword,
	// precompiled for modify-mode substitution. Nil when case-sensitive.
	replacePatterns []*regexp.Regexp
}

// NewKeywordGuardrail creates a keyword guardrail from the given config
func NewKeywordGuardrail(name string, config KeywordGuardrailConfig) (*KeywordGuardrail, error) {
	action := config.Action
	if action == "" {
		action = GuardrailActionBlock
	}
	if action != GuardrailActionBlock && action != GuardrailActionModify {
		return nil, fmt.Errorf("keyword guardrail %q: unsupported action %q", name, action)
	}

	replacement := config.Replacement
	if replacement == "" {
		replacement = "[REDACTED]"
	}

	g := &KeywordGuardrail{
		Base:          NewBase(name, config.BlockedMessage),
		keywords:      make([]string, 0, len(config.Keywords)),
		action:        action,
		replacement:   replacement,
		caseSensitive: config.CaseSensitive,
	}

	for _, keyword := range config.Keywords {
		if !config.CaseSensitive {
			keyword = strings.ToLower(keyword)
		}
		g.keywords = append(g.keywords, keyword)
	}

	if action == GuardrailActionModify && !config.CaseSensitive {
		g.replacePatterns = make([]*regexp.Regexp, len(g.keywords))
		for i, keyword := range g.keywords {
			pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(keyword))
			if err != nil {
				return nil, fmt.Errorf("keyword guardrail %q: compiling pattern for %q: %w", name, keyword, err)
			}
			g.replacePatterns[i] = pattern
		}
	}

	return g, nil
}

// Check scans for the first configured keyword present in the content. With the
// block action the result names the offending keyword; with the modify action
// every occurrence of that one keyword is replaced and later keywords are left
// untouched. No keyword match passes the content through unchanged.
func (g *KeywordGuardrail) Check(ctx context.Context, content string, gctx Context) (GuardrailResult, error) {
	haystack := content
	if !g.caseSensitive {
		haystack = strings.ToLower(content)
	}

	for i, keyword := range g.keywords {
		if !strings.Contains(haystack, keyword) {
			continue
		}

		if g.action == GuardrailActionBlock {
			return NewBlockResult(fmt.Sprintf("Blocked keyword detected: %s", keyword)), nil
		}

		var modified string
		if g.caseSensitive {
			modified = strings.ReplaceAll(content, keyword, g.replacement)
		} else {
			modified = g.replacePatterns[i].ReplaceAllString(content, g.replacement)
		}
		return NewModifyResult(modified, fmt.Sprintf("Keyword replaced: %s", keyword)), nil
	}

	return NewPassResult(content), nil
}
