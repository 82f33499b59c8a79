// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package guardrail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexGuardrailCumulativeReplacements(t *testing.T) {
	g, err := NewRegexGuardrail("pii", []RegexRule{
		{Pattern: `\b\d{3}-\d{2}-\d{4}\b`, Replacement: "[SSN]"},
		{Pattern: `\b[\w.+-]+@[\w-]+\.[\w.]+\b`, Replacement: "[EMAIL]"},
	}, "")
	require.NoError(t, err)

	result, err := g.Check(context.Background(), "ssn 123-45-6789, mail alice@example.com", Context{})
	require.NoError(t, err)
	assert.Equal(t, GuardrailActionModify, result.Action)
	assert.Equal(t, "ssn [SSN], mail [EMAIL]", result.Content,
		"independent replacement rules both apply to the same content")
	assert.Equal(t, "Patterns replaced", result.Reason)
}

func TestRegexGuardrailBlockDiscardsReplacements(t *testing.T) {
	g, err := NewRegexGuardrail("mixed", []RegexRule{
		{Pattern: `\bfoo\b`, Replacement: "bar"},
		{Pattern: `\bowasp\b`, Action: GuardrailActionBlock},
		{Pattern: `\bnever\b`, Replacement: "reached"},
	}, "")
	require.NoError(t, err)

	result, err := g.Check(context.Background(), "foo owasp never", Context{})
	require.NoError(t, err)
	assert.True(t, result.IsBlocked(), "a matching block rule short-circuits")
	assert.Empty(t, result.Content, "substitutions made before the block are discarded")
	assert.Contains(t, result.Reason, "owasp")
}

func TestRegexGuardrailBlockOnly(t *testing.T) {
	g, err := NewRegexGuardrail("blocker", []RegexRule{
		{Pattern: `(?i)drop\s+table`, Action: GuardrailActionBlock},
	}, "")
	require.NoError(t, err)

	result, err := g.Check(context.Background(), "please DROP TABLE users", Context{})
	require.NoError(t, err)
	assert.True(t, result.IsBlocked())
}

func TestRegexGuardrailNoMatchPasses(t *testing.T) {
	g, err := NewRegexGuardrail("pii", []RegexRule{
		{Pattern: `\d{16}`, Replacement: "[CARD]"},
	}, "")
	require.NoError(t, err)

	result, err := g.Check(context.Background(), "no card numbers here", Context{})
	require.NoError(t, err)
	assert.Equal(t, GuardrailActionPass, result.Action)
	assert.Equal(t, "no card numbers here", result.Content)
}

func TestRegexGuardrailEmptyRulesPass(t *testing.T) {
	g, err := NewRegexGuardrail("empty", nil, "")
	require.NoError(t, err)

	result, err := g.Check(context.Background(), "anything", Context{})
	require.NoError(t, err)
	assert.Equal(t, GuardrailActionPass, result.Action)
	assert.Equal(t, "anything", result.Content)
}

func TestRegexGuardrailConstructionErrors(t *testing.T) {
	_, err := NewRegexGuardrail("bad", []RegexRule{{Pattern: `([unclosed`}}, "")
	assert.Error(t, err, "a malformed pattern is a loud construction error")

	_, err = NewRegexGuardrail("bad", []RegexRule{
		{Pattern: `ok`, Action: GuardrailActionPass},
	}, "")
	assert.Error(t, err, "pass is not a meaningful rule action")
}
