// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package guardrail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGuardrail returns a fixed result and counts Check invocations.
type stubGuardrail struct {
	Base
	result      GuardrailResult
	err         error
	checkCalls  int
	lastContent string
}

func newStubGuardrail(name string, result GuardrailResult) *stubGuardrail {
	return &stubGuardrail{
		Base:   NewBase(name, ""),
		result: result,
	}
}

func newStubGuardrailWithMessage(name, blockedMessage string, result GuardrailResult) *stubGuardrail {
	return &stubGuardrail{
		Base:   NewBase(name, blockedMessage),
		result: result,
	}
}

func (g *stubGuardrail) Check(ctx context.Context, content string, gctx Context) (GuardrailResult, error) {
	g.checkCalls++
	g.lastContent = content
	if g.err != nil {
		return GuardrailResult{}, g.err
	}
	return g.result, nil
}

func TestRunDisabledGuardrail(t *testing.T) {
	stub := newStubGuardrail("disabled", NewBlockResult("should never be seen"))
	stub.SetEnabled(false)

	result, err := Run(context.Background(), stub, "original content", Context{})
	require.NoError(t, err)

	assert.Equal(t, GuardrailActionPass, result.Action, "disabled guardrail should pass")
	assert.Equal(t, "original content", result.Content, "content should be unchanged")
	assert.Zero(t, stub.checkCalls, "Check should never be invoked on a disabled guardrail")
}

func TestRunBlockedMessageOverwrite(t *testing.T) {
	blocked := NewBlockResult("bad content")
	blocked.CustomMessage = "message from check"

	stub := newStubGuardrailWithMessage("blocker", "message from guardrail", blocked)

	result, err := Run(context.Background(), stub, "anything", Context{})
	require.NoError(t, err)
	assert.True(t, result.IsBlocked())
	assert.Equal(t, "message from guardrail", result.CustomMessage,
		"configured blocked message should overwrite the message the check set")
}

func TestRunBlockedMessagePreservedWhenUnconfigured(t *testing.T) {
	blocked := NewBlockResult("bad content")
	blocked.CustomMessage = "message from check"

	stub := newStubGuardrail("blocker", blocked)

	result, err := Run(context.Background(), stub, "anything", Context{})
	require.NoError(t, err)
	assert.Equal(t, "message from check", result.CustomMessage,
		"without a configured message the check's message should survive")
}

func TestRunLeavesOtherActionsUntouched(t *testing.T) {
	modify := NewModifyResult("new content", "changed")
	stub := newStubGuardrailWithMessage("modifier", "unused blocked message", modify)

	result, err := Run(context.Background(), stub, "old content", Context{})
	require.NoError(t, err)
	assert.Equal(t, GuardrailActionModify, result.Action)
	assert.Equal(t, "new content", result.Content)
	assert.Empty(t, result.CustomMessage, "blocked message must not leak into non-block results")
}

func TestRunErrorPropagation(t *testing.T) {
	stub := newStubGuardrail("failing", GuardrailResult{})
	stub.err = errors.New("check exploded")

	_, err := Run(context.Background(), stub, "anything", Context{})
	assert.ErrorContains(t, err, "check exploded", "errors from Check should propagate unchanged")
	assert.Equal(t, 1, stub.checkCalls)
}

func TestResultConstructorsAllocateFreshMetadata(t *testing.T) {
	first := NewPassResult("a")
	second := NewPassResult("b")

	first.Metadata["key"] = "value"
	assert.Empty(t, second.Metadata, "results must not share a metadata map")

	assert.NotNil(t, NewModifyResult("c", "r").Metadata)
	assert.NotNil(t, NewBlockResult("r").Metadata)
	assert.NotNil(t, NewWarningResult("c", "r").Metadata)
}

func TestResultHelpers(t *testing.T) {
	assert.True(t, NewBlockResult("r").IsBlocked())
	assert.False(t, NewBlockResult("r").AllowContinue())
	assert.True(t, NewPassResult("c").AllowContinue())
	assert.True(t, NewModifyResult("c", "r").AllowContinue())
	assert.True(t, NewWarningResult("c", "r").AllowContinue())
}

func TestInputOutputWrappers(t *testing.T) {
	stub := newStubGuardrail("wrapped", NewPassResult("x"))

	input := Input(stub)
	assert.Equal(t, "wrapped", input.Name())

	output := Output(stub)
	assert.Equal(t, "wrapped", output.Name())
}
