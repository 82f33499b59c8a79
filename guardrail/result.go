// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package guardrail

// GuardrailAction defines the outcome of a guardrail check
type GuardrailAction string

const (
	// GuardrailActionPass leaves content unchanged and continues the chain.
	GuardrailActionPass GuardrailAction = "pass"

	// GuardrailActionModify replaces the content with the result's content
	// and continues the chain.
	GuardrailActionModify GuardrailAction = "modify"

	// GuardrailActionBlock halts the chain; the content is discarded in favor
	// of a block message.
	GuardrailActionBlock GuardrailAction = "block"

	// GuardrailActionWarning leaves content unchanged, continues the chain,
	// and reports the event to the trigger callback.
	GuardrailActionWarning GuardrailAction = "warning"
)

// GuardrailResult represents the result of a guardrail check
type GuardrailResult struct {
	Action GuardrailAction `json:"action"`

	// Content is the new content when the action is modify or pass.
	Content string `json:"content,omitempty"`

	// Reason is a human-readable explanation, used for logs and composite
	// reason aggregation.
	Reason string `json:"reason,omitempty"`

	// Metadata holds guardrail-specific details about the check.
	Metadata map[string]any `json:"metadata,omitempty"`

	// CustomMessage is surfaced to the end user when content is blocked.
	CustomMessage string `json:"custom_message,omitempty"`
}

// IsBlocked returns true if the action is block
func (r GuardrailResult) IsBlocked() bool {
	return r.Action == GuardrailActionBlock
}

// AllowContinue returns true if the chain should continue (pass, modify or warning)
func (r GuardrailResult) AllowContinue() bool {
	return r.Action != GuardrailActionBlock
}

// NewPassResult creates a result that passes content through unchanged
func NewPassResult(content string) GuardrailResult {
	return GuardrailResult{
		Action:   GuardrailActionPass,
		Content:  content,
		Metadata: make(map[string]any),
	}
}

// NewModifyResult creates a result that replaces the content
func NewModifyResult(content, reason string) GuardrailResult {
	return GuardrailResult{
		Action:   GuardrailActionModify,
		Content:  content,
		Reason:   reason,
		Metadata: make(map[string]any),
	}
}

// NewBlockResult creates a result that blocks the content
func NewBlockResult(reason string) GuardrailResult {
	return GuardrailResult{
		Action:   GuardrailActionBlock,
		Reason:   reason,
		Metadata: make(map[string]any),
	}
}

// NewWarningResult creates a result that warns but lets content through unchanged
func NewWarningResult(content, reason string) GuardrailResult {
	return GuardrailResult{
		Action:   GuardrailActionWarning,
		Content:  content,
		Reason:   reason,
		Metadata: make(map[string]any),
	}
}
