// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package message

import (
	"fmt"

	"github.com/google/uuid"
)

// Message is the conversation-transport surface the guardrail pipeline consumes.
// Sending, receiving and threading are handled elsewhere; guardrails only need
// the addressing fields, the thread and the ability to construct a reply.
type Message struct {
	// ID uniquely identifies the message.
	ID string

	// Sender is the address of the originating party.
	Sender string

	// To is the address of the receiving party.
	To string

	// Thread is the conversation thread identifier, if any.
	Thread string

	// Body is the text content of the message.
	Body string

	// Metadata holds transport-level key/value pairs.
	Metadata map[string]string
}

// New creates a message from sender to recipient with the given body.
func New(sender, to, body string) *Message {
	return &Message{
		ID:       uuid.NewString(),
		Sender:   sender,
		To:       to,
		Body:     body,
		Metadata: make(map[string]string),
	}
}

// MakeReply constructs a reply addressed back to the sender, preserving the
// conversation thread.
func (m *Message) MakeReply(body string) *Message {
	return &Message{
		ID:       uuid.NewString(),
		Sender:   m.To,
		To:       m.Sender,
		Thread:   m.Thread,
		Body:     body,
		Metadata: make(map[string]string),
	}
}

// ConversationID returns the thread identifier, falling back to a stable
// sender/recipient pair when the message carries no thread.
func (m *Message) ConversationID() string {
	if m.Thread != "" {
		return m.Thread
	}
	return fmt.Sprintf("%s_%s", m.Sender, m.To)
}
