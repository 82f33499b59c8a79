// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package model

import (
	"context"
)

// Settings represents model settings
type Settings struct {
	// Temperature sets the generation temperature (0.0-2.0)
	Temperature float64

	// MaxTokens sets the maximum number of tokens to generate
	MaxTokens int

	// TopP sets the top P for generation (0.0-1.0)
	TopP float64

	// ResponseFormat requests a response format ("json_object" for JSON mode)
	ResponseFormat string

	// Custom holds custom settings such as the model name
	Custom map[string]any
}

// DefaultSettings returns default model settings
func DefaultSettings() Settings {
	return Settings{
		Temperature:    0.7,
		MaxTokens:      1024,
		TopP:           1.0,
		ResponseFormat: "",
		Custom:         make(map[string]any),
	}
}

// Message represents a chat message
type Message struct {
	// Role is the role of the message (system, user, assistant)
	Role    string
	Content string
	Name    string
}

// Provider is the interface for model providers.
//
// The guardrail layer consumes exactly one capability from it: turning a
// conversation into a text response.
type Provider interface {
	CreateChatCompletion(ctx context.Context, messages []Message, settings Settings) (*Response, error)
}

// Response represents a model response
type Response struct {
	Message Message
	Usage   Usage
}

// Usage represents token usage
type Usage struct {
	// PromptTokens is the number of tokens in the prompt
	PromptTokens int

	// CompletionTokens is the number of tokens in the completion
	CompletionTokens int

	// TotalTokens is the total number of tokens
	TotalTokens int
}

// GetResponse sends a conversation to the provider and returns the raw text of
// the model's reply.
func GetResponse(ctx context.Context, p Provider, messages []Message, settings Settings) (string, error) {
	response, err := p.CreateChatCompletion(ctx, messages, settings)
	if err != nil {
		return "", err
	}
	return response.Message.Content, nil
}
