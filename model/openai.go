// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package model

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

// OpenAIConfig represents OpenAI provider configuration
type OpenAIConfig struct {
	// APIKey is the OpenAI API key
	APIKey string

	// BaseURL is the custom base URL (optional)
	BaseURL string

	// Organization is the OpenAI Organization (optional)
	Organization string
}

type OpenAIProvider struct {
	config OpenAIConfig
	client *openai.Client
}

func NewOpenAIProvider(config OpenAIConfig) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		config.APIKey = os.Getenv("OPENAI_API_KEY")
		if config.APIKey == "" {
			return nil, errors.New("OpenAI API key is required")
		}
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	if config.Organization != "" {
		clientConfig.OrgID = config.Organization
	}

	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

// NewDefaultOpenAIProvider creates an OpenAI provider using API key from environment variables
func NewDefaultOpenAIProvider() (*OpenAIProvider, error) {
	return NewOpenAIProvider(OpenAIConfig{})
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, messages []Message, settings Settings) (*Response, error) {
	request := openai.ChatCompletionRequest{
		Model:       getModelName(settings),
		Messages:    convertToOpenAIMessages(messages),
		Temperature: float32(settings.Temperature),
		MaxTokens:   settings.MaxTokens,
		TopP:        float32(settings.TopP),
	}

	if settings.ResponseFormat == "json_object" {
		request.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	result, err := p.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API call failed: %w", err)
	}

	if len(result.Choices) == 0 {
		return nil, errors.New("no response from OpenAI")
	}

	choice := result.Choices[0]

	return &Response{
		Message: Message{
			Role:    choice.Message.Role,
			Content: choice.Message.Content,
		},
		Usage: Usage{
			PromptTokens:     result.Usage.PromptTokens,
			CompletionTokens: result.Usage.CompletionTokens,
			TotalTokens:      result.Usage.TotalTokens,
		},
	}, nil
}

// convertToOpenAIMessages converts messages to OpenAI format
func convertToOpenAIMessages(messages []Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		result[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
		if msg.Name != "" {
			result[i].Name = msg.Name
		}
	}
	return result
}

func getModelName(settings Settings) string {
	defaultModel := "gpt-4o-mini"

	if modelName, ok := settings.Custom["model"].(string); ok && modelName != "" {
		return modelName
	}

	return defaultModel
}
