// Copyright (c) 2026 sosanzma
// Licensed under the MIT License.
// This is a Go implementation inspired by the SPADE-LLM framework for Python.

package guardrail

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/sosanzma/spade-llm-go/message"
)

const (
	// DefaultInputBlockedMessage is the reply body for blocked inbound content
	// when neither the result nor the guardrail supplies one.
	DefaultInputBlockedMessage = "Your message was blocked by security filters."

	// DefaultOutputBlockedMessage is the user-facing text for blocked LLM
	// output when neither the result nor the guardrail supplies one.
	DefaultOutputBlockedMessage = "I apologize, but I cannot provide that response."
)

// TriggerFunc observes every non-pass guardrail result
type TriggerFunc func(result GuardrailResult)

// ReplyFunc delivers a blocking-notice reply back to the sender
type ReplyFunc func(ctx context.Context, reply *message.Message) error

// PipelineOption configures a pipeline invocation
type PipelineOption func(*pipelineConfig)

type pipelineConfig struct {
	onTrigger TriggerFunc
	sendReply ReplyFunc
	logger    *zap.Logger
	tracer    trace.Tracer
}

func newPipelineConfig(opts []PipelineOption) pipelineConfig {
	config := pipelineConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

// WithTrigger registers a callback invoked for every block, modify and
// warning result.
func WithTrigger(fn TriggerFunc) PipelineOption {
	return func(c *pipelineConfig) {
		c.onTrigger = fn
	}
}

// WithReplySender registers a callback used to reply to the sender when
// inbound content is blocked. Without it, a blocked input halts silently.
func WithReplySender(fn ReplyFunc) PipelineOption {
	return func(c *pipelineConfig) {
		c.sendReply = fn
	}
}

// WithLogger sets the structured logger for the pipeline
func WithLogger(logger *zap.Logger) PipelineOption {
	return func(c *pipelineConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer; one span is recorded per guardrail
func WithTracer(tracer trace.Tracer) PipelineOption {
	return func(c *pipelineConfig) {
		c.tracer = tracer
	}
}

// ApplyInputGuardrails runs the ordered input guardrails over inbound message
// content, threading modified content forward. The boolean reports whether
// processing should continue: a blocked input returns ("", false, nil) after
// firing the trigger callback and, if a reply sender is configured, replying
// to the sender with the block message. An error from any guardrail's check
// aborts the pipeline and propagates.
func ApplyInputGuardrails(ctx context.Context, content string, msg *message.Message, guardrails []InputGuardrail, opts ...PipelineOption) (string, bool, error) {
	config := newPipelineConfig(opts)

	gctx := Context{
		"message":         msg,
		"sender":          msg.Sender,
		"conversation_id": msg.ConversationID(),
	}

	current := content
	for _, g := range guardrails {
		result, err := runWithSpan(ctx, config, g.Guardrail, "guardrail.check_input", current, gctx)
		if err != nil {
			return "", false, err
		}

		switch result.Action {
		case GuardrailActionBlock:
			config.logger.Info("input blocked by guardrail",
				zap.String("guardrail", g.Name()),
				zap.String("reason", result.Reason),
				zap.String("conversation_id", msg.ConversationID()),
			)
			fireTrigger(config, result)

			if config.sendReply != nil {
				body := result.CustomMessage
				if body == "" {
					body = DefaultInputBlockedMessage
				}
				if err := config.sendReply(ctx, msg.MakeReply(body)); err != nil {
					config.logger.Warn("failed to send block reply",
						zap.String("guardrail", g.Name()),
						zap.Error(err),
					)
				}
			}
			return "", false, nil

		case GuardrailActionModify:
			config.logger.Info("input modified by guardrail",
				zap.String("guardrail", g.Name()),
				zap.String("reason", result.Reason),
			)
			fireTrigger(config, result)
			current = result.Content

		case GuardrailActionWarning:
			config.logger.Warn("guardrail warning on input",
				zap.String("guardrail", g.Name()),
				zap.String("reason", result.Reason),
			)
			fireTrigger(config, result)
		}
	}

	return current, true, nil
}

// ApplyOutputGuardrails runs the ordered output guardrails over the LLM's raw
// response. A block never needs a null sentinel: the returned string is always
// displayable, falling back to DefaultOutputBlockedMessage. An error from any
// guardrail's check aborts the pipeline and propagates.
func ApplyOutputGuardrails(ctx context.Context, content string, original *message.Message, guardrails []OutputGuardrail, opts ...PipelineOption) (string, error) {
	config := newPipelineConfig(opts)

	gctx := Context{
		"original_message": original,
		"conversation_id":  original.ConversationID(),
		"llm_response":     content,
	}

	current := content
	for _, g := range guardrails {
		result, err := runWithSpan(ctx, config, g.Guardrail, "guardrail.check_output", current, gctx)
		if err != nil {
			return "", err
		}

		switch result.Action {
		case GuardrailActionBlock:
			config.logger.Info("output blocked by guardrail",
				zap.String("guardrail", g.Name()),
				zap.String("reason", result.Reason),
				zap.String("conversation_id", original.ConversationID()),
			)
			fireTrigger(config, result)

			if result.CustomMessage != "" {
				return result.CustomMessage, nil
			}
			return DefaultOutputBlockedMessage, nil

		case GuardrailActionModify:
			config.logger.Info("output modified by guardrail",
				zap.String("guardrail", g.Name()),
				zap.String("reason", result.Reason),
			)
			fireTrigger(config, result)
			current = result.Content

		case GuardrailActionWarning:
			config.logger.Warn("guardrail warning on output",
				zap.String("guardrail", g.Name()),
				zap.String("reason", result.Reason),
			)
			fireTrigger(config, result)
		}
	}

	return current, nil
}

// runWithSpan invokes one guardrail through Run, recording an optional span
// with the guardrail's name and outcome.
func runWithSpan(ctx context.Context, config pipelineConfig, g Guardrail, spanName, content string, gctx Context) (GuardrailResult, error) {
	var span trace.Span
	if config.tracer != nil {
		ctx, span = config.tracer.Start(ctx, spanName,
			trace.WithAttributes(attribute.String("guardrail.name", g.Name())),
		)
		defer span.End()
	}

	result, err := Run(ctx, g, content, gctx)
	if span != nil {
		span.SetAttributes(
			attribute.String("guardrail.action", string(result.Action)),
			attribute.String("guardrail.reason", result.Reason),
		)
	}
	return result, err
}

func fireTrigger(config pipelineConfig, result GuardrailResult) {
	if config.onTrigger != nil {
		config.onTrigger(result)
	}
}
