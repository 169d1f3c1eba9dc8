package toolbelt

import (
	"context"
	"log/slog"
	"time"
)

// registryOptions hold optional Registry settings.
type registryOptions struct {
	logger   *slog.Logger
	onBefore func(context.Context, Call)
	onAfter  func(context.Context, Call, Message, error, time.Duration)
}

// Option configures a Registry.
type Option func(*registryOptions)

// WithLogger enables structured logging of registration and dispatch.
// Passing nil uses slog.Default(); without this option the registry is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *registryOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// WithOnBeforeDispatch sets a hook called before each dispatch, after the tool
// has been resolved.
func WithOnBeforeDispatch(fn func(context.Context, Call)) Option {
	return func(o *registryOptions) {
		o.onBefore = fn
	}
}

// WithOnAfterDispatch sets a hook called when a dispatch finishes. For
// propagated protocol errors the Message is zero and err is set; for normal
// results (including converted execution failures) err is nil.
func WithOnAfterDispatch(fn func(context.Context, Call, Message, error, time.Duration)) Option {
	return func(o *registryOptions) {
		o.onAfter = fn
	}
}

// toolOptions hold optional per-tool settings.
type toolOptions struct {
	strict    bool
	modelName string
}

// ToolOption configures a tool at registration time.
type ToolOption func(*toolOptions)

// WithStrict sets strict schema mode: additionalProperties: false for all
// objects and every property required (OpenAI Structured Outputs).
func WithStrict() ToolOption {
	return func(o *toolOptions) {
		o.strict = true
	}
}

// WithModelName overrides the resolved input model's name ("<tool>_Params" for
// builder models, the struct type name otherwise).
func WithModelName(name string) ToolOption {
	return func(o *toolOptions) {
		o.modelName = name
	}
}
