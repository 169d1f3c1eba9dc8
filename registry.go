package toolbelt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	errEmptyName = errors.New("tool name is empty")
	errNilFunc   = errors.New("tool function must not be nil")
)

// Registry owns a name → Tool mapping. It grows only by registration and keeps
// names in registration order for deterministic export. Registration is guarded
// by a mutex; Dispatch only reads registry state and is safe to call
// concurrently once registration has completed.
type Registry struct {
	mu    sync.Mutex
	names []string
	tools map[string]*Tool
	opts  registryOptions
}

// New creates an empty Registry with the given options.
func New(opts ...Option) *Registry {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{
		tools: make(map[string]*Tool),
		opts:  o,
	}
}

// Register adds fn as a tool whose arguments are described by struct type T.
// The schema is inferred from T's fields and tags (json, jsonschema); on
// dispatch, fn receives the whole validated struct. When name is empty it is
// derived from the function symbol. Registration fails with ErrNameConflict if
// the name is taken and leaves the registry unmodified; fn itself is never
// wrapped, so direct callers keep the native signature.
func Register[T, R any](r *Registry, name, description string, fn func(context.Context, T) (R, error), opts ...ToolOption) error {
	if fn == nil {
		return errNilFunc
	}
	var o toolOptions
	for _, opt := range opts {
		opt(&o)
	}
	if name == "" {
		name = funcName(fn)
	}
	if name == "" {
		return errEmptyName
	}
	model, err := modelFor[T](o.modelName, o.strict)
	if err != nil {
		return err
	}
	invoke := func(ctx context.Context, raw json.RawMessage) (out any, err error) {
		var v any
		if uerr := json.Unmarshal(raw, &v); uerr != nil {
			return nil, &ValidationError{Tool: name, Reason: "json parse error: " + uerr.Error()}
		}
		if verr := model.check(v); verr != nil {
			return nil, &ValidationError{Tool: name, Reason: verr.Error()}
		}
		var args T
		if uerr := json.Unmarshal(raw, &args); uerr != nil {
			return nil, &ValidationError{Tool: name, Reason: uerr.Error()}
		}
		defer func() {
			if p := recover(); p != nil {
				out, err = nil, &ExecutionError{Tool: name, Err: &panicError{p: p}}
			}
		}()
		res, ferr := fn(ctx, args)
		if ferr != nil {
			return nil, &ExecutionError{Tool: name, Err: ferr}
		}
		return res, nil
	}
	return r.add(&Tool{
		name:        name,
		description: defaultDescription(name, description),
		model:       model,
		invoke:      invoke,
	})
}

// RegisterArgs adds fn as a tool whose arguments are synthesized from a Params
// builder. On dispatch, fn receives the validated fields as Args with defaults
// filled in for absent optional fields. Builder errors (missing type tag,
// duplicate field) surface here, before the tool becomes callable.
func RegisterArgs(r *Registry, name, description string, params *Params, fn func(context.Context, Args) (any, error), opts ...ToolOption) error {
	if fn == nil {
		return errNilFunc
	}
	var o toolOptions
	for _, opt := range opts {
		opt(&o)
	}
	if name == "" {
		name = funcName(fn)
	}
	if name == "" {
		return errEmptyName
	}
	model, err := params.model(name, o.modelName, o.strict)
	if err != nil {
		return err
	}
	invoke := func(ctx context.Context, raw json.RawMessage) (out any, err error) {
		var fields map[string]any
		if uerr := json.Unmarshal(raw, &fields); uerr != nil {
			return nil, &ValidationError{Tool: name, Reason: "json parse error: " + uerr.Error()}
		}
		if verr := model.check(fields); verr != nil {
			return nil, &ValidationError{Tool: name, Reason: verr.Error()}
		}
		for k, v := range model.defaults {
			if _, ok := fields[k]; !ok {
				fields[k] = v
			}
		}
		defer func() {
			if p := recover(); p != nil {
				out, err = nil, &ExecutionError{Tool: name, Err: &panicError{p: p}}
			}
		}()
		res, ferr := fn(ctx, Args(fields))
		if ferr != nil {
			return nil, &ExecutionError{Tool: name, Err: ferr}
		}
		return res, nil
	}
	return r.add(&Tool{
		name:        name,
		description: defaultDescription(name, description),
		model:       model,
		invoke:      invoke,
	})
}

func defaultDescription(name, description string) string {
	if description == "" {
		return "invoke function " + name
	}
	return description
}

func (r *Registry) add(t *Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[t.name]; exists {
		return fmt.Errorf("%w: %q is already registered", ErrNameConflict, t.name)
	}
	r.tools[t.name] = t
	r.names = append(r.names, t.name)
	if r.opts.logger != nil {
		r.opts.logger.Debug("tool registered", "tool", t.name, "model", t.model.name)
	}
	return nil
}

// Lookup returns the tool with the given name, or (nil, false) if not found.
func (r *Registry) Lookup(name string) (*Tool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tools[name]
	return t, ok
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tools)
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Descriptors exports every registered tool as {name, description, parameters}
// in registration order. Pure read of registry state.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Descriptor, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.tools[name].descriptor())
	}
	return out
}

// ChatTools exports the registered tools in the OpenAI chat-completions
// envelope, ready to pass as the request's "tools" parameter.
func (r *Registry) ChatTools() []ChatTool {
	descriptors := r.Descriptors()
	out := make([]ChatTool, len(descriptors))
	for i, d := range descriptors {
		out[i] = ChatTool{Type: "function", Function: d}
	}
	return out
}

// Dispatch resolves the call's tool, validates the argument payload against
// the tool's input model, invokes the function, and returns a Message keyed by
// the call's correlation id.
//
// An unknown tool name fails with ErrToolNotFound and an invalid payload fails
// with a ValidationError; both indicate a protocol mismatch and propagate. A
// failure inside the tool function (returned error or panic) does not: it is
// converted to a Message whose content is the JSON-encoded error text, so the
// conversation can continue with the error as tool output.
func (r *Registry) Dispatch(ctx context.Context, call Call) (Message, error) {
	r.mu.Lock()
	tool, ok := r.tools[call.Name]
	opts := r.opts
	r.mu.Unlock()
	if !ok {
		return Message{}, fmt.Errorf("%w: %q", ErrToolNotFound, call.Name)
	}
	if opts.onBefore != nil {
		opts.onBefore(ctx, call)
	}
	start := time.Now()
	out, err := tool.invoke(ctx, call.Arguments)
	var content string
	switch {
	case err != nil:
		var xe *ExecutionError
		if !errors.As(err, &xe) {
			if opts.logger != nil {
				opts.logger.Error("tool dispatch failed", "tool", call.Name, "error", err)
			}
			if opts.onAfter != nil {
				opts.onAfter(ctx, call, Message{}, err, time.Since(start))
			}
			return Message{}, err
		}
		if opts.logger != nil {
			opts.logger.Warn("tool execution failed", "tool", call.Name, "error", xe.Err)
		}
		content = jsonString(xe.Error())
	default:
		b, merr := json.Marshal(out)
		if merr != nil {
			content = jsonString((&ExecutionError{Tool: call.Name, Err: merr}).Error())
		} else {
			content = string(b)
		}
	}
	msg := Message{Role: RoleTool, ToolCallID: call.ID, Content: content}
	if opts.logger != nil {
		opts.logger.Debug("tool dispatched", "tool", call.Name, "duration", time.Since(start))
	}
	if opts.onAfter != nil {
		opts.onAfter(ctx, call, msg, nil, time.Since(start))
	}
	return msg, nil
}

// jsonString JSON-encodes a plain string. Marshaling a string cannot fail.
func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
