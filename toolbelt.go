package toolbelt

import (
	"context"
	"encoding/json"
	"reflect"
	"runtime"
	"strings"
)

// RoleTool is the role marker carried by every Message returned from Dispatch.
const RoleTool = "tool"

// Call is a single tool invocation request as produced by the LLM.
type Call struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Message is the invocation result sent back to the chat-completion API.
// Content is always a JSON-encoded string, even for scalar results.
type Message struct {
	Role       string `json:"role"`
	ToolCallID string `json:"tool_call_id"`
	Content    string `json:"content"`
}

// Descriptor is the advertised shape of one tool: name, description, and the
// argument schema as a JSON-Schema-like object.
type Descriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// ChatTool wraps a Descriptor in the envelope the OpenAI chat-completions
// "tools" parameter expects.
type ChatTool struct {
	Type     string     `json:"type"`
	Function Descriptor `json:"function"`
}

// Tool is a registered function plus its resolved input model. Tools are
// immutable once created and owned by the registry they were registered in;
// merged registries share them safely.
type Tool struct {
	name        string
	description string
	model       *Model
	invoke      func(ctx context.Context, raw json.RawMessage) (any, error)
}

// Name returns the tool's unique name within its registry.
func (t *Tool) Name() string { return t.name }

// Description returns the tool's documentation text.
func (t *Tool) Description() string { return t.description }

// Model returns the tool's resolved input model.
func (t *Tool) Model() *Model { return t.model }

func (t *Tool) descriptor() Descriptor {
	return Descriptor{
		Name:        t.name,
		Description: t.description,
		Parameters:  t.model.Schema(),
	}
}

// funcName derives a tool name from the function symbol, the fallback used when
// the caller does not supply a name. Closures yield generated symbols like
// "func1"; pass an explicit name for those.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	name := strings.TrimSuffix(f.Name(), "-fm")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
