package toolbelt

import (
	"fmt"
	"maps"
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"
)

// Model is a tool's resolved input model: the schema advertised to the LLM and
// the validator invocation payloads are checked against. A Model comes from one
// of two provenances: a user-supplied argument struct (Register) or a Params
// builder synthesized field-by-field (RegisterArgs).
type Model struct {
	name     string
	schema   map[string]any
	resolved *jsonschema.Resolved
	defaults map[string]any // synthesized models only: field -> default for optional fields
}

// Name returns the model's name. Synthesized models are named "<tool>_Params";
// struct models carry the struct type's name.
func (m *Model) Name() string { return m.name }

// Schema returns a shallow copy of the JSON Schema (top-level keys only).
// Nested maps are shared; callers must not mutate them.
func (m *Model) Schema() map[string]any { return maps.Clone(m.schema) }

// check runs schema validation on an already-decoded JSON value.
func (m *Model) check(v any) error {
	return m.resolved.Validate(v)
}

// modelFor resolves a Model from argument struct type T. name defaults to the
// struct type's name when empty.
func modelFor[T any](name string, strict bool) (*Model, error) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	base := typ
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: argument model %s is not a struct", ErrSynthesis, typ)
	}
	schemaMap, resolved, err := schemaFor[T](strict)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSynthesis, err)
	}
	if name == "" {
		name = base.Name()
	}
	return &Model{
		name:     name,
		schema:   schemaMap,
		resolved: resolved,
	}, nil
}
