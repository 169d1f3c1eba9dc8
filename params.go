package toolbelt

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Params declares a tool's argument fields one by one, the static counterpart
// of deriving them from a dynamic function signature. Each field carries a JSON
// Schema type, an optional description, and either a default (field becomes
// optional) or nothing (field is required). The finished model is named
// "<tool>_Params" so independently synthesized models never collide.
//
// Builder calls chain; the first construction error is remembered and reported
// at registration time.
type Params struct {
	fields []paramField
	err    error
}

type paramField struct {
	name        string
	typ         string
	description string
	def         any
	hasDefault  bool
	enum        []any
}

// FieldOption configures a single Params field.
type FieldOption func(*paramField)

// Description sets the field's human-readable description. Fields without one
// get "parameter <name>".
func Description(s string) FieldOption {
	return func(f *paramField) { f.description = s }
}

// Default marks the field optional with the given default value. Fields
// without a default are required.
func Default(v any) FieldOption {
	return func(f *paramField) {
		f.def = v
		f.hasDefault = true
	}
}

// Enum restricts the field to the given values.
func Enum(values ...any) FieldOption {
	return func(f *paramField) { f.enum = values }
}

// NewParams starts an empty field list.
func NewParams() *Params {
	return &Params{}
}

// Field adds a field with an explicit JSON Schema type tag ("string",
// "integer", "number", "boolean", ...). An empty type tag is the static
// equivalent of a missing type annotation and fails registration with
// ErrMissingType.
func (p *Params) Field(name, jsonType string, opts ...FieldOption) *Params {
	if p.err != nil {
		return p
	}
	if name == "" {
		p.err = fmt.Errorf("%w: field with empty name", ErrSynthesis)
		return p
	}
	if jsonType == "" {
		p.err = fmt.Errorf("%w: field %q", ErrMissingType, name)
		return p
	}
	for _, f := range p.fields {
		if f.name == name {
			p.err = fmt.Errorf("%w: duplicate field %q", ErrSynthesis, name)
			return p
		}
	}
	f := paramField{name: name, typ: jsonType}
	for _, opt := range opts {
		opt(&f)
	}
	p.fields = append(p.fields, f)
	return p
}

// String adds a string field.
func (p *Params) String(name string, opts ...FieldOption) *Params {
	return p.Field(name, "string", opts...)
}

// Int adds an integer field.
func (p *Params) Int(name string, opts ...FieldOption) *Params {
	return p.Field(name, "integer", opts...)
}

// Number adds a number field.
func (p *Params) Number(name string, opts ...FieldOption) *Params {
	return p.Field(name, "number", opts...)
}

// Bool adds a boolean field.
func (p *Params) Bool(name string, opts ...FieldOption) *Params {
	return p.Field(name, "boolean", opts...)
}

// model finalizes the builder into a Model for the named tool.
func (p *Params) model(toolName, modelName string, strict bool) (*Model, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil params", ErrSynthesis)
	}
	if p.err != nil {
		return nil, p.err
	}
	props := make(map[string]any, len(p.fields))
	var required []any
	defaults := make(map[string]any)
	for _, f := range p.fields {
		prop := map[string]any{"type": f.typ}
		if f.description != "" {
			prop["description"] = f.description
		} else {
			prop["description"] = "parameter " + f.name
		}
		if len(f.enum) > 0 {
			prop["enum"] = f.enum
		}
		if f.hasDefault {
			prop["default"] = f.def
			defaults[f.name] = f.def
		} else {
			required = append(required, f.name)
		}
		props[f.name] = prop
	}
	if modelName == "" {
		modelName = toolName + "_Params"
	}
	schemaMap := map[string]any{
		"type":       "object",
		"title":      modelName,
		"properties": props,
	}
	if len(required) > 0 {
		schemaMap["required"] = required
	}
	if strict {
		applyStrictMode(schemaMap)
	}
	resolved, err := compileSchema(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSynthesis, err)
	}
	return &Model{
		name:     modelName,
		schema:   schemaMap,
		resolved: resolved,
		defaults: defaults,
	}, nil
}

// Args holds a builder tool's validated fields, with defaults filled in for
// absent optional fields. It plays the role of unpacked keyword arguments.
type Args map[string]any

// Has reports whether the field is present.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the named field as a string, or "" when absent or mistyped.
func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// Int returns the named field as an int. JSON numbers decode as float64, so
// both representations are accepted.
func (a Args) Int(name string) int {
	switch v := a[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// Float returns the named field as a float64, or 0 when absent or mistyped.
func (a Args) Float(name string) float64 {
	switch v := a[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// Bool returns the named field as a bool, or false when absent or mistyped.
func (a Args) Bool(name string) bool {
	b, _ := a[name].(bool)
	return b
}

// Decode maps the fields onto a struct using its json tags, coercing weakly
// typed values (e.g. float64 into int fields).
func (a Args) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(a))
}
