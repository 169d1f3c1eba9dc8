// Package toolbelt turns plain Go functions into LLM-callable tools: it derives
// a JSON Schema for each tool's arguments, exports the schemas in the wire shape
// chat-completion APIs expect, and dispatches incoming tool calls back to the
// right function with validated arguments.
//
// # Overview
//
// There are two ways to describe a tool's arguments. The strong path is a Go
// struct: Register infers the schema from the struct via reflection, and the
// function receives the whole validated struct. The second path is the Params
// builder, for tools whose arguments are a flat list of named fields: the
// function receives the validated fields as Args, the Go analogue of keyword
// arguments.
//
// Pipeline: function + argument model → Register/RegisterArgs → Registry →
// Descriptors (advertised to the LLM) → Dispatch (parse, validate, call,
// marshal) → Message.
//
// # Error contract
//
// Registration-time and lookup-time failures (name conflicts, schema synthesis
// failures, unknown tool names, invalid payloads) are programmer-facing and are
// returned as errors. Failures inside the tool function itself are data for the
// conversation: Dispatch converts them into a normal Message whose content
// describes the error, so the model can read it and react. Dispatch never
// returns an error for a tool that merely failed.
//
// # Example
//
//	type AddArgs struct {
//		A int `json:"a" jsonschema:"first addend"`
//		B int `json:"b" jsonschema:"second addend"`
//	}
//	reg := toolbelt.New()
//	err := toolbelt.Register(reg, "add", "Add two integers", func(_ context.Context, a AddArgs) (int, error) {
//		return a.A + a.B, nil
//	})
//	if err != nil { ... }
//	msg, err := reg.Dispatch(ctx, toolbelt.Call{ID: "1", Name: "add", Arguments: []byte(`{"a":3,"b":5}`)})
//	// msg.Content == "8"
package toolbelt
