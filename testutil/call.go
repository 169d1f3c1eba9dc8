// Package testutil provides helpers for tests that exercise toolbelt
// registries.
package testutil

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/kverlin/toolbelt"
)

// NewCall builds a Call for the named tool with a fresh correlation id.
func NewCall(name, argsJSON string) toolbelt.Call {
	return toolbelt.Call{
		ID:        uuid.NewString(),
		Name:      name,
		Arguments: json.RawMessage(argsJSON),
	}
}

// RegisterEcho registers a builder tool under name that returns its "value"
// field unchanged. Useful for merge and wiring tests.
func RegisterEcho(r *toolbelt.Registry, name string) error {
	params := toolbelt.NewParams().String("value", toolbelt.Description("value to echo"))
	return toolbelt.RegisterArgs(r, name, "echo the value back", params,
		func(_ context.Context, a toolbelt.Args) (any, error) {
			return a.String("value"), nil
		})
}
