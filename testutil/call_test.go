package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/kverlin/toolbelt"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewCall(t *testing.T) {
	call := NewCall("weather", `{"city":"Oslo"}`)
	assert.NotEmpty(t, call.ID)
	assert.Equal(t, "weather", call.Name)
	assert.JSONEq(t, `{"city":"Oslo"}`, string(call.Arguments))

	other := NewCall("weather", `{}`)
	assert.NotEqual(t, call.ID, other.ID)
}

func TestRegisterEcho(t *testing.T) {
	reg := toolbelt.New()
	require.NoError(t, RegisterEcho(reg, "echo"))
	msg, err := reg.Dispatch(context.Background(), NewCall("echo", `{"value":"ping"}`))
	require.NoError(t, err)
	assert.Equal(t, `"ping"`, msg.Content)
}
