package toolbelt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrap_RunsHooksInOrder(t *testing.T) {
	t.Parallel()
	var b Bootstrap
	var order []string
	for _, name := range []string{"first", "second", "third"} {
		b.Add(func(r *Registry) error {
			order = append(order, name)
			return RegisterArgs(r, name, "", NewParams().Int("n"),
				func(_ context.Context, a Args) (any, error) { return a.Int("n"), nil })
		})
	}
	reg := New()
	require.NoError(t, b.Run(reg))
	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Equal(t, []string{"first", "second", "third"}, reg.Names())
	assert.True(t, b.Done())
}

func TestBootstrap_RunOnce(t *testing.T) {
	t.Parallel()
	var b Bootstrap
	var runs int
	b.Add(func(_ *Registry) error {
		runs++
		return nil
	})
	reg := New()
	require.NoError(t, b.Run(reg))
	require.NoError(t, b.Run(reg))
	assert.Equal(t, 1, runs)
}

func TestBootstrap_FailureStopsAndRetries(t *testing.T) {
	t.Parallel()
	var b Bootstrap
	hookErr := errors.New("hook failed")
	fail := true
	var after int
	b.Add(func(_ *Registry) error {
		if fail {
			return hookErr
		}
		return nil
	})
	b.Add(func(_ *Registry) error {
		after++
		return nil
	})

	reg := New()
	err := b.Run(reg)
	require.ErrorIs(t, err, hookErr)
	assert.Zero(t, after, "hooks after a failure must not run")
	assert.False(t, b.Done())

	// A failed run is retryable.
	fail = false
	require.NoError(t, b.Run(reg))
	assert.Equal(t, 1, after)
	assert.True(t, b.Done())
}

func TestBootstrap_NilHookIgnored(t *testing.T) {
	t.Parallel()
	var b Bootstrap
	b.Add(nil)
	require.NoError(t, b.Run(New()))
	assert.True(t, b.Done())
}
