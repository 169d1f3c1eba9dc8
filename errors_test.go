package toolbelt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()
	err := error(&ValidationError{Tool: "add", Reason: "missing property \"b\""})
	assert.ErrorIs(t, err, ErrValidation)
	assert.True(t, IsValidationError(err))
	assert.False(t, IsExecutionError(err))
	assert.Contains(t, err.Error(), `"add"`)

	wrapped := fmt.Errorf("dispatch: %w", err)
	assert.True(t, IsValidationError(wrapped))
	var ve *ValidationError
	require.ErrorAs(t, wrapped, &ve)
	assert.Equal(t, "add", ve.Tool)
}

func TestExecutionError_WireText(t *testing.T) {
	t.Parallel()
	cause := errors.New("division by zero")
	err := &ExecutionError{Tool: "div", Err: cause}
	assert.Equal(t, "Error executing tool div: division by zero", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsExecutionError(err))
	assert.False(t, IsValidationError(err))
}

func TestPanicError_Text(t *testing.T) {
	t.Parallel()
	err := &ExecutionError{Tool: "boom", Err: &panicError{p: "kaboom"}}
	assert.Equal(t, "Error executing tool boom: panic: kaboom", err.Error())
}

func TestSentinels_Distinct(t *testing.T) {
	t.Parallel()
	sentinels := []error{
		ErrToolNotFound, ErrNameConflict, ErrValidation,
		ErrMissingType, ErrSynthesis, ErrNoRegistries, ErrNilRegistry,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
