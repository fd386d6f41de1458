package guard_test

import (
	"errors"
	"testing"

	"shipping/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard(t *testing.T) {
	t.Run("constructed guard passes validation", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		require.NoError(t, g.Validate(errors.New("should not be returned")))
	})

	t.Run("zero value guard fails with provided error", func(t *testing.T) {
		var g guard.ConstructorGuard
		validationErr := errors.New("command must be created via its constructor")

		err := g.Validate(validationErr)
		assert.Equal(t, validationErr, err)
	})

	t.Run("zero value guard falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}
