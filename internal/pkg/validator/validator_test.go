package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/transit-graph/internal/pkg/errors"
)

type sample struct {
	Name  string   `validate:"required,min=2"`
	Type  string   `validate:"omitempty,placetype"`
	Modes []string `validate:"dive,transporttype"`
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := Validate(sample{Name: "Jernbanetorget", Type: "Stop", Modes: []string{"Bus", "metro"}})
		assert.NoError(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		err := Validate(sample{})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "required", appErr.Details["name"])
	})

	t.Run("unknown place type", func(t *testing.T) {
		err := Validate(sample{Name: "Oslo", Type: "Planet"})
		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, "placetype", appErr.Details["type"])
	})

	t.Run("unknown transport type", func(t *testing.T) {
		err := Validate(sample{Name: "Oslo", Modes: []string{"Zeppelin"}})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})
}
