package commands_test

import (
	"testing"

	"deliveries/internal/core/application/usecases/commands"
	"deliveries/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDeliveryCommand(t *testing.T) {
	t.Run("should create command from order payload", func(t *testing.T) {
		cmd, err := commands.NewCreateDeliveryCommand("u1", "12:00", []string{"pizza", "cola"}, 21.5)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "u1", cmd.UserID())
		assert.Equal(t, "12:00", cmd.Time())
		assert.Equal(t, []string{"pizza", "cola"}, cmd.Foods())
		assert.InDelta(t, 21.5, cmd.TotalPrice(), 0.0001)
	})

	t.Run("should accept empty foods list", func(t *testing.T) {
		cmd, err := commands.NewCreateDeliveryCommand("u1", "12:00", []string{}, 0)

		require.NoError(t, err)
		assert.Empty(t, cmd.Foods())
	})

	t.Run("should reject missing userId", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand("", "12:00", []string{"pizza"}, 15)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject missing time", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand("u1", "", []string{"pizza"}, 15)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject absent foods", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand("u1", "12:00", nil, 15)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero-value command", func(t *testing.T) {
		var cmd commands.CreateDeliveryCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDeliveryCommandIsNotConstructed)
	})
}
