package commands_test

import (
	"testing"

	"deliveries/internal/core/application/usecases/commands"
	"deliveries/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessOrderEventCommand(t *testing.T) {
	t.Run("should create command from event fields", func(t *testing.T) {
		cmd, err := commands.NewProcessOrderEventCommand(
			"OrderProcessed", "ordered", "u1", "12:00", []string{"pizza"}, 15)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "OrderProcessed", cmd.EventType())
		assert.Equal(t, "ordered", cmd.Status())
		assert.Equal(t, "u1", cmd.UserID())
		assert.Equal(t, "12:00", cmd.Time())
		assert.Equal(t, []string{"pizza"}, cmd.Foods())
		assert.InDelta(t, 15.0, cmd.TotalPrice(), 0.0001)
	})

	t.Run("should accept unrecognized event types with empty payload", func(t *testing.T) {
		cmd, err := commands.NewProcessOrderEventCommand("UserCreated", "", "", "", nil, 0)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("should reject missing event type", func(t *testing.T) {
		_, err := commands.NewProcessOrderEventCommand("", "ordered", "u1", "12:00", []string{"pizza"}, 15)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero-value command", func(t *testing.T) {
		var cmd commands.ProcessOrderEventCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrProcessOrderEventCommandIsNotConstructed)
	})
}
