package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteOrderCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCompleteOrderCommand(id)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())

	_, err = commands.NewCompleteOrderCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCompleteOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CompleteOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrCompleteOrderCommandIsNotConstructed)
}
