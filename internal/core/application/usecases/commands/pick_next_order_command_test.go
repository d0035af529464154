package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPickNextOrderCommand(t *testing.T) {
	staff := kernel.NewUUID()

	cmd, err := commands.NewPickNextOrderCommand(staff)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, staff, cmd.StaffID())

	_, err = commands.NewPickNextOrderCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestPickNextOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.PickNextOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrPickNextOrderCommandIsNotConstructed)
}
