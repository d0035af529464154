package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmOrderCommand(t *testing.T) {
	c := newCustomer(t)

	cmd, err := commands.NewConfirmOrderCommand(c)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, c, cmd.Customer())

	_, err = commands.NewConfirmOrderCommand(customer.Customer{})
	require.ErrorIs(t, err, customer.ErrCustomerIsNotConstructed)
}

func TestConfirmOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.ConfirmOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrConfirmOrderCommandIsNotConstructed)
}
