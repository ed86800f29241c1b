package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerOrdersQuery_Success(t *testing.T) {
	customerID := kernel.NewUUID()

	query, err := queries.NewGetCustomerOrdersQuery(customerID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, customerID, query.CustomerID())
}

func TestNewGetCustomerOrdersQuery_InvalidCustomerID(t *testing.T) {
	_, err := queries.NewGetCustomerOrdersQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetCustomerOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetCustomerOrdersQuery{}

	err := query.Validate()

	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetCustomerOrdersQueryIsNotConstructed)
}
