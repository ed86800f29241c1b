package address_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/address"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAddress(t *testing.T) *address.CustomerAddress {
	t.Helper()

	created, err := address.NewCustomerAddress(
		kernel.NewUUID(), kernel.NewUUID(),
		"12 High Street", "CA", "Springfield", "90210", "555-0101",
	)
	require.NoError(t, err)
	return created
}

func strPtr(s string) *string {
	return &s
}

func TestNewCustomerAddress(t *testing.T) {
	t.Run("should create address with valid parameters", func(t *testing.T) {
		addressID := kernel.NewUUID()
		customerID := kernel.NewUUID()

		created, err := address.NewCustomerAddress(
			addressID, customerID,
			"12 High Street", "CA", "Springfield", "90210", "555-0101",
		)

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.True(t, created.ID().IsEqual(addressID))
		assert.True(t, created.CustomerID().IsEqual(customerID))
		assert.Equal(t, "12 High Street", created.Address())
		assert.Equal(t, "CA", created.State())
		assert.Equal(t, "Springfield", created.City())
		assert.Equal(t, "90210", created.Pin())
		assert.Equal(t, "555-0101", created.Phone())
		require.NoError(t, created.Validate())
	})

	t.Run("should reject empty ids", func(t *testing.T) {
		created, err := address.NewCustomerAddress(
			kernel.UUID{}, kernel.UUID{},
			"12 High Street", "CA", "Springfield", "90210", "555-0101",
		)

		require.Error(t, err)
		assert.Nil(t, created)
	})

	t.Run("should require every location field", func(t *testing.T) {
		testCases := []struct {
			field  string
			values [5]string
		}{
			{"address", [5]string{"", "CA", "Springfield", "90210", "555-0101"}},
			{"state", [5]string{"12 High Street", "", "Springfield", "90210", "555-0101"}},
			{"city", [5]string{"12 High Street", "CA", "", "90210", "555-0101"}},
			{"pin", [5]string{"12 High Street", "CA", "Springfield", "", "555-0101"}},
			{"phone", [5]string{"12 High Street", "CA", "Springfield", "90210", ""}},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should reject empty %s", tc.field), func(t *testing.T) {
				created, err := address.NewCustomerAddress(
					kernel.NewUUID(), kernel.NewUUID(),
					tc.values[0], tc.values[1], tc.values[2], tc.values[3], tc.values[4],
				)

				require.Error(t, err)
				assert.Nil(t, created)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
				assert.Contains(t, err.Error(), tc.field)
			})
		}
	})
}

func TestCustomerAddress_Validate(t *testing.T) {
	t.Run("should reject address not created via constructor", func(t *testing.T) {
		var raw address.CustomerAddress

		err := raw.Validate()

		require.Error(t, err)
		assert.Equal(t, address.ErrAddressIsNotConstructed, err)
	})

	t.Run("should reject nil address", func(t *testing.T) {
		var created *address.CustomerAddress

		err := created.Validate()

		require.Error(t, err)
		assert.Equal(t, address.ErrAddressIsNotConstructed, err)
	})
}

func TestCustomerAddress_Update(t *testing.T) {
	t.Run("should update only the named fields", func(t *testing.T) {
		created := newTestAddress(t)

		err := created.Update(address.Patch{
			City: strPtr("Shelbyville"),
			Pin:  strPtr("90211"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Shelbyville", created.City())
		assert.Equal(t, "90211", created.Pin())
		assert.Equal(t, "12 High Street", created.Address())
		assert.Equal(t, "CA", created.State())
		assert.Equal(t, "555-0101", created.Phone())
	})

	t.Run("should reject an empty patch", func(t *testing.T) {
		created := newTestAddress(t)

		err := created.Update(address.Patch{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject clearing a field to empty", func(t *testing.T) {
		created := newTestAddress(t)

		err := created.Update(address.Patch{
			City: strPtr(""),
		})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should apply nothing when any field is invalid", func(t *testing.T) {
		created := newTestAddress(t)

		err := created.Update(address.Patch{
			City:  strPtr("Shelbyville"),
			Phone: strPtr(""),
		})

		require.Error(t, err)
		assert.Equal(t, "Springfield", created.City())
		assert.Equal(t, "555-0101", created.Phone())
	})
}

func TestPatch_IsEmpty(t *testing.T) {
	t.Run("should report an empty patch", func(t *testing.T) {
		assert.True(t, address.Patch{}.IsEmpty())
	})

	t.Run("should report a non-empty patch", func(t *testing.T) {
		assert.False(t, address.Patch{City: strPtr("Shelbyville")}.IsEmpty())
	})
}
