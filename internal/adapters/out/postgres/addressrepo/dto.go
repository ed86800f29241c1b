// Package addressrepo provides data transfer objects and mapping functions for
// customer address persistence. A customer owns at most one stored address.
package addressrepo

import (
	"fulfillment/internal/core/domain/model/address"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerAddressDTO represents the database structure for persisting
// customer address aggregates.
type CustomerAddressDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Address    string
	State      string
	City       string
	Pin        string
	Phone      string
}

// TableName specifies the database table name for customer addresses.
func (CustomerAddressDTO) TableName() string {
	return "customer_addresses"
}

// fromDomain converts a customer address aggregate to its database representation.
func fromDomain(aggregate *address.CustomerAddress) CustomerAddressDTO {
	return CustomerAddressDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Address:    aggregate.Address(),
		State:      aggregate.State(),
		City:       aggregate.City(),
		Pin:        aggregate.Pin(),
		Phone:      aggregate.Phone(),
	}
}

// toDomain converts a database DTO to a customer address aggregate.
func toDomain(dto CustomerAddressDTO) (*address.CustomerAddress, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return address.NewCustomerAddress(
		id, customerID, dto.Address, dto.State, dto.City, dto.Pin, dto.Phone,
	)
}
