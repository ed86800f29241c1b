// Package address provides the customer address aggregate. Each customer has
// at most one address on file; placing an order snapshots it into the order's
// shipping info, so later edits never affect placed orders.
package address

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrAddressIsNotConstructed is returned when a CustomerAddress was not created
	// through the NewCustomerAddress factory method.
	ErrAddressIsNotConstructed = errors.New("CustomerAddress must be created via NewCustomerAddress constructor")
)

// CustomerAddress is the single address a customer keeps on file.
// All five location fields are required.
type CustomerAddress struct {
	id         kernel.UUID
	customerID kernel.UUID
	address    string
	state      string
	city       string
	pin        string
	phone      string

	isConstructed bool
}

// NewCustomerAddress creates a validated address for a customer.
//
// Returns:
//   - *CustomerAddress: the created address if all validations pass
//   - error: aggregated validation errors otherwise
func NewCustomerAddress(id, customerID kernel.UUID, address, state, city, pin, phone string) (*CustomerAddress, error) {
	a := &CustomerAddress{
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setCustomerID(customerID),
		a.setField(&a.address, "address", address),
		a.setField(&a.state, "state", state),
		a.setField(&a.city, "city", city),
		a.setField(&a.pin, "pin", pin),
		a.setField(&a.phone, "phone", phone),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the CustomerAddress was created via NewCustomerAddress.
func (a *CustomerAddress) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAddressIsNotConstructed
	}

	return nil
}

// ID returns the address identifier.
func (a *CustomerAddress) ID() kernel.UUID {
	return a.id
}

// CustomerID returns the owning customer's identity.
func (a *CustomerAddress) CustomerID() kernel.UUID {
	return a.customerID
}

// Address returns the street address line.
func (a *CustomerAddress) Address() string {
	return a.address
}

// State returns the state.
func (a *CustomerAddress) State() string {
	return a.state
}

// City returns the city.
func (a *CustomerAddress) City() string {
	return a.city
}

// Pin returns the postal code.
func (a *CustomerAddress) Pin() string {
	return a.pin
}

// Phone returns the contact phone number.
func (a *CustomerAddress) Phone() string {
	return a.phone
}

// Update applies a patch to the address. Nil patch fields are left
// untouched; a patch field set to an empty string is rejected, since every
// address field is required. This distinguishes "absent" from "explicitly
// cleared" instead of guessing from zero values.
func (a *CustomerAddress) Update(patch Patch) error {
	if patch.IsEmpty() {
		return errs.NewValueIsRequiredError("at least one field to update")
	}

	updated := *a
	if err := errors.Join(
		applyPatchField(&updated.address, "address", patch.Address),
		applyPatchField(&updated.state, "state", patch.State),
		applyPatchField(&updated.city, "city", patch.City),
		applyPatchField(&updated.pin, "pin", patch.Pin),
		applyPatchField(&updated.phone, "phone", patch.Phone),
	); err != nil {
		return err
	}

	*a = updated
	return nil
}

// Patch names the address fields a caller intends to change. A nil field
// means "leave as is"; a pointer to an empty string means "clear", which is
// invalid for address fields and rejected.
type Patch struct {
	Address *string
	State   *string
	City    *string
	Pin     *string
	Phone   *string
}

// IsEmpty reports whether the patch names no fields at all.
func (p Patch) IsEmpty() bool {
	return p.Address == nil && p.State == nil && p.City == nil && p.Pin == nil && p.Phone == nil
}

func applyPatchField(dst *string, name string, value *string) error {
	if value == nil {
		return nil
	}
	if *value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = *value
	return nil
}

func (a *CustomerAddress) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *CustomerAddress) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	a.customerID = customerID
	return nil
}

func (a *CustomerAddress) setField(dst *string, name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	*dst = value
	return nil
}
