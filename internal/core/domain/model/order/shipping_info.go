package order

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrShippingInfoIsNotConstructed is returned when a ShippingInfo was not
// created through the NewShippingInfo factory method.
var ErrShippingInfoIsNotConstructed = errors.New("ShippingInfo must be created via NewShippingInfo constructor")

// ShippingInfo is the destination snapshot copied from the customer's
// address at placement time. Later address edits never retroactively
// change placed orders.
type ShippingInfo struct {
	address string
	state   string
	city    string
	pin     string
	phone   string

	guard guard.ConstructorGuard
}

// NewShippingInfo creates a validated shipping snapshot.
// All five fields are required, matching the address record they are
// copied from.
func NewShippingInfo(address, state, city, pin, phone string) (ShippingInfo, error) {
	info := ShippingInfo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		info.setAddress(address),
		info.setState(state),
		info.setCity(city),
		info.setPin(pin),
		info.setPhone(phone),
	); err != nil {
		return ShippingInfo{}, err
	}

	return info, nil
}

// Validate ensures the ShippingInfo was created through NewShippingInfo.
func (s ShippingInfo) Validate() error {
	return s.guard.Validate(ErrShippingInfoIsNotConstructed)
}

// Address returns the street address line.
func (s ShippingInfo) Address() string {
	return s.address
}

// State returns the destination state.
func (s ShippingInfo) State() string {
	return s.state
}

// City returns the destination city.
func (s ShippingInfo) City() string {
	return s.city
}

// Pin returns the postal code.
func (s ShippingInfo) Pin() string {
	return s.pin
}

// Phone returns the contact phone number.
func (s ShippingInfo) Phone() string {
	return s.phone
}

func (s *ShippingInfo) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.address = address
	return nil
}

func (s *ShippingInfo) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	s.state = state
	return nil
}

func (s *ShippingInfo) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	s.city = city
	return nil
}

func (s *ShippingInfo) setPin(pin string) error {
	if pin == "" {
		return errs.NewValueIsRequiredError("pin")
	}
	s.pin = pin
	return nil
}

func (s *ShippingInfo) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	s.phone = phone
	return nil
}
