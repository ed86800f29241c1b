package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCostInfoIsNotConstructed is returned when a CostInfo was not created
// through the NewCostInfo factory method.
var ErrCostInfoIsNotConstructed = errors.New("CostInfo must be created via NewCostInfo constructor")

// CostInfo carries the monetary breakdown fixed at placement time. The
// fulfillment core never recomputes these values.
//
// Zero is a legal amount for every component: a fully discounted order has
// an item cost of 0 and still places successfully. Absence is expressed by
// not constructing a CostInfo at all, never by a zero value.
type CostInfo struct {
	itemCost     float64
	taxCost      float64
	shippingCost float64
	totalCost    float64

	guard guard.ConstructorGuard
}

// NewCostInfo creates a validated cost breakdown.
// Every component must be non-negative; no cross-component arithmetic is
// checked, since pricing belongs to the checkout collaborator.
func NewCostInfo(itemCost, taxCost, shippingCost, totalCost float64) (CostInfo, error) {
	cost := CostInfo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cost.setItemCost(itemCost),
		cost.setTaxCost(taxCost),
		cost.setShippingCost(shippingCost),
		cost.setTotalCost(totalCost),
	); err != nil {
		return CostInfo{}, err
	}

	return cost, nil
}

// Validate ensures the CostInfo was created through NewCostInfo.
func (c CostInfo) Validate() error {
	return c.guard.Validate(ErrCostInfoIsNotConstructed)
}

// ItemCost returns the summed line-item cost.
func (c CostInfo) ItemCost() float64 {
	return c.itemCost
}

// TaxCost returns the tax component.
func (c CostInfo) TaxCost() float64 {
	return c.taxCost
}

// ShippingCost returns the shipping component.
func (c CostInfo) ShippingCost() float64 {
	return c.shippingCost
}

// TotalCost returns the total charged for the order.
func (c CostInfo) TotalCost() float64 {
	return c.totalCost
}

func (c *CostInfo) setItemCost(v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause("itemCost", fmt.Errorf("%f is negative", v))
	}
	c.itemCost = v
	return nil
}

func (c *CostInfo) setTaxCost(v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause("taxCost", fmt.Errorf("%f is negative", v))
	}
	c.taxCost = v
	return nil
}

func (c *CostInfo) setShippingCost(v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shippingCost", fmt.Errorf("%f is negative", v))
	}
	c.shippingCost = v
	return nil
}

func (c *CostInfo) setTotalCost(v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalCost", fmt.Errorf("%f is negative", v))
	}
	c.totalCost = v
	return nil
}
