package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetLowStockProductsQueryIsNotConstructed = errors.New(
		"GetLowStockProductsQuery must be created via NewGetLowStockProductsQuery constructor",
	)
	ErrThresholdIsInvalid = errors.New("threshold must be greater than 0")
)

// GetLowStockProductsQuery retrieves products whose stock has fallen below a
// threshold. Feeds the periodic low stock report.
type GetLowStockProductsQuery struct {
	threshold int

	guard guard.ConstructorGuard
}

// NewGetLowStockProductsQuery creates a query for products running low on stock.
// Validates that the threshold is positive.
func NewGetLowStockProductsQuery(threshold int) (GetLowStockProductsQuery, error) {
	if threshold <= 0 {
		return GetLowStockProductsQuery{}, ErrThresholdIsInvalid
	}

	return GetLowStockProductsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockProductsQueryIsNotConstructed if validation fails.
func (q GetLowStockProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockProductsQueryIsNotConstructed)
}

// Threshold returns the stock level below which products are reported.
func (q GetLowStockProductsQuery) Threshold() int {
	return q.threshold
}

// GetLowStockProductsQueryResponse represents one product running low on stock.
type GetLowStockProductsQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Stock int
}
