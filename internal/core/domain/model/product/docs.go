// Package product provides the stock-relevant subset of the catalog's product
// entity. The fulfillment core mutates only the stock count, and only during
// shipment transitions; product lifecycle and all other attributes belong to
// the catalog collaborator.
//
// Key business rules:
//   - Stock is a non-negative integer and never goes negative
//   - A decrement that would overdraw stock is rejected with a typed error
//     naming the product, the requested quantity, and the available stock
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package product
