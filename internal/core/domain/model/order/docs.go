// Package order provides domain entities and business logic for order management
// in the fulfillment system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - LineItem, ShippingInfo, CostInfo, PaymentInfo: value objects snapshotted
//     at placement time
//
// Key business rules:
//   - Orders must have a valid identifier, owning customer, and at least one line item
//   - Order status follows a strictly forward workflow: Processing -> Shipped -> Delivered
//   - Repeated shipments, backward moves, and exits from Delivered are rejected
//   - Line items, shipping snapshot, and cost breakdown are immutable after placement
//   - DeliveredAt is stamped exactly once, on the transition into Delivered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
