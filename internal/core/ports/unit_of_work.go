package ports

import "context"

// UnitOfWork manages transactional boundaries across repositories.
// All repositories obtained from a unit of work share the same
// transaction, so a shipment's status write and its stock decrements
// commit or roll back together.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Safe to call after Commit; it becomes a no-op.
	Rollback(ctx context.Context) error

	// OrderRepository returns an order repository bound to the
	// current transaction.
	OrderRepository() OrderRepository

	// ProductRepository returns a product repository bound to the
	// current transaction.
	ProductRepository() ProductRepository

	// AddressRepository returns an address repository bound to the
	// current transaction.
	AddressRepository() AddressRepository
}

// UnitOfWorkFactory creates unit of work instances. Each handler
// invocation gets a fresh unit of work with its own transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
