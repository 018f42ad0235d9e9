// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence. Handlers of lifecycle mutations additionally return the
// notification effects the mutation implies; dispatching them is the caller's
// concern and happens only after the transaction has committed.
package commands

import (
	"context"

	"ecommerce/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// TariffRepoFactory provides access to the tariff repository within a transaction.
	TariffRepoFactory interface {
		TariffRepository() ports.TariffRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProductUoW manages transactions for catalog-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// TariffUoW manages transactions for pricing-configuration operations.
	TariffUoW interface {
		TxManager
		TariffRepoFactory
	}

	// TariffUoWFactory creates new tariff unit of work instances.
	TariffUoWFactory interface {
		Create() TariffUoW
	}

	// OrderProductUoW manages transactions spanning orders and the catalog.
	// Used by status updates that restore reserved stock on cancellation.
	OrderProductUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderProductUoWFactory creates new order/product unit of work instances.
	OrderProductUoWFactory interface {
		Create() OrderProductUoW
	}

	// UoW manages transactions across orders, the catalog, and the tariff.
	// Used by order creation, which reserves stock, prices against the
	// current configuration, and persists the order atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   productRepo := uow.ProductRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		TariffRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
