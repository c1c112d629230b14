// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: a validated command object, a
// handler managing the transaction, and at most one best-effort outbound
// publish per successful mutation.
package commands

import (
	"context"

	"deliveries/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// DeliveryUoW manages transactions for delivery mutations.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	// DeliveryUoWFactory creates a fresh unit of work per command.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
