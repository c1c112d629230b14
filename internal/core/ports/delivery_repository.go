// Package ports defines the contracts between the delivery core and its
// infrastructure collaborators: the record store and the event transport.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"
	"errors"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
)

// ErrConcurrentTransition is returned by conditional updates when the stored
// record left the expected status between read and write. The losing writer
// must not overwrite the concurrent transition.
var ErrConcurrentTransition = errors.New("delivery was transitioned concurrently")

// DeliveryRepository defines the persistence contract for delivery aggregates.
//
// The store is the single serialization point for a delivery id: Update is a
// conditional write restricted to expected statuses, so two concurrent
// assignment/completion requests on the same id cannot interleave into an
// inconsistent state. The core holds no locks of its own.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate.
	// The delivery must be valid and not already exist.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery, but only while its
	// stored status is one of expectedStatuses. Returns ErrObjectNotFound if
	// the record does not exist and ErrConcurrentTransition if it exists but
	// already left the expected statuses.
	Update(ctx context.Context, aggregate *delivery.Delivery, expectedStatuses ...delivery.Status) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)
}
