package commands

import (
	"context"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/ports"
)

// CompleteDeliveryCommandHandler orchestrates the transition to delivered.
//
// Completion is accepted from ordered or in_transit. Completing an
// already-delivered record is an idempotent no-op success returning the
// stored record: inbound commands may be duplicated or redelivered, and a
// failing retry would turn duplicate events into error storms.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle completes the delivery and returns the terminal record.
// The no-op path (already delivered) performs no update and no publish.
func (h CompleteDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()

	aggregate, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	changed, err := aggregate.Complete()
	if err != nil {
		return nil, err
	}

	if !changed {
		return aggregate, nil
	}

	if err = repo.Update(ctx, aggregate, delivery.Ordered, delivery.InTransit); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ports.IntegrationEvent{
		Type: ports.EventTypeDeliveryUpdated,
		Data: ports.DeliveryDataFromDomain(aggregate),
	})

	return aggregate, nil
}
