package commands

import (
	"context"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/core/ports"
)

// ProcessOrderEventCommandHandler consumes inbound domain events.
//
// Only OrderProcessed events are recognized; all other types are ignored
// with no side effect, keeping the handler forward-compatible with event
// types this service does not yet handle. Creation is synchronous to the
// caller and emits no outbound event.
type ProcessOrderEventCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewProcessOrderEventCommandHandler creates a handler for inbound bus events.
func NewProcessOrderEventCommandHandler(uowFactory DeliveryUoWFactory) ProcessOrderEventCommandHandler {
	return ProcessOrderEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes an inbound event.
//
// Returns (nil, nil) for unrecognized event types. For OrderProcessed events
// whose embedded status is not "ordered" it returns
// delivery.ErrInsufficientFunds and persists nothing. Otherwise the new
// delivery is persisted in Ordered status and returned.
func (h ProcessOrderEventCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessOrderEventCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.EventType() != ports.EventTypeOrderProcessed {
		return nil, nil
	}

	if cmd.Status() != delivery.Ordered.String() {
		return nil, delivery.ErrInsufficientFunds
	}

	aggregate, err := delivery.NewDelivery(
		kernel.NewUUID(),
		cmd.UserID(),
		cmd.Time(),
		cmd.Foods(),
		cmd.TotalPrice(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
