package commands

import (
	"context"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/ports"
)

// AssignDriverCommandHandler orchestrates the ordered -> in_transit transition.
//
// The read-modify-write runs inside a unit of work with a conditional update
// keyed on the expected status, so concurrent requests on the same id
// serialize in the store. On success the updated record is published
// best-effort; publish failures never roll back the committed mutation.
type AssignDriverCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle assigns the driver and returns the updated record.
// Unknown ids surface errs.ErrObjectNotFound; lifecycle conflicts surface
// delivery.ErrInvalidTransition or ports.ErrConcurrentTransition.
func (h AssignDriverCommandHandler) Handle(
	ctx context.Context,
	cmd AssignDriverCommand,
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

	if err = aggregate.AssignDriver(cmd.DriverID()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate, delivery.Ordered); err != nil {
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
