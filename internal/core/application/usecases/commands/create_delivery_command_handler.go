package commands

import (
	"context"

	"deliveries/internal/core/ports"
)

// CreateDeliveryCommandHandler handles delivery creation requests.
//
// Creation is not persisted here: the handler publishes an OrderCreated
// event to the bus and answers optimistically. The authoritative record is
// created when the bus relays the processed order back through the inbound
// event handler. Publish failures are drained into the transport's logger
// and never fail the caller's request.
type CreateDeliveryCommandHandler struct {
	publisher ports.EventPublisher
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation requests.
func NewCreateDeliveryCommandHandler(publisher ports.EventPublisher) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		publisher: publisher,
	}
}

// Handle validates the request, publishes the pending creation event
// best-effort, and returns the published event as the pending record.
func (h CreateDeliveryCommandHandler) Handle(
	_ context.Context,
	cmd CreateDeliveryCommand,
) (ports.IntegrationEvent, error) {
	if err := cmd.Validate(); err != nil {
		return ports.IntegrationEvent{}, err
	}

	event := ports.IntegrationEvent{
		Type: ports.EventTypeOrderCreated,
		Data: ports.OrderCreatedData{
			UserID:     cmd.UserID(),
			Time:       cmd.Time(),
			Foods:      cmd.Foods(),
			TotalPrice: cmd.TotalPrice(),
			Type:       "delivery",
		},
	}

	h.publisher.Publish(event)

	return event, nil
}
