package ports

import (
	"deliveries/internal/core/domain/model/delivery"
)

// Event types exchanged with the rest of the system over the event bus.
const (
	// EventTypeOrderProcessed is the inbound creation event consumed by this
	// service. Any other inbound type is acknowledged and ignored.
	EventTypeOrderProcessed = "OrderProcessed"

	// EventTypeOrderCreated is published when a caller requests a new
	// delivery; the authoritative record is created when the bus relays the
	// processed order back to us.
	EventTypeOrderCreated = "OrderCreated"

	// EventTypeDeliveryUpdated is published after every successful
	// assignment or completion, carrying the new record.
	EventTypeDeliveryUpdated = "DeliveryUpdated"
)

// IntegrationEvent is the envelope all services exchange through the bus.
type IntegrationEvent struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// DeliveryData is the wire representation of a delivery record, used both in
// published events and in HTTP responses. Field names follow the contract
// other services already consume.
type DeliveryData struct {
	ID         string   `json:"_id"`
	UserID     string   `json:"userId"`
	DriverID   *string  `json:"driverId,omitempty"`
	Status     string   `json:"status"`
	Foods      []string `json:"foods"`
	Time       string   `json:"time"`
	TotalPrice float64  `json:"totalPrice"`
}

// DeliveryDataFromDomain maps a delivery aggregate to its wire representation.
func DeliveryDataFromDomain(d *delivery.Delivery) DeliveryData {
	return DeliveryData{
		ID:         d.ID().String(),
		UserID:     d.UserID(),
		DriverID:   d.DriverID(),
		Status:     d.Status().String(),
		Foods:      d.Foods(),
		Time:       d.Time(),
		TotalPrice: d.TotalPrice(),
	}
}

// OrderCreatedData is the payload of an EventTypeOrderCreated event: the
// caller's order request plus the service discriminator the bus consumers
// expect.
type OrderCreatedData struct {
	UserID     string   `json:"userId"`
	Time       string   `json:"time"`
	Foods      []string `json:"foods"`
	TotalPrice float64  `json:"totalPrice"`
	Type       string   `json:"type"`
}

// EventPublisher is the outbound port to the event transport.
//
// Publish is best-effort and detached: implementations deliver the event in
// the background, never block the caller, and drain failures into a logger.
// No retries are performed; at-least-once semantics rely on the upstream
// producer's own redelivery.
type EventPublisher interface {
	Publish(event IntegrationEvent)
}
