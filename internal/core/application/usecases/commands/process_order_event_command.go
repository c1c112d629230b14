package commands

import (
	"errors"

	"deliveries/internal/pkg/errs"
	"deliveries/internal/pkg/guard"
)

var ErrProcessOrderEventCommandIsNotConstructed = errors.New(
	"ProcessOrderEventCommand must be created via NewProcessOrderEventCommand constructor",
)

// ProcessOrderEventCommand carries an inbound domain event from the bus.
// The event type is required; the payload is validated only once the event
// is recognized as a creation event, so unrecognized types can carry
// arbitrary data and still be acknowledged.
type ProcessOrderEventCommand struct {
	eventType  string
	status     string
	userID     string
	orderTime  string
	foods      []string
	totalPrice float64

	guard guard.ConstructorGuard
}

// NewProcessOrderEventCommand creates a command from a decoded bus event.
func NewProcessOrderEventCommand(
	eventType string,
	status string,
	userID string,
	orderTime string,
	foods []string,
	totalPrice float64,
) (ProcessOrderEventCommand, error) {
	if eventType == "" {
		return ProcessOrderEventCommand{}, errs.NewValueIsRequiredError("type")
	}

	return ProcessOrderEventCommand{
		eventType:  eventType,
		status:     status,
		userID:     userID,
		orderTime:  orderTime,
		foods:      foods,
		totalPrice: totalPrice,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderEventCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderEventCommandIsNotConstructed)
}

// EventType returns the bus event type.
func (c ProcessOrderEventCommand) EventType() string {
	return c.eventType
}

// Status returns the status embedded in the event payload.
func (c ProcessOrderEventCommand) Status() string {
	return c.status
}

// UserID returns the ordering user's identifier from the payload.
func (c ProcessOrderEventCommand) UserID() string {
	return c.userID
}

// Time returns the opaque order time from the payload.
func (c ProcessOrderEventCommand) Time() string {
	return c.orderTime
}

// Foods returns the ordered items from the payload.
func (c ProcessOrderEventCommand) Foods() []string {
	return c.foods
}

// TotalPrice returns the order total from the payload.
func (c ProcessOrderEventCommand) TotalPrice() float64 {
	return c.totalPrice
}
