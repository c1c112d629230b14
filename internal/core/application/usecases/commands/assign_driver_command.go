package commands

import (
	"errors"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"
	"deliveries/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand requests assigning a driver to an existing delivery.
type AssignDriverCommand struct {
	deliveryID kernel.UUID
	driverID   string

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver.
// The delivery id must be valid and the driver id non-empty.
func NewAssignDriverCommand(deliveryID kernel.UUID, driverID string) (AssignDriverCommand, error) {
	if err := deliveryID.Validate(); err != nil {
		return AssignDriverCommand{}, err
	}
	if driverID == "" {
		return AssignDriverCommand{}, errs.NewValueIsRequiredError("driverId")
	}

	return AssignDriverCommand{
		deliveryID: deliveryID,
		driverID:   driverID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// DeliveryID returns the target delivery's identifier.
func (c AssignDriverCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DriverID returns the driver to assign.
func (c AssignDriverCommand) DriverID() string {
	return c.driverID
}
