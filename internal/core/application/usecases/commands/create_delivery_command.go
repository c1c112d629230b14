package commands

import (
	"errors"

	"deliveries/internal/pkg/errs"
	"deliveries/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a caller's request for a new delivery.
// All order payload fields are required; their content is opaque to this
// service and carried through to the published event unchanged.
type CreateDeliveryCommand struct {
	userID     string
	orderTime  string
	foods      []string
	totalPrice float64

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to request a new delivery.
func NewCreateDeliveryCommand(
	userID string,
	orderTime string,
	foods []string,
	totalPrice float64,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setOrderTime(orderTime),
		cmd.setFoods(foods),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	cmd.totalPrice = totalPrice
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// UserID returns the ordering user's identifier.
func (c CreateDeliveryCommand) UserID() string {
	return c.userID
}

// Time returns the opaque order time.
func (c CreateDeliveryCommand) Time() string {
	return c.orderTime
}

// Foods returns the ordered items.
func (c CreateDeliveryCommand) Foods() []string {
	return c.foods
}

// TotalPrice returns the order total.
func (c CreateDeliveryCommand) TotalPrice() float64 {
	return c.totalPrice
}

func (c *CreateDeliveryCommand) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	c.userID = userID
	return nil
}

func (c *CreateDeliveryCommand) setOrderTime(orderTime string) error {
	if orderTime == "" {
		return errs.NewValueIsRequiredError("time")
	}
	c.orderTime = orderTime
	return nil
}

func (c *CreateDeliveryCommand) setFoods(foods []string) error {
	if foods == nil {
		return errs.NewValueIsRequiredError("foods")
	}
	c.foods = foods
	return nil
}
