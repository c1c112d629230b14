package delivery

import (
	"errors"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrInsufficientFunds is the domain-level rejection of a creation event
	// whose embedded status is not "ordered". Upstream marks unpaid orders
	// with a different status; such orders never become delivery records.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDriverAlreadyAssigned guards the set-exactly-once rule for driverID.
	ErrDriverAlreadyAssigned = errors.New("driver is already assigned")
)

// Delivery is the aggregate root tracking one order's fulfillment from
// creation to completion.
//
// Invariants:
//   - created only in Ordered status, with no driver
//   - driverID is set exactly once, on the Ordered -> InTransit transition
//   - status only moves forward; Delivered is terminal and immutable
//   - the order payload (foods, time, totalPrice) is carried through
//     unchanged and never interpreted here
type Delivery struct {
	id         kernel.UUID
	userID     string
	driverID   *string
	status     Status
	foods      []string
	orderTime  string
	totalPrice float64

	// isConstructed ensures the delivery was created via a constructor
	isConstructed bool
}

// NewDelivery creates a delivery in Ordered status from an accepted order
// event. The order payload fields are required but otherwise opaque.
func NewDelivery(
	id kernel.UUID,
	userID string,
	orderTime string,
	foods []string,
	totalPrice float64,
) (*Delivery, error) {
	d := &Delivery{
		status:        Ordered,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setOrderTime(orderTime),
		d.setFoods(foods),
	); err != nil {
		return nil, err
	}

	d.totalPrice = totalPrice
	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence. Unlike
// NewDelivery it accepts any valid status and an optional driver, but still
// verifies the status/driver consistency rules.
func RestoreDelivery(
	id kernel.UUID,
	userID string,
	driverID *string,
	status Status,
	orderTime string,
	foods []string,
	totalPrice float64,
) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveDriver(driverID != nil); err != nil {
		return nil, err
	}
	if driverID != nil && *driverID == "" {
		return nil, errs.NewValueIsRequiredError("driverId")
	}

	d := &Delivery{
		status:        status,
		driverID:      driverID,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setOrderTime(orderTime),
		d.setFoods(foods),
	); err != nil {
		return nil, err
	}

	d.totalPrice = totalPrice
	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
// Called by repositories before persisting an aggregate.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by identifier.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// UserID returns the opaque identifier of the ordering user.
func (d *Delivery) UserID() string {
	return d.userID
}

// DriverID returns the assigned driver's identifier, or nil before assignment.
func (d *Delivery) DriverID() *string {
	return d.driverID
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// Foods returns the ordered food items, carried through unchanged.
func (d *Delivery) Foods() []string {
	return d.foods
}

// Time returns the opaque order time payload.
func (d *Delivery) Time() string {
	return d.orderTime
}

// TotalPrice returns the opaque order total.
func (d *Delivery) TotalPrice() float64 {
	return d.totalPrice
}

// AssignDriver assigns a driver and moves the delivery to InTransit.
// The driver is set exactly once; assignment is only valid from Ordered.
func (d *Delivery) AssignDriver(driverID string) error {
	if driverID == "" {
		return errs.NewValueIsRequiredError("driverId")
	}
	if d.driverID != nil {
		return ErrDriverAlreadyAssigned
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.driverID = &driverID
	return nil
}

// Complete marks the delivery as delivered. Returns changed=false when the
// delivery is already in the terminal state, so callers can skip persisting
// and republishing on redelivered completion commands.
func (d *Delivery) Complete() (changed bool, err error) {
	if d.status == Delivered {
		return false, nil
	}

	newStatus, err := d.status.Complete()
	if err != nil {
		return false, err
	}

	d.status = newStatus
	return true, nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setUserID(userID string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	d.userID = userID
	return nil
}

func (d *Delivery) setOrderTime(orderTime string) error {
	if orderTime == "" {
		return errs.NewValueIsRequiredError("time")
	}
	d.orderTime = orderTime
	return nil
}

func (d *Delivery) setFoods(foods []string) error {
	if foods == nil {
		return errs.NewValueIsRequiredError("foods")
	}
	d.foods = foods
	return nil
}
