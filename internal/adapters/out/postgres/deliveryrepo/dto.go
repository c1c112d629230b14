// Package deliveryrepo provides the data transfer objects and mapping
// functions for delivery persistence. It converts between the delivery
// aggregate and its relational representation.
package deliveryrepo

import (
	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database row for a delivery aggregate.
// Status is stored in its wire string form so rows stay readable and the
// conditional status predicate matches what handlers publish. Foods is an
// opaque payload serialized as JSON.
type DeliveryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     string    `gorm:"index"`
	DriverID   *string
	Status     string   `gorm:"index"`
	Foods      []string `gorm:"serializer:json"`
	OrderTime  string   `gorm:"column:order_time"`
	TotalPrice float64
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:         aggregate.ID().Bytes(),
		UserID:     aggregate.UserID(),
		DriverID:   aggregate.DriverID(),
		Status:     aggregate.Status().String(),
		Foods:      aggregate.Foods(),
		OrderTime:  aggregate.Time(),
		TotalPrice: aggregate.TotalPrice(),
	}
}

// toDomain reconstructs a delivery aggregate from a database row.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		dto.UserID,
		dto.DriverID,
		status,
		dto.OrderTime,
		dto.Foods,
		dto.TotalPrice,
	)
}
