package deliveryrepo

import (
	"context"
	"errors"

	"deliveries/internal/core/domain/model/delivery"
	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/core/ports"
	"deliveries/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update persists a lifecycle transition with a conditional write. The row
// mutates only while its stored status is one of expectedStatuses, so
// concurrent transitions on the same id serialize in the store. A zero-row
// update is disambiguated by a re-read: a missing row surfaces
// errs.ErrObjectNotFound, a row that moved on surfaces
// ports.ErrConcurrentTransition.
func (r *GormDeliveryRepository) Update(
	ctx context.Context,
	aggregate *delivery.Delivery,
	expectedStatuses ...delivery.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	tx := r.db.WithContext(ctx).Model(&DeliveryDTO{})
	if len(expectedStatuses) > 0 {
		expected := make([]string, 0, len(expectedStatuses))
		for _, s := range expectedStatuses {
			expected = append(expected, s.String())
		}
		tx = tx.Where("id = ? AND status IN ?", dto.ID, expected)
	} else {
		tx = tx.Where("id = ?", dto.ID)
	}

	result := tx.Updates(map[string]any{
		"driver_id": dto.DriverID,
		"status":    dto.Status,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&DeliveryDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
		}
		return ports.ErrConcurrentTransition
	}

	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
