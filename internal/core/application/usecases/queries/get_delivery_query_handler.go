package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"deliveries/internal/core/domain/model/kernel"
	"deliveries/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryQueryHandler reads a single delivery record straight from the
// database, bypassing the aggregate layer.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single-delivery lookups.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the lookup. Unknown ids surface errs.ErrObjectNotFound.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			driver_id,
			status,
			foods,
			order_time,
			total_price
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryResponse{}, err
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID().String())
	}

	resp, err := scanDeliveryRow(rows)
	if err != nil {
		return DeliveryResponse{}, err
	}

	return resp, rows.Err()
}

func scanDeliveryRow(rows *sql.Rows) (DeliveryResponse, error) {
	var (
		id         uuid.UUID
		userID     string
		driverID   sql.NullString
		status     string
		foodsRaw   []byte
		orderTime  string
		totalPrice float64
	)

	err := rows.Scan(
		&id,
		&userID,
		&driverID,
		&status,
		&foodsRaw,
		&orderTime,
		&totalPrice,
	)
	if err != nil {
		return DeliveryResponse{}, err
	}

	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DeliveryResponse{}, err
	}

	foods := make([]string, 0)
	if len(foodsRaw) > 0 {
		if err = json.Unmarshal(foodsRaw, &foods); err != nil {
			return DeliveryResponse{}, err
		}
	}

	resp := DeliveryResponse{
		ID:         deliveryID,
		UserID:     userID,
		Status:     status,
		Foods:      foods,
		Time:       orderTime,
		TotalPrice: totalPrice,
	}
	if driverID.Valid {
		resp.DriverID = &driverID.String
	}

	return resp, nil
}
