// Package restaurantrepo persists the restaurant catalog the delivery
// front ends read menus from. The catalog is reference data: it is seeded
// once at first boot and never mutated by the lifecycle flows.
package restaurantrepo

import (
	"github.com/google/uuid"
)

// RestaurantDTO represents the database row for a restaurant.
type RestaurantDTO struct {
	ID   uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name string        `gorm:"uniqueIndex"`
	Menu []MenuItemDTO `gorm:"serializer:json"`
}

// MenuItemDTO is one orderable dish on a restaurant's menu.
type MenuItemDTO struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}
