package restaurantrepo

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seed inserts the initial restaurant catalog on first boot. An already
// populated table is left untouched so redeployments keep operator edits.
func Seed(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&RestaurantDTO{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	restaurants := []RestaurantDTO{
		{
			ID:   uuid.New(),
			Name: "Pizza Palace",
			Menu: []MenuItemDTO{
				{Name: "Margherita", Price: 8.5},
				{Name: "Pepperoni", Price: 10},
				{Name: "Quattro Formaggi", Price: 11.5},
			},
		},
		{
			ID:   uuid.New(),
			Name: "Burger Barn",
			Menu: []MenuItemDTO{
				{Name: "Classic Burger", Price: 7},
				{Name: "Cheeseburger", Price: 8},
				{Name: "Veggie Burger", Price: 7.5},
			},
		},
		{
			ID:   uuid.New(),
			Name: "Sushi Spot",
			Menu: []MenuItemDTO{
				{Name: "California Roll", Price: 6.5},
				{Name: "Salmon Nigiri", Price: 9},
				{Name: "Tuna Sashimi", Price: 12},
			},
		},
	}

	if err := db.Create(&restaurants).Error; err != nil {
		return 0, err
	}

	return int64(len(restaurants)), nil
}
