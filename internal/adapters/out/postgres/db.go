package postgres

import (
	"database/sql"
	"fmt"

	"deliveries/internal/adapters/out/postgres/deliveryrepo"
	"deliveries/internal/adapters/out/postgres/restaurantrepo"

	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CreateDbIfNotExists connects to the maintenance database and creates the
// service database when it is missing. CREATE DATABASE cannot run inside a
// transaction, hence the raw database/sql connection instead of GORM.
func CreateDbIfNotExists(host, port, user, password, dbName, sslMode string) error {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		host, port, user, password, sslMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open db error: %w", err)
	}
	defer db.Close()

	if err = db.Ping(); err != nil {
		return fmt.Errorf("ping db error: %w", err)
	}

	var exists bool
	err = db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check db exists error: %w", err)
	}
	if exists {
		return nil
	}

	if _, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", dbName)); err != nil {
		return fmt.Errorf("create db error: %w", err)
	}

	return nil
}

// ConnectDb builds the service DSN and opens a GORM connection.
func ConnectDb(host, port, user, password, dbName, sslMode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open gorm connection error: %w", err)
	}

	return db, nil
}

// MigrateDb creates or updates the schema for all persisted DTOs.
func MigrateDb(db *gorm.DB) error {
	return db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&restaurantrepo.RestaurantDTO{},
	)
}
