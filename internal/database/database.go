package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/swiftship/parcel-backend/internal/config"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}
