package database

import (
	"gorm.io/gorm"

	"github.com/swiftship/parcel-backend/internal/models"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.Parcel{},
		&models.Payment{},
		&models.Rider{},
	)
	if err != nil {
		return err
	}

	// Storage-level defaults so rows written outside the handlers still
	// carry sane values.
	if db.Migrator().HasTable(&models.Parcel{}) {
		if err := db.Exec(`ALTER TABLE parcels ALTER COLUMN payment_status SET DEFAULT 'unpaid'`).Error; err != nil {
			return err
		}

		db.Exec(`ALTER TABLE parcels DROP CONSTRAINT IF EXISTS parcels_payment_status_check`)
		if err := db.Exec(`ALTER TABLE parcels ADD CONSTRAINT parcels_payment_status_check CHECK (payment_status IN ('unpaid', 'paid'))`).Error; err != nil {
			return err
		}
	}

	if db.Migrator().HasTable(&models.Rider{}) {
		if err := db.Exec(`ALTER TABLE riders ALTER COLUMN status SET DEFAULT 'pending'`).Error; err != nil {
			return err
		}
	}

	if db.Migrator().HasTable(&models.User{}) {
		if err := db.Exec(`ALTER TABLE users ALTER COLUMN role SET DEFAULT 'user'`).Error; err != nil {
			return err
		}
	}

	return nil
}
