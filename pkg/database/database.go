package database

import (
	"taskflow-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgresConnection opens a GORM connection to Postgres.
// TranslateError is enabled so unique-index violations come back as
// gorm.ErrDuplicatedKey instead of a driver-specific error.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
