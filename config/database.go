package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the database handle. The handle is returned rather than
// stored globally so callers inject it into the repositories explicitly.
func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
