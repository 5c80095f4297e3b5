package database

import (
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens a sqlite database file read-only. The launcher never owns the
// databases it reads (GOG Galaxy writes galaxy-2.0.db), so nothing here may
// take a write lock or mutate the file.
func Open(path string) (*gorm.DB, error) {
	// The sqlite driver happily creates an empty database for a bad path
	// even in ro mode, so check existence up front.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("database not found at %s: %w", path, err)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro", path)

	// Suppress GORM logging for cleaner optional warnings in main logger
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}

// Close releases the underlying connection. gorm keeps it pooled otherwise.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
