package config

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "task-manager.com/task-manager/pkg/models"
)

func New(dsn string) *gorm.DB {
	db, err := OpenDatabase(dsn)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	return db
}

// OpenDatabase opens the sqlite database at dsn and migrates the task table.
func OpenDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Task{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
