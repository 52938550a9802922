package testutil

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	config "task-manager.com/task-manager/internal/configs"
)

// NewTestDB opens a private in-memory sqlite database with the task schema
// migrated. Each test gets its own database named after the test.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := config.OpenDatabase(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}
