package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// InitTest points DB at a fresh in-memory sqlite store. sqlite enforces the
// same unique indexes as postgres and glebarez translates its constraint
// errors, so conflict classification behaves identically in tests.
func InitTest(t *testing.T) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	DB = gdb
}
