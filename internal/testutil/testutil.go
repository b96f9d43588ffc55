package testutil

import (
	"database/sql"
	"strings"
	"testing"

	"chatApp/internal/db"
)

var nameReplacer = strings.NewReplacer("/", "_", " ", "_", "#", "_")

// OpenInMemoryDB opens an in-memory SQLite database named after the running test
// and applies migrations. The database is closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	// Shared cache keeps every pooled connection on the same database.
	d, err := db.Open("file:" + nameReplacer.Replace(t.Name()) + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}
