package db

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDSN_AppendsConnectionOptions(t *testing.T) {
	if got := DSN(""); !strings.HasPrefix(got, DefaultPath+"?") {
		t.Fatalf("empty path should fall back to default: %q", got)
	}
	got := DSN("file:x?mode=memory&cache=shared")
	if !strings.Contains(got, "cache=shared&_busy_timeout=5000") {
		t.Fatalf("expected options joined with &: %q", got)
	}
}

func TestOpen_AppliesMigrations(t *testing.T) {
	d, err := Open("file:dbmigrate?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	versions, err := AppliedVersions(d)
	if err != nil {
		t.Fatalf("applied versions: %v", err)
	}
	if len(versions) != 2 || versions[0] != 1 || versions[1] != 2 {
		t.Fatalf("unexpected versions: %v", versions)
	}

	for _, table := range []string{"users", "messages"} {
		var name string
		err := d.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}

	// Re-applying is a no-op.
	if err := Migrate(d); err != nil {
		t.Fatalf("migrate again: %v", err)
	}
}

func TestRollbackLast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rollback.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	v, err := RollbackLast(d)
	if err != nil || v != 2 {
		t.Fatalf("rollback 2: v=%d err=%v", v, err)
	}
	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name LIKE 'idx_messages_%'`).Scan(&n); err != nil {
		t.Fatalf("count indexes: %v", err)
	}
	if n != 0 {
		t.Fatalf("indexes not dropped: %d", n)
	}

	if v, err = RollbackLast(d); err != nil || v != 1 {
		t.Fatalf("rollback 1: v=%d err=%v", v, err)
	}
	if v, err = RollbackLast(d); err != nil || v != 0 {
		t.Fatalf("rollback on empty: v=%d err=%v", v, err)
	}

	if err := Migrate(d); err != nil {
		t.Fatalf("re-migrate: %v", err)
	}
	versions, _ := AppliedVersions(d)
	if len(versions) != 2 {
		t.Fatalf("expected both migrations re-applied, got %v", versions)
	}
}

func TestConnect_LeavesSchemaAlone(t *testing.T) {
	d, err := Connect(filepath.Join(t.TempDir(), "bare.db"))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	versions, err := AppliedVersions(d)
	if err != nil || len(versions) != 0 {
		t.Fatalf("expected no applied migrations, got %v err=%v", versions, err)
	}
	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'users'`).Scan(&n); err != nil || n != 0 {
		t.Fatalf("users table should not exist: n=%d err=%v", n, err)
	}
}

func TestOpenGorm_UnknownDriver(t *testing.T) {
	if _, err := OpenGorm("mysql", "x", nil); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
	if _, err := OpenGorm("postgres", "", nil); err == nil {
		t.Fatalf("expected error for empty postgres dsn")
	}
}
