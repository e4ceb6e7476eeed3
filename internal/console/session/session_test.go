package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetPersistsAndRestores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := NewStore(path)
	if err := first.Set("tok-123", Admin{ID: 1, Name: "Admin", Email: "admin@printshop.local"}); err != nil {
		t.Fatal(err)
	}

	second := NewStore(path)
	second.Restore()
	if !second.Authenticated() {
		t.Fatal("restored store should be authenticated")
	}
	if second.Token() != "tok-123" {
		t.Errorf("token = %q, want tok-123", second.Token())
	}
	admin := second.Admin()
	if admin == nil || admin.Email != "admin@printshop.local" {
		t.Errorf("unexpected admin: %+v", admin)
	}
}

func TestClearRemovesPersistedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store := NewStore(path)
	if err := store.Set("tok-123", Admin{ID: 1}); err != nil {
		t.Fatal(err)
	}
	store.Clear()

	if store.Authenticated() {
		t.Error("cleared store should be unauthenticated")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file should be removed")
	}

	fresh := NewStore(path)
	fresh.Restore()
	if fresh.Authenticated() {
		t.Error("restore after clear should stay unauthenticated")
	}
}

func TestRestoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	store.Restore()
	if store.Authenticated() {
		t.Error("malformed session file should leave store unauthenticated")
	}
	if store.Admin() != nil {
		t.Error("admin should be nil")
	}
}

func TestRestoreMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"))
	store.Restore()
	if store.Authenticated() {
		t.Error("missing session file should leave store unauthenticated")
	}
}
