package testsupport

import (
	"context"
	"testing"
	"time"

	"cutline/internal/config"
	"cutline/internal/project"
)

// MustOpenStore opens a project.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *project.Store {
	t.Helper()

	store, err := project.Open(cfg)
	if err != nil {
		t.Fatalf("project.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewProject creates a project for tests using the provided store.
func NewProject(t testing.TB, store *project.Store, sourcePath string, duration time.Duration) *project.Project {
	t.Helper()

	proj, err := store.Create(context.Background(), sourcePath, duration)
	if err != nil {
		t.Fatalf("store.Create: %v", err)
	}
	return proj
}
