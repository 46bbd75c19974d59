package project_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"cutline/internal/project"
	"cutline/internal/testsupport"
	"cutline/internal/timeline"
)

func TestCreateAndGet(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	proj, err := store.Create(ctx, "/media/vacation_footage.mkv", 90*time.Second)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if proj.UUID == "" {
		t.Fatal("expected UUID to be assigned")
	}
	if proj.Title != "Vacation Footage" {
		t.Fatalf("unexpected title: %q", proj.Title)
	}
	if proj.Duration != 90*time.Second {
		t.Fatalf("unexpected duration: %s", proj.Duration)
	}
	if len(proj.Timeline) != 1 || proj.Timeline[0].End != 90*time.Second {
		t.Fatalf("unexpected initial timeline: %+v", proj.Timeline)
	}

	fetched, err := store.GetByUUID(ctx, proj.UUID)
	if err != nil {
		t.Fatalf("GetByUUID failed: %v", err)
	}
	if fetched.SourcePath != proj.SourcePath {
		t.Fatalf("unexpected fetched project: %#v", fetched)
	}
}

func TestCreateRejectsNonPositiveDuration(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := store.Create(context.Background(), "/media/a.mkv", 0); err == nil {
		t.Fatal("expected error for zero duration")
	}
}

func TestSaveRoundTripsTimelineAndHistory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	proj := testsupport.NewProject(t, store, "/media/a.mkv", 100*time.Second)

	initial := proj.Timeline.Clone()
	proj.Undo = []timeline.List{initial}
	proj.Timeline = proj.Timeline.Remove(10*time.Second, 20*time.Second)
	proj.Redo = nil

	if err := store.Save(ctx, proj); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	fetched, err := store.GetByUUID(ctx, proj.UUID)
	if err != nil {
		t.Fatalf("GetByUUID failed: %v", err)
	}
	if !fetched.Timeline.Equal(proj.Timeline) {
		t.Fatalf("timeline mismatch: got %+v want %+v", fetched.Timeline, proj.Timeline)
	}
	if len(fetched.Undo) != 1 || !fetched.Undo[0].Equal(initial) {
		t.Fatalf("undo stack mismatch: %+v", fetched.Undo)
	}
	if len(fetched.Redo) != 0 {
		t.Fatalf("expected empty redo stack, got %+v", fetched.Redo)
	}
	if fetched.Timeline.TotalDuration() != 90*time.Second {
		t.Fatalf("unexpected total duration: %s", fetched.Timeline.TotalDuration())
	}
}

func TestSaveMissingProject(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	proj := &project.Project{UUID: "no-such-uuid", Timeline: timeline.List{{Start: 0, End: time.Second}}}
	if err := store.Save(context.Background(), proj); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	proj := testsupport.NewProject(t, store, "/media/a.mkv", 10*time.Second)

	byUUID, err := store.Resolve(ctx, proj.UUID)
	if err != nil {
		t.Fatalf("Resolve by UUID failed: %v", err)
	}
	if byUUID.UUID != proj.UUID {
		t.Fatalf("unexpected project: %s", byUUID.UUID)
	}

	byPrefix, err := store.Resolve(ctx, proj.UUID[:8])
	if err != nil {
		t.Fatalf("Resolve by prefix failed: %v", err)
	}
	if byPrefix.UUID != proj.UUID {
		t.Fatalf("unexpected project: %s", byPrefix.UUID)
	}

	byPath, err := store.Resolve(ctx, "/media/a.mkv")
	if err != nil {
		t.Fatalf("Resolve by path failed: %v", err)
	}
	if byPath.UUID != proj.UUID {
		t.Fatalf("unexpected project: %s", byPath.UUID)
	}

	if _, err := store.Resolve(ctx, "nope"); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.Resolve(ctx, "  "); !errors.Is(err, project.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank ref, got %v", err)
	}
}

func TestListAndRemove(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	first := testsupport.NewProject(t, store, "/media/a.mkv", 10*time.Second)
	testsupport.NewProject(t, store, "/media/b.mkv", 20*time.Second)

	projects, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}

	removed, err := store.Remove(ctx, first.UUID)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !removed {
		t.Fatal("expected removal to report true")
	}

	removed, err = store.Remove(ctx, first.UUID)
	if err != nil {
		t.Fatalf("second Remove failed: %v", err)
	}
	if removed {
		t.Fatal("expected second removal to report false")
	}

	cleared, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if cleared != 1 {
		t.Fatalf("expected 1 cleared project, got %d", cleared)
	}
}

func TestOpenRejectsSchemaMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db, err := sql.Open("sqlite", cfg.DatabasePath())
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 999"); err != nil {
		t.Fatalf("tamper schema version: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close raw db: %v", err)
	}

	if _, err := project.Open(cfg); !errors.Is(err, project.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestReopenPreservesData(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	proj := testsupport.NewProject(t, store, "/media/a.mkv", 30*time.Second)
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := testsupport.MustOpenStore(t, cfg)
	fetched, err := reopened.GetByUUID(ctx, proj.UUID)
	if err != nil {
		t.Fatalf("GetByUUID after reopen failed: %v", err)
	}
	if fetched.Duration != 30*time.Second {
		t.Fatalf("unexpected duration after reopen: %s", fetched.Duration)
	}
}
