package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"cutline/internal/config"
	"cutline/internal/timeline"
)

// Store manages project persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	ctx = ensureContext(ctx)
	var (
		res     sql.Result
		execErr error
	)
	if err := retryOnBusy(ctx, func() error {
		res, execErr = s.db.ExecContext(ctx, query, args...)
		return execErr
	}); err != nil {
		return nil, err
	}
	return res, nil
}

// Open initializes or connects to the project database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const projectColumns = "id, uuid, title, source_path, duration_seconds, timeline_json, undo_json, redo_json, created_at, updated_at"

// Create inserts a new project with an untouched timeline covering the
// full source duration.
func (s *Store) Create(ctx context.Context, sourcePath string, duration time.Duration) (*Project, error) {
	list, err := timeline.NewList(duration)
	if err != nil {
		return nil, fmt.Errorf("initialize timeline: %w", err)
	}
	timelineJSON, err := encodeList(list)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)
	id := uuid.NewString()

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO projects (
            uuid, title, source_path, duration_seconds, timeline_json,
            undo_json, redo_json, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		deriveTitle(sourcePath),
		sourcePath,
		duration.Seconds(),
		timelineJSON,
		nil,
		nil,
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	if _, err := res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetByUUID(ctx, id)
}

// GetByUUID fetches a project by its full UUID.
func (s *Store) GetByUUID(ctx context.Context, id string) (*Project, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE uuid = ?`, id)
	proj, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return proj, nil
}

// Resolve locates a project by full UUID, unique UUID prefix, or exact
// source path, in that order.
func (s *Store) Resolve(ctx context.Context, ref string) (*Project, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrNotFound
	}

	if proj, err := s.GetByUUID(ctx, ref); err == nil {
		return proj, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE uuid LIKE ? || '%' LIMIT 2`, ref)
	if err != nil {
		return nil, fmt.Errorf("resolve by prefix: %w", err)
	}
	matches, err := collectProjects(rows)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
	default:
		return nil, fmt.Errorf("%w: %q", ErrAmbiguousRef, ref)
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE source_path = ? ORDER BY created_at DESC LIMIT 1`, ref)
	proj, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve by source path: %w", err)
	}
	return proj, nil
}

// Save persists the timeline and history stacks of an existing project.
func (s *Store) Save(ctx context.Context, proj *Project) error {
	if proj == nil {
		return errors.New("project is nil")
	}
	timelineJSON, err := encodeList(proj.Timeline)
	if err != nil {
		return err
	}
	undoJSON, err := encodeStack(proj.Undo)
	if err != nil {
		return err
	}
	redoJSON, err := encodeStack(proj.Redo)
	if err != nil {
		return err
	}

	proj.UpdatedAt = time.Now().UTC()
	res, err := s.execWithRetry(
		ctx,
		`UPDATE projects
         SET title = ?, timeline_json = ?, undo_json = ?, redo_json = ?, updated_at = ?
         WHERE uuid = ?`,
		proj.Title,
		timelineJSON,
		undoJSON,
		redoJSON,
		proj.UpdatedAt.Format(time.RFC3339Nano),
		proj.UUID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all projects ordered by creation time.
func (s *Store) List(ctx context.Context) ([]*Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return collectProjects(rows)
}

// Remove deletes a project by UUID.
func (s *Store) Remove(ctx context.Context, id string) (bool, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM projects WHERE uuid = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Clear removes all projects.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM projects`)
	if err != nil {
		return 0, fmt.Errorf("clear projects: %w", err)
	}
	return res.RowsAffected()
}

func collectProjects(rows *sql.Rows) ([]*Project, error) {
	defer rows.Close()
	var projects []*Project
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, proj)
	}
	return projects, rows.Err()
}

func scanProject(scanner interface{ Scan(dest ...any) error }) (*Project, error) {
	var (
		id           int64
		uid          string
		title        string
		sourcePath   string
		durationSec  float64
		timelineJSON string
		undoJSON     sql.NullString
		redoJSON     sql.NullString
		createdRaw   string
		updatedRaw   string
	)

	if err := scanner.Scan(
		&id,
		&uid,
		&title,
		&sourcePath,
		&durationSec,
		&timelineJSON,
		&undoJSON,
		&redoJSON,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	list, err := decodeList(timelineJSON)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", uid, err)
	}
	undo, err := decodeStack(undoJSON.String)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", uid, err)
	}
	redo, err := decodeStack(redoJSON.String)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", uid, err)
	}

	proj := &Project{
		ID:         id,
		UUID:       uid,
		Title:      title,
		SourcePath: sourcePath,
		Duration:   secondsToDuration(durationSec),
		Timeline:   list,
		Undo:       undo,
		Redo:       redo,
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		proj.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		proj.UpdatedAt = updated
	}
	return proj, nil
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
