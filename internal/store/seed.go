package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rcliao/offline-assist/internal/model"
)

const seededFlag = "corpus_seeded"

// Seed inserts the corpus exactly once. The seeded flag is checked and set in
// the same write transaction as the inserts, so a racing process blocks on
// the write lock and then sees the flag. Any failed row rolls everything back
// and leaves the flag unset.
func (s *SQLiteStore) Seed(ctx context.Context, entries []model.Entry) (SeedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SeedResult{}, unavailable("begin seed", err)
	}
	defer tx.Rollback()

	seeded, err := readFlag(ctx, tx, seededFlag)
	if err != nil {
		return SeedResult{}, unavailable("read seeded flag", err)
	}
	if seeded {
		return SeedResult{AlreadySeeded: true}, nil
	}

	for i, e := range entries {
		if err := s.insertEntry(ctx, tx, e); err != nil {
			return SeedResult{}, fmt.Errorf("%w: row %d (%s/%s): %w",
				ErrSeedingIncomplete, i, e.Category, e.Language, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO app_flags (key, value) VALUES (?, '1')`, seededFlag); err != nil {
		return SeedResult{}, fmt.Errorf("%w: set flag: %w", ErrSeedingIncomplete, err)
	}

	if err := tx.Commit(); err != nil {
		return SeedResult{}, fmt.Errorf("%w: commit: %w", ErrSeedingIncomplete, err)
	}
	return SeedResult{Inserted: len(entries)}, nil
}

// IsSeeded reports whether the corpus has been seeded.
func (s *SQLiteStore) IsSeeded(ctx context.Context) (bool, error) {
	seeded, err := readFlag(ctx, s.db, seededFlag)
	if err != nil {
		return false, unavailable("read seeded flag", err)
	}
	return seeded, nil
}

// Reset deletes all entries and query logs and clears the seeded flag.
func (s *SQLiteStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("begin reset", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM entries`,
		`DELETE FROM query_log`,
		`DELETE FROM app_flags WHERE key = '` + seededFlag + `'`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return unavailable("reset", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable("commit reset", err)
	}
	return nil
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func readFlag(ctx context.Context, q rowQuerier, key string) (bool, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM app_flags WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == "1", nil
}
