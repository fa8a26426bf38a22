package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/offline-assist/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	// mu serializes every write: usage increments, log appends, seeding
	// and reset. Reads do not take it.
	mu      sync.Mutex
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	dsn := dbPath + "?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_txlock=immediate"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// newID must be called with mu held; entropy is not safe for concurrent use.
func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id          TEXT PRIMARY KEY,
		category    TEXT NOT NULL,
		language    TEXT NOT NULL,
		keywords    TEXT NOT NULL,
		question    TEXT NOT NULL DEFAULT '',
		answer      TEXT NOT NULL,
		confidence  REAL NOT NULL DEFAULT 1.0,
		usage_count INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_entries_language ON entries(language);
	CREATE INDEX IF NOT EXISTS idx_entries_category ON entries(category, language);

	CREATE TABLE IF NOT EXISTS query_log (
		id               TEXT PRIMARY KEY,
		query_text       TEXT NOT NULL,
		language         TEXT NOT NULL,
		matched_category TEXT,
		matched_language TEXT,
		score            REAL NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_query_log_language ON query_log(language);

	CREATE TABLE IF NOT EXISTS app_flags (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

// AllEntriesForLanguage returns every entry whose language equals the
// argument, in insertion order.
func (s *SQLiteStore) AllEntriesForLanguage(ctx context.Context, language string) ([]model.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, language, keywords, question, answer, confidence, usage_count, created_at
		 FROM entries WHERE language = ? ORDER BY rowid`, language)
	if err != nil {
		return nil, unavailable("query entries", err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return nil, unavailable("scan entries", err)
	}
	return entries, nil
}

// RecordUsage increments the usage count of the entry.
func (s *SQLiteStore) RecordUsage(ctx context.Context, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`UPDATE entries SET usage_count = usage_count + 1 WHERE id = ?`, entryID)
	if err != nil {
		return unavailable("record usage", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("entry not found: %s", entryID)
	}
	return nil
}

// ListEntries lists entries filtered by language, category and text.
func (s *SQLiteStore) ListEntries(ctx context.Context, p ListParams) ([]model.Entry, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 50
	}

	where := []string{"1 = 1"}
	var args []interface{}
	if p.Language != "" {
		where = append(where, "language = ?")
		args = append(args, p.Language)
	}
	if p.Category != "" {
		where = append(where, "category = ?")
		args = append(args, p.Category)
	}
	if p.Query != "" {
		like := "%" + p.Query + "%"
		where = append(where, "(question LIKE ? OR answer LIKE ? OR keywords LIKE ?)")
		args = append(args, like, like, like)
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT id, category, language, keywords, question, answer, confidence, usage_count, created_at
		FROM entries WHERE %s
		ORDER BY rowid
		LIMIT ?`, strings.Join(where, " AND "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("list entries", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// InsertEntries validates and appends entries in a single transaction.
// Nothing is inserted if any entry is invalid.
func (s *SQLiteStore) InsertEntries(ctx context.Context, entries []model.Entry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, unavailable("begin", err)
	}
	defer tx.Rollback()

	for i, e := range entries {
		if err := s.insertEntry(ctx, tx, e); err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, unavailable("commit", err)
	}
	return len(entries), nil
}

// insertEntry must be called with mu held.
func (s *SQLiteStore) insertEntry(ctx context.Context, tx *sql.Tx, e model.Entry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}

	kw, err := json.Marshal(e.Keywords)
	if err != nil {
		return fmt.Errorf("encode keywords: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO entries (id, category, language, keywords, question, answer, confidence, usage_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.newID(), e.Category, e.Language, string(kw), e.Question, e.Answer,
		e.Confidence, e.UsageCount, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntries(rows *sql.Rows) ([]model.Entry, error) {
	var entries []model.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func scanEntry(row scanner) (model.Entry, error) {
	var e model.Entry
	var keywords, createdAt string

	err := row.Scan(
		&e.ID, &e.Category, &e.Language, &keywords, &e.Question,
		&e.Answer, &e.Confidence, &e.UsageCount, &createdAt,
	)
	if err != nil {
		return e, err
	}

	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if err := json.Unmarshal([]byte(keywords), &e.Keywords); err != nil {
		return e, fmt.Errorf("decode keywords for %s: %w", e.ID, err)
	}
	return e, nil
}
