package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rcliao/offline-assist/internal/model"
)

// AppendQueryLog appends an analytics row. A zero CreatedAt is set to now.
func (s *SQLiteStore) AppendQueryLog(ctx context.Context, rec model.QueryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	var category, language *string
	if rec.MatchedCategory != "" {
		category = &rec.MatchedCategory
	}
	if rec.MatchedLanguage != "" {
		language = &rec.MatchedLanguage
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO query_log (id, query_text, language, matched_category, matched_language, score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.newID(), rec.QueryText, rec.Language, category, language, rec.Score,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return unavailable("append query log", err)
	}
	return nil
}

// RecentQueries returns query log rows, newest first.
func (s *SQLiteStore) RecentQueries(ctx context.Context, p QueryLogParams) ([]model.QueryRecord, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"1 = 1"}
	var args []interface{}
	if p.Language != "" {
		where = append(where, "language = ?")
		args = append(args, p.Language)
	}
	if p.UnmatchedOnly {
		where = append(where, "matched_category IS NULL")
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT id, query_text, language, matched_category, matched_language, score, created_at
		FROM query_log WHERE %s
		ORDER BY rowid DESC
		LIMIT ?`, strings.Join(where, " AND "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("query log", err)
	}
	defer rows.Close()

	var records []model.QueryRecord
	for rows.Next() {
		var r model.QueryRecord
		var category, language sql.NullString
		var createdAt string
		if err := rows.Scan(&r.ID, &r.QueryText, &r.Language, &category, &language, &r.Score, &createdAt); err != nil {
			return nil, err
		}
		r.MatchedCategory = category.String
		r.MatchedLanguage = language.String
		r.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		records = append(records, r)
	}
	return records, rows.Err()
}
