package store

import (
	"context"

	"github.com/rcliao/offline-assist/internal/model"
)

// ExportAll returns all entries, optionally filtered by language.
func (s *SQLiteStore) ExportAll(ctx context.Context, language string) ([]model.Entry, error) {
	query := `SELECT id, category, language, keywords, question, answer, confidence, usage_count, created_at
	          FROM entries`
	var args []interface{}
	if language != "" {
		query += ` WHERE language = ?`
		args = append(args, language)
	}
	query += ` ORDER BY rowid`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable("export", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Import stores entries from an export. Usage counts are reset and IDs are
// reassigned.
func (s *SQLiteStore) Import(ctx context.Context, entries []model.Entry) (int, error) {
	fresh := make([]model.Entry, len(entries))
	for i, e := range entries {
		e.ID = ""
		e.UsageCount = 0
		fresh[i] = e
	}
	return s.InsertEntries(ctx, fresh)
}
