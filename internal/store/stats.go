package store

import (
	"context"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath           string          `json:"db_path"`
	DBSizeBytes      int64           `json:"db_size_bytes"`
	Seeded           bool            `json:"seeded"`
	TotalEntries     int             `json:"total_entries"`
	TotalQueries     int             `json:"total_queries"`
	MatchedQueries   int             `json:"matched_queries"`
	UnmatchedQueries int             `json:"unmatched_queries"`
	Languages        []LanguageStats `json:"languages"`
	TopCategories    []UsageStats    `json:"top_categories"`
}

// LanguageStats holds per-language counts.
type LanguageStats struct {
	Language   string `json:"language"`
	Entries    int    `json:"entries"`
	Categories int    `json:"categories"`
}

// UsageStats holds the usage total of one category in one language.
type UsageStats struct {
	Category string `json:"category"`
	Language string `json:"language"`
	Usage    int    `json:"usage"`
}

// QueryOutcome counts query log rows by requested language and outcome.
type QueryOutcome struct {
	Language string
	Outcome  string // matched, fallback, generic
	Count    int
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	seeded, err := s.IsSeeded(ctx)
	if err != nil {
		return nil, err
	}
	st.Seeded = seeded

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&st.TotalEntries)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM query_log`).Scan(&st.TotalQueries)
	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM query_log WHERE matched_category IS NOT NULL`).Scan(&st.MatchedQueries)
	st.UnmatchedQueries = st.TotalQueries - st.MatchedQueries

	rows, err := s.db.QueryContext(ctx, `
		SELECT language, COUNT(*) AS cnt, COUNT(DISTINCT category) AS cats
		FROM entries GROUP BY language ORDER BY cnt DESC, language`)
	if err != nil {
		return st, unavailable("language stats", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ls LanguageStats
		rows.Scan(&ls.Language, &ls.Entries, &ls.Categories)
		st.Languages = append(st.Languages, ls)
	}

	usage, err := s.EntryUsage(ctx)
	if err != nil {
		return st, err
	}
	for _, u := range usage {
		if u.Usage == 0 {
			continue
		}
		st.TopCategories = append(st.TopCategories, u)
		if len(st.TopCategories) == 10 {
			break
		}
	}

	return st, nil
}

// EntryUsage sums usage counts per category and language, most used first.
func (s *SQLiteStore) EntryUsage(ctx context.Context) ([]UsageStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, language, SUM(usage_count) AS total
		FROM entries GROUP BY category, language
		ORDER BY total DESC, category, language`)
	if err != nil {
		return nil, unavailable("entry usage", err)
	}
	defer rows.Close()

	var out []UsageStats
	for rows.Next() {
		var u UsageStats
		if err := rows.Scan(&u.Category, &u.Language, &u.Usage); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// QueryOutcomes counts logged queries by requested language and outcome.
// A match answered by an entry in another language counts as fallback.
func (s *SQLiteStore) QueryOutcomes(ctx context.Context) ([]QueryOutcome, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT language,
		       CASE
		           WHEN matched_category IS NULL THEN 'generic'
		           WHEN matched_language IS NOT NULL AND matched_language != language THEN 'fallback'
		           ELSE 'matched'
		       END AS outcome,
		       COUNT(*)
		FROM query_log GROUP BY 1, 2 ORDER BY 1, 2`)
	if err != nil {
		return nil, unavailable("query outcomes", err)
	}
	defer rows.Close()

	var out []QueryOutcome
	for rows.Next() {
		var o QueryOutcome
		if err := rows.Scan(&o.Language, &o.Outcome, &o.Count); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
