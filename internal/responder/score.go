package responder

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rcliao/offline-assist/internal/model"
)

// Score returns the fraction of keywords that occur as substrings of the
// query, compared case-insensitively.
func Score(query string, keywords []string) float64 {
	return score(strings.ToLower(query), keywords)
}

func score(normalized string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	matched := 0
	for _, k := range keywords {
		if strings.Contains(normalized, strings.ToLower(k)) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}

// Candidate is an entry with its score for a query.
type Candidate struct {
	Entry    model.Entry `json:"entry"`
	Score    float64     `json:"score"`
	Accepted bool        `json:"accepted"`
}

// Rank scores every entry of one language against the query, highest first.
// Equal scores keep store order. It does not fall back or write anything.
func (r *Responder) Rank(ctx context.Context, query, language string, limit int) ([]Candidate, error) {
	lang := NormalizeLanguage(language)
	entries, err := r.store.AllEntriesForLanguage(ctx, lang)
	if err != nil {
		return nil, fmt.Errorf("load %s entries: %w", lang, err)
	}

	normalized := strings.ToLower(query)
	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		s := score(normalized, e.Keywords)
		out = append(out, Candidate{Entry: e, Score: s, Accepted: s > r.threshold})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
