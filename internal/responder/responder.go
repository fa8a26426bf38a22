// Package responder answers free-text queries from the local knowledge store
// by keyword overlap, with a single English fallback hop and localized
// generic replies when nothing matches.
package responder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rcliao/offline-assist/internal/model"
	"github.com/rcliao/offline-assist/internal/store"
)

// DefaultThreshold is the score an entry must strictly exceed to be accepted.
const DefaultThreshold = 0.3

// Result describes how a query was answered.
type Result struct {
	Answer            string  `json:"answer"`
	Category          string  `json:"category,omitempty"`
	EntryID           string  `json:"entry_id,omitempty"`
	Language          string  `json:"language,omitempty"` // language of the answering entry
	RequestedLanguage string  `json:"requested_language"`
	Score             float64 `json:"score"`
	Fallback          bool    `json:"fallback,omitempty"` // answered by the English hop
	Generic           bool    `json:"generic,omitempty"`
}

// Responder matches queries against a Store. It holds no mutable state and
// is safe for concurrent use.
type Responder struct {
	store     store.Store
	threshold float64
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Responder.
type Option func(*Responder)

// WithThreshold overrides the acceptance threshold.
func WithThreshold(t float64) Option {
	return func(r *Responder) { r.threshold = t }
}

// WithLogger sets the logger used for swallowed write failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Responder) { r.logger = l }
}

// WithClock sets the clock used to timestamp query records.
func WithClock(now func() time.Time) Option {
	return func(r *Responder) { r.now = now }
}

// New creates a Responder over the given store.
func New(st store.Store, opts ...Option) *Responder {
	r := &Responder{
		store:     st,
		threshold: DefaultThreshold,
		logger:    slog.Default(),
		now:       time.Now,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Match returns the best answer for the query in the requested language.
//
// The returned Result always carries a non-empty Answer. When the store
// cannot be read, Match returns the generic reply together with an error
// wrapping store.ErrStoreUnavailable, and writes nothing.
func (r *Responder) Match(ctx context.Context, query, language string) (Result, error) {
	lang := NormalizeLanguage(language)
	generic := Result{
		Answer:            GenericResponse(lang),
		RequestedLanguage: lang,
		Generic:           true,
	}

	if err := ctx.Err(); err != nil {
		return generic, err
	}

	normalized := strings.ToLower(query)

	best, score, err := r.best(ctx, normalized, lang)
	if err != nil {
		return generic, err
	}
	fallback := false
	if !r.accepted(best, score) && lang != model.English {
		best, score, err = r.best(ctx, normalized, model.English)
		if err != nil {
			return generic, err
		}
		fallback = true
	}

	// Writes outlive the caller's context so an abandoned request never
	// leaves a half-applied update.
	writeCtx := context.WithoutCancel(ctx)

	if !r.accepted(best, score) {
		generic.Score = score
		r.appendLog(writeCtx, model.QueryRecord{
			QueryText: query,
			Language:  lang,
			Score:     score,
		})
		return generic, nil
	}

	if err := r.store.RecordUsage(writeCtx, best.ID); err != nil {
		r.logger.Warn("record usage failed", "entry_id", best.ID, "error", err)
	}
	r.appendLog(writeCtx, model.QueryRecord{
		QueryText:       query,
		Language:        lang,
		MatchedCategory: best.Category,
		MatchedLanguage: best.Language,
		Score:           score,
	})

	return Result{
		Answer:            best.Answer,
		Category:          best.Category,
		EntryID:           best.ID,
		Language:          best.Language,
		RequestedLanguage: lang,
		Score:             score,
		Fallback:          fallback,
	}, nil
}

// Respond is Match for callers that only need text: errors are logged and
// the generic reply is returned in their place.
func (r *Responder) Respond(ctx context.Context, query, language string) string {
	return r.Answer(ctx, query, language).Answer
}

// Answer is Respond keeping the match details. It never fails.
func (r *Responder) Answer(ctx context.Context, query, language string) Result {
	res, err := r.Match(ctx, query, language)
	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, context.Canceled) {
			level = slog.LevelDebug
		}
		r.logger.Log(ctx, level, "offline match degraded to generic reply",
			"language", res.RequestedLanguage, "error", err)
	}
	return res
}

func (r *Responder) accepted(e *model.Entry, score float64) bool {
	return e != nil && score > r.threshold
}

// best scans every entry of one language and returns the first entry with
// the highest score. Later entries replace it only on a strictly higher score.
func (r *Responder) best(ctx context.Context, normalized, language string) (*model.Entry, float64, error) {
	entries, err := r.store.AllEntriesForLanguage(ctx, language)
	if err != nil {
		return nil, 0, fmt.Errorf("load %s entries: %w", language, err)
	}

	var (
		best      *model.Entry
		bestScore float64
	)
	for i := range entries {
		s := score(normalized, entries[i].Keywords)
		if best == nil || s > bestScore {
			best = &entries[i]
			bestScore = s
		}
	}
	return best, bestScore, nil
}

func (r *Responder) appendLog(ctx context.Context, rec model.QueryRecord) {
	rec.CreatedAt = r.now()
	if err := r.store.AppendQueryLog(ctx, rec); err != nil {
		r.logger.Warn("append query log failed", "language", rec.Language, "error", err)
	}
}

// NormalizeLanguage lowercases and trims a language name. Empty means English.
func NormalizeLanguage(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if lang == "" {
		return model.DefaultLanguage
	}
	return lang
}
