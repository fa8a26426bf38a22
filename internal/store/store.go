// Package store provides the knowledge store interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/rcliao/offline-assist/internal/model"
)

// Store errors.
var (
	// ErrStoreUnavailable wraps any failure of the storage layer itself.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrSeedingIncomplete is returned when a corpus row failed to insert.
	// The seeded flag is left unset so seeding can be retried.
	ErrSeedingIncomplete = errors.New("seeding incomplete")

	// ErrInvalidEntry is returned for entries that fail model validation.
	ErrInvalidEntry = errors.New("invalid entry")
)

// ListParams holds parameters for listing entries.
type ListParams struct {
	Language string
	Category string
	Query    string // substring of question, answer or keywords
	Limit    int
}

// QueryLogParams holds parameters for reading the query log.
type QueryLogParams struct {
	Language      string
	UnmatchedOnly bool
	Limit         int
}

// SeedResult reports what a Seed call did.
type SeedResult struct {
	Inserted      int  `json:"inserted"`
	AlreadySeeded bool `json:"already_seeded"`
}

// Store is the read/append surface the responder needs.
type Store interface {
	// AllEntriesForLanguage returns every entry in the given language,
	// in insertion order.
	AllEntriesForLanguage(ctx context.Context, language string) ([]model.Entry, error)

	// RecordUsage increments the usage count of an entry.
	RecordUsage(ctx context.Context, entryID string) error

	// AppendQueryLog appends an analytics row.
	AppendQueryLog(ctx context.Context, rec model.QueryRecord) error

	// Close closes the store.
	Close() error
}
