// Package model defines the knowledge entry and query log types.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Supported languages.
const (
	English = "english"
	Tagalog = "tagalog"
	Bisaya  = "bisaya"
	Waray   = "waray"
	Spanish = "spanish"
)

// DefaultLanguage is used when no language is given and as the fallback hop.
const DefaultLanguage = English

// ValidLanguages are the languages the corpus is written in.
var ValidLanguages = map[string]bool{
	English: true,
	Tagalog: true,
	Bisaya:  true,
	Waray:   true,
	Spanish: true,
}

// Languages returns the supported languages in a stable order.
func Languages() []string {
	return []string{English, Tagalog, Bisaya, Waray, Spanish}
}

// Entry is one stored question/answer record.
type Entry struct {
	ID         string    `json:"id"`
	Category   string    `json:"category"`
	Language   string    `json:"language"`
	Keywords   []string  `json:"keywords"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Confidence float64   `json:"confidence"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate reports whether the entry can be stored. Keywords must be
// non-empty so scoring never divides by zero.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Language) == "" {
		return errors.New("language is required")
	}
	if strings.TrimSpace(e.Category) == "" {
		return errors.New("category is required")
	}
	if strings.TrimSpace(e.Answer) == "" {
		return errors.New("answer is required")
	}
	if len(e.Keywords) == 0 {
		return errors.New("at least one keyword is required")
	}
	for i, k := range e.Keywords {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("keyword %d is blank", i)
		}
	}
	if e.Confidence < 0 || e.Confidence > 1 {
		return fmt.Errorf("confidence %v out of range [0,1]", e.Confidence)
	}
	return nil
}

// QueryRecord is one analytics row written for every lookup.
type QueryRecord struct {
	ID              string    `json:"id"`
	QueryText       string    `json:"query"`
	Language        string    `json:"language"`
	MatchedCategory string    `json:"matched_category,omitempty"`
	MatchedLanguage string    `json:"matched_language,omitempty"`
	Score           float64   `json:"score"`
	CreatedAt       time.Time `json:"created_at"`
}

// Matched reports whether the query was answered from the corpus.
func (q QueryRecord) Matched() bool {
	return q.MatchedCategory != ""
}
