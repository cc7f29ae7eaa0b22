package paging

import (
	"fmt"
	"strings"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
)

// SortDirection orders query results ascending or descending
type SortDirection string

const (
	Ascending  SortDirection = "ascending"
	Descending SortDirection = "descending"
)

// Query is a raw paging/sort/search request before validation
type Query struct {
	PageNumber    int           `json:"page_number"`
	PageSize      int           `json:"page_size"`
	SearchPhrase  string        `json:"search_phrase"`
	SortBy        string        `json:"sort_by"`
	SortDirection SortDirection `json:"sort_direction"`
}

// Offset returns the number of rows to skip for this page
func (q Query) Offset() int {
	return (q.PageNumber - 1) * q.PageSize
}

// Contract validates queries against a per-call-site allow-list. Each query
// surface (active listings, inactive listings, merchant catalogs, ...)
// supplies its own allowed sizes and sort keys.
type Contract struct {
	AllowedSizes    []int
	AllowedSortKeys []string
	MaxSearchLen    int
}

// Validate checks every field of q against the contract and returns either a
// normalized query or a ValidationError enumerating all violations. It is
// pure: no side effects, no partial normalization on failure.
func (c Contract) Validate(q Query) (Query, *domain.ValidationError) {
	verr := domain.NewValidationError()

	if q.PageNumber < MinPageNumber {
		verr.Add(FieldPageNumber, fmt.Sprintf(MsgPageNumberTooSmallFmt, MinPageNumber))
	}
	if !containsInt(c.AllowedSizes, q.PageSize) {
		verr.Add(FieldPageSize, fmt.Sprintf(MsgPageSizeNotAllowedFmt, formatInts(c.AllowedSizes)))
	}

	maxLen := c.MaxSearchLen
	if maxLen == 0 {
		maxLen = DefaultMaxSearchLen
	}
	phrase := strings.TrimSpace(q.SearchPhrase)
	if len(phrase) > maxLen {
		verr.Add(FieldSearchPhrase, fmt.Sprintf(MsgSearchPhraseTooLongFmt, maxLen))
	}

	sortBy := strings.TrimSpace(q.SortBy)
	if sortBy != "" && !containsKeyFold(c.AllowedSortKeys, sortBy) {
		verr.Add(FieldSortBy, fmt.Sprintf(MsgSortKeyNotAllowedFmt, sortBy, strings.Join(c.AllowedSortKeys, ", ")))
	}

	direction := q.SortDirection
	if direction == "" {
		direction = Ascending
	}
	if direction != Ascending && direction != Descending {
		verr.Add(FieldSortDirection, MsgSortDirectionInvalid)
	}

	if verr.HasViolations() {
		return Query{}, verr
	}

	return Query{
		PageNumber:    q.PageNumber,
		PageSize:      q.PageSize,
		SearchPhrase:  phrase,
		SortBy:        canonicalKey(c.AllowedSortKeys, sortBy),
		SortDirection: direction,
	}, nil
}

func containsInt(allowed []int, v int) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

func containsKeyFold(allowed []string, key string) bool {
	for _, a := range allowed {
		if strings.EqualFold(a, key) {
			return true
		}
	}
	return false
}

// canonicalKey maps a case-insensitive match back to the allow-list spelling
func canonicalKey(allowed []string, key string) string {
	for _, a := range allowed {
		if strings.EqualFold(a, key) {
			return a
		}
	}
	return key
}

func formatInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
