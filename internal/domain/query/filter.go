// Package query runs list queries block by block and applies the checks that
// cannot be expressed in SQL: access, history id sets, result filters and
// in-memory predicates. Results are sorted with a locale collator.
package query

import (
	"strings"
	"time"
)

// DeletedFilter selects how soft-deleted rows are treated.
type DeletedFilter int

const (
	// DeletedExclude returns only rows that are not marked as deleted.
	DeletedExclude DeletedFilter = iota
	// DeletedOnly returns only rows that are marked as deleted.
	DeletedOnly
	// DeletedInclude ignores the flag.
	DeletedInclude
)

// ParseDeletedFilter accepts "only", "include" and anything else as exclude.
func ParseDeletedFilter(s string) DeletedFilter {
	switch strings.ToLower(s) {
	case "only":
		return DeletedOnly
	case "include", "all":
		return DeletedInclude
	default:
		return DeletedExclude
	}
}

// SortProperty orders by one property.
type SortProperty struct {
	Property   string `json:"property"`
	Descending bool   `json:"descending"`
}

// ParseSort reads "name,-lastUpdate" style lists. A leading minus sorts descending.
func ParseSort(s string) []SortProperty {
	var result []SortProperty
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		desc := strings.HasPrefix(part, "-")
		result = append(result, SortProperty{Property: strings.TrimPrefix(part, "-"), Descending: desc})
	}

	return result
}

// Filter is the user supplied part of a list query.
type Filter struct {
	SearchString     string         `json:"searchString,omitempty"`
	Deleted          DeletedFilter  `json:"deleted"`
	MaxRows          int            `json:"maxRows,omitempty"`
	SortProperties   []SortProperty `json:"sortProperties,omitempty"`
	ModifiedByUserID *int64         `json:"modifiedByUserId,omitempty"`
	ModifiedFrom     *time.Time     `json:"modifiedFrom,omitempty"`
	ModifiedTo       *time.Time     `json:"modifiedTo,omitempty"`
	SearchHistory    string         `json:"searchHistory,omitempty"`
}

// HasHistoryParams reports whether the result must be intersected with the
// ids of entities found in the history.
func (f *Filter) HasHistoryParams() bool {
	return f.ModifiedByUserID != nil || f.ModifiedFrom != nil || f.ModifiedTo != nil ||
		strings.TrimSpace(f.SearchHistory) != ""
}

// HistoryFilter selects history masters of one entity type.
type HistoryFilter struct {
	EntityName       string
	ModifiedByUserID *int64
	ModifiedFrom     *time.Time
	ModifiedTo       *time.Time
	SearchText       string
	Limit            int
}

// HistoryFilter derives the history part of the filter.
func (f *Filter) HistoryFilter(entityName string, limit int) HistoryFilter {
	return HistoryFilter{
		EntityName:       entityName,
		ModifiedByUserID: f.ModifiedByUserID,
		ModifiedFrom:     f.ModifiedFrom,
		ModifiedTo:       f.ModifiedTo,
		SearchText:       strings.TrimSpace(f.SearchHistory),
		Limit:            limit,
	}
}

// LikePattern turns a user search string with * wildcards into an SQL LIKE
// pattern. Without wildcards the text may appear anywhere.
func LikePattern(search string) string {
	search = strings.TrimSpace(search)
	if search == "" {
		return ""
	}
	escaped := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(search)
	if !strings.Contains(escaped, "*") {
		return "%" + escaped + "%"
	}

	return strings.ReplaceAll(escaped, "*", "%")
}
