package query

import (
	"regexp"
	"strings"
	"time"
)

// Predicate is a condition checked in memory on every loaded row.
type Predicate[T any] func(item *T) bool

// ResultFilter sees the rows accepted so far, e.g. to drop duplicates by a
// business key.
type ResultFilter[T any] func(accepted []*T, item *T) bool

// Eq matches rows whose value equals v.
func Eq[T any, V comparable](get func(*T) V, v V) Predicate[T] {
	return func(item *T) bool { return get(item) == v }
}

// In matches rows whose value is one of values.
func In[T any, V comparable](get func(*T) V, values ...V) Predicate[T] {
	set := make(map[V]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return func(item *T) bool {
		_, ok := set[get(item)]

		return ok
	}
}

// Like matches case-insensitively with * as wildcard. Without wildcards the
// text may appear anywhere.
func Like[T any](get func(*T) string, pattern string) Predicate[T] {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return func(*T) bool { return true }
	}
	if !strings.Contains(pattern, "*") {
		pattern = "*" + pattern + "*"
	}
	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	re := regexp.MustCompile("(?is)^" + strings.Join(parts, ".*") + "$")

	return func(item *T) bool { return re.MatchString(get(item)) }
}

// Between matches times within [from, to]. A nil bound is open.
func Between[T any](get func(*T) *time.Time, from, to *time.Time) Predicate[T] {
	return func(item *T) bool {
		v := get(item)
		if v == nil {
			return false
		}
		if from != nil && v.Before(*from) {
			return false
		}
		if to != nil && v.After(*to) {
			return false
		}

		return true
	}
}

// Not negates a predicate.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(item *T) bool { return !p(item) }
}

// Any matches when at least one predicate matches.
func Any[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item *T) bool {
		for _, p := range preds {
			if p(item) {
				return true
			}
		}

		return false
	}
}

// All matches when every predicate matches.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(item *T) bool {
		for _, p := range preds {
			if !p(item) {
				return false
			}
		}

		return true
	}
}
