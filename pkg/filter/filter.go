// Package filter narrows in-memory lists the way the browser views do:
// free-text substring match plus an exact status selector, ANDed, without
// mutating or reordering the source list.
package filter

import "strings"

// All is the sentinel status value that disables the status predicate.
const All = "all"

type Predicate[T any] func(T) bool

// Text matches when the query is a case-insensitive substring of any of the
// designated fields. An empty query matches everything.
func Text[T any](query string, fields func(T) []string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))
	return func(item T) bool {
		if query == "" {
			return true
		}
		for _, f := range fields(item) {
			if strings.Contains(strings.ToLower(f), query) {
				return true
			}
		}
		return false
	}
}

// Status matches on exact equality with the selected value. The sentinel
// All (case-insensitive) or an empty selection matches everything.
func Status[T any](selected string, status func(T) string) Predicate[T] {
	return func(item T) bool {
		if selected == "" || strings.EqualFold(selected, All) {
			return true
		}
		return status(item) == selected
	}
}

// Apply returns the items satisfying every predicate, in their original
// order. The input slice is never modified; the result is a fresh slice.
func Apply[T any](list []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		keep := true
		for _, p := range preds {
			if !p(item) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, item)
		}
	}
	return out
}
