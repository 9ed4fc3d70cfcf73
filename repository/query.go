package repository

import "sort"

// Query filters and orders a read. The same predicate runs against decoded
// remote documents and against the local cache, so the fallback view and the
// online view only differ in staleness, never in shape.
type Query[T any] struct {
	Match func(T) bool
	Less  func(a, b T) bool
}

// All matches every record, unordered.
func All[T any]() Query[T] {
	return Query[T]{}
}

func (q Query[T]) apply(records []T) []T {
	result := make([]T, 0, len(records))
	for _, rec := range records {
		if q.Match == nil || q.Match(rec) {
			result = append(result, rec)
		}
	}
	if q.Less != nil {
		sort.SliceStable(result, func(i, j int) bool { return q.Less(result[i], result[j]) })
	}
	return result
}
