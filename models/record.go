package models

// Record is implemented by every entity type that syncs through a
// repository. Entities are value types; WithID returns an updated copy so
// the id reconciliation rewrite never aliases cached state.
type Record[T any] interface {
	GetID() ID
	WithID(id ID) T
	Owner() string
}

// Patch is a typed partial update for one entity type. Apply returns the
// patched copy of the record.
type Patch[T any] interface {
	Apply(T) T
}
