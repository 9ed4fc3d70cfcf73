// Package outbox persists the mutations a repository could not confirm
// against the remote store, in the order they must be replayed.
package outbox

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"vitalog/models"
	"vitalog/store"
)

// Kind discriminates pending mutations.
type Kind string

const (
	KindAdd    Kind = "add"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// MaxReplayAttempts is how often a single operation may fail replay before
// it is abandoned, so one poison operation cannot wedge the queue.
const MaxReplayAttempts = 5

// Operation is one pending mutation. Add carries the full record; Update
// carries the target id and a typed patch; Delete carries the target id.
type Operation[T models.Record[T], P models.Patch[T]] struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Record    T         `json:"record"`
	TargetID  models.ID `json:"target_id"`
	Patch     P         `json:"patch"`
	Attempts  int       `json:"attempts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Target returns the record id the operation refers to, regardless of kind.
func (op Operation[T, P]) Target() models.ID {
	if op.Kind == KindAdd {
		return op.Record.GetID()
	}
	return op.TargetID
}

// Queue is the ordered pending-operation list for one collection, persisted
// through the local store after every mutation.
type Queue[T models.Record[T], P models.Patch[T]] struct {
	local  *store.Local
	slot   string
	logger *slog.Logger
	ops    []Operation[T, P]
}

// New loads (or initializes) the outbox for a collection. An undecodable
// persisted queue is logged and treated as empty, matching the local store's
// availability-over-strictness policy.
func New[T models.Record[T], P models.Patch[T]](local *store.Local, collection string, logger *slog.Logger) *Queue[T, P] {
	if logger == nil {
		logger = slog.Default()
	}

	q := &Queue[T, P]{
		local:  local,
		slot:   collection + ".outbox",
		logger: logger,
	}

	payload := local.ReadAll(q.slot)
	if len(payload) == 0 {
		return q
	}
	if err := json.Unmarshal(payload, &q.ops); err != nil {
		logger.Warn("discarding undecodable outbox", "slot", q.slot, "error", err)
		q.ops = nil
	}
	return q
}

func (q *Queue[T, P]) persist() error {
	payload, err := json.Marshal(q.ops)
	if err != nil {
		return err
	}
	return q.local.WriteAll(q.slot, payload)
}

// Enqueue appends an operation, stamping id and creation time.
func (q *Queue[T, P]) Enqueue(op Operation[T, P]) error {
	op.ID = uuid.NewString()
	op.CreatedAt = time.Now()
	q.ops = append(q.ops, op)
	return q.persist()
}

// Snapshot returns the current operations in replay order without removing
// them. Callers replay the snapshot and then call RemoveCompleted.
func (q *Queue[T, P]) Snapshot() []Operation[T, P] {
	snapshot := make([]Operation[T, P], len(q.ops))
	copy(snapshot, q.ops)
	return snapshot
}

// RemoveCompleted drops the named operations after a successful replay pass.
func (q *Queue[T, P]) RemoveCompleted(ids map[string]bool) error {
	if len(ids) == 0 {
		return nil
	}
	kept := q.ops[:0]
	for _, op := range q.ops {
		if !ids[op.ID] {
			kept = append(kept, op)
		}
	}
	q.ops = kept
	return q.persist()
}

// RecordFailures increments attempt counters for failed replays and abandons
// operations that exceeded MaxReplayAttempts. Returns how many were dropped.
func (q *Queue[T, P]) RecordFailures(ids map[string]bool) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	abandoned := 0
	kept := q.ops[:0]
	for _, op := range q.ops {
		if ids[op.ID] {
			op.Attempts++
			if op.Attempts >= MaxReplayAttempts {
				q.logger.Warn("abandoning operation after repeated replay failures",
					"kind", op.Kind, "target", op.Target().Value, "attempts", op.Attempts)
				abandoned++
				continue
			}
		}
		kept = append(kept, op)
	}
	q.ops = kept
	return abandoned, q.persist()
}

// FoldIntoAdd merges a later patch into a still-pending Add so the patched
// record travels with the Add instead of racing ahead of it.
func (q *Queue[T, P]) FoldIntoAdd(target models.ID, patch P) (bool, error) {
	for i, op := range q.ops {
		if op.Kind == KindAdd && op.Record.GetID().Value == target.Value {
			q.ops[i].Record = patch.Apply(op.Record)
			return true, q.persist()
		}
	}
	return false, nil
}

// CancelFor drops every queued operation targeting a record that is being
// deleted. A pending Add collapses create-then-delete to a no-op; pending
// Updates are superseded by the delete and would only fail replay against a
// document that no longer exists.
func (q *Queue[T, P]) CancelFor(target models.ID) (int, error) {
	kept := q.ops[:0]
	removed := 0
	for _, op := range q.ops {
		if op.Target().Value == target.Value {
			removed++
			continue
		}
		kept = append(kept, op)
	}
	if removed == 0 {
		return 0, nil
	}
	q.ops = kept
	return removed, q.persist()
}

// HasPending reports whether any queued operation still targets the id.
func (q *Queue[T, P]) HasPending(id models.ID) bool {
	for _, op := range q.ops {
		if op.Target().Value == id.Value {
			return true
		}
	}
	return false
}

func (q *Queue[T, P]) Len() int {
	return len(q.ops)
}
