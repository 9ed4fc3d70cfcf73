package repository

import (
	"context"
	"errors"

	"vitalog/models"
	"vitalog/outbox"
	"vitalog/remote"
)

// SyncPending replays the outbox against the remote store in queue order and
// returns how many operations were confirmed. Offline it is a no-op. A
// failed replay stays queued for a later pass; it never blocks the rest of
// the snapshot.
func (r *Repository[T, P]) SyncPending(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded()

	if !r.policy.Online() {
		return 0
	}

	snapshot := r.queue.Snapshot()
	if len(snapshot) == 0 {
		return 0
	}

	completed := make(map[string]bool)
	failed := make(map[string]bool)
	reconciled := false

	for _, op := range snapshot {
		if err := r.replay(ctx, op, &reconciled); err != nil {
			r.logger.Info("replay failed, keeping operation queued",
				"kind", op.Kind, "target", op.Target().Value, "error", err)
			failed[op.ID] = true
			continue
		}
		completed[op.ID] = true
	}

	if err := r.queue.RemoveCompleted(completed); err != nil {
		r.logger.Error("failed to persist outbox after replay", "error", err)
	}
	if abandoned, err := r.queue.RecordFailures(failed); err != nil {
		r.logger.Error("failed to persist replay failures", "error", err)
	} else if abandoned > 0 {
		r.logger.Warn("abandoned poisoned operations", "count", abandoned)
	}

	if reconciled {
		if err := r.saveCache(); err != nil {
			r.logger.Error("failed to persist reconciled ids", "error", err)
		}
	}

	return len(completed)
}

func (r *Repository[T, P]) replay(ctx context.Context, op outbox.Operation[T, P], reconciled *bool) error {
	switch op.Kind {
	case outbox.KindAdd:
		serverID, err := r.remoteAdd(ctx, op.Record)
		if err != nil {
			return err
		}
		r.reconcileID(op.Record.GetID(), models.RemoteID(serverID))
		*reconciled = true
		return nil

	case outbox.KindUpdate:
		fields, err := encodePatch[T](op.Patch)
		if err != nil {
			return err
		}
		rctx, cancel := r.remoteCtx(ctx)
		defer cancel()
		return r.remote.Update(rctx, r.collection, op.TargetID.Value, fields)

	case outbox.KindDelete:
		rctx, cancel := r.remoteCtx(ctx)
		defer cancel()
		err := r.remote.Delete(rctx, r.collection, op.TargetID.Value)
		if errors.Is(err, remote.ErrNotFound) {
			// Already absent remotely; replay stays idempotent.
			return nil
		}
		return err

	default:
		// Unknown kinds come from a newer schema; drop them as completed
		// rather than retrying forever.
		r.logger.Warn("dropping operation of unknown kind", "kind", op.Kind)
		return nil
	}
}
