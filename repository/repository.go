// Package repository implements the offline-first syncing repository: local
// writes first, best-effort remote confirmation, and an outbox replayed when
// connectivity returns.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"vitalog/connectivity"
	"vitalog/models"
	"vitalog/outbox"
	"vitalog/remote"
	"vitalog/store"
)

// DefaultRemoteTimeout bounds every remote attempt so an unreachable
// network degrades to the offline path instead of hanging the caller.
const DefaultRemoteTimeout = 5 * time.Second

// Repository orchestrates the local store, the remote store and the outbox
// for one entity type. All mutating operations are serialized internally;
// the background sync worker and the API share one instance per collection.
type Repository[T models.Record[T], P models.Patch[T]] struct {
	collection string
	local      *store.Local
	remote     remote.Store
	policy     *connectivity.Policy
	queue      *outbox.Queue[T, P]
	logger     *slog.Logger
	timeout    time.Duration

	mu     sync.Mutex
	cache  []T
	loaded bool
}

// New builds the repository for one collection. A zero timeout falls back
// to DefaultRemoteTimeout.
func New[T models.Record[T], P models.Patch[T]](
	collection string,
	local *store.Local,
	remoteStore remote.Store,
	policy *connectivity.Policy,
	logger *slog.Logger,
	timeout time.Duration,
) *Repository[T, P] {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &Repository[T, P]{
		collection: collection,
		local:      local,
		remote:     remoteStore,
		policy:     policy,
		queue:      outbox.New[T, P](local, collection, logger),
		logger:     logger.With("collection", collection),
		timeout:    timeout,
	}
}

func (r *Repository[T, P]) Collection() string {
	return r.collection
}

// ensureLoaded populates the cache from the local store. Undecodable data
// reads as an empty collection; a damaged cache must never block the user.
func (r *Repository[T, P]) ensureLoaded() {
	if r.loaded {
		return
	}
	r.loaded = true

	payload := r.local.ReadAll(r.collection)
	if len(payload) == 0 {
		return
	}
	if err := json.Unmarshal(payload, &r.cache); err != nil {
		r.logger.Warn("discarding undecodable local cache", "error", err)
		r.cache = nil
	}
}

func (r *Repository[T, P]) saveCache() error {
	payload, err := json.Marshal(r.cache)
	if err != nil {
		return err
	}
	return r.local.WriteAll(r.collection, payload)
}

func (r *Repository[T, P]) remoteCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// indexOf matches on the id value alone: callers above the repository (URL
// parameters, replay targets) only carry the string, and values are unique
// across local and server ids. The cached record's tagged id stays
// authoritative for the Local distinction.
func (r *Repository[T, P]) indexOf(id models.ID) int {
	for i, rec := range r.cache {
		if rec.GetID().Value == id.Value {
			return i
		}
	}
	return -1
}

// Create stores the record locally first (read-your-write), then attempts
// the remote add. A remote failure enqueues a pending Add and is not an
// error; only a local persistence failure fails the call.
func (r *Repository[T, P]) Create(ctx context.Context, rec T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded()

	if rec.GetID().IsZero() {
		rec = rec.WithID(models.NewLocalID())
	}

	r.cache = append(r.cache, rec)
	if err := r.saveCache(); err != nil {
		r.cache = r.cache[:len(r.cache)-1]
		var zero T
		return zero, err
	}

	if !r.policy.Online() {
		r.enqueueAdd(rec)
		return rec, nil
	}

	serverID, err := r.remoteAdd(ctx, rec)
	if err != nil {
		r.logger.Info("remote add failed, queueing for replay", "error", err)
		r.enqueueAdd(rec)
		return rec, nil
	}

	rec = r.reconcileID(rec.GetID(), models.RemoteID(serverID))
	if err := r.saveCache(); err != nil {
		r.logger.Error("failed to persist reconciled id", "error", err)
	}
	return rec, nil
}

// Read returns the remote view merged into the local cache when online, and
// the possibly-stale local view otherwise. It never fails.
func (r *Repository[T, P]) Read(ctx context.Context, query Query[T]) []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded()

	if r.policy.Online() {
		rctx, cancel := r.remoteCtx(ctx)
		docs, err := r.remote.List(rctx, r.collection)
		cancel()
		if err != nil {
			r.logger.Info("remote read failed, serving local view", "error", err)
		} else {
			r.mergeRemote(docs)
		}
	}

	return query.apply(r.cache)
}

// Get returns one record from the local cache.
func (r *Repository[T, P]) Get(id models.ID) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded()

	if idx := r.indexOf(id); idx >= 0 {
		return r.cache[idx], true
	}
	var zero T
	return zero, false
}

// Update patches the local record first; ErrNotFoundLocally when the id is
// unknown here. A patch on a still-unsynced record folds into its pending
// Add so the update can never replay ahead of the record's creation.
func (r *Repository[T, P]) Update(ctx context.Context, id models.ID, patch P) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded()

	idx := r.indexOf(id)
	if idx < 0 {
		return ErrNotFoundLocally
	}

	previous := r.cache[idx]
	id = previous.GetID()
	r.cache[idx] = patch.Apply(previous)
	if err := r.saveCache(); err != nil {
		r.cache[idx] = previous
		return err
	}

	if id.IsLocal() {
		folded, err := r.queue.FoldIntoAdd(id, patch)
		if err != nil {
			return err
		}
		if !folded {
			// The Add this record came from is gone (e.g. its enqueue once
			// failed); queue a fresh one carrying the patched record.
			r.enqueueAdd(r.cache[idx])
		}
		return nil
	}

	if !r.policy.Online() {
		r.enqueueUpdate(id, patch)
		return nil
	}

	fields, err := encodePatch[T](patch)
	if err != nil {
		return err
	}

	rctx, cancel := r.remoteCtx(ctx)
	defer cancel()
	if err := r.remote.Update(rctx, r.collection, id.Value, fields); err != nil {
		r.logger.Info("remote update failed, queueing for replay", "id", id.Value, "error", err)
		r.enqueueUpdate(id, patch)
	}
	return nil
}

// Delete removes the local record first; ErrNotFoundLocally when the id is
// unknown here. Every queued operation still targeting the id is superseded
// by the delete and dropped: a pending Add collapses create-then-delete to a
// no-op, and a pending Update would only replay against a document the
// delete is about to remove.
func (r *Repository[T, P]) Delete(ctx context.Context, id models.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded()

	idx := r.indexOf(id)
	if idx < 0 {
		return ErrNotFoundLocally
	}

	removed := r.cache[idx]
	id = removed.GetID()
	r.cache = append(r.cache[:idx], r.cache[idx+1:]...)
	if err := r.saveCache(); err != nil {
		r.cache = append(r.cache[:idx], append([]T{removed}, r.cache[idx:]...)...)
		return err
	}

	if _, err := r.queue.CancelFor(id); err != nil {
		return err
	}
	if id.IsLocal() {
		// Nothing was ever sent; cancelling the Add was the whole delete.
		return nil
	}

	if !r.policy.Online() {
		r.enqueueDelete(id)
		return nil
	}

	rctx, cancel := r.remoteCtx(ctx)
	defer cancel()
	err := r.remote.Delete(rctx, r.collection, id.Value)
	switch {
	case err == nil:
	case errors.Is(err, remote.ErrNotFound):
		// Already gone remotely; the goal state is reached.
	default:
		r.logger.Info("remote delete failed, queueing for replay", "id", id.Value, "error", err)
		r.enqueueDelete(id)
	}
	return nil
}

// Status summarizes the repository for the offline indicator.
type Status struct {
	Collection string `json:"collection"`
	Records    int    `json:"records"`
	LocalOnly  int    `json:"local_only"`
	PendingOps int    `json:"pending_ops"`
}

func (r *Repository[T, P]) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ensureLoaded()

	localOnly := 0
	for _, rec := range r.cache {
		if rec.GetID().IsLocal() {
			localOnly++
		}
	}
	return Status{
		Collection: r.collection,
		Records:    len(r.cache),
		LocalOnly:  localOnly,
		PendingOps: r.queue.Len(),
	}
}

// Pending returns the number of unreplayed operations.
func (r *Repository[T, P]) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queue.Len()
}

// ==================== INTERNALS ====================

// remoteAdd creates the document and mirrors the server-assigned id into the
// document body, per the store's self-referential id convention.
func (r *Repository[T, P]) remoteAdd(ctx context.Context, rec T) (string, error) {
	fields, err := encodeFields(rec)
	if err != nil {
		return "", err
	}
	delete(fields, "id")

	rctx, cancel := r.remoteCtx(ctx)
	defer cancel()

	serverID, err := r.remote.Add(rctx, r.collection, fields)
	if err != nil {
		return "", err
	}

	if err := r.remote.Update(rctx, r.collection, serverID, map[string]any{"id": serverID}); err != nil {
		// The document exists under the right key; a missing body mirror is
		// cosmetic and the next update repairs it.
		r.logger.Info("failed to mirror id into document body", "id", serverID, "error", err)
	}
	return serverID, nil
}

// reconcileID rewrites a locally-minted placeholder to the server id. The
// rewrite happens under the repository lock, before any other operation can
// observe the old id.
func (r *Repository[T, P]) reconcileID(oldID, newID models.ID) T {
	idx := r.indexOf(oldID)
	if idx < 0 {
		var zero T
		return zero
	}
	r.cache[idx] = r.cache[idx].WithID(newID)
	return r.cache[idx]
}

// mergeRemote upserts decoded remote documents into the cache. Records with
// unreplayed pending operations keep their local version so an offline edit
// is not visually reverted between now and its replay.
func (r *Repository[T, P]) mergeRemote(docs []remote.Document) {
	changed := false
	for _, doc := range docs {
		rec, err := decodeRecord[T](doc)
		if err != nil {
			r.logger.Warn("skipping undecodable remote document", "id", doc.ID, "error", err)
			continue
		}

		id := rec.GetID()
		if r.queue.HasPending(id) {
			continue
		}
		if idx := r.indexOf(id); idx >= 0 {
			r.cache[idx] = rec
		} else {
			r.cache = append(r.cache, rec)
		}
		changed = true
	}

	if changed {
		if err := r.saveCache(); err != nil {
			r.logger.Error("failed to persist merged remote view", "error", err)
		}
	}
}

func (r *Repository[T, P]) enqueueAdd(rec T) {
	if err := r.queue.Enqueue(outbox.Operation[T, P]{Kind: outbox.KindAdd, Record: rec}); err != nil {
		r.logger.Error("failed to persist pending add", "error", err)
	}
}

func (r *Repository[T, P]) enqueueUpdate(id models.ID, patch P) {
	if err := r.queue.Enqueue(outbox.Operation[T, P]{Kind: outbox.KindUpdate, TargetID: id, Patch: patch}); err != nil {
		r.logger.Error("failed to persist pending update", "error", err)
	}
}

func (r *Repository[T, P]) enqueueDelete(id models.ID) {
	if err := r.queue.Enqueue(outbox.Operation[T, P]{Kind: outbox.KindDelete, TargetID: id}); err != nil {
		r.logger.Error("failed to persist pending delete", "error", err)
	}
}
