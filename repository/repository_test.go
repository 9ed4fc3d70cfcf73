package repository

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalog/connectivity"
	"vitalog/models"
	"vitalog/remote"
	"vitalog/store"
)

type waterRepo = Repository[models.WaterIntake, models.WaterIntakePatch]

type fixture struct {
	repo   *waterRepo
	remote *remote.Memory
	policy *connectivity.Policy
	local  *store.Local
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	local, err := store.Open(filepath.Join(t.TempDir(), "test.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })

	mem := remote.NewMemory()
	policy := connectivity.NewPolicy(false)

	return &fixture{
		repo:   New[models.WaterIntake, models.WaterIntakePatch](models.CollectionWaterIntakes, local, mem, policy, slog.Default(), 0),
		remote: mem,
		policy: policy,
		local:  local,
	}
}

func intake(user, date string, amount int, at int64) models.WaterIntake {
	return models.WaterIntake{UserID: user, Amount: amount, Date: date, Time: at}
}

func byDate(user, date string) Query[models.WaterIntake] {
	return Query[models.WaterIntake]{
		Match: func(w models.WaterIntake) bool { return w.UserID == user && w.Date == date },
		Less:  func(a, b models.WaterIntake) bool { return a.Time < b.Time },
	}
}

func TestCreateOffline(t *testing.T) {
	f := setupFixture(t)
	f.policy.SetOffline(true)
	ctx := context.Background()

	rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
	require.NoError(t, err)

	t.Run("record gets a local placeholder id", func(t *testing.T) {
		assert.True(t, rec.GetID().IsLocal())
		assert.NotEmpty(t, rec.GetID().Value)
	})

	t.Run("read immediately after create includes the record", func(t *testing.T) {
		got := f.repo.Read(ctx, byDate("alice", "2024-06-01"))
		require.Len(t, got, 1)
		assert.Equal(t, 250, got[0].Amount)
		assert.Equal(t, rec.GetID(), got[0].GetID())
	})

	t.Run("one pending add is queued, nothing reached the remote", func(t *testing.T) {
		assert.Equal(t, 1, f.repo.Pending())
		assert.Equal(t, 0, f.remote.Len(models.CollectionWaterIntakes))
	})
}

func TestCreateOnline(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 500, 200))
	require.NoError(t, err)

	t.Run("local id replaced by the server-assigned id", func(t *testing.T) {
		assert.False(t, rec.GetID().IsLocal())
		assert.NotEmpty(t, rec.GetID().Value)
	})

	t.Run("no pending operation remains", func(t *testing.T) {
		assert.Equal(t, 0, f.repo.Pending())
	})

	t.Run("cache entry carries the server id", func(t *testing.T) {
		got := f.repo.Read(ctx, byDate("alice", "2024-06-01"))
		require.Len(t, got, 1)
		assert.Equal(t, rec.GetID(), got[0].GetID())
	})

	t.Run("document exists remotely with the id mirrored into its body", func(t *testing.T) {
		fields, err := f.remote.Get(ctx, models.CollectionWaterIntakes, rec.GetID().Value)
		require.NoError(t, err)
		assert.Equal(t, rec.GetID().Value, fields["id"])
	})
}

func TestCreateFallsBackWhenRemoteFails(t *testing.T) {
	f := setupFixture(t)
	f.remote.SetAvailable(false)
	ctx := context.Background()

	rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 300, 300))
	require.NoError(t, err, "remote failure must not fail the call")

	assert.True(t, rec.GetID().IsLocal())
	assert.Equal(t, 1, f.repo.Pending())

	got := f.repo.Read(ctx, byDate("alice", "2024-06-01"))
	assert.Len(t, got, 1)
}

func TestReadFallsBackToLocalFilter(t *testing.T) {
	// Scenario C: remote unavailable, read returns the local view filtered
	// by date and sorted by time ascending, and no failure escapes.
	f := setupFixture(t)
	f.policy.SetOffline(true)
	ctx := context.Background()

	_, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 300, 900))
	require.NoError(t, err)
	_, err = f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 450))
	require.NoError(t, err)
	_, err = f.repo.Create(ctx, intake("alice", "2024-06-02", 100, 100))
	require.NoError(t, err)

	f.policy.SetOffline(false)
	f.remote.SetAvailable(false)

	got := f.repo.Read(ctx, byDate("alice", "2024-06-01"))
	require.Len(t, got, 2)
	assert.Equal(t, 250, got[0].Amount)
	assert.Equal(t, 300, got[1].Amount)
}

func TestReadMergesRemoteView(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	// A record another session wrote straight to the remote.
	_, err := f.remote.Add(ctx, models.CollectionWaterIntakes, map[string]any{
		"user_id": "alice", "amount": float64(750), "date": "2024-06-01", "time": float64(50),
	})
	require.NoError(t, err)

	got := f.repo.Read(ctx, byDate("alice", "2024-06-01"))
	require.Len(t, got, 1)
	assert.Equal(t, 750, got[0].Amount)
	assert.False(t, got[0].GetID().IsLocal())

	t.Run("merged record is served locally afterwards", func(t *testing.T) {
		f.policy.SetOffline(true)
		got := f.repo.Read(ctx, byDate("alice", "2024-06-01"))
		require.Len(t, got, 1)
		assert.Equal(t, 750, got[0].Amount)
	})
}

func TestReadKeepsLocalVersionOfPendingRecords(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
	require.NoError(t, err)

	// Edit while the remote is down; the patch is queued.
	f.remote.SetAvailable(false)
	amount := 400
	require.NoError(t, f.repo.Update(ctx, rec.GetID(), models.WaterIntakePatch{Amount: &amount}))
	require.Equal(t, 1, f.repo.Pending())

	// The next online read must not revert the edit to the stale remote copy.
	f.remote.SetAvailable(true)
	got := f.repo.Read(ctx, byDate("alice", "2024-06-01"))
	require.Len(t, got, 1)
	assert.Equal(t, 400, got[0].Amount)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id fails hard and mutates nothing", func(t *testing.T) {
		// Scenario D.
		f := setupFixture(t)
		amount := 100
		err := f.repo.Update(ctx, models.RemoteID("nonexistent"), models.WaterIntakePatch{Amount: &amount})
		assert.ErrorIs(t, err, ErrNotFoundLocally)
		assert.Equal(t, 0, f.repo.Pending())
		assert.Empty(t, f.repo.Read(ctx, All[models.WaterIntake]()))
	})

	t.Run("offline update of an unsynced record folds into the pending add", func(t *testing.T) {
		// Folding law: one pending Add whose payload already reflects the patch.
		f := setupFixture(t)
		f.policy.SetOffline(true)

		rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
		require.NoError(t, err)

		amount := 999
		require.NoError(t, f.repo.Update(ctx, rec.GetID(), models.WaterIntakePatch{Amount: &amount}))
		require.Equal(t, 1, f.repo.Pending(), "patch must fold, not enqueue a second operation")

		f.policy.SetOffline(false)
		assert.Equal(t, 1, f.repo.SyncPending(ctx))

		docs, err := f.remote.List(ctx, models.CollectionWaterIntakes)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, float64(999), docs[0].Fields["amount"])
	})

	t.Run("online update of a synced record goes straight to the remote", func(t *testing.T) {
		f := setupFixture(t)
		rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
		require.NoError(t, err)

		amount := 300
		require.NoError(t, f.repo.Update(ctx, rec.GetID(), models.WaterIntakePatch{Amount: &amount}))
		assert.Equal(t, 0, f.repo.Pending())

		fields, err := f.remote.Get(ctx, models.CollectionWaterIntakes, rec.GetID().Value)
		require.NoError(t, err)
		assert.Equal(t, float64(300), fields["amount"])
	})

	t.Run("failed remote update is queued", func(t *testing.T) {
		f := setupFixture(t)
		rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
		require.NoError(t, err)

		f.remote.SetAvailable(false)
		amount := 300
		require.NoError(t, f.repo.Update(ctx, rec.GetID(), models.WaterIntakePatch{Amount: &amount}))
		assert.Equal(t, 1, f.repo.Pending())

		got := f.repo.Read(ctx, byDate("alice", "2024-06-01"))
		require.Len(t, got, 1)
		assert.Equal(t, 300, got[0].Amount, "local view reflects the patch immediately")
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id fails hard", func(t *testing.T) {
		f := setupFixture(t)
		assert.ErrorIs(t, f.repo.Delete(ctx, models.RemoteID("nonexistent")), ErrNotFoundLocally)
	})

	t.Run("offline create then delete collapses to nothing", func(t *testing.T) {
		// Collapsing law: empty cache, empty outbox, no Add survives.
		f := setupFixture(t)
		f.policy.SetOffline(true)

		rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
		require.NoError(t, err)

		require.NoError(t, f.repo.Delete(ctx, rec.GetID()))
		assert.Empty(t, f.repo.Read(ctx, All[models.WaterIntake]()))
		assert.Equal(t, 0, f.repo.Pending())

		f.policy.SetOffline(false)
		assert.Equal(t, 0, f.repo.SyncPending(ctx))
		assert.Equal(t, 0, f.remote.Len(models.CollectionWaterIntakes))
	})

	t.Run("failed remote delete is queued", func(t *testing.T) {
		f := setupFixture(t)
		rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
		require.NoError(t, err)

		f.remote.SetAvailable(false)
		require.NoError(t, f.repo.Delete(ctx, rec.GetID()))
		assert.Empty(t, f.repo.Read(ctx, All[models.WaterIntake]()))
		assert.Equal(t, 1, f.repo.Pending())

		f.remote.SetAvailable(true)
		assert.Equal(t, 1, f.repo.SyncPending(ctx))
		assert.Equal(t, 0, f.remote.Len(models.CollectionWaterIntakes))
	})

	t.Run("queued update for the id is superseded", func(t *testing.T) {
		f := setupFixture(t)
		rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
		require.NoError(t, err)

		f.remote.SetAvailable(false)
		amount := 400
		require.NoError(t, f.repo.Update(ctx, rec.GetID(), models.WaterIntakePatch{Amount: &amount}))
		require.Equal(t, 1, f.repo.Pending())

		f.remote.SetAvailable(true)
		require.NoError(t, f.repo.Delete(ctx, rec.GetID()))
		assert.Equal(t, 0, f.repo.Pending(), "the update dies with the record")
		assert.Equal(t, 0, f.remote.Len(models.CollectionWaterIntakes))

		calls := f.remote.Calls()
		assert.Equal(t, 0, f.repo.SyncPending(ctx))
		assert.Equal(t, calls, f.remote.Calls(), "no orphaned replay attempts")
	})

	t.Run("offline delete leaves only the delete queued", func(t *testing.T) {
		f := setupFixture(t)
		rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
		require.NoError(t, err)

		f.policy.SetOffline(true)
		amount := 400
		require.NoError(t, f.repo.Update(ctx, rec.GetID(), models.WaterIntakePatch{Amount: &amount}))
		require.NoError(t, f.repo.Delete(ctx, rec.GetID()))
		assert.Equal(t, 1, f.repo.Pending())

		f.policy.SetOffline(false)
		assert.Equal(t, 1, f.repo.SyncPending(ctx))
		assert.Equal(t, 0, f.remote.Len(models.CollectionWaterIntakes))
	})

	t.Run("remote already gone counts as done", func(t *testing.T) {
		f := setupFixture(t)
		rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
		require.NoError(t, err)

		require.NoError(t, f.remote.Delete(ctx, models.CollectionWaterIntakes, rec.GetID().Value))
		require.NoError(t, f.repo.Delete(ctx, rec.GetID()))
		assert.Equal(t, 0, f.repo.Pending())
	})
}

func TestStatePersistsAcrossRestart(t *testing.T) {
	f := setupFixture(t)
	f.policy.SetOffline(true)
	ctx := context.Background()

	rec, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
	require.NoError(t, err)

	// A fresh repository over the same local store sees the cache and the
	// outbox exactly as they were.
	reopened := New[models.WaterIntake, models.WaterIntakePatch](models.CollectionWaterIntakes, f.local, f.remote, f.policy, slog.Default(), 0)
	got := reopened.Read(ctx, All[models.WaterIntake]())
	require.Len(t, got, 1)
	assert.Equal(t, rec.GetID(), got[0].GetID())
	assert.Equal(t, 1, reopened.Pending())

	f.policy.SetOffline(false)
	assert.Equal(t, 1, reopened.SyncPending(ctx))
	assert.Equal(t, 1, f.remote.Len(models.CollectionWaterIntakes))
}

func TestCorruptLocalDataReadsAsEmpty(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.policy.SetOffline(true)

	require.NoError(t, f.local.WriteAll(models.CollectionWaterIntakes, []byte("{not json")))
	require.NoError(t, f.local.WriteAll(models.CollectionWaterIntakes+".outbox", []byte("{not json")))

	reopened := New[models.WaterIntake, models.WaterIntakePatch](models.CollectionWaterIntakes, f.local, f.remote, f.policy, slog.Default(), 0)
	assert.Empty(t, reopened.Read(ctx, All[models.WaterIntake]()))
	assert.Equal(t, 0, reopened.Pending())

	// The store keeps working after the corrupt read.
	_, err := reopened.Create(ctx, intake("alice", "2024-06-01", 250, 100))
	require.NoError(t, err)
	assert.Len(t, reopened.Read(ctx, All[models.WaterIntake]()), 1)
}

func TestStatusCounts(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
	require.NoError(t, err)

	f.policy.SetOffline(true)
	_, err = f.repo.Create(ctx, intake("alice", "2024-06-01", 300, 200))
	require.NoError(t, err)

	status := f.repo.Status()
	assert.Equal(t, models.CollectionWaterIntakes, status.Collection)
	assert.Equal(t, 2, status.Records)
	assert.Equal(t, 1, status.LocalOnly)
	assert.Equal(t, 1, status.PendingOps)
}

// stalledRemote accepts every call and never answers until the context
// expires, standing in for a network that connects but hangs.
type stalledRemote struct{}

func (stalledRemote) Add(ctx context.Context, collection string, fields map[string]any) (string, error) {
	<-ctx.Done()
	return "", fmt.Errorf("add %s: %w", collection, remote.ErrUnavailable)
}

func (stalledRemote) Get(ctx context.Context, collection, id string) (map[string]any, error) {
	<-ctx.Done()
	return nil, fmt.Errorf("get %s/%s: %w", collection, id, remote.ErrUnavailable)
}

func (stalledRemote) List(ctx context.Context, collection string) ([]remote.Document, error) {
	<-ctx.Done()
	return nil, fmt.Errorf("list %s: %w", collection, remote.ErrUnavailable)
}

func (stalledRemote) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	<-ctx.Done()
	return fmt.Errorf("update %s/%s: %w", collection, id, remote.ErrUnavailable)
}

func (stalledRemote) Delete(ctx context.Context, collection, id string) error {
	<-ctx.Done()
	return fmt.Errorf("delete %s/%s: %w", collection, id, remote.ErrUnavailable)
}

func TestHungRemoteDegradesToOfflinePath(t *testing.T) {
	local, err := store.Open(filepath.Join(t.TempDir(), "test.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })

	timeout := 50 * time.Millisecond
	repo := New[models.WaterIntake, models.WaterIntakePatch](
		models.CollectionWaterIntakes, local, stalledRemote{},
		connectivity.NewPolicy(false), slog.Default(), timeout,
	)
	ctx := context.Background()

	t.Run("create cuts the hung add off and queues it", func(t *testing.T) {
		start := time.Now()
		rec, err := repo.Create(ctx, intake("alice", "2024-06-01", 250, 100))
		require.NoError(t, err, "a hung remote must not fail the call")

		assert.Less(t, time.Since(start), 10*timeout, "the call returns once the deadline hits")
		assert.True(t, rec.GetID().IsLocal())
		assert.Equal(t, 1, repo.Pending())
	})

	t.Run("read falls back to the local cache", func(t *testing.T) {
		start := time.Now()
		got := repo.Read(ctx, byDate("alice", "2024-06-01"))

		assert.Less(t, time.Since(start), 10*timeout)
		require.Len(t, got, 1)
		assert.Equal(t, 250, got[0].Amount)
	})
}
