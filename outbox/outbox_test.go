package outbox

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitalog/models"
	"vitalog/store"
)

type waterQueue = Queue[models.WaterIntake, models.WaterIntakePatch]

func setupQueue(t *testing.T) (*waterQueue, *store.Local) {
	t.Helper()

	local, err := store.Open(filepath.Join(t.TempDir(), "test.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })

	return New[models.WaterIntake, models.WaterIntakePatch](local, "waterIntakes", slog.Default()), local
}

func pendingAdd(amount int) Operation[models.WaterIntake, models.WaterIntakePatch] {
	return Operation[models.WaterIntake, models.WaterIntakePatch]{
		Kind: KindAdd,
		Record: models.WaterIntake{
			ID:     models.NewLocalID(),
			UserID: "alice",
			Amount: amount,
			Date:   "2024-06-01",
		},
	}
}

func TestQueueOrderAndRemoval(t *testing.T) {
	q, _ := setupQueue(t)

	first := pendingAdd(100)
	second := pendingAdd(200)
	require.NoError(t, q.Enqueue(first))
	require.NoError(t, q.Enqueue(second))

	snapshot := q.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, 100, snapshot[0].Record.Amount, "replay order is insertion order")
	assert.Equal(t, 200, snapshot[1].Record.Amount)

	t.Run("snapshot does not drain", func(t *testing.T) {
		assert.Equal(t, 2, q.Len())
	})

	t.Run("remove completed keeps the rest", func(t *testing.T) {
		require.NoError(t, q.RemoveCompleted(map[string]bool{snapshot[0].ID: true}))
		require.Equal(t, 1, q.Len())
		assert.Equal(t, 200, q.Snapshot()[0].Record.Amount)
	})
}

func TestQueuePersistence(t *testing.T) {
	q, local := setupQueue(t)

	op := pendingAdd(250)
	require.NoError(t, q.Enqueue(op))

	reloaded := New[models.WaterIntake, models.WaterIntakePatch](local, "waterIntakes", slog.Default())
	require.Equal(t, 1, reloaded.Len())

	got := reloaded.Snapshot()[0]
	assert.Equal(t, KindAdd, got.Kind)
	assert.Equal(t, op.Record.GetID(), got.Record.GetID())
	assert.Equal(t, 250, got.Record.Amount)
	assert.True(t, got.Record.GetID().IsLocal(), "the id tag survives persistence")
}

func TestQueueCorruptDataTreatedAsEmpty(t *testing.T) {
	_, local := setupQueue(t)
	require.NoError(t, local.WriteAll("waterIntakes.outbox", []byte("not json")))

	reloaded := New[models.WaterIntake, models.WaterIntakePatch](local, "waterIntakes", slog.Default())
	assert.Equal(t, 0, reloaded.Len())
}

func TestFoldIntoAdd(t *testing.T) {
	q, _ := setupQueue(t)

	op := pendingAdd(250)
	require.NoError(t, q.Enqueue(op))

	amount := 400
	folded, err := q.FoldIntoAdd(op.Record.GetID(), models.WaterIntakePatch{Amount: &amount})
	require.NoError(t, err)
	assert.True(t, folded)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 400, q.Snapshot()[0].Record.Amount)

	t.Run("unknown target folds nothing", func(t *testing.T) {
		folded, err := q.FoldIntoAdd(models.NewLocalID(), models.WaterIntakePatch{Amount: &amount})
		require.NoError(t, err)
		assert.False(t, folded)
	})
}

func TestCancelFor(t *testing.T) {
	t.Run("pending add collapses to a no-op", func(t *testing.T) {
		q, _ := setupQueue(t)

		op := pendingAdd(250)
		require.NoError(t, q.Enqueue(op))

		removed, err := q.CancelFor(op.Record.GetID())
		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		assert.Equal(t, 0, q.Len())
	})

	t.Run("pending updates on the same id are superseded", func(t *testing.T) {
		q, _ := setupQueue(t)

		target := models.RemoteID("doc-0001")
		amount := 400
		require.NoError(t, q.Enqueue(Operation[models.WaterIntake, models.WaterIntakePatch]{
			Kind:     KindUpdate,
			TargetID: target,
			Patch:    models.WaterIntakePatch{Amount: &amount},
		}))
		require.NoError(t, q.Enqueue(pendingAdd(100)))

		removed, err := q.CancelFor(target)
		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		require.Equal(t, 1, q.Len(), "unrelated operations survive")
		assert.Equal(t, KindAdd, q.Snapshot()[0].Kind)
	})

	t.Run("unknown target removes nothing", func(t *testing.T) {
		q, _ := setupQueue(t)
		require.NoError(t, q.Enqueue(pendingAdd(250)))

		removed, err := q.CancelFor(models.RemoteID("doc-9999"))
		require.NoError(t, err)
		assert.Equal(t, 0, removed)
		assert.Equal(t, 1, q.Len())
	})
}

func TestRecordFailuresAbandonsAfterMaxAttempts(t *testing.T) {
	q, _ := setupQueue(t)

	op := pendingAdd(250)
	require.NoError(t, q.Enqueue(op))
	opID := q.Snapshot()[0].ID

	for i := 0; i < MaxReplayAttempts-1; i++ {
		abandoned, err := q.RecordFailures(map[string]bool{opID: true})
		require.NoError(t, err)
		assert.Equal(t, 0, abandoned)
		assert.Equal(t, 1, q.Len())
	}

	abandoned, err := q.RecordFailures(map[string]bool{opID: true})
	require.NoError(t, err)
	assert.Equal(t, 1, abandoned)
	assert.Equal(t, 0, q.Len())
}

func TestHasPending(t *testing.T) {
	q, _ := setupQueue(t)

	op := pendingAdd(250)
	require.NoError(t, q.Enqueue(op))

	assert.True(t, q.HasPending(op.Record.GetID()))
	assert.False(t, q.HasPending(models.RemoteID("someone-else")))

	target := models.RemoteID("synced-1")
	require.NoError(t, q.Enqueue(Operation[models.WaterIntake, models.WaterIntakePatch]{
		Kind:     KindDelete,
		TargetID: target,
	}))
	assert.True(t, q.HasPending(target))
}
