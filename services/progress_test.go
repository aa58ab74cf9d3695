package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartwired/valentine_api/shared"
)

func newTestProgressService() *ProgressService {
	svc := &ProgressService{}
	svc.SetStore(NewMemoryProgressStore())
	return svc
}

func TestProgressService_EmptySession(t *testing.T) {
	svc := newTestProgressService()
	ctx := context.Background()

	assert.False(t, svc.IsComplete(ctx, "s1", shared.GameHeartClick))
	assert.Equal(t, 0, svc.CompletedCount(ctx, "s1"))
	assert.Empty(t, svc.CompletedGames(ctx, "s1"))
	assert.Equal(t, -1, svc.LastEpoch(ctx, "s1", shared.GameHeartClick))
}

func TestProgressService_MarkCompleteIdempotent(t *testing.T) {
	svc := newTestProgressService()
	ctx := context.Background()

	require.NoError(t, svc.MarkComplete(ctx, "s1", shared.GameHeartClick))
	assert.True(t, svc.IsComplete(ctx, "s1", shared.GameHeartClick))
	assert.Equal(t, 1, svc.CompletedCount(ctx, "s1"))

	// Marking again changes nothing.
	require.NoError(t, svc.MarkComplete(ctx, "s1", shared.GameHeartClick))
	assert.Equal(t, 1, svc.CompletedCount(ctx, "s1"))
}

func TestProgressService_CompletedGamesSorted(t *testing.T) {
	svc := newTestProgressService()
	ctx := context.Background()

	require.NoError(t, svc.MarkComplete(ctx, "s1", shared.GameSweetSort))
	require.NoError(t, svc.MarkComplete(ctx, "s1", shared.GameCupidAim))
	require.NoError(t, svc.MarkComplete(ctx, "s1", shared.GameHeartClick))

	games := svc.CompletedGames(ctx, "s1")
	require.Len(t, games, 3)
	for i := 1; i < len(games); i++ {
		assert.Less(t, games[i-1], games[i])
	}
}

func TestProgressService_SessionsIsolated(t *testing.T) {
	svc := newTestProgressService()
	ctx := context.Background()

	require.NoError(t, svc.MarkComplete(ctx, "s1", shared.GameHeartClick))

	assert.True(t, svc.IsComplete(ctx, "s1", shared.GameHeartClick))
	assert.False(t, svc.IsComplete(ctx, "s2", shared.GameHeartClick))
}

func TestProgressService_Reset(t *testing.T) {
	svc := newTestProgressService()
	ctx := context.Background()

	require.NoError(t, svc.MarkComplete(ctx, "s1", shared.GameHeartClick))
	require.NoError(t, svc.MarkComplete(ctx, "s1", shared.GameCupidAim))
	require.NoError(t, svc.RecordEpoch(ctx, "s1", shared.GameHeartClick, 0))

	require.NoError(t, svc.Reset(ctx, "s1"))

	assert.Equal(t, 0, svc.CompletedCount(ctx, "s1"))
	assert.False(t, svc.IsComplete(ctx, "s1", shared.GameHeartClick))
	assert.Equal(t, -1, svc.LastEpoch(ctx, "s1", shared.GameHeartClick))
}

func TestProgressService_PendingFlag(t *testing.T) {
	svc := newTestProgressService()
	ctx := context.Background()

	assert.False(t, svc.IsPending(ctx, "s1", shared.GameLoveWord))

	require.NoError(t, svc.MarkPending(ctx, "s1", shared.GameLoveWord))
	assert.True(t, svc.IsPending(ctx, "s1", shared.GameLoveWord))

	// Pending is per game.
	assert.False(t, svc.IsPending(ctx, "s1", shared.GameCupidAim))

	require.NoError(t, svc.ClearPending(ctx, "s1", shared.GameLoveWord))
	assert.False(t, svc.IsPending(ctx, "s1", shared.GameLoveWord))

	// Clearing an absent flag is a no-op.
	require.NoError(t, svc.ClearPending(ctx, "s1", shared.GameLoveWord))
}

func TestProgressService_Epochs(t *testing.T) {
	svc := newTestProgressService()
	ctx := context.Background()

	require.NoError(t, svc.RecordEpoch(ctx, "s1", shared.GameHeartClick, 2))
	assert.Equal(t, 2, svc.LastEpoch(ctx, "s1", shared.GameHeartClick))

	// Lower epochs never move the watermark back.
	require.NoError(t, svc.RecordEpoch(ctx, "s1", shared.GameHeartClick, 1))
	assert.Equal(t, 2, svc.LastEpoch(ctx, "s1", shared.GameHeartClick))

	require.NoError(t, svc.RecordEpoch(ctx, "s1", shared.GameHeartClick, 5))
	assert.Equal(t, 5, svc.LastEpoch(ctx, "s1", shared.GameHeartClick))
}

func TestProgressService_CorruptPayload(t *testing.T) {
	store := NewMemoryProgressStore()
	svc := &ProgressService{}
	svc.SetStore(store)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", []byte("{not json")))

	record := svc.Get(ctx, "s1")
	assert.Empty(t, record.Completed)
	assert.Empty(t, record.Pending)

	// The session remains usable after the corrupt read.
	require.NoError(t, svc.MarkComplete(ctx, "s1", shared.GameHeartClick))
	assert.True(t, svc.IsComplete(ctx, "s1", shared.GameHeartClick))
}

func TestProgressService_LoadErrorDegradesToEmpty(t *testing.T) {
	svc := &ProgressService{}
	svc.SetStore(failingStore{})
	ctx := context.Background()

	record := svc.Get(ctx, "s1")
	assert.NotNil(t, record)
	assert.Empty(t, record.Completed)
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]byte, error) {
	return nil, assert.AnError
}

func (failingStore) Save(context.Context, string, []byte) error {
	return assert.AnError
}

func (failingStore) Clear(context.Context, string) error {
	return assert.AnError
}
