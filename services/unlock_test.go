package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartwired/valentine_api/dto"
	"github.com/heartwired/valentine_api/model"
	"github.com/heartwired/valentine_api/shared"
)

// fakeSource serves fixed position-ordered lists.
type fakeSource struct {
	pictures []model.Picture
	messages []model.Message
	treats   []model.SweetTreat
}

func (f *fakeSource) GetPictures() ([]model.Picture, error)  { return f.pictures, nil }
func (f *fakeSource) GetMessages() ([]model.Message, error)  { return f.messages, nil }
func (f *fakeSource) GetTreats() ([]model.SweetTreat, error) { return f.treats, nil }

// fakeCounter mimics the capped lockstep counter and records every
// Increment call.
type fakeCounter struct {
	counts         map[string]*model.UnlockCount
	incrementCalls int
	failNext       bool
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: make(map[string]*model.UnlockCount)}
}

func (f *fakeCounter) GetCounts(userID string) (*model.UnlockCount, error) {
	if c, ok := f.counts[userID]; ok {
		copied := *c
		return &copied, nil
	}
	return &model.UnlockCount{UserID: userID}, nil
}

func (f *fakeCounter) Increment(userID string, pictures, messages, treats bool, maxSlots int) (*model.UnlockCount, *model.UnlockCount, error) {
	f.incrementCalls++
	if f.failNext {
		f.failNext = false
		return nil, nil, fmt.Errorf("counter store down")
	}

	current, ok := f.counts[userID]
	if !ok {
		current = &model.UnlockCount{UserID: userID}
		f.counts[userID] = current
	}
	previous := *current

	bump := func(v int, enabled bool) int {
		if enabled && v < maxSlots {
			return v + 1
		}
		return v
	}
	current.Pictures = bump(current.Pictures, pictures)
	current.Messages = bump(current.Messages, messages)
	current.Treats = bump(current.Treats, treats)

	after := *current
	return &previous, &after, nil
}

func fixtureSource(n int) *fakeSource {
	src := &fakeSource{}
	for i := 0; i < n; i++ {
		src.pictures = append(src.pictures, model.Picture{
			ID:       fmt.Sprintf("pic-%d", i),
			URL:      fmt.Sprintf("/photos/%d.png", i),
			Position: i,
		})
		src.messages = append(src.messages, model.Message{
			ID:       fmt.Sprintf("msg-%d", i),
			Content:  fmt.Sprintf("note %d", i),
			Position: i,
		})
		src.treats = append(src.treats, model.SweetTreat{
			ID:       fmt.Sprintf("treat-%d", i),
			Name:     fmt.Sprintf("treat %d", i),
			Position: i,
		})
	}
	return src
}

func newTestUnlockService(source ContentSource, counter UnlockCounter, totalSlots int) *UnlockService {
	svc := &UnlockService{}
	svc.SetCollaborators(newTestProgressService(), source, counter, totalSlots)
	return svc
}

// winPayload builds a valid winning payload for each game.
func winPayload(t *testing.T, gameID string) json.RawMessage {
	t.Helper()
	switch gameID {
	case shared.GameMatchPairs:
		return json.RawMessage(`{"cards":[
			{"index":0,"symbol":"heart","matched":true},{"index":1,"symbol":"heart","matched":true},
			{"index":2,"symbol":"rose","matched":true},{"index":3,"symbol":"rose","matched":true},
			{"index":4,"symbol":"ring","matched":true},{"index":5,"symbol":"ring","matched":true},
			{"index":6,"symbol":"dove","matched":true},{"index":7,"symbol":"dove","matched":true}]}`)
	case shared.GameHeartClick:
		return json.RawMessage(`{"score":18,"time_left":2}`)
	case shared.GameLoveWord:
		return json.RawMessage(`{"solved_words":["FOREVER","ROMANCE","PASSION"]}`)
	case shared.GameCupidAim:
		return json.RawMessage(`{"hits":10,"shots":14}`)
	case shared.GameSweetSort:
		return json.RawMessage(`{"buckets":{"pink":["pink","pink","pink","pink"],"red":["red","red","red","red"],"purple":["purple","purple","purple","purple"]}}`)
	default:
		t.Fatalf("no payload for game %s", gameID)
		return nil
	}
}

func winReq(t *testing.T, gameID string, epoch int) dto.WinRequest {
	return dto.WinRequest{GameID: gameID, Epoch: epoch, Payload: winPayload(t, gameID)}
}

func TestHandleWin_FirstWin(t *testing.T) {
	counter := newFakeCounter()
	svc := newTestUnlockService(fixtureSource(5), counter, 5)
	ctx := context.Background()

	resp, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, shared.GameHeartClick, 0))
	require.NoError(t, err)

	assert.True(t, resp.FirstWin)
	assert.Equal(t, 1, counter.incrementCalls)
	assert.Equal(t, dto.UnlockCountDTO{Pictures: 1, Messages: 1, Treats: 1}, resp.Unlocks)

	// Counter was 0 before the win, so slot 0 is revealed.
	require.NotNil(t, resp.Reward)
	assert.Equal(t, "note 0", resp.Reward.Message)
	assert.Equal(t, "/photos/0.png", resp.Reward.PhotoURL)
	assert.Equal(t, "treat 0", resp.Reward.Treat)

	assert.Equal(t, 1, resp.Progress.CompletedCount)
	assert.Equal(t, []string{shared.GameHeartClick}, resp.Progress.CompletedGames)
	assert.Equal(t, 5, resp.Progress.TotalGames)
}

func TestHandleWin_ReplayDoesNotIncrement(t *testing.T) {
	counter := newFakeCounter()
	svc := newTestUnlockService(fixtureSource(5), counter, 5)
	ctx := context.Background()

	_, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, shared.GameHeartClick, 0))
	require.NoError(t, err)

	resp, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, shared.GameHeartClick, 1))
	require.NoError(t, err)

	assert.False(t, resp.FirstWin)
	assert.Nil(t, resp.Reward)
	assert.Equal(t, 1, counter.incrementCalls)
	assert.Equal(t, dto.UnlockCountDTO{Pictures: 1, Messages: 1, Treats: 1}, resp.Unlocks)
	assert.Equal(t, 1, resp.Progress.CompletedCount)
}

func TestHandleWin_DistinctGamesRevealInOrder(t *testing.T) {
	counter := newFakeCounter()
	svc := newTestUnlockService(fixtureSource(5), counter, 5)
	ctx := context.Background()

	for i, gameID := range shared.AllGameIDs {
		resp, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, gameID, 0))
		require.NoError(t, err)

		assert.True(t, resp.FirstWin)
		require.NotNil(t, resp.Reward)
		// The revealed index equals the number of distinct wins before this one.
		assert.Equal(t, fmt.Sprintf("note %d", i), resp.Reward.Message)
		assert.Equal(t, i+1, resp.Unlocks.Messages)
	}

	assert.Equal(t, len(shared.AllGameIDs), counter.incrementCalls)
}

func TestHandleWin_DuplicateEpochDiscarded(t *testing.T) {
	counter := newFakeCounter()
	svc := newTestUnlockService(fixtureSource(5), counter, 5)
	ctx := context.Background()

	_, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, shared.GameCupidAim, 3))
	require.NoError(t, err)

	// Same epoch delivered again: no increment, replay shape.
	resp, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, shared.GameCupidAim, 3))
	require.NoError(t, err)

	assert.False(t, resp.FirstWin)
	assert.Equal(t, 1, counter.incrementCalls)
}

func TestHandleWin_PlaceholderFallback(t *testing.T) {
	counter := newFakeCounter()
	svc := newTestUnlockService(&fakeSource{}, counter, 5)
	ctx := context.Background()

	resp, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, shared.GameLoveWord, 0))
	require.NoError(t, err)

	require.NotNil(t, resp.Reward)
	assert.Equal(t, placeholderMessage, resp.Reward.Message)
	assert.Equal(t, placeholderPhotoURL, resp.Reward.PhotoURL)
	assert.Equal(t, placeholderTreat, resp.Reward.Treat)
}

func TestHandleWin_FailedIncrementRetries(t *testing.T) {
	counter := newFakeCounter()
	counter.failNext = true
	svc := newTestUnlockService(fixtureSource(5), counter, 5)
	ctx := context.Background()

	_, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, shared.GameSweetSort, 0))
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
	assert.Equal(t, 1, counter.incrementCalls)

	// The session mark stays but the reward is still owed, so the next win
	// retries the increment instead of replay-classifying.
	resp, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, shared.GameSweetSort, 1))
	require.NoError(t, err)

	assert.True(t, resp.FirstWin)
	require.NotNil(t, resp.Reward)
	assert.Equal(t, 2, counter.incrementCalls)
	assert.Equal(t, dto.UnlockCountDTO{Pictures: 1, Messages: 1, Treats: 1}, resp.Unlocks)

	// And after the retry landed, further wins are plain replays.
	resp, err = svc.HandleWin(ctx, "u1", "s1", winReq(t, shared.GameSweetSort, 2))
	require.NoError(t, err)
	assert.False(t, resp.FirstWin)
	assert.Equal(t, 2, counter.incrementCalls)
}

func TestHandleWin_UnknownGame(t *testing.T) {
	svc := newTestUnlockService(fixtureSource(5), newFakeCounter(), 5)

	_, err := svc.HandleWin(context.Background(), "u1", "s1", dto.WinRequest{
		GameID:  "tic_tac_toe",
		Payload: json.RawMessage(`{}`),
	})
	require.Error(t, err)

	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
}

func TestHandleWin_InvalidPayloadHasNoSideEffect(t *testing.T) {
	counter := newFakeCounter()
	svc := newTestUnlockService(fixtureSource(5), counter, 5)
	ctx := context.Background()

	_, err := svc.HandleWin(ctx, "u1", "s1", dto.WinRequest{
		GameID:  shared.GameHeartClick,
		Epoch:   0,
		Payload: json.RawMessage(`{"score":3,"time_left":5}`),
	})
	require.Error(t, err)

	assert.Equal(t, 0, counter.incrementCalls)

	// The losing attempt did not consume the epoch.
	resp, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, shared.GameHeartClick, 0))
	require.NoError(t, err)
	assert.True(t, resp.FirstWin)
}

func TestHandleWin_CounterCapsAtTotalSlots(t *testing.T) {
	counter := newFakeCounter()
	svc := newTestUnlockService(fixtureSource(2), counter, 2)
	ctx := context.Background()

	for _, gameID := range shared.AllGameIDs {
		_, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, gameID, 0))
		require.NoError(t, err)
	}

	counts, err := svc.GetCounts("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Pictures)
	assert.Equal(t, 2, counts.Messages)
	assert.Equal(t, 2, counts.Treats)
}

func TestHandleWin_ResetRestartsProgression(t *testing.T) {
	counter := newFakeCounter()
	svc := newTestUnlockService(fixtureSource(5), counter, 5)
	ctx := context.Background()

	_, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, shared.GameHeartClick, 0))
	require.NoError(t, err)

	require.NoError(t, svc.ResetProgress(ctx, "s1"))

	// After an explicit reset the same game counts as a first win again and
	// the unlock counter keeps climbing.
	resp, err := svc.HandleWin(ctx, "u1", "s1", winReq(t, shared.GameHeartClick, 0))
	require.NoError(t, err)

	assert.True(t, resp.FirstWin)
	assert.Equal(t, 2, counter.incrementCalls)
	assert.Equal(t, 2, resp.Unlocks.Pictures)
}

func TestListGames(t *testing.T) {
	svc := newTestUnlockService(fixtureSource(5), newFakeCounter(), 5)

	infos := svc.ListGames()
	require.Len(t, infos, len(shared.AllGameIDs))
	for _, info := range infos {
		assert.True(t, shared.IsKnownGame(info.ID))
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Target)
	}
}

func TestWinMessage_FromPool(t *testing.T) {
	svc := newTestUnlockService(fixtureSource(5), newFakeCounter(), 5)

	pool := make(map[string]bool, len(winMessages))
	for _, m := range winMessages {
		pool[m] = true
	}

	for i := 0; i < 50; i++ {
		msg := svc.WinMessage()
		assert.True(t, pool[msg.Message], "message %q not in pool", msg.Message)
	}
}
