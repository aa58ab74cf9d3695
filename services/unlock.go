package services

import (
	"context"
	"math/rand"
	"sync"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/heartwired/valentine_api/dto"
	"github.com/heartwired/valentine_api/games"
	"github.com/heartwired/valentine_api/model"
	"github.com/heartwired/valentine_api/shared"
)

// ContentSource is the slice of the content store the unlock engine reads:
// full lists ordered by position ascending.
type ContentSource interface {
	GetPictures() ([]model.Picture, error)
	GetMessages() ([]model.Message, error)
	GetTreats() ([]model.SweetTreat, error)
}

// UnlockCounter is the server-held counter store. Increment caps each counter
// at maxSlots and reports the counts before and after.
type UnlockCounter interface {
	GetCounts(userID string) (*model.UnlockCount, error)
	Increment(userID string, pictures, messages, treats bool, maxSlots int) (previous, current *model.UnlockCount, err error)
}

// Reward placeholders, used when the content list is shorter than the
// counter says it should be.
const (
	placeholderMessage  = "Made with love, just for you"
	placeholderPhotoURL = "/assets/generated/bouquet.dim_512x512.png"
	placeholderTreat    = "A Sweet Surprise"
)

// winMessages is the popup pool shown on any win.
var winMessages = []string{
	"You're absolutely amazing!",
	"My heart skips a beat for you!",
	"You light up my world!",
	"Forever grateful for you!",
	"You make everything better!",
	"You're my favorite person!",
	"Love you to the moon and back!",
	"You're simply the best!",
	"My heart belongs to you!",
	"You're my everything!",
}

// UnlockService is the reconciliation engine: the single authority for
// whether a win produces a new unlock and which item it reveals.
type UnlockService struct {
	appContext.DefaultService

	progressSvc *ProgressService
	contentSvc  *ContentService

	registry *games.Registry
	source   ContentSource
	counter  UnlockCounter

	totalSlots int

	// sessionLocks serializes increments per session: a second win arriving
	// while one is in flight queues behind it instead of interleaving.
	sessionLocks sync.Map // map[string]*sync.Mutex
}

const UNLOCK_SVC = "unlock_svc"

func (svc UnlockService) Id() string {
	return UNLOCK_SVC
}

func (svc *UnlockService) Configure(ctx *appContext.Context) error {
	svc.registry = games.Default()
	return svc.DefaultService.Configure(ctx)
}

func (svc *UnlockService) Start() error {
	svc.progressSvc = svc.Service(PROGRESS_SVC).(*ProgressService)
	svc.contentSvc = svc.Service(CONTENT_SVC).(*ContentService)

	if svc.source == nil {
		svc.source = svc.contentSvc.Repository()
	}
	if svc.counter == nil {
		svc.counter = svc.contentSvc.UnlockRepository()
	}
	svc.totalSlots = svc.contentSvc.TotalSlots()
	return nil
}

// SetCollaborators overrides the engine's stores.
func (svc *UnlockService) SetCollaborators(progress *ProgressService, source ContentSource, counter UnlockCounter, totalSlots int) {
	svc.progressSvc = progress
	svc.source = source
	svc.counter = counter
	svc.totalSlots = totalSlots
	if svc.registry == nil {
		svc.registry = games.Default()
	}
}

func (svc *UnlockService) sessionLock(sessionID string) *sync.Mutex {
	actual, _ := svc.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// HandleWin processes one win signal from a mini-game.
//
// A win on a game already completed this session is a replay: no counter
// moves, no item is revealed. A first-time win marks the game complete,
// increments all three counters in lockstep and reveals the item whose index
// equals the counter value before the increment. A failed increment leaves
// the session mark in place but flags the game reward-pending, so the next
// win retries the increment instead of replay-classifying.
func (svc *UnlockService) HandleWin(ctx context.Context, userID, sessionID string, req dto.WinRequest) (*dto.WinResponse, error) {
	game, ok := svc.registry.Get(req.GameID)
	if !ok {
		return nil, shared.NewBadRequestError(nil, "Unknown game: "+req.GameID)
	}

	if err := game.ValidateWin(req.Payload); err != nil {
		return nil, shared.NewBadRequestError(err, "Win condition not met")
	}

	lock := svc.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	// Duplicate delivery of an already-processed win event is discarded
	// before any side effect.
	if svc.progressSvc.LastEpoch(ctx, sessionID, req.GameID) >= req.Epoch {
		return svc.replayResponse(ctx, userID, sessionID, req.GameID)
	}

	alreadyCompleted := svc.progressSvc.IsComplete(ctx, sessionID, req.GameID)
	rewardPending := svc.progressSvc.IsPending(ctx, sessionID, req.GameID)

	if err := svc.progressSvc.RecordEpoch(ctx, sessionID, req.GameID, req.Epoch); err != nil {
		log.WithError(err).Warn("Failed to record win epoch")
	}

	if alreadyCompleted && !rewardPending {
		return svc.replayResponse(ctx, userID, sessionID, req.GameID)
	}

	// First-time win (or retry of one whose increment failed): the session
	// mark flips before the server call and is not rolled back on failure.
	if !alreadyCompleted {
		if err := svc.progressSvc.MarkComplete(ctx, sessionID, req.GameID); err != nil {
			return nil, shared.NewInternalError(err, "Failed to record game completion")
		}
	}
	if err := svc.progressSvc.MarkPending(ctx, sessionID, req.GameID); err != nil {
		return nil, shared.NewInternalError(err, "Failed to record pending reward")
	}

	previous, current, err := svc.counter.Increment(userID, true, true, true, svc.totalSlots)
	if err != nil {
		RecordUnlockIncrement("error")
		return nil, shared.NewUpstreamError(err, "Failed to unlock content, please try again")
	}
	RecordUnlockIncrement("ok")
	RecordGameWin(req.GameID, "first_win")

	if err := svc.progressSvc.ClearPending(ctx, sessionID, req.GameID); err != nil {
		log.WithError(err).Warn("Failed to clear pending reward flag")
	}

	reward := svc.resolveReward(previous)

	return &dto.WinResponse{
		GameID:   req.GameID,
		FirstWin: true,
		Reward:   reward,
		Unlocks: dto.UnlockCountDTO{
			Pictures: current.Pictures,
			Messages: current.Messages,
			Treats:   current.Treats,
		},
		Progress: svc.progressResponse(ctx, sessionID),
	}, nil
}

// resolveReward picks the newly revealed triple: for each kind the item at
// the pre-increment counter index in the position-sorted full list, falling
// back to a generic placeholder when the list is shorter.
func (svc *UnlockService) resolveReward(previous *model.UnlockCount) *dto.Reward {
	reward := &dto.Reward{
		Message:  placeholderMessage,
		PhotoURL: placeholderPhotoURL,
		Treat:    placeholderTreat,
	}

	if messages, err := svc.source.GetMessages(); err == nil && previous.Messages < len(messages) {
		reward.Message = messages[previous.Messages].Content
	}
	if pictures, err := svc.source.GetPictures(); err == nil && previous.Pictures < len(pictures) {
		reward.PhotoURL = pictures[previous.Pictures].URL
	}
	if treats, err := svc.source.GetTreats(); err == nil && previous.Treats < len(treats) {
		reward.Treat = treats[previous.Treats].Name
	}

	return reward
}

func (svc *UnlockService) replayResponse(ctx context.Context, userID, sessionID, gameID string) (*dto.WinResponse, error) {
	RecordGameWin(gameID, "replay")
	counts, err := svc.counter.GetCounts(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load unlock counts")
	}

	return &dto.WinResponse{
		GameID:   gameID,
		FirstWin: false,
		Unlocks: dto.UnlockCountDTO{
			Pictures: counts.Pictures,
			Messages: counts.Messages,
			Treats:   counts.Treats,
		},
		Progress: svc.progressResponse(ctx, sessionID),
	}, nil
}

func (svc *UnlockService) progressResponse(ctx context.Context, sessionID string) dto.ProgressResponse {
	completed := svc.progressSvc.CompletedGames(ctx, sessionID)
	return dto.ProgressResponse{
		CompletedGames: completed,
		CompletedCount: len(completed),
		TotalGames:     svc.registry.Count(),
	}
}

// GetCounts returns the caller's unlock counters.
func (svc *UnlockService) GetCounts(userID string) (*dto.UnlockCountDTO, error) {
	counts, err := svc.counter.GetCounts(userID)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to load unlock counts")
	}
	return &dto.UnlockCountDTO{
		Pictures: counts.Pictures,
		Messages: counts.Messages,
		Treats:   counts.Treats,
	}, nil
}

// ListGames describes the registered mini-games.
func (svc *UnlockService) ListGames() []dto.GameInfo {
	registered := svc.registry.List()
	out := make([]dto.GameInfo, 0, len(registered))
	for _, g := range registered {
		out = append(out, dto.GameInfo{
			ID:     g.ID(),
			Name:   g.Name(),
			Target: g.Target(),
		})
	}
	return out
}

// WinMessage returns a random popup message from the fixed pool.
func (svc *UnlockService) WinMessage() dto.WinMessageResponse {
	return dto.WinMessageResponse{
		Message: winMessages[rand.Intn(len(winMessages))],
	}
}

// ResetProgress clears the caller's session progress (explicit start-over).
func (svc *UnlockService) ResetProgress(ctx context.Context, sessionID string) error {
	if err := svc.progressSvc.Reset(ctx, sessionID); err != nil {
		return shared.NewInternalError(err, "Failed to reset progress")
	}
	return nil
}
