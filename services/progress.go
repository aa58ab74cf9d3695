package services

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
)

// ProgressRecord is the per-session game progress: the set of completed games
// plus the set of games whose reward increment has not landed yet. Both are
// kept sorted so a stored record round-trips byte-identical.
type ProgressRecord struct {
	Completed []string `json:"completed"`
	Pending   []string `json:"pending"`
	// Epochs records the highest processed reset-epoch per game, guarding
	// against duplicate delivery of the same win event.
	Epochs map[string]int `json:"epochs,omitempty"`
}

func (r *ProgressRecord) has(set []string, gameID string) bool {
	for _, id := range set {
		if id == gameID {
			return true
		}
	}
	return false
}

func (r *ProgressRecord) IsComplete(gameID string) bool {
	return r.has(r.Completed, gameID)
}

func (r *ProgressRecord) IsPending(gameID string) bool {
	return r.has(r.Pending, gameID)
}

// ProgressStore persists progress records for the lifetime of a session.
type ProgressStore interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, data []byte) error
	Clear(ctx context.Context, sessionID string) error
}

// ProgressService is the session progress tracker: an idempotent completed-game
// set scoped to one browsing session. Storage failures on read degrade to an
// empty set; they never surface to the caller.
type ProgressService struct {
	appContext.DefaultService

	store      ProgressStore
	sessionTTL time.Duration
}

const PROGRESS_SVC = "progress_svc"

func (svc ProgressService) Id() string {
	return PROGRESS_SVC
}

func (svc *ProgressService) Configure(ctx *appContext.Context) error {
	svc.sessionTTL = 24 * time.Hour
	if ttlStr := os.Getenv("SESSION_TTL_HOURS"); ttlStr != "" {
		if hours, err := strconv.Atoi(ttlStr); err == nil && hours > 0 {
			svc.sessionTTL = time.Duration(hours) * time.Hour
		}
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *ProgressService) Start() error {
	if svc.store == nil {
		redisSvc := svc.Service(REDIS_SVC).(*RedisService)
		svc.store = NewRedisProgressStore(redisSvc, svc.sessionTTL)
	}
	return nil
}

// SetStore overrides the backing store.
func (svc *ProgressService) SetStore(store ProgressStore) {
	svc.store = store
}

// Get loads the session's record. Missing or corrupt payloads come back as an
// empty record.
func (svc *ProgressService) Get(ctx context.Context, sessionID string) *ProgressRecord {
	record := &ProgressRecord{}

	data, err := svc.store.Load(ctx, sessionID)
	if err != nil {
		log.WithError(err).WithField(
			"session_id", sessionID,
		).Warn("Failed to load session progress, starting empty")
		return record
	}
	if len(data) == 0 {
		return record
	}

	if err := sonic.Unmarshal(data, record); err != nil {
		log.WithError(err).WithField(
			"session_id", sessionID,
		).Warn("Corrupt session progress payload, resetting to empty")
		return &ProgressRecord{}
	}
	return record
}

func (svc *ProgressService) IsComplete(ctx context.Context, sessionID, gameID string) bool {
	return svc.Get(ctx, sessionID).IsComplete(gameID)
}

// MarkComplete inserts gameID into the session's completed set. Re-marking an
// already-complete game changes nothing.
func (svc *ProgressService) MarkComplete(ctx context.Context, sessionID, gameID string) error {
	record := svc.Get(ctx, sessionID)
	if record.IsComplete(gameID) {
		return nil
	}

	record.Completed = insertSorted(record.Completed, gameID)
	return svc.save(ctx, sessionID, record)
}

func (svc *ProgressService) CompletedCount(ctx context.Context, sessionID string) int {
	return len(svc.Get(ctx, sessionID).Completed)
}

func (svc *ProgressService) CompletedGames(ctx context.Context, sessionID string) []string {
	return svc.Get(ctx, sessionID).Completed
}

// Reset clears the session's completed set. Used by explicit start-over flows
// only, never by navigation.
func (svc *ProgressService) Reset(ctx context.Context, sessionID string) error {
	return svc.store.Clear(ctx, sessionID)
}

// MarkPending flags a completed game whose unlock increment has not succeeded
// yet; the next win on that game retries the increment.
func (svc *ProgressService) MarkPending(ctx context.Context, sessionID, gameID string) error {
	record := svc.Get(ctx, sessionID)
	if record.IsPending(gameID) {
		return nil
	}

	record.Pending = insertSorted(record.Pending, gameID)
	return svc.save(ctx, sessionID, record)
}

func (svc *ProgressService) ClearPending(ctx context.Context, sessionID, gameID string) error {
	record := svc.Get(ctx, sessionID)
	if !record.IsPending(gameID) {
		return nil
	}

	pending := make([]string, 0, len(record.Pending)-1)
	for _, id := range record.Pending {
		if id != gameID {
			pending = append(pending, id)
		}
	}
	record.Pending = pending
	return svc.save(ctx, sessionID, record)
}

func (svc *ProgressService) IsPending(ctx context.Context, sessionID, gameID string) bool {
	return svc.Get(ctx, sessionID).IsPending(gameID)
}

// LastEpoch returns the highest processed reset-epoch for a game, -1 when no
// win has been processed yet.
func (svc *ProgressService) LastEpoch(ctx context.Context, sessionID, gameID string) int {
	record := svc.Get(ctx, sessionID)
	if epoch, ok := record.Epochs[gameID]; ok {
		return epoch
	}
	return -1
}

func (svc *ProgressService) RecordEpoch(ctx context.Context, sessionID, gameID string, epoch int) error {
	record := svc.Get(ctx, sessionID)
	if existing, ok := record.Epochs[gameID]; ok && existing >= epoch {
		return nil
	}
	if record.Epochs == nil {
		record.Epochs = make(map[string]int)
	}
	record.Epochs[gameID] = epoch
	return svc.save(ctx, sessionID, record)
}

func (svc *ProgressService) save(ctx context.Context, sessionID string, record *ProgressRecord) error {
	data, err := sonic.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session progress: %w", err)
	}
	return svc.store.Save(ctx, sessionID, data)
}

func insertSorted(set []string, value string) []string {
	idx := sort.SearchStrings(set, value)
	set = append(set, "")
	copy(set[idx+1:], set[idx:])
	set[idx] = value
	return set
}
