package services

import (
	"context"
	"sync"
	"time"
)

const progressKeyPrefix = "valentine:progress:"

// RedisProgressStore keeps one key per session with the session TTL; the TTL
// is refreshed on every save so the record lives as long as the session does.
type RedisProgressStore struct {
	redisSvc *RedisService
	ttl      time.Duration
}

func NewRedisProgressStore(redisSvc *RedisService, ttl time.Duration) *RedisProgressStore {
	return &RedisProgressStore{
		redisSvc: redisSvc,
		ttl:      ttl,
	}
}

func (s *RedisProgressStore) Load(ctx context.Context, sessionID string) ([]byte, error) {
	data, err := s.redisSvc.Get(ctx, progressKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

func (s *RedisProgressStore) Save(ctx context.Context, sessionID string, data []byte) error {
	return s.redisSvc.Set(ctx, progressKeyPrefix+sessionID, data, s.ttl)
}

func (s *RedisProgressStore) Clear(ctx context.Context, sessionID string) error {
	return s.redisSvc.Delete(ctx, progressKeyPrefix+sessionID)
}

// MemoryProgressStore is a process-local store used by tests and by
// single-instance deployments without redis.
type MemoryProgressStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryProgressStore() *MemoryProgressStore {
	return &MemoryProgressStore{
		records: make(map[string][]byte),
	}
}

func (s *MemoryProgressStore) Load(_ context.Context, sessionID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data := s.records[sessionID]
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryProgressStore) Save(_ context.Context, sessionID string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	s.records[sessionID] = stored
	return nil
}

func (s *MemoryProgressStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)
	return nil
}
