// File: services/assistant/history.go
package assistant

import (
	"context"
	"encoding/json"
	"sync"

	"skyline/models"

	"github.com/go-redis/redis/v8"
)

const historyPrefix = "ast:history:"

// ChatHistory records the turns of each session, append-only. A limit of
// zero keeps everything; a positive limit keeps only the newest turns.
type ChatHistory interface {
	Append(ctx context.Context, sessionID string, turn models.ChatTurn) error
	Recent(ctx context.Context, sessionID string, n int) ([]models.ChatTurn, error)
}

// MemoryHistory is the in-process ChatHistory.
type MemoryHistory struct {
	mu    sync.RWMutex
	turns map[string][]models.ChatTurn
	limit int
}

func NewMemoryHistory(limit int) *MemoryHistory {
	return &MemoryHistory{turns: make(map[string][]models.ChatTurn), limit: limit}
}

func (h *MemoryHistory) Append(_ context.Context, sessionID string, turn models.ChatTurn) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	ts := append(h.turns[sessionID], turn)
	if h.limit > 0 && len(ts) > h.limit {
		ts = ts[len(ts)-h.limit:]
	}
	h.turns[sessionID] = ts
	return nil
}

func (h *MemoryHistory) Recent(_ context.Context, sessionID string, n int) ([]models.ChatTurn, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ts := h.turns[sessionID]
	if n > 0 && len(ts) > n {
		ts = ts[len(ts)-n:]
	}
	out := make([]models.ChatTurn, len(ts))
	copy(out, ts)
	return out, nil
}

// RedisHistory stores each session's turns in a Redis list.
type RedisHistory struct {
	client *redis.Client
	limit  int
}

func NewRedisHistory(client *redis.Client, limit int) *RedisHistory {
	return &RedisHistory{client: client, limit: limit}
}

func (h *RedisHistory) Append(ctx context.Context, sessionID string, turn models.ChatTurn) error {
	b, err := json.Marshal(turn)
	if err != nil {
		return err
	}
	key := historyPrefix + sessionID
	if err := h.client.RPush(ctx, key, b).Err(); err != nil {
		return err
	}
	if h.limit > 0 {
		return h.client.LTrim(ctx, key, int64(-h.limit), -1).Err()
	}
	return nil
}

func (h *RedisHistory) Recent(ctx context.Context, sessionID string, n int) ([]models.ChatTurn, error) {
	start := int64(0)
	if n > 0 {
		start = int64(-n)
	}
	raw, err := h.client.LRange(ctx, historyPrefix+sessionID, start, -1).Result()
	if err != nil {
		return nil, err
	}
	turns := make([]models.ChatTurn, 0, len(raw))
	for _, r := range raw {
		var t models.ChatTurn
		if err := json.Unmarshal([]byte(r), &t); err != nil {
			continue
		}
		turns = append(turns, t)
	}
	return turns, nil
}
