package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/skinroutine/backend/internal/apperrors"
	"github.com/pageza/skinroutine/backend/internal/types"
	"github.com/redis/go-redis/v9"
)

// DraftTTL is how long a generated routine stays available for saving
const DraftTTL = 24 * time.Hour

// RoutineDraft is a generated routine cached until its owner saves it
type RoutineDraft struct {
	ID             string                 `json:"id"`
	UserID         uuid.UUID              `json:"userId"`
	PreferenceType string                 `json:"preferenceType"`
	Season         string                 `json:"season"`
	Routine        types.GeneratedRoutine `json:"routine"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// RedisDraftStore keeps drafts in Redis with a fixed TTL
type RedisDraftStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{redis: client, ttl: DraftTTL}
}

func draftKey(id string) string {
	return fmt.Sprintf("routine_draft:%s", id)
}

// SaveDraft assigns the draft an id and stores it
func (s *RedisDraftStore) SaveDraft(ctx context.Context, draft *RoutineDraft) error {
	draft.ID = uuid.New().String()
	draft.CreatedAt = time.Now()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := s.redis.Set(ctx, draftKey(draft.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft to Redis: %w", err)
	}
	return nil
}

// GetDraft loads a draft, returning a NotFoundError once it has expired
func (s *RedisDraftStore) GetDraft(ctx context.Context, id string) (*RoutineDraft, error) {
	data, err := s.redis.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.NewNotFound("draft", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var draft RoutineDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

// DeleteDraft removes a draft from Redis
func (s *RedisDraftStore) DeleteDraft(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from Redis: %w", err)
	}
	return nil
}
