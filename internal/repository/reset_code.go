package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sos_alert_system/internal/service"
)

type ResetCodeStore struct {
	redisClient *redis.Client
}

func NewResetCodeStore(redisClient *redis.Client) service.ResetCodeStore {
	return &ResetCodeStore{redisClient: redisClient}
}

func resetCodeKey(email string) string {
	return fmt.Sprintf("reset_code:%s", email)
}

// Save сохраняет код сброса; новый код заменяет предыдущий
func (s *ResetCodeStore) Save(ctx context.Context, email, code string, ttl time.Duration) error {
	if err := s.redisClient.Set(ctx, resetCodeKey(email), code, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save reset code: %w", err)
	}
	return nil
}

// Consume атомарно читает и удаляет код (GETDEL)
func (s *ResetCodeStore) Consume(ctx context.Context, email string) (string, error) {
	code, err := s.redisClient.GetDel(ctx, resetCodeKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to consume reset code: %w", err)
	}
	return code, nil
}
