package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const (
	recommendKindJobs      = "jobs"
	recommendKindResources = "resources"
)

func RecommendCacheKey(kind string, userID uuid.UUID, limit int) string {
	return fmt.Sprintf("recommend:%s:%s:%d", kind, userID, limit)
}

// RecommendUserPattern matches every cached recommendation list of one user.
func RecommendUserPattern(userID uuid.UUID) string {
	return fmt.Sprintf("recommend:*:%s:*", userID)
}

// RecommendKindPattern matches every user's cached list of one kind.
func RecommendKindPattern(kind string) string {
	return fmt.Sprintf("recommend:%s:*", kind)
}
