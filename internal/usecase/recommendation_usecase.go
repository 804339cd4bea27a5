package usecase

import (
	"context"
	"errors"
	"time"

	"career-guide/internal/domain/job"
	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/resource"
	"career-guide/internal/pkg/logger"
	"career-guide/internal/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultCandidateCap = 100
	maxRecommendLimit   = 50
)

type RecommendationConfig struct {
	CandidateCap int
	DefaultLimit int
	TTL          time.Duration
}

type RecommendationUsecase interface {
	RecommendJobs(ctx context.Context, userID uuid.UUID, limit int) ([]matching.RankedJob, error)
	RecommendResources(ctx context.Context, userID uuid.UUID, limit int) ([]matching.RankedResource, error)
}

type Recommendation struct {
	engine    *matching.Engine
	profiles  profile.Repository
	jobs      job.Repository
	resources resource.Repository
	cache     RecommendationCache
	cfg       RecommendationConfig
	log       *zap.Logger
}

func NewRecommendationUsecase(
	engine *matching.Engine,
	profiles profile.Repository,
	jobs job.Repository,
	resources resource.Repository,
	cache RecommendationCache,
	cfg RecommendationConfig,
	log *zap.Logger,
) *Recommendation {
	if cfg.CandidateCap <= 0 {
		cfg.CandidateCap = defaultCandidateCap
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = matching.DefaultRankLimit
	}
	return &Recommendation{
		engine:    engine,
		profiles:  profiles,
		jobs:      jobs,
		resources: resources,
		cache:     cache,
		cfg:       cfg,
		log:       logger.OrNop(log),
	}
}

func (u *Recommendation) RecommendJobs(ctx context.Context, userID uuid.UUID, limit int) ([]matching.RankedJob, error) {
	limit = u.limit(limit)
	key := RecommendCacheKey(recommendKindJobs, userID, limit)

	var cached []matching.RankedJob
	if u.fromCache(ctx, key, &cached) {
		metrics.ObserveRanking(recommendKindJobs, "hit", len(cached))
		return cached, nil
	}

	usr, err := u.rankingUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates, err := u.jobs.ListRecent(ctx, u.cfg.CandidateCap)
	if err != nil {
		return nil, ErrInternal
	}

	ranked, err := u.engine.RankJobs(candidates, usr, limit)
	if err != nil {
		return nil, ErrInvalidInput
	}
	metrics.ObserveRanking(recommendKindJobs, "miss", len(ranked))
	u.toCache(ctx, key, ranked)
	return ranked, nil
}

func (u *Recommendation) RecommendResources(ctx context.Context, userID uuid.UUID, limit int) ([]matching.RankedResource, error) {
	limit = u.limit(limit)
	key := RecommendCacheKey(recommendKindResources, userID, limit)

	var cached []matching.RankedResource
	if u.fromCache(ctx, key, &cached) {
		metrics.ObserveRanking(recommendKindResources, "hit", len(cached))
		return cached, nil
	}

	usr, err := u.rankingUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	candidates, err := u.resources.ListRecent(ctx, u.cfg.CandidateCap)
	if err != nil {
		return nil, ErrInternal
	}

	ranked, err := u.engine.RankResources(candidates, usr, limit)
	if err != nil {
		return nil, ErrInvalidInput
	}
	metrics.ObserveRanking(recommendKindResources, "miss", len(ranked))
	u.toCache(ctx, key, ranked)
	return ranked, nil
}

func (u *Recommendation) InvalidateUser(ctx context.Context, userID uuid.UUID) {
	u.invalidate(ctx, RecommendUserPattern(userID))
}

func (u *Recommendation) InvalidateJobs(ctx context.Context) {
	u.invalidate(ctx, RecommendKindPattern(recommendKindJobs))
}

func (u *Recommendation) InvalidateResources(ctx context.Context) {
	u.invalidate(ctx, RecommendKindPattern(recommendKindResources))
}

func (u *Recommendation) rankingUser(ctx context.Context, userID uuid.UUID) (*matching.User, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	p, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return nil, ErrNoProfile
		}
		return nil, ErrInternal
	}
	return matching.UserFromProfile(p), nil
}

func (u *Recommendation) limit(limit int) int {
	if limit <= 0 {
		return u.cfg.DefaultLimit
	}
	if limit > maxRecommendLimit {
		return maxRecommendLimit
	}
	return limit
}

func (u *Recommendation) fromCache(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	ok, err := u.cache.GetJSON(ctx, key, out)
	if err != nil {
		u.log.Warn("recommendation cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return ok
}

func (u *Recommendation) toCache(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value, u.cfg.TTL); err != nil {
		u.log.Warn("recommendation cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (u *Recommendation) invalidate(ctx context.Context, pattern string) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, pattern); err != nil {
		u.log.Warn("recommendation cache invalidation failed", zap.String("pattern", pattern), zap.Error(err))
	}
}
