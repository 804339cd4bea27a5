package matching

import (
	"errors"
	"sort"
	"time"

	"career-guide/internal/domain/job"
	"career-guide/internal/domain/resource"
)

const DefaultRankLimit = 20

var ErrInvalidInput = errors.New("invalid ranking input")

type RankedJob struct {
	Job   job.Job
	Match JobMatch
}

type RankedResource struct {
	Resource resource.Resource
	Match    ResourceMatch
}

// RankJobs scores every job, drops non-positive scores and returns at most
// limit results ordered by score, then most recent first, then input order.
func (e *Engine) RankJobs(jobs []job.Job, u *User, limit int) ([]RankedJob, error) {
	if u == nil {
		return nil, ErrInvalidInput
	}
	out := make([]RankedJob, 0, len(jobs))
	for _, j := range jobs {
		m := e.ScoreJob(j, *u)
		if m.Score <= 0 {
			continue
		}
		out = append(out, RankedJob{Job: j, Match: m})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return before(out[a].Match.Score, out[a].Job.CreatedAt, out[b].Match.Score, out[b].Job.CreatedAt)
	})
	return truncate(out, limit), nil
}

func (e *Engine) RankResources(resources []resource.Resource, u *User, limit int) ([]RankedResource, error) {
	if u == nil {
		return nil, ErrInvalidInput
	}
	out := make([]RankedResource, 0, len(resources))
	for _, r := range resources {
		m := e.ScoreResource(r, *u)
		if m.Score <= 0 {
			continue
		}
		out = append(out, RankedResource{Resource: r, Match: m})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return before(out[a].Match.Score, out[a].Resource.CreatedAt, out[b].Match.Score, out[b].Resource.CreatedAt)
	})
	return truncate(out, limit), nil
}

func before(scoreA int, createdA time.Time, scoreB int, createdB time.Time) bool {
	if scoreA != scoreB {
		return scoreA > scoreB
	}
	return createdA.After(createdB)
}

func truncate[T any](in []T, limit int) []T {
	if limit <= 0 {
		limit = DefaultRankLimit
	}
	if len(in) > limit {
		return in[:limit]
	}
	return in
}
