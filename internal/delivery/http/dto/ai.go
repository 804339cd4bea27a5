package dto

import (
	"time"

	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/roadmap"
	"career-guide/internal/usecase"
	"career-guide/internal/usecase/ai"

	"github.com/google/uuid"
)

type CompareRequest struct {
	JobID string `json:"jobId"`
}

type CompareResponse struct {
	Job        JobResponse       `json:"job"`
	Comparison ai.Comparison     `json:"comparison"`
	Match      matching.JobMatch `json:"match"`
}

func FromCompare(r usecase.CompareResult) CompareResponse {
	m := r.Match
	m.Matches = nonNil(m.Matches)
	return CompareResponse{Job: FromJob(r.Job), Comparison: r.Comparison, Match: m}
}

type RoadmapRequest struct {
	TargetJob string `json:"targetJob"`
	Timeframe string `json:"timeframe"`
}

type PhaseRequest struct {
	Score int `json:"score"`
}

type RoadmapResponse struct {
	ID        uuid.UUID       `json:"id"`
	TargetJob string          `json:"targetJob"`
	Timeframe string          `json:"timeframe"`
	Progress  int             `json:"progress"`
	Content   roadmap.Content `json:"content"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func FromRoadmap(r roadmap.Roadmap) RoadmapResponse {
	return RoadmapResponse{
		ID:        r.ID,
		TargetJob: r.TargetJob,
		Timeframe: r.Timeframe,
		Progress:  r.Progress(),
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromRoadmaps(items []roadmap.Roadmap) []RoadmapResponse {
	out := make([]RoadmapResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromRoadmap(r))
	}
	return out
}

type ChatRequest struct {
	Conversation []ai.ChatMessage `json:"conversation"`
}

type ChatResponse struct {
	Text string `json:"text"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
