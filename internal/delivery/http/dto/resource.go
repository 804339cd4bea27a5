package dto

import (
	"time"

	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/resource"
	"career-guide/internal/usecase"

	"github.com/google/uuid"
)

type ResourceRequest struct {
	Title         string   `json:"title"`
	Platform      string   `json:"platform"`
	URL           string   `json:"url"`
	RelatedSkills []string `json:"relatedSkills"`
	Cost          string   `json:"cost"`
	Description   string   `json:"description"`
}

func (r ResourceRequest) Input() usecase.ResourceInput {
	return usecase.ResourceInput{
		Title:         r.Title,
		Platform:      r.Platform,
		URL:           r.URL,
		RelatedSkills: r.RelatedSkills,
		Cost:          r.Cost,
		Description:   r.Description,
	}
}

type ResourceResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Platform      string     `json:"platform"`
	URL           string     `json:"url"`
	RelatedSkills []string   `json:"relatedSkills"`
	Cost          string     `json:"cost"`
	Description   string     `json:"description"`
	CreatedBy     *uuid.UUID `json:"createdBy,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func FromResource(r resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:            r.ID,
		Title:         r.Title,
		Platform:      r.Platform,
		URL:           r.URL,
		RelatedSkills: nonNil(r.RelatedSkills),
		Cost:          string(r.Cost),
		Description:   r.Description,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
	}
}

func FromResources(items []resource.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromResource(r))
	}
	return out
}

type MarkRequest struct {
	Status string `json:"status"`
}

type MarkResponse struct {
	ResourceID uuid.UUID `json:"resourceId"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromMark(m resource.Mark) MarkResponse {
	return MarkResponse{ResourceID: m.ResourceID, Status: string(m.Status), UpdatedAt: m.UpdatedAt}
}

func FromMarks(items []resource.Mark) []MarkResponse {
	out := make([]MarkResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMark(m))
	}
	return out
}

type RecommendedResourceResponse struct {
	Resource ResourceResponse         `json:"resource"`
	Score    int                      `json:"score"`
	Details  matching.ResourceDetails `json:"details"`
}

func FromRankedResources(items []matching.RankedResource) []RecommendedResourceResponse {
	out := make([]RecommendedResourceResponse, 0, len(items))
	for _, it := range items {
		d := it.Match.Details
		d.ImprovementSkills = nonNil(d.ImprovementSkills)
		d.NewSkills = nonNil(d.NewSkills)
		out = append(out, RecommendedResourceResponse{Resource: FromResource(it.Resource), Score: it.Match.Score, Details: d})
	}
	return out
}
