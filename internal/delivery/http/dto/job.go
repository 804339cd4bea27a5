package dto

import (
	"time"

	"career-guide/internal/domain/job"
	"career-guide/internal/domain/matching"
	"career-guide/internal/usecase"

	"github.com/google/uuid"
)

type JobRequest struct {
	Title                 string   `json:"title"`
	Company               string   `json:"company"`
	Location              string   `json:"location"`
	RequiredSkills        []string `json:"requiredSkills"`
	RecommendedExperience string   `json:"recommendedExperience"`
	JobType               string   `json:"jobType"`
	Description           string   `json:"description"`
	Track                 string   `json:"track"`
	ApplyURL              string   `json:"applyUrl"`
	Tags                  []string `json:"tags"`
}

func (r JobRequest) Input() usecase.JobInput {
	return usecase.JobInput{
		Title:                 r.Title,
		Company:               r.Company,
		Location:              r.Location,
		RequiredSkills:        r.RequiredSkills,
		RecommendedExperience: r.RecommendedExperience,
		JobType:               r.JobType,
		Description:           r.Description,
		Track:                 r.Track,
		ApplyURL:              r.ApplyURL,
		Tags:                  r.Tags,
	}
}

type JobResponse struct {
	ID                    uuid.UUID  `json:"id"`
	Title                 string     `json:"title"`
	Company               string     `json:"company"`
	Location              string     `json:"location"`
	RequiredSkills        []string   `json:"requiredSkills"`
	RecommendedExperience string     `json:"recommendedExperience"`
	JobType               string     `json:"jobType"`
	Description           string     `json:"description"`
	Track                 string     `json:"track"`
	ApplyURL              string     `json:"applyUrl"`
	Tags                  []string   `json:"tags"`
	CreatedBy             *uuid.UUID `json:"createdBy,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

func FromJob(j job.Job) JobResponse {
	return JobResponse{
		ID:                    j.ID,
		Title:                 j.Title,
		Company:               j.Company,
		Location:              j.Location,
		RequiredSkills:        nonNil(j.RequiredSkills),
		RecommendedExperience: string(j.RecommendedExperience),
		JobType:               string(j.JobType),
		Description:           j.Description,
		Track:                 j.Track,
		ApplyURL:              j.ApplyURL,
		Tags:                  nonNil(j.Tags),
		CreatedBy:             j.CreatedBy,
		CreatedAt:             j.CreatedAt,
		UpdatedAt:             j.UpdatedAt,
	}
}

func FromJobs(items []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, j := range items {
		out = append(out, FromJob(j))
	}
	return out
}

type ApplicationResponse struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"jobId"`
	UserID    uuid.UUID `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromApplication(a job.Application) ApplicationResponse {
	return ApplicationResponse{ID: a.ID, JobID: a.JobID, UserID: a.UserID, CreatedAt: a.CreatedAt}
}

func FromApplications(items []job.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, FromApplication(a))
	}
	return out
}

type RecommendedJobResponse struct {
	Job   JobResponse       `json:"job"`
	Score int               `json:"score"`
	Match matching.JobMatch `json:"match"`
}

func FromRankedJobs(items []matching.RankedJob) []RecommendedJobResponse {
	out := make([]RecommendedJobResponse, 0, len(items))
	for _, it := range items {
		m := it.Match
		m.Matches = nonNil(m.Matches)
		out = append(out, RecommendedJobResponse{Job: FromJob(it.Job), Score: m.Score, Match: m})
	}
	return out
}
