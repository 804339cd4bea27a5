package search

import (
	"sort"
	"strings"
	"time"
)

// Document is the searchable view of a job posting or learning resource.
type Document struct {
	Title       string
	Owner       string
	Description string
	Tags        []string
	URL         string
	CreatedAt   time.Time
}

type DocumentScore struct {
	Relevance   float64
	Freshness   float64
	DataQuality float64
	FinalScore  float64
}

func ComputeRelevance(doc Document, queryVariants []string) float64 {
	if len(queryVariants) == 0 {
		return 0
	}

	title := strings.ToLower(doc.Title)
	desc := strings.ToLower(doc.Description)
	owner := strings.ToLower(doc.Owner)
	tags := strings.ToLower(strings.Join(doc.Tags, " "))

	score := 0.0
	for _, v := range queryVariants {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if title != "" && strings.Contains(title, v) {
			score += 3
		}
		if tags != "" && strings.Contains(tags, v) {
			score += 2
		}
		if desc != "" && strings.Contains(desc, v) {
			score += 1
		}
		if owner != "" && strings.Contains(owner, v) {
			score += 1
		}
		if score >= 10 {
			return 10
		}
	}
	return score
}

func ComputeFreshness(doc Document, now time.Time) float64 {
	if doc.CreatedAt.IsZero() {
		return 0
	}
	age := now.Sub(doc.CreatedAt)
	if age < 0 {
		age = 0
	}

	switch {
	case age <= 24*time.Hour:
		return 5
	case age <= 3*24*time.Hour:
		return 4
	case age <= 7*24*time.Hour:
		return 3
	case age <= 14*24*time.Hour:
		return 2
	case age <= 30*24*time.Hour:
		return 1
	}
	return 0
}

func ComputeDataQuality(doc Document) float64 {
	score := 0.0
	if strings.TrimSpace(doc.Title) != "" {
		score += 1
	}
	if strings.TrimSpace(doc.Owner) != "" {
		score += 1
	}
	if len(doc.Tags) > 0 {
		score += 1
	}
	if len(strings.TrimSpace(doc.Description)) > 100 {
		score += 1
	}
	if strings.TrimSpace(doc.URL) != "" {
		score += 1
	}
	return score
}

func ScoreDocument(doc Document, queryVariants []string, now time.Time) DocumentScore {
	rel := ComputeRelevance(doc, queryVariants)
	fresh := ComputeFreshness(doc, now)
	qual := ComputeDataQuality(doc)

	return DocumentScore{
		Relevance:   rel,
		Freshness:   fresh,
		DataQuality: qual,
		FinalScore:  (rel * 2.0) + (fresh * 1.5) + (qual * 0.5),
	}
}

// Rank reorders a page of search hits by relevance to the query variants.
// Items keep their order when nothing in the page matches.
func Rank[T any](items []T, queryVariants []string, view func(T) Document) []T {
	if len(items) == 0 || len(queryVariants) == 0 {
		return items
	}

	now := time.Now().UTC()
	type scored struct {
		idx   int
		rel   float64
		score float64
	}
	all := make([]scored, len(items))
	anyMatch := false
	for i := range items {
		s := ScoreDocument(view(items[i]), queryVariants, now)
		all[i] = scored{idx: i, rel: s.Relevance, score: s.FinalScore}
		if s.Relevance > 0 {
			anyMatch = true
		}
	}
	if !anyMatch {
		return items
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].score > all[j].score
	})

	out := make([]T, 0, len(items))
	for _, it := range all {
		out = append(out, items[it.idx])
	}
	return out
}
