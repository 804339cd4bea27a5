package search

var Synonyms = map[string][]string{
	"frontend":          {"front end", "frontend developer", "ui developer"},
	"backend":           {"back end", "backend developer", "server developer"},
	"fullstack":         {"full stack", "full-stack developer"},
	"devops":            {"site reliability", "platform engineer", "cloud engineer"},
	"data scientist":    {"machine learning", "data analyst", "ml engineer"},
	"ui ux":             {"ui/ux", "product designer", "ux designer"},
	"designer":          {"graphic designer", "ui designer", "visual designer"},
	"mobile":            {"android", "ios", "flutter", "react native"},
	"qa":                {"quality assurance", "test engineer", "tester"},
	"js":                {"javascript"},
	"ts":                {"typescript"},
	"golang":            {"go"},
	"ml":                {"machine learning"},
	"project manager":   {"product manager", "scrum master"},
	"digital marketing": {"seo", "content marketing", "social media"},
}

func GetSynonyms(query string) []string {
	if query == "" {
		return []string{}
	}
	if v, ok := Synonyms[query]; ok {
		out := make([]string, 0, len(v))
		out = append(out, v...)
		return out
	}
	return []string{}
}
