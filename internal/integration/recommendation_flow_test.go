package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"career-guide/internal/app"
	"career-guide/internal/config"
	"career-guide/internal/database"
	"career-guide/internal/domain/job"
	"career-guide/internal/domain/skill"
	"career-guide/internal/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authData struct {
	AccessToken string `json:"accessToken"`
}

type recommendationItem struct {
	Job struct {
		ID    uuid.UUID `json:"id"`
		Title string    `json:"title"`
	} `json:"job"`
	Score int `json:"score"`
	Match struct {
		Matches []string `json:"matches"`
	} `json:"match"`
}

func TestIntegration_Register_Profile_RecommendJobs(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg := testConfig(t)

	c, err := app.NewContainer(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	defer func() { _ = c.Close() }()

	fiberApp := app.New(c).Fiber

	email := "it-" + uuid.NewString()[:8] + "@example.com"
	defer cleanupUser(ctx, c.DB, email)

	tok := registerAndGetJWT(t, fiberApp, email)

	jobs := seedJobs(t, ctx, c.DB)
	defer cleanupJobs(ctx, c.DB, jobs)

	profile := map[string]any{
		"skills":          []string{"Go", "PostgreSQL", "Redis"},
		"targetRoles":     []string{"it-backend"},
		"experienceLevel": "Junior",
	}
	sr := doJSON(t, fiberApp, "POST", "/api/v1/profile", tok, profile)
	if sr.Status != fiber.StatusCreated {
		t.Fatalf("create profile: expected 201, got %d (message=%s)", sr.Status, sr.Message)
	}

	sr = doJSON(t, fiberApp, "GET", "/api/v1/jobs/recommend?limit=50", tok, nil)
	if sr.Status != fiber.StatusOK {
		t.Fatalf("recommend: expected 200, got %d (message=%s)", sr.Status, sr.Message)
	}

	var recs []recommendationItem
	if err := json.Unmarshal(sr.Data, &recs); err != nil {
		t.Fatalf("recommend: data unmarshal error: %v", err)
	}
	if len(recs) == 0 {
		t.Fatalf("recommend: expected non-empty array")
	}

	assertNoDuplicateJobs(t, recs)
	assertSortedByScoreDesc(t, recs)

	var best, unrelated *recommendationItem
	for i := range recs {
		switch recs[i].Job.ID {
		case jobs[0]:
			best = &recs[i]
		case jobs[1]:
			unrelated = &recs[i]
		}
	}
	if best == nil {
		t.Fatalf("recommend: expected seeded backend job in response")
	}
	if len(best.Match.Matches) != 3 {
		t.Fatalf("recommend: expected 3 matched skills, got %v", best.Match.Matches)
	}
	if unrelated != nil && unrelated.Score >= best.Score {
		t.Fatalf("recommend: unrelated job scored %d >= %d", unrelated.Score, best.Score)
	}

	// The recruiter-only endpoint rejects a general account.
	sr = doJSON(t, fiberApp, "GET", "/api/v1/jobs/mine", tok, nil)
	if sr.Status != fiber.StatusForbidden {
		t.Fatalf("jobs/mine: expected 403, got %d", sr.Status)
	}
}

func testConfig(t *testing.T) config.Config {
	t.Helper()

	host := stringsOrDefault(os.Getenv("CAREER_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("CAREER_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("CAREER_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("CAREER_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("CAREER_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("CAREER_TEST_DB_SSL_MODE"), "disable")

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set CAREER_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}

	return config.Config{
		App: config.AppConfig{AppName: "career-guide", Environment: "test", HTTPPort: "0", CORSOrigins: []string{"*"}},
		Database: config.DatabaseConfig{
			DBHost:         host,
			DBPort:         port,
			DBName:         name,
			DBUser:         user,
			DBPassword:     pass,
			DBSSLMode:      ssl,
			ConnectTimeout: 5 * time.Second,
			PoolMaxConns:   4,
		},
		JWT: config.JWTConfig{
			AccessSecret:     "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
		Redis: config.RedisConfig{
			Host: stringsOrDefault(os.Getenv("REDIS_HOST"), "localhost"),
			Port: stringsOrDefault(os.Getenv("REDIS_PORT"), "6379"),
			TTL:  time.Minute,
		},
		Matching: config.MatchingConfig{CandidateCap: 100, DefaultLimit: 20, RecommendTTL: time.Second},
	}
}

func registerAndGetJWT(t *testing.T, fiberApp *fiber.App, email string) string {
	t.Helper()

	body := map[string]string{"email": email, "password": "password123", "userType": "general"}
	sr := doJSON(t, fiberApp, "POST", "/api/v1/auth/register", "", body)
	if sr.Status != fiber.StatusCreated {
		t.Fatalf("register: expected 201, got %d (message=%s)", sr.Status, sr.Message)
	}

	var ad authData
	if err := json.Unmarshal(sr.Data, &ad); err != nil {
		t.Fatalf("register: data unmarshal error: %v", err)
	}
	if ad.AccessToken == "" {
		t.Fatalf("register: missing accessToken")
	}
	return ad.AccessToken
}

func doJSON(t *testing.T, fiberApp *fiber.App, method, path, token string, body any) semanticResponse {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("%s %s: encode: %v", method, path, err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := fiberApp.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("%s %s: request error: %v", method, path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s: decode error: %v", method, path, err)
	}
	return sr
}

func seedJobs(t *testing.T, ctx context.Context, db database.DB) []uuid.UUID {
	t.Helper()

	repo := repository.NewPostgresJobRepository(db)
	specs := []job.Job{
		{
			Title:                 "Backend Engineer (Go) - IT",
			Company:               "IT Co",
			Location:              "Jakarta",
			RequiredSkills:        []string{"go", "postgresql", "redis", "docker"},
			RecommendedExperience: skill.Junior,
			Track:                 "it-backend",
		},
		{
			Title:                 "Brand Designer - IT",
			Company:               "IT Co",
			Location:              "Remote",
			RequiredSkills:        []string{"figma", "illustrator"},
			RecommendedExperience: skill.Senior,
			Track:                 "it-design",
		},
	}

	ids := make([]uuid.UUID, 0, len(specs))
	for _, s := range specs {
		created, err := repo.Create(ctx, job.New(s))
		if err != nil {
			t.Fatalf("seed job %q: %v", s.Title, err)
		}
		ids = append(ids, created.ID)
	}
	return ids
}

func cleanupJobs(ctx context.Context, db database.DB, ids []uuid.UUID) {
	for _, id := range ids {
		_, _ = db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	}
}

func cleanupUser(ctx context.Context, db database.DB, email string) {
	_, _ = db.Exec(ctx, `DELETE FROM users WHERE email = $1`, strings.ToLower(email))
}

func assertSortedByScoreDesc(t *testing.T, items []recommendationItem) {
	t.Helper()

	for i := 1; i < len(items); i++ {
		if items[i].Score > items[i-1].Score {
			t.Fatalf("recommend: expected score descending at idx=%d: prev=%d cur=%d", i, items[i-1].Score, items[i].Score)
		}
	}
}

func assertNoDuplicateJobs(t *testing.T, items []recommendationItem) {
	t.Helper()

	seen := map[uuid.UUID]struct{}{}
	for i, it := range items {
		if it.Job.ID == uuid.Nil {
			t.Fatalf("recommend: idx=%d has nil job id", i)
		}
		if _, ok := seen[it.Job.ID]; ok {
			t.Fatalf("recommend: duplicate job id=%s", it.Job.ID)
		}
		seen[it.Job.ID] = struct{}{}
	}
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
