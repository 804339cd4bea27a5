package seeder

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"career-guide/internal/database"
	"career-guide/internal/domain/job"
	"career-guide/internal/domain/resource"
)

func TestSeedData_Valid(t *testing.T) {
	titles := map[string]bool{}
	for _, s := range jobSeeds {
		j := job.New(s)
		if err := j.Validate(); err != nil {
			t.Fatalf("job %q: %v", s.Title, err)
		}
		if len(j.RequiredSkills) == 0 {
			t.Fatalf("job %q has no skills", s.Title)
		}
		key := j.Title + "|" + j.Company
		if titles[key] {
			t.Fatalf("duplicate job seed %q", key)
		}
		titles[key] = true
	}

	urls := map[string]bool{}
	for _, s := range resourceSeeds {
		r := resource.New(s)
		if err := r.Validate(); err != nil {
			t.Fatalf("resource %q: %v", s.Title, err)
		}
		if urls[r.URL] {
			t.Fatalf("duplicate resource url %q", r.URL)
		}
		urls[r.URL] = true
	}
}

func TestDefaults(t *testing.T) {
	names := map[string]bool{}
	for _, s := range Defaults() {
		names[s.Name()] = true
	}
	if !names["jobs"] || !names["resources"] {
		t.Fatalf("unexpected default seeders: %v", names)
	}
}

type recordingTx struct {
	database.Tx
	queries []string
	seen    map[string]bool
}

// Exec inserts a row only the first time a given natural key is seen.
func (tx *recordingTx) Exec(_ context.Context, query string, args ...any) (int64, error) {
	tx.queries = append(tx.queries, query)
	key := fmt.Sprint(args[1:4]...)
	if tx.seen[key] {
		return 0, nil
	}
	tx.seen[key] = true
	return 1, nil
}

func (tx *recordingTx) Commit(context.Context) error   { return nil }
func (tx *recordingTx) Rollback(context.Context) error { return nil }

type columnRows struct {
	cols []string
	i    int
}

func (r *columnRows) Close()     {}
func (r *columnRows) Err() error { return nil }
func (r *columnRows) Next() bool {
	r.i++
	return r.i <= len(r.cols)
}
func (r *columnRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.cols[r.i-1]
	return nil
}

type seedDB struct {
	database.DB
	tx *recordingTx
}

func (d *seedDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return &columnRows{cols: []string{
		"id", "title", "company", "location", "required_skills", "recommended_experience", "job_type",
		"description", "track", "apply_url", "tags", "created_by", "platform", "url", "related_skills", "cost",
	}}, nil
}

func (d *seedDB) Begin(context.Context) (database.Tx, error) { return d.tx, nil }

func TestSeeders_RerunInsertsNothing(t *testing.T) {
	db := &seedDB{tx: &recordingTx{seen: map[string]bool{}}}
	ctx := context.Background()

	for _, s := range Defaults() {
		first, err := s.Run(ctx, db)
		if err != nil {
			t.Fatalf("%s: %v", s.Name(), err)
		}
		if first == 0 {
			t.Fatalf("%s: expected rows on first run", s.Name())
		}
		again, err := s.Run(ctx, db)
		if err != nil {
			t.Fatalf("%s: %v", s.Name(), err)
		}
		if again != 0 {
			t.Fatalf("%s: expected no rows on rerun, got %d", s.Name(), again)
		}
	}

	for _, q := range db.tx.queries {
		if strings.Contains(q, "ON CONFLICT") || !strings.Contains(q, "NOT EXISTS") || !strings.Contains(q, "created_by IS NULL") {
			t.Fatalf("seed insert must skip existing seeded rows without a unique index:\n%s", q)
		}
	}
}

func TestEnsureTableColumns_ListsEveryMissingColumn(t *testing.T) {
	ctx := context.Background()
	if err := EnsureTableColumns(ctx, &seedDB{}, "jobs", "id", "title"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	err := EnsureTableColumns(ctx, &seedDB{}, "jobs", "id", "salary", "remote")
	if err == nil || !strings.Contains(err.Error(), "jobs is missing salary, remote") {
		t.Fatalf("expected both missing columns, got %v", err)
	}
	if err := EnsureTableColumns(ctx, nil, "jobs", "id"); err == nil {
		t.Fatalf("expected error for nil db")
	}
}
