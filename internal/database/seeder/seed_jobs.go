package seeder

import (
	"context"
	"fmt"

	"career-guide/internal/database"
	"career-guide/internal/domain/job"
	"career-guide/internal/domain/skill"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) (int, error) {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id", "title", "company", "location", "required_skills", "recommended_experience",
		"job_type", "description", "track", "apply_url", "tags", "created_by",
	); err != nil {
		return 0, err
	}

	inserted := 0
	err := database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, seed := range jobSeeds {
			j := job.New(seed)
			affected, err := tx.Exec(ctx,
				`INSERT INTO jobs (id, title, company, location, required_skills, recommended_experience,
					job_type, description, track, apply_url, tags)
				 SELECT $1::uuid, $2::text, $3::text, $4::text, $5::text[], $6::text,
					$7::text, $8::text, $9::text, $10::text, $11::text[]
				 WHERE NOT EXISTS (
					SELECT 1 FROM jobs
					WHERE lower(title) = lower($2::text) AND lower(company) = lower($3::text) AND created_by IS NULL
				 )`,
				j.ID, j.Title, j.Company, j.Location, j.RequiredSkills, string(j.RecommendedExperience),
				string(j.JobType), j.Description, j.Track, j.ApplyURL, j.Tags,
			)
			if err != nil {
				return fmt.Errorf("insert %q: %w", j.Title, err)
			}
			inserted += int(affected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

var jobSeeds = []job.Job{
	{
		Title: "Frontend Developer Intern", Company: "PixelCraft", Location: "Remote",
		RequiredSkills: []string{"html", "css", "javascript", "react"}, RecommendedExperience: skill.Fresher,
		JobType: job.TypeInternship, Track: "Web Development", Tags: []string{"frontend", "internship"},
		Description: "Build responsive UI components with React and collaborate with designers.",
	},
	{
		Title: "Junior Backend Developer", Company: "ApiWorks", Location: "Bengaluru",
		RequiredSkills: []string{"node.js", "express", "mongodb", "javascript"}, RecommendedExperience: skill.Junior,
		JobType: job.TypeFullTime, Track: "Web Development", Tags: []string{"backend"},
		Description: "Design REST APIs and maintain database models for a growing SaaS product.",
	},
	{
		Title: "Full Stack Developer", Company: "StackNest", Location: "Pune",
		RequiredSkills: []string{"react", "node.js", "sql", "docker"}, RecommendedExperience: skill.Mid,
		JobType: job.TypeFullTime, Track: "Web Development", Tags: []string{"full stack"},
		Description: "Own features end to end across a React frontend and Node.js services.",
	},
	{
		Title: "Data Analyst Intern", Company: "InsightLoop", Location: "Remote",
		RequiredSkills: []string{"excel", "sql", "data analysis"}, RecommendedExperience: skill.Fresher,
		JobType: job.TypeInternship, Track: "Data", Tags: []string{"analytics"},
		Description: "Clean datasets, build dashboards and report weekly business metrics.",
	},
	{
		Title: "Data Analyst", Company: "MetricMint", Location: "Hyderabad",
		RequiredSkills: []string{"sql", "tableau", "python", "excel"}, RecommendedExperience: skill.Junior,
		JobType: job.TypeFullTime, Track: "Data", Tags: []string{"analytics", "bi"},
		Description: "Analyse product usage and build self-serve reporting in Tableau.",
	},
	{
		Title: "Machine Learning Engineer", Company: "NeuronLabs", Location: "Bengaluru",
		RequiredSkills: []string{"python", "machine learning", "data science"}, RecommendedExperience: skill.Mid,
		JobType: job.TypeFullTime, Track: "Data", Tags: []string{"ml", "ai"},
		Description: "Train, evaluate and ship models for recommendation features.",
	},
	{
		Title: "UI/UX Designer", Company: "DesignDock", Location: "Remote",
		RequiredSkills: []string{"figma", "ui/ux", "design"}, RecommendedExperience: skill.Junior,
		JobType: job.TypeFreelance, Track: "Design", Tags: []string{"design"},
		Description: "Create wireframes, prototypes and design systems for client projects.",
	},
	{
		Title: "IT Support Associate", Company: "HelpDesk Pro", Location: "Chennai",
		RequiredSkills: []string{"it support", "networking", "technical support"}, RecommendedExperience: skill.Fresher,
		JobType: job.TypeFullTime, Track: "IT Support", Tags: []string{"support"},
		Description: "Resolve hardware, software and network tickets for internal teams.",
	},
	{
		Title: "Security Analyst", Company: "ShieldOps", Location: "Gurugram",
		RequiredSkills: []string{"cybersecurity", "networking", "security analysis"}, RecommendedExperience: skill.Mid,
		JobType: job.TypeFullTime, Track: "Security", Tags: []string{"security"},
		Description: "Monitor alerts, investigate incidents and harden infrastructure.",
	},
	{
		Title: "Python Developer (Part-time)", Company: "ScriptHouse", Location: "Remote",
		RequiredSkills: []string{"python", "programming", "backend"}, RecommendedExperience: skill.Junior,
		JobType: job.TypePartTime, Track: "Web Development", Tags: []string{"python"},
		Description: "Automate internal workflows and maintain small Python services.",
	},
	{
		Title: "Senior Frontend Engineer", Company: "PixelCraft", Location: "Remote",
		RequiredSkills: []string{"react", "javascript", "frontend", "css"}, RecommendedExperience: skill.Senior,
		JobType: job.TypeFullTime, Track: "Web Development", Tags: []string{"frontend", "lead"},
		Description: "Lead frontend architecture and mentor junior developers.",
	},
	{
		Title: "Operating Systems Teaching Assistant", Company: "CodeCampus", Location: "Delhi",
		RequiredSkills: []string{"operating systems", "cs fundamentals"}, RecommendedExperience: skill.Fresher,
		JobType: job.TypePartTime, Track: "Education", Tags: []string{"teaching"},
		Description: "Support students with OS concepts through labs and doubt sessions.",
	},
}
