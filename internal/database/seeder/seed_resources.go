package seeder

import (
	"context"
	"fmt"

	"career-guide/internal/database"
	"career-guide/internal/domain/resource"
)

type ResourcesSeeder struct{}

func (ResourcesSeeder) Name() string { return "resources" }

func (ResourcesSeeder) Run(ctx context.Context, db database.DB) (int, error) {
	if err := EnsureTableColumns(ctx, db, "resources",
		"id", "title", "platform", "url", "related_skills", "cost", "description", "created_by",
	); err != nil {
		return 0, err
	}

	inserted := 0
	err := database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, seed := range resourceSeeds {
			r := resource.New(seed)
			affected, err := tx.Exec(ctx,
				`INSERT INTO resources (id, title, platform, url, related_skills, cost, description)
				 SELECT $1::uuid, $2::text, $3::text, $4::text, $5::text[], $6::text, $7::text
				 WHERE NOT EXISTS (
					SELECT 1 FROM resources WHERE url = $4::text AND created_by IS NULL
				 )`,
				r.ID, r.Title, r.Platform, r.URL, r.RelatedSkills, string(r.Cost), r.Description,
			)
			if err != nil {
				return fmt.Errorf("insert %q: %w", r.Title, err)
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

var resourceSeeds = []resource.Resource{
	{Title: "HTML & CSS Full Course", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=G3e-cpL7ofc",
		RelatedSkills: []string{"html", "css", "frontend"}, Cost: resource.CostFree,
		Description: "Beginner-friendly full course covering modern HTML and CSS."},
	{Title: "JavaScript Crash Course", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=hdI2bqOjy3c",
		RelatedSkills: []string{"javascript", "frontend", "web development"}, Cost: resource.CostFree,
		Description: "High-level introduction to JavaScript fundamentals."},
	{Title: "React for Beginners", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=w7ejDZ8SWv8",
		RelatedSkills: []string{"react", "javascript", "frontend"}, Cost: resource.CostFree,
		Description: "React basics including components, props, and hooks."},
	{Title: "Node.js & Express Crash Course", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=Oe421EPjeBE",
		RelatedSkills: []string{"node.js", "express", "backend", "javascript"}, Cost: resource.CostFree,
		Description: "Beginner crash course for building APIs using Node.js and Express."},
	{Title: "MongoDB Basics", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=oSIv-E60NiU",
		RelatedSkills: []string{"mongodb", "database"}, Cost: resource.CostFree,
		Description: "MongoDB fundamentals including CRUD operations and indexing."},
	{Title: "Google IT Support Professional Certificate", Platform: "Coursera",
		URL:           "https://www.coursera.org/professional-certificates/google-it-support",
		RelatedSkills: []string{"it support", "networking", "technical support"}, Cost: resource.CostMixed,
		Description: "Professional certificate for IT support roles."},
	{Title: "Python for Everybody", Platform: "Coursera", URL: "https://www.coursera.org/specializations/python",
		RelatedSkills: []string{"python", "programming", "backend"}, Cost: resource.CostMixed,
		Description: "One of the most popular Python learning series."},
	{Title: "Complete Python Bootcamp", Platform: "Udemy", URL: "https://www.udemy.com/course/complete-python-bootcamp/",
		RelatedSkills: []string{"python", "backend", "programming"}, Cost: resource.CostPaid,
		Description: "Hands-on Python course including advanced concepts and projects."},
	{Title: "UI/UX Design Essentials", Platform: "Udemy", URL: "https://www.udemy.com/course/ui-ux-design-using-figma/",
		RelatedSkills: []string{"ui/ux", "figma", "design"}, Cost: resource.CostPaid,
		Description: "Learn the foundations of UI/UX design using Figma."},
	{Title: "Figma for Beginners", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=jfdgkbuowf4",
		RelatedSkills: []string{"figma", "design", "ui/ux"}, Cost: resource.CostFree,
		Description: "Beginner-friendly crash course to start designing with Figma."},
	{Title: "Google Data Analytics Certificate", Platform: "Coursera",
		URL:           "https://www.coursera.org/professional-certificates/google-data-analytics",
		RelatedSkills: []string{"data analysis", "excel", "sql", "tableau"}, Cost: resource.CostMixed,
		Description: "Industry-recognized program for aspiring data analysts."},
	{Title: "SQL Tutorial for Beginners", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=HXV3zeQKqGY",
		RelatedSkills: []string{"sql", "database", "data analysis"}, Cost: resource.CostFree,
		Description: "Beginner SQL course covering queries, joins, and database basics."},
	{Title: "Excel for Beginners", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=Vl0H-qTclOg",
		RelatedSkills: []string{"excel", "data analysis"}, Cost: resource.CostFree,
		Description: "Step-by-step beginner Excel training."},
	{Title: "Complete Web Development Bootcamp", Platform: "Udemy",
		URL:           "https://www.udemy.com/course/the-complete-web-development-bootcamp/",
		RelatedSkills: []string{"full stack", "javascript", "node.js", "frontend", "backend"}, Cost: resource.CostPaid,
		Description: "Comprehensive full-stack web development bootcamp."},
	{Title: "Machine Learning Crash Course", Platform: "Google",
		URL:           "https://developers.google.com/machine-learning/crash-course",
		RelatedSkills: []string{"machine learning", "python", "ai"}, Cost: resource.CostFree,
		Description: "Hands-on intro to ML with exercises and real-world examples."},
	{Title: "Intro to Machine Learning", Platform: "Kaggle", URL: "https://www.kaggle.com/learn/intro-to-machine-learning",
		RelatedSkills: []string{"machine learning", "python", "data science"}, Cost: resource.CostFree,
		Description: "Beginner-friendly ML course with practical exercises."},
	{Title: "Cybersecurity Fundamentals", Platform: "Coursera",
		URL:           "https://www.coursera.org/specializations/ibm-cybersecurity-analyst",
		RelatedSkills: []string{"cybersecurity", "networking", "security analysis"}, Cost: resource.CostMixed,
		Description: "Cybersecurity essentials through a professional certificate."},
	{Title: "Operating System Concepts", Platform: "YouTube", URL: "https://www.youtube.com/watch?v=26QPDBe-NB8",
		RelatedSkills: []string{"operating systems", "cs fundamentals"}, Cost: resource.CostFree,
		Description: "Explains essential operating system principles for CS students."},
}
