package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/aravhawk/vetpath/internal/database"
	"github.com/aravhawk/vetpath/internal/domain/occupation"
)

// TrainingSeeder replaces the training resource catalog. Skill names
// are stored lower-cased to match the normalizer's output.
type TrainingSeeder struct{}

func (TrainingSeeder) Name() string { return "training_resources" }

func (TrainingSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "training_resources",
		"skill_name", "certification_name", "provider", "estimated_time", "cost", "va_eligible"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM training_resources`); err != nil {
		return err
	}

	for _, res := range trainingCatalog {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO training_resources
			 (id, skill_name, certification_name, provider, estimated_time, cost, va_eligible)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
			 ON CONFLICT (skill_name) DO NOTHING`,
			strings.ToLower(res.SkillName), res.Certification, res.Provider,
			res.EstimatedTime, res.Cost, res.VAEligible,
		)
		if err != nil {
			return fmt.Errorf("insert training resource %s: %w", res.SkillName, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

var trainingCatalog = []occupation.TrainingResource{
	{SkillName: "project management", Certification: "PMP or CAPM",
		Provider: "Project Management Institute", EstimatedTime: "3-6 months",
		Cost: "Often covered by VA benefits", VAEligible: true},
	{SkillName: "data analysis", Certification: "Google Data Analytics Certificate",
		Provider: "Google/Coursera", EstimatedTime: "6 months",
		Cost: "Free on Coursera", VAEligible: true},
	{SkillName: "cybersecurity", Certification: "CompTIA Security+",
		Provider: "CompTIA", EstimatedTime: "3-4 months",
		Cost: "$392 exam fee, often VA covered", VAEligible: true},
	{SkillName: "network administration", Certification: "CompTIA Network+",
		Provider: "CompTIA", EstimatedTime: "2-3 months",
		Cost: "$358 exam fee, often VA covered", VAEligible: true},
	{SkillName: "programming", Certification: "Google IT Support Certificate",
		Provider: "Google/Coursera", EstimatedTime: "6 months",
		Cost: "Free on Coursera", VAEligible: true},
	{SkillName: "software development", Certification: "AWS Certified Developer",
		Provider: "Amazon Web Services", EstimatedTime: "3-6 months",
		Cost: "$150 exam fee", VAEligible: true},
	{SkillName: "lean manufacturing", Certification: "Six Sigma Green Belt",
		Provider: "ASQ or IASSC", EstimatedTime: "2-3 months",
		Cost: "$438 exam fee, often employer paid", VAEligible: true},
	{SkillName: "quality control", Certification: "ASQ Certified Quality Inspector",
		Provider: "American Society for Quality", EstimatedTime: "2-3 months",
		Cost: "$394 exam fee", VAEligible: true},
	{SkillName: "electrical systems", Certification: "Journeyman Electrician License",
		Provider: "State Licensing Board", EstimatedTime: "4 years apprenticeship",
		Cost: "Paid apprenticeship", VAEligible: true},
	{SkillName: "hvac", Certification: "EPA Section 608 Certification",
		Provider: "EPA Approved Programs", EstimatedTime: "1-2 weeks",
		Cost: "$150-300", VAEligible: true},
	{SkillName: "cad software", Certification: "Autodesk Certified User",
		Provider: "Autodesk", EstimatedTime: "2-3 months",
		Cost: "$125 exam fee", VAEligible: true},
	{SkillName: "healthcare administration", Certification: "Certified Medical Manager",
		Provider: "PAHCOM", EstimatedTime: "6 months",
		Cost: "$325 exam fee", VAEligible: true},
	{SkillName: "supply chain", Certification: "APICS Certified Supply Chain Professional",
		Provider: "ASCM", EstimatedTime: "6-9 months",
		Cost: "$595 exam fee, often employer paid", VAEligible: true},
	{SkillName: "forklift operation", Certification: "OSHA Forklift Certification",
		Provider: "OSHA Approved Trainers", EstimatedTime: "1 day",
		Cost: "$50-150", VAEligible: true},
	{SkillName: "cdl", Certification: "Commercial Driver's License",
		Provider: "State DMV", EstimatedTime: "3-7 weeks",
		Cost: "$3000-7000, VA eligible", VAEligible: true},
}
