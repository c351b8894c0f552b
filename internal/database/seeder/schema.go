package seeder

import (
	"context"
	"fmt"

	"github.com/aravhawk/vetpath/internal/database"
)

// SchemaSeeder creates the catalog tables. It runs first and is
// idempotent, so a reseed against an existing database is a no-op here.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS occupations (
		occupation_code    TEXT PRIMARY KEY,
		occupation_title   TEXT NOT NULL,
		description        TEXT NOT NULL DEFAULT '',
		median_wage        INTEGER,
		job_outlook        TEXT NOT NULL DEFAULT '',
		growth_rate        DOUBLE PRECISION,
		industry           TEXT NOT NULL DEFAULT '',
		education_required TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS occupation_skills (
		occupation_code  TEXT NOT NULL REFERENCES occupations(occupation_code) ON DELETE CASCADE,
		skill_name       TEXT NOT NULL,
		importance_level INTEGER NOT NULL DEFAULT 3,
		PRIMARY KEY (occupation_code, skill_name)
	)`,
	`CREATE TABLE IF NOT EXISTS military_crosswalk (
		id                       UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		mos_code                 TEXT NOT NULL,
		branch                   TEXT NOT NULL,
		military_title           TEXT NOT NULL DEFAULT '',
		civilian_occupation_code TEXT NOT NULL REFERENCES occupations(occupation_code) ON DELETE CASCADE,
		match_strength           INTEGER NOT NULL DEFAULT 3,
		UNIQUE (mos_code, civilian_occupation_code)
	)`,
	`CREATE TABLE IF NOT EXISTS training_resources (
		id                 UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		skill_name         TEXT NOT NULL UNIQUE,
		certification_name TEXT NOT NULL,
		provider           TEXT NOT NULL DEFAULT '',
		estimated_time     TEXT NOT NULL DEFAULT '',
		cost               TEXT NOT NULL DEFAULT '',
		va_eligible        BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_occupation_skills_skill_name ON occupation_skills (LOWER(skill_name))`,
	`CREATE INDEX IF NOT EXISTS idx_occupations_industry ON occupations (industry)`,
	`CREATE INDEX IF NOT EXISTS idx_military_crosswalk_mos ON military_crosswalk (mos_code)`,
}

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// EnsureTableColumns guards data seeders against drifted schemas.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
