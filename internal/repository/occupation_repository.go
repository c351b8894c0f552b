package repository

import (
	"context"
	"strings"

	"github.com/aravhawk/vetpath/internal/database"
	"github.com/aravhawk/vetpath/internal/domain/occupation"
)

type OccupationRepository interface {
	GetByCode(ctx context.Context, code string) (occupation.Occupation, bool, error)
	List(ctx context.Context, industry string, limit int) ([]occupation.Occupation, error)
	Industries(ctx context.Context) ([]string, error)
}

type PostgresOccupationRepository struct {
	db database.DB
}

func NewPostgresOccupationRepository(db database.DB) *PostgresOccupationRepository {
	return &PostgresOccupationRepository{db: db}
}

const occupationColumns = `occupation_code, occupation_title, COALESCE(description, ''), median_wage,
	COALESCE(job_outlook, ''), growth_rate, COALESCE(industry, ''), COALESCE(education_required, '')`

func (r *PostgresOccupationRepository) GetByCode(ctx context.Context, code string) (occupation.Occupation, bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return occupation.Occupation{}, false, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+occupationColumns+` FROM occupations WHERE occupation_code = $1 LIMIT 1`,
		code,
	)
	if err != nil {
		return occupation.Occupation{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return occupation.Occupation{}, false, rows.Err()
	}
	occ, err := scanOccupation(rows)
	if err != nil {
		return occupation.Occupation{}, false, err
	}
	return occ, true, rows.Err()
}

func (r *PostgresOccupationRepository) List(ctx context.Context, industry string, limit int) ([]occupation.Occupation, error) {
	if limit <= 0 {
		limit = 20
	}

	var (
		rows database.Rows
		err  error
	)
	industry = strings.TrimSpace(industry)
	if industry != "" {
		rows, err = r.db.Query(ctx,
			`SELECT `+occupationColumns+` FROM occupations WHERE industry = $1 ORDER BY occupation_title ASC LIMIT $2`,
			industry, limit,
		)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT `+occupationColumns+` FROM occupations ORDER BY occupation_title ASC LIMIT $1`,
			limit,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]occupation.Occupation, 0)
	for rows.Next() {
		occ, err := scanOccupation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, occ)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresOccupationRepository) Industries(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT industry FROM occupations WHERE industry IS NOT NULL ORDER BY industry ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var ind string
		if err := rows.Scan(&ind); err != nil {
			return nil, err
		}
		out = append(out, ind)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type occupationScanner interface {
	Scan(dest ...any) error
}

func scanOccupation(s occupationScanner) (occupation.Occupation, error) {
	var occ occupation.Occupation
	err := s.Scan(
		&occ.Code,
		&occ.Title,
		&occ.Description,
		&occ.MedianWage,
		&occ.JobOutlook,
		&occ.GrowthRate,
		&occ.Industry,
		&occ.EducationRequired,
	)
	return occ, err
}
