package repository

import (
	"context"
	"strings"

	"github.com/aravhawk/vetpath/internal/database"
	"github.com/aravhawk/vetpath/internal/domain/occupation"
)

// CrosswalkRow joins a crosswalk entry with the civilian occupation's title
// and wage for display without a second lookup.
type CrosswalkRow struct {
	occupation.CrosswalkEntry
	OccupationTitle string
	MedianWage      *int
}

// MOSCode is one distinct military occupational code in the crosswalk.
type MOSCode struct {
	Code          string
	MilitaryTitle string
	Branch        string
}

type CrosswalkRepository interface {
	FindByMOS(ctx context.Context, mosCode, branch string) ([]CrosswalkRow, error)
	ListMOSCodes(ctx context.Context, branch string) ([]MOSCode, error)
}

type PostgresCrosswalkRepository struct {
	db database.DB
}

func NewPostgresCrosswalkRepository(db database.DB) *PostgresCrosswalkRepository {
	return &PostgresCrosswalkRepository{db: db}
}

func (r *PostgresCrosswalkRepository) FindByMOS(ctx context.Context, mosCode, branch string) ([]CrosswalkRow, error) {
	mosCode = strings.TrimSpace(mosCode)
	if mosCode == "" {
		return []CrosswalkRow{}, nil
	}

	q := `SELECT mc.mos_code, mc.branch, COALESCE(mc.military_title, ''),
	             mc.civilian_occupation_code, mc.match_strength,
	             o.occupation_title, o.median_wage
	      FROM military_crosswalk mc
	      JOIN occupations o ON o.occupation_code = mc.civilian_occupation_code
	      WHERE mc.mos_code = $1`
	args := []any{mosCode}

	branch = strings.TrimSpace(branch)
	if branch != "" {
		q += ` AND mc.branch = $2`
		args = append(args, branch)
	}
	q += ` ORDER BY mc.match_strength DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CrosswalkRow, 0)
	for rows.Next() {
		var row CrosswalkRow
		if err := rows.Scan(
			&row.MOSCode,
			&row.Branch,
			&row.MilitaryTitle,
			&row.OccupationCode,
			&row.MatchStrength,
			&row.OccupationTitle,
			&row.MedianWage,
		); err != nil {
			return nil, err
		}
		row.MatchStrength = occupation.ClampImportance(row.MatchStrength)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCrosswalkRepository) ListMOSCodes(ctx context.Context, branch string) ([]MOSCode, error) {
	q := `SELECT DISTINCT mos_code, COALESCE(military_title, ''), branch FROM military_crosswalk`
	args := []any{}

	branch = strings.TrimSpace(branch)
	if branch != "" {
		q += ` WHERE branch = $1 ORDER BY mos_code ASC`
		args = append(args, branch)
	} else {
		q += ` ORDER BY branch ASC, mos_code ASC`
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MOSCode, 0)
	for rows.Next() {
		var m MOSCode
		if err := rows.Scan(&m.Code, &m.MilitaryTitle, &m.Branch); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
