package repository

import (
	"context"
	"strings"

	"github.com/aravhawk/vetpath/internal/database"
	"github.com/aravhawk/vetpath/internal/domain/occupation"

	"github.com/google/uuid"
)

type TrainingRepository interface {
	GetBySkillName(ctx context.Context, skillName string) (occupation.TrainingResource, bool, error)
	Upsert(ctx context.Context, res occupation.TrainingResource) error
}

type PostgresTrainingRepository struct {
	db database.DB
}

func NewPostgresTrainingRepository(db database.DB) *PostgresTrainingRepository {
	return &PostgresTrainingRepository{db: db}
}

func (r *PostgresTrainingRepository) GetBySkillName(ctx context.Context, skillName string) (occupation.TrainingResource, bool, error) {
	skillName = strings.ToLower(strings.TrimSpace(skillName))
	if skillName == "" {
		return occupation.TrainingResource{}, false, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT skill_name, COALESCE(certification_name, ''), COALESCE(provider, ''),
		        COALESCE(estimated_time, ''), COALESCE(cost, ''), va_eligible
		 FROM training_resources
		 WHERE LOWER(skill_name) = $1
		 LIMIT 1`,
		skillName,
	)
	if err != nil {
		return occupation.TrainingResource{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return occupation.TrainingResource{}, false, rows.Err()
	}

	var res occupation.TrainingResource
	if err := rows.Scan(
		&res.SkillName,
		&res.Certification,
		&res.Provider,
		&res.EstimatedTime,
		&res.Cost,
		&res.VAEligible,
	); err != nil {
		return occupation.TrainingResource{}, false, err
	}
	return res, true, rows.Err()
}

// Upsert writes a resource keyed by lower-cased skill name; ingestion is
// last-write-wins per skill.
func (r *PostgresTrainingRepository) Upsert(ctx context.Context, res occupation.TrainingResource) error {
	skill := strings.ToLower(strings.TrimSpace(res.SkillName))
	if skill == "" {
		return nil
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO training_resources (id, skill_name, certification_name, provider, estimated_time, cost, va_eligible)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (skill_name) DO UPDATE SET
		     certification_name = EXCLUDED.certification_name,
		     provider = EXCLUDED.provider,
		     estimated_time = EXCLUDED.estimated_time,
		     cost = EXCLUDED.cost,
		     va_eligible = EXCLUDED.va_eligible`,
		uuid.New(),
		skill,
		res.Certification,
		res.Provider,
		res.EstimatedTime,
		res.Cost,
		res.VAEligible,
	)
	return err
}
