package usecase

import (
	"context"

	"github.com/aravhawk/vetpath/internal/domain/occupation"
	"github.com/aravhawk/vetpath/internal/repository"
)

// CareerDetail pairs an occupation with its required skills in
// importance order.
type CareerDetail struct {
	Occupation     occupation.Occupation
	RequiredSkills []occupation.SkillRequirement
}

type OccupationUsecase interface {
	GetCareer(ctx context.Context, code string) (CareerDetail, error)
	ListOccupations(ctx context.Context, industry string, limit int) ([]occupation.Occupation, error)
	ListIndustries(ctx context.Context) ([]string, error)
	ListMOSCodes(ctx context.Context, branch string) ([]repository.MOSCode, error)
}

type Occupations struct {
	occupations repository.OccupationRepository
	skills      repository.OccupationSkillRepository
	crosswalk   repository.CrosswalkRepository
}

func NewOccupationUsecase(
	occupations repository.OccupationRepository,
	skills repository.OccupationSkillRepository,
	crosswalk repository.CrosswalkRepository,
) *Occupations {
	return &Occupations{occupations: occupations, skills: skills, crosswalk: crosswalk}
}

func (u *Occupations) GetCareer(ctx context.Context, code string) (CareerDetail, error) {
	occ, found, err := u.occupations.GetByCode(ctx, code)
	if err != nil {
		return CareerDetail{}, err
	}
	if !found {
		return CareerDetail{}, ErrOccupationNotFound
	}

	reqs, err := u.skills.FindByOccupationCode(ctx, code)
	if err != nil {
		return CareerDetail{}, err
	}
	return CareerDetail{Occupation: occ, RequiredSkills: reqs}, nil
}

func (u *Occupations) ListOccupations(ctx context.Context, industry string, limit int) ([]occupation.Occupation, error) {
	return u.occupations.List(ctx, industry, limit)
}

func (u *Occupations) ListIndustries(ctx context.Context) ([]string, error) {
	return u.occupations.Industries(ctx)
}

func (u *Occupations) ListMOSCodes(ctx context.Context, branch string) ([]repository.MOSCode, error) {
	return u.crosswalk.ListMOSCodes(ctx, branch)
}
