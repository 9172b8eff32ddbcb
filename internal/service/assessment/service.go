package assessment

import (
	"context"
	"fmt"

	"github.com/jwalitptl/intake-api/internal/model"
	"github.com/jwalitptl/intake-api/internal/repository"
)

type AssessmentService interface {
	CreateGeneral(ctx context.Context, a *model.GeneralAssessment) error
	CreateOverweight(ctx context.Context, a *model.OverweightAssessment) error
}

// Service persists follow-up assessments. The patient reference is by
// external ID value only; registration is not checked here.
type Service struct {
	repo repository.AssessmentRepository
}

func NewService(repo repository.AssessmentRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateGeneral(ctx context.Context, a *model.GeneralAssessment) error {
	if err := s.repo.CreateGeneral(ctx, a); err != nil {
		return fmt.Errorf("failed to save general assessment: %w", err)
	}
	return nil
}

func (s *Service) CreateOverweight(ctx context.Context, a *model.OverweightAssessment) error {
	if err := s.repo.CreateOverweight(ctx, a); err != nil {
		return fmt.Errorf("failed to save overweight assessment: %w", err)
	}
	return nil
}
