package vitals

import (
	"context"
	"fmt"

	"github.com/jwalitptl/intake-api/internal/clinical"
	"github.com/jwalitptl/intake-api/internal/model"
	"github.com/jwalitptl/intake-api/internal/repository"
	apperrors "github.com/jwalitptl/intake-api/pkg/errors"
)

// Follow-up form routing targets.
const (
	FormGeneral    = "general"
	FormOverweight = "overweight"
)

type VitalsService interface {
	Record(ctx context.Context, vitals *model.Vitals) (nextForm string, err error)
}

type Service struct {
	repo repository.VitalsRepository
}

func NewService(repo repository.VitalsRepository) *Service {
	return &Service{repo: repo}
}

// Record computes the BMI from the supplied measurements, persists the visit,
// and picks the follow-up form. A BMI of exactly 25.0 still routes to the
// general form.
func (s *Service) Record(ctx context.Context, vitals *model.Vitals) (string, error) {
	if vitals.Height <= 0 || vitals.Weight <= 0 {
		return "", apperrors.NewValidation("Height and weight must be greater than zero")
	}

	bmi, err := clinical.ComputeBMI(vitals.Weight, vitals.Height)
	if err != nil {
		return "", err
	}
	vitals.BMI = bmi

	if err := s.repo.Create(ctx, vitals); err != nil {
		return "", fmt.Errorf("failed to record vitals: %w", err)
	}

	if bmi <= 25 {
		return FormGeneral, nil
	}
	return FormOverweight, nil
}
