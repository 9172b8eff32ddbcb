package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/jwalitptl/intake-api/internal/clinical"
	"github.com/jwalitptl/intake-api/internal/model"
	"github.com/jwalitptl/intake-api/internal/repository"
	apperrors "github.com/jwalitptl/intake-api/pkg/errors"
)

type PatientService interface {
	Register(ctx context.Context, patient *model.Patient) error
	ListSummaries(ctx context.Context, window *repository.DateRange) ([]*model.PatientSummary, error)
}

type Service struct {
	repo       repository.PatientRepository
	vitalsRepo repository.VitalsRepository
	now        func() time.Time
}

func NewService(repo repository.PatientRepository, vitalsRepo repository.VitalsRepository) *Service {
	return &Service{
		repo:       repo,
		vitalsRepo: vitalsRepo,
		now:        time.Now,
	}
}

// Register persists a new patient. A patient_id that is already taken is a
// conflict, both at the pre-check and at the unique constraint if two
// registrations race.
func (s *Service) Register(ctx context.Context, patient *model.Patient) error {
	exists, err := s.repo.ExistsByPatientID(ctx, patient.PatientID)
	if err != nil {
		return fmt.Errorf("failed to check for existing patient: %w", err)
	}
	if exists {
		return apperrors.NewConflict("Patient already registered", nil)
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return fmt.Errorf("failed to register patient: %w", err)
	}
	return nil
}

// ListSummaries walks patients in table order and reduces each to their most
// recent vitals within the window. Patients with no qualifying vitals are
// omitted.
func (s *Service) ListSummaries(ctx context.Context, window *repository.DateRange) ([]*model.PatientSummary, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	today := s.now()
	summaries := make([]*model.PatientSummary, 0, len(patients))
	for _, p := range patients {
		latest, err := s.vitalsRepo.LatestForPatient(ctx, p.PatientID, window)
		if err != nil {
			return nil, fmt.Errorf("failed to get vitals for patient %s: %w", p.PatientID, err)
		}
		if latest == nil {
			continue
		}

		summaries = append(summaries, &model.PatientSummary{
			Name:   p.FirstName + " " + p.LastName,
			Age:    clinical.AgeYears(p.DOB, today),
			BMI:    latest.BMI,
			Status: string(clinical.CategoryForBMI(latest.BMI)),
		})
	}
	return summaries, nil
}
