package repository

import (
	"context"
	"time"

	"github.com/jwalitptl/intake-api/internal/model"
)

// DateRange is an inclusive visit-date window.
type DateRange struct {
	Start time.Time
	End   time.Time
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	ExistsByPatientID(ctx context.Context, patientID string) (bool, error)
	// List returns all patients in table order (ascending row id).
	List(ctx context.Context) ([]*model.Patient, error)
}

type VitalsRepository interface {
	Create(ctx context.Context, vitals *model.Vitals) error
	// LatestForPatient returns the vitals row with the most recent visit date
	// for the patient, restricted to the window when one is given. Returns
	// (nil, nil) when the patient has no qualifying row.
	LatestForPatient(ctx context.Context, patientID string, window *DateRange) (*model.Vitals, error)
}

type AssessmentRepository interface {
	CreateGeneral(ctx context.Context, a *model.GeneralAssessment) error
	CreateOverweight(ctx context.Context, a *model.OverweightAssessment) error
}
