package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/jwalitptl/intake-api/internal/model"
	"github.com/jwalitptl/intake-api/internal/repository"
	apperrors "github.com/jwalitptl/intake-api/pkg/errors"
)

// Postgres class 23 unique_violation.
const uniqueViolation = "23505"

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (patient_id, first_name, last_name, dob, gender, registration_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		patient.PatientID,
		patient.FirstName,
		patient.LastName,
		patient.DOB,
		patient.Gender,
		patient.RegistrationDate,
	).Scan(&patient.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			// Two registrations raced past the existence check; the
			// constraint decides.
			return apperrors.NewConflict("Patient already registered", err)
		}
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) ExistsByPatientID(ctx context.Context, patientID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM patients WHERE patient_id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, patientID); err != nil {
		return false, fmt.Errorf("failed to check patient existence: %w", err)
	}
	return exists, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT * FROM patients ORDER BY id`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}
