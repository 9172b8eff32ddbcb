package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/intake-api/internal/model"
	"github.com/jwalitptl/intake-api/internal/repository"
)

type assessmentRepository struct {
	db *sqlx.DB
}

func NewAssessmentRepository(db *sqlx.DB) repository.AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) CreateGeneral(ctx context.Context, a *model.GeneralAssessment) error {
	query := `
		INSERT INTO general_assessments (patient_id, visit_date, health, drugs, comments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		a.PatientID,
		a.VisitDate,
		a.Health,
		a.Drugs,
		a.Comments,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create general assessment: %w", err)
	}
	return nil
}

func (r *assessmentRepository) CreateOverweight(ctx context.Context, a *model.OverweightAssessment) error {
	query := `
		INSERT INTO overweight_assessments (patient_id, visit_date, health, diet, comments)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		a.PatientID,
		a.VisitDate,
		a.Health,
		a.Diet,
		a.Comments,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to create overweight assessment: %w", err)
	}
	return nil
}
