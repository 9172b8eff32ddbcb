package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/intake-api/internal/model"
	"github.com/jwalitptl/intake-api/internal/repository"
)

type vitalsRepository struct {
	db *sqlx.DB
}

func NewVitalsRepository(db *sqlx.DB) repository.VitalsRepository {
	return &vitalsRepository{db: db}
}

func (r *vitalsRepository) Create(ctx context.Context, vitals *model.Vitals) error {
	query := `
		INSERT INTO vitals (patient_id, visit_date, height, weight, bmi)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		vitals.PatientID,
		vitals.VisitDate,
		vitals.Height,
		vitals.Weight,
		vitals.BMI,
	).Scan(&vitals.ID)
	if err != nil {
		return fmt.Errorf("failed to create vitals: %w", err)
	}
	return nil
}

func (r *vitalsRepository) LatestForPatient(ctx context.Context, patientID string, window *repository.DateRange) (*model.Vitals, error) {
	query := `SELECT * FROM vitals WHERE patient_id = $1`
	args := []interface{}{patientID}
	if window != nil {
		query += ` AND visit_date BETWEEN $2 AND $3`
		args = append(args, window.Start, window.End)
	}
	query += ` ORDER BY visit_date DESC LIMIT 1`

	var vitals model.Vitals
	err := r.db.GetContext(ctx, &vitals, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest vitals: %w", err)
	}
	return &vitals, nil
}
