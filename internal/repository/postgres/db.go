package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/jwalitptl/intake-api/internal/config"
)

func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Migrate creates the intake tables when they are missing. Child tables
// reference patients by external patient_id value without an enforced foreign
// key; assessments may arrive before registration.
func Migrate(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS patients (
	id BIGSERIAL PRIMARY KEY,
	patient_id TEXT NOT NULL UNIQUE,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	dob DATE NOT NULL,
	gender TEXT NOT NULL,
	registration_date DATE NOT NULL DEFAULT CURRENT_DATE
);

CREATE TABLE IF NOT EXISTS vitals (
	id BIGSERIAL PRIMARY KEY,
	patient_id TEXT NOT NULL,
	visit_date DATE NOT NULL,
	height DOUBLE PRECISION NOT NULL,
	weight DOUBLE PRECISION NOT NULL,
	bmi DOUBLE PRECISION NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_vitals_patient_visit ON vitals (patient_id, visit_date DESC);

CREATE TABLE IF NOT EXISTS general_assessments (
	id BIGSERIAL PRIMARY KEY,
	patient_id TEXT NOT NULL,
	visit_date DATE NOT NULL,
	health TEXT NOT NULL,
	drugs TEXT NOT NULL,
	comments TEXT
);
CREATE INDEX IF NOT EXISTS idx_general_assessments_patient ON general_assessments (patient_id);

CREATE TABLE IF NOT EXISTS overweight_assessments (
	id BIGSERIAL PRIMARY KEY,
	patient_id TEXT NOT NULL,
	visit_date DATE NOT NULL,
	health TEXT NOT NULL,
	diet TEXT NOT NULL,
	comments TEXT
);
CREATE INDEX IF NOT EXISTS idx_overweight_assessments_patient ON overweight_assessments (patient_id);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
