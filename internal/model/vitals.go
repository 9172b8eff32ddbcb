package model

import (
	"encoding/json"
	"time"
)

// Vitals is one visit's measurements. BMI is always derived server-side.
type Vitals struct {
	ID        int64     `db:"id" json:"id"`
	PatientID string    `db:"patient_id" json:"patient_id"`
	VisitDate time.Time `db:"visit_date" json:"visit_date"`
	Height    float64   `db:"height" json:"height"`
	Weight    float64   `db:"weight" json:"weight"`
	BMI       float64   `db:"bmi" json:"bmi"`
}

// RecordVitalsRequest accepts height and weight as json.Number so callers may
// send either JSON numbers or numeric strings. String fields are pointers:
// required is a presence check only and empty values still bind.
type RecordVitalsRequest struct {
	PatientID *string     `json:"patient_id" binding:"required"`
	Height    json.Number `json:"height" binding:"required"`
	Weight    json.Number `json:"weight" binding:"required"`
	VisitDate *string     `json:"visit_date" binding:"required"`
}

type RecordVitalsResponse struct {
	Message  string  `json:"message"`
	BMI      float64 `json:"bmi"`
	NextForm string  `json:"next_form"`
	VitalsID int64   `json:"vitals_id"`
}
