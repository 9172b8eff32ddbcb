package model

import "time"

// GeneralAssessment is the follow-up form for patients routed to the
// "general" track (BMI at or below 25).
type GeneralAssessment struct {
	ID        int64     `db:"id" json:"id"`
	PatientID string    `db:"patient_id" json:"patient_id"`
	VisitDate time.Time `db:"visit_date" json:"visit_date"`
	Health    string    `db:"health" json:"health"`
	Drugs     string    `db:"drugs" json:"drugs"`
	Comments  string    `db:"comments" json:"comments"`
}

// OverweightAssessment is the follow-up form for the "overweight" track.
type OverweightAssessment struct {
	ID        int64     `db:"id" json:"id"`
	PatientID string    `db:"patient_id" json:"patient_id"`
	VisitDate time.Time `db:"visit_date" json:"visit_date"`
	Health    string    `db:"health" json:"health"`
	Diet      string    `db:"diet" json:"diet"`
	Comments  string    `db:"comments" json:"comments"`
}

// Assessment requests use pointer fields so that required means the key is
// present; empty short codes and empty comments still bind.
type GeneralAssessmentRequest struct {
	PatientID *string `json:"patient_id" binding:"required"`
	VisitDate *string `json:"visit_date" binding:"required"`
	Health    *string `json:"health" binding:"required"`
	Drugs     *string `json:"drugs" binding:"required"`
	Comments  *string `json:"comments" binding:"required"`
}

type OverweightAssessmentRequest struct {
	PatientID *string `json:"patient_id" binding:"required"`
	VisitDate *string `json:"visit_date" binding:"required"`
	Health    *string `json:"health" binding:"required"`
	Diet      *string `json:"diet" binding:"required"`
	Comments  *string `json:"comments" binding:"required"`
}

type AssessmentResponse struct {
	Message      string `json:"message"`
	AssessmentID int64  `json:"assessment_id"`
}
