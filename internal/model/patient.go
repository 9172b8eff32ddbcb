package model

import "time"

// Patient is an identity record keyed by a caller-supplied external ID.
// Rows are append-only; the API never updates or deletes them.
type Patient struct {
	ID               int64     `db:"id" json:"id"`
	PatientID        string    `db:"patient_id" json:"patient_id"`
	FirstName        string    `db:"first_name" json:"first_name"`
	LastName         string    `db:"last_name" json:"last_name"`
	DOB              time.Time `db:"dob" json:"dob"`
	Gender           string    `db:"gender" json:"gender"`
	RegistrationDate time.Time `db:"registration_date" json:"registration_date"`
}

// RegisterPatientRequest uses pointer fields so that required means the key
// is present; an empty string still passes, it is a presence check only.
type RegisterPatientRequest struct {
	PatientID        *string `json:"patient_id" binding:"required"`
	FirstName        *string `json:"first_name" binding:"required"`
	LastName         *string `json:"last_name" binding:"required"`
	DOB              *string `json:"dob" binding:"required"`
	Gender           *string `json:"gender" binding:"required"`
	RegistrationDate *string `json:"registration_date" binding:"required"`
}

type RegisterPatientResponse struct {
	Message   string `json:"message"`
	PatientID string `json:"patient_id"`
	NextPage  string `json:"next_page"`
}

// ListPatientsQuery carries the optional visit-date window. The window only
// applies when both bounds are supplied.
type ListPatientsQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// PatientSummary is one row of the listing response: the patient's latest
// qualifying visit reduced to name, age, BMI and category.
type PatientSummary struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	BMI    float64 `json:"bmi"`
	Status string  `json:"status"`
}
