package patient

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/intake-api/internal/model"
	"github.com/jwalitptl/intake-api/internal/repository"
	apperrors "github.com/jwalitptl/intake-api/pkg/errors"
)

type fakePatientRepo struct {
	patients []*model.Patient
}

func (f *fakePatientRepo) Create(_ context.Context, p *model.Patient) error {
	p.ID = int64(len(f.patients) + 1)
	f.patients = append(f.patients, p)
	return nil
}

func (f *fakePatientRepo) ExistsByPatientID(_ context.Context, patientID string) (bool, error) {
	for _, p := range f.patients {
		if p.PatientID == patientID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePatientRepo) List(_ context.Context) ([]*model.Patient, error) {
	return f.patients, nil
}

type fakeVitalsRepo struct {
	rows []*model.Vitals
}

func (f *fakeVitalsRepo) Create(_ context.Context, v *model.Vitals) error {
	v.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, v)
	return nil
}

func (f *fakeVitalsRepo) LatestForPatient(_ context.Context, patientID string, window *repository.DateRange) (*model.Vitals, error) {
	var latest *model.Vitals
	for _, v := range f.rows {
		if v.PatientID != patientID {
			continue
		}
		if window != nil && (v.VisitDate.Before(window.Start) || v.VisitDate.After(window.End)) {
			continue
		}
		if latest == nil || v.VisitDate.After(latest.VisitDate) {
			latest = v
		}
	}
	return latest, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(patients *fakePatientRepo, vitals *fakeVitalsRepo, today time.Time) *Service {
	svc := NewService(patients, vitals)
	svc.now = func() time.Time { return today }
	return svc
}

func TestRegisterRejectsDuplicatePatientID(t *testing.T) {
	repo := &fakePatientRepo{}
	svc := newTestService(repo, &fakeVitalsRepo{}, date(2024, 6, 15))

	first := &model.Patient{PatientID: "P1", FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, svc.Register(context.Background(), first))

	err := svc.Register(context.Background(), &model.Patient{PatientID: "P1", FirstName: "Eve"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)

	// First registration stays intact and no duplicate row was written.
	require.Len(t, repo.patients, 1)
	assert.Equal(t, "Ada", repo.patients[0].FirstName)
}

func TestListSummariesComputesAgeAndStatus(t *testing.T) {
	patients := &fakePatientRepo{patients: []*model.Patient{
		{ID: 1, PatientID: "P1", FirstName: "Ada", LastName: "Lovelace", DOB: date(1990, 6, 15)},
	}}
	vitals := &fakeVitalsRepo{rows: []*model.Vitals{
		{PatientID: "P1", VisitDate: date(2024, 1, 10), BMI: 30.0},
	}}
	svc := newTestService(patients, vitals, date(2024, 6, 15))

	summaries, err := svc.ListSummaries(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	assert.Equal(t, "Ada Lovelace", summaries[0].Name)
	assert.Equal(t, 34, summaries[0].Age)
	assert.Equal(t, 30.0, summaries[0].BMI)
	assert.Equal(t, "Overweight", summaries[0].Status)
}

func TestListSummariesPicksLatestVisit(t *testing.T) {
	patients := &fakePatientRepo{patients: []*model.Patient{
		{ID: 1, PatientID: "P1", FirstName: "Ada", LastName: "Lovelace", DOB: date(1990, 6, 15)},
	}}
	vitals := &fakeVitalsRepo{rows: []*model.Vitals{
		{PatientID: "P1", VisitDate: date(2024, 1, 10), BMI: 22.0},
		{PatientID: "P1", VisitDate: date(2024, 3, 5), BMI: 26.56},
	}}
	svc := newTestService(patients, vitals, date(2024, 6, 15))

	summaries, err := svc.ListSummaries(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 26.56, summaries[0].BMI)
	assert.Equal(t, "Overweight", summaries[0].Status)
}

func TestListSummariesOmitsPatientsOutsideWindow(t *testing.T) {
	patients := &fakePatientRepo{patients: []*model.Patient{
		{ID: 1, PatientID: "P1", FirstName: "Ada", LastName: "Lovelace", DOB: date(1990, 6, 15)},
		{ID: 2, PatientID: "P2", FirstName: "Grace", LastName: "Hopper", DOB: date(1985, 12, 9)},
	}}
	vitals := &fakeVitalsRepo{rows: []*model.Vitals{
		{PatientID: "P1", VisitDate: date(2024, 1, 10), BMI: 22.0},
		{PatientID: "P2", VisitDate: date(2024, 5, 1), BMI: 24.0},
	}}
	svc := newTestService(patients, vitals, date(2024, 6, 15))

	window := &repository.DateRange{Start: date(2024, 4, 1), End: date(2024, 5, 31)}
	summaries, err := svc.ListSummaries(context.Background(), window)
	require.NoError(t, err)

	// P1's only visit falls outside the window, so P1 disappears entirely.
	require.Len(t, summaries, 1)
	assert.Equal(t, "Grace Hopper", summaries[0].Name)
}

func TestListSummariesOmitsPatientsWithNoVitals(t *testing.T) {
	patients := &fakePatientRepo{patients: []*model.Patient{
		{ID: 1, PatientID: "P1", FirstName: "Ada", LastName: "Lovelace", DOB: date(1990, 6, 15)},
	}}
	svc := newTestService(patients, &fakeVitalsRepo{}, date(2024, 6, 15))

	summaries, err := svc.ListSummaries(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestListSummariesKeepsTableOrder(t *testing.T) {
	patients := &fakePatientRepo{patients: []*model.Patient{
		{ID: 1, PatientID: "P1", FirstName: "Ada", LastName: "Lovelace", DOB: date(1990, 6, 15)},
		{ID: 2, PatientID: "P2", FirstName: "Grace", LastName: "Hopper", DOB: date(1985, 12, 9)},
	}}
	vitals := &fakeVitalsRepo{rows: []*model.Vitals{
		{PatientID: "P2", VisitDate: date(2024, 1, 2), BMI: 24.0},
		{PatientID: "P1", VisitDate: date(2024, 1, 1), BMI: 22.0},
	}}
	svc := newTestService(patients, vitals, date(2024, 6, 15))

	summaries, err := svc.ListSummaries(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Ada Lovelace", summaries[0].Name)
	assert.Equal(t, "Grace Hopper", summaries[1].Name)
}
