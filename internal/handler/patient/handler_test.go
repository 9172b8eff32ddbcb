package patient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/intake-api/internal/handler"
	"github.com/jwalitptl/intake-api/internal/model"
	"github.com/jwalitptl/intake-api/internal/repository"
	apperrors "github.com/jwalitptl/intake-api/pkg/errors"
)

type stubService struct {
	registerErr error
	registered  []*model.Patient
	summaries   []*model.PatientSummary
	gotWindow   *repository.DateRange
}

func (s *stubService) Register(_ context.Context, p *model.Patient) error {
	if s.registerErr != nil {
		return s.registerErr
	}
	s.registered = append(s.registered, p)
	return nil
}

func (s *stubService) ListSummaries(_ context.Context, window *repository.DateRange) ([]*model.PatientSummary, error) {
	s.gotWindow = window
	return s.summaries, nil
}

func newTestRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler.SetupValidator()
	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group(""))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func validRegistration() map[string]interface{} {
	return map[string]interface{}{
		"patient_id":        "P1",
		"first_name":        "Ada",
		"last_name":         "Lovelace",
		"dob":               "1990-06-15",
		"gender":            "female",
		"registration_date": "2024-01-02",
	}
}

func TestRegisterPatient(t *testing.T) {
	svc := &stubService{}
	engine := newTestRouter(svc)

	w := doJSON(t, engine, http.MethodPost, "/patients", validRegistration())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp model.RegisterPatientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Patient registered successfully", resp.Message)
	assert.Equal(t, "P1", resp.PatientID)
	assert.Equal(t, "vitals", resp.NextPage)

	require.Len(t, svc.registered, 1)
	assert.Equal(t, "Ada", svc.registered[0].FirstName)
	assert.Equal(t, 1990, svc.registered[0].DOB.Year())
}

func TestRegisterPatientMissingFields(t *testing.T) {
	engine := newTestRouter(&stubService{})

	for _, field := range []string{"patient_id", "first_name", "last_name", "dob", "gender", "registration_date"} {
		t.Run(field, func(t *testing.T) {
			body := validRegistration()
			delete(body, field)

			w := doJSON(t, engine, http.MethodPost, "/patients", body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), field+" is required")
		})
	}
}

func TestRegisterPatientAcceptsEmptyGender(t *testing.T) {
	svc := &stubService{}
	engine := newTestRouter(svc)

	// Presence check only: a present-but-empty field binds.
	body := validRegistration()
	body["gender"] = ""

	w := doJSON(t, engine, http.MethodPost, "/patients", body)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, svc.registered, 1)
	assert.Empty(t, svc.registered[0].Gender)
}

func TestRegisterPatientMalformedDate(t *testing.T) {
	engine := newTestRouter(&stubService{})

	body := validRegistration()
	body["dob"] = "15/06/1990"

	w := doJSON(t, engine, http.MethodPost, "/patients", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "dob")
}

func TestRegisterPatientDuplicate(t *testing.T) {
	svc := &stubService{registerErr: apperrors.NewConflict("Patient already registered", nil)}
	engine := newTestRouter(svc)

	w := doJSON(t, engine, http.MethodPost, "/patients", validRegistration())
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Patient already registered")
}

func TestListPatients(t *testing.T) {
	svc := &stubService{summaries: []*model.PatientSummary{
		{Name: "Ada Lovelace", Age: 34, BMI: 30.0, Status: "Overweight"},
	}}
	engine := newTestRouter(svc)

	w := doJSON(t, engine, http.MethodGet, "/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []model.PatientSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Ada Lovelace", got[0].Name)
	assert.Equal(t, "Overweight", got[0].Status)
	assert.Nil(t, svc.gotWindow)
}

func TestListPatientsDateWindow(t *testing.T) {
	svc := &stubService{}
	engine := newTestRouter(svc)

	w := doJSON(t, engine, http.MethodGet, "/patients?start_date=2024-01-01&end_date=2024-03-31", nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, svc.gotWindow)
	assert.Equal(t, 2024, svc.gotWindow.Start.Year())
	assert.Equal(t, 3, int(svc.gotWindow.End.Month()))
}

func TestListPatientsIgnoresHalfWindow(t *testing.T) {
	svc := &stubService{}
	engine := newTestRouter(svc)

	w := doJSON(t, engine, http.MethodGet, "/patients?start_date=2024-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.gotWindow)
}

func TestListPatientsMalformedWindow(t *testing.T) {
	engine := newTestRouter(&stubService{})

	w := doJSON(t, engine, http.MethodGet, "/patients?start_date=bogus&end_date=2024-03-31", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "start_date")
}
