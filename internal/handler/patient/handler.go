package patient

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/intake-api/internal/handler"
	"github.com/jwalitptl/intake-api/internal/model"
	"github.com/jwalitptl/intake-api/internal/repository"
	"github.com/jwalitptl/intake-api/internal/service/patient"
	"github.com/jwalitptl/intake-api/pkg/httputil"
)

type Handler struct {
	service patient.PatientService
}

func NewHandler(service patient.PatientService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.POST("", h.RegisterPatient)
		patients.GET("", h.ListPatients)
	}
}

func (h *Handler) RegisterPatient(c *gin.Context) {
	var req model.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, handler.BindingError(err))
		return
	}

	dob, err := handler.ParseDate("dob", *req.DOB)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}
	regDate, err := handler.ParseDate("registration_date", *req.RegistrationDate)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	p := &model.Patient{
		PatientID:        *req.PatientID,
		FirstName:        *req.FirstName,
		LastName:         *req.LastName,
		DOB:              dob,
		Gender:           *req.Gender,
		RegistrationDate: regDate,
	}

	if err := h.service.Register(c.Request.Context(), p); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.RegisterPatientResponse{
		Message:   "Patient registered successfully",
		PatientID: p.PatientID,
		NextPage:  "vitals",
	})
}

func (h *Handler) ListPatients(c *gin.Context) {
	var query model.ListPatientsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.RespondWithError(c, handler.BindingError(err))
		return
	}

	// The visit-date window only applies when both bounds are present.
	var window *repository.DateRange
	if query.StartDate != "" && query.EndDate != "" {
		start, err := handler.ParseDate("start_date", query.StartDate)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		end, err := handler.ParseDate("end_date", query.EndDate)
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}
		window = &repository.DateRange{Start: start, End: end}
	}

	summaries, err := h.service.ListSummaries(c.Request.Context(), window)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}
