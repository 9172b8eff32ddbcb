package vitals

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/intake-api/internal/handler"
	"github.com/jwalitptl/intake-api/internal/model"
	"github.com/jwalitptl/intake-api/internal/service/vitals"
	apperrors "github.com/jwalitptl/intake-api/pkg/errors"
	"github.com/jwalitptl/intake-api/pkg/httputil"
)

type Handler struct {
	service vitals.VitalsService
}

func NewHandler(service vitals.VitalsService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/vitals", h.RecordVitals)
}

func (h *Handler) RecordVitals(c *gin.Context) {
	var req model.RecordVitalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, handler.BindingError(err))
		return
	}

	height, err := req.Height.Float64()
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("height must be a number"))
		return
	}
	weight, err := req.Weight.Float64()
	if err != nil {
		httputil.RespondWithError(c, apperrors.NewValidation("weight must be a number"))
		return
	}
	if height <= 0 || weight <= 0 {
		httputil.RespondWithError(c, apperrors.NewValidation("Height and weight must be greater than zero"))
		return
	}

	visitDate, err := handler.ParseDate("visit_date", *req.VisitDate)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	v := &model.Vitals{
		PatientID: *req.PatientID,
		VisitDate: visitDate,
		Height:    height,
		Weight:    weight,
	}

	nextForm, err := h.service.Record(c.Request.Context(), v)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.RecordVitalsResponse{
		Message:  "Vitals saved",
		BMI:      v.BMI,
		NextForm: nextForm,
		VitalsID: v.ID,
	})
}
