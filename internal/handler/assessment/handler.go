package assessment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/intake-api/internal/handler"
	"github.com/jwalitptl/intake-api/internal/model"
	"github.com/jwalitptl/intake-api/internal/service/assessment"
	"github.com/jwalitptl/intake-api/pkg/httputil"
)

type Handler struct {
	service assessment.AssessmentService
}

func NewHandler(service assessment.AssessmentService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	assessments := r.Group("/assessments")
	{
		assessments.POST("/general", h.CreateGeneral)
		assessments.POST("/overweight", h.CreateOverweight)
	}
}

func (h *Handler) CreateGeneral(c *gin.Context) {
	var req model.GeneralAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, handler.BindingError(err))
		return
	}

	visitDate, err := handler.ParseDate("visit_date", *req.VisitDate)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	a := &model.GeneralAssessment{
		PatientID: *req.PatientID,
		VisitDate: visitDate,
		Health:    *req.Health,
		Drugs:     *req.Drugs,
		Comments:  *req.Comments,
	}

	if err := h.service.CreateGeneral(c.Request.Context(), a); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AssessmentResponse{
		Message:      "General assessment saved",
		AssessmentID: a.ID,
	})
}

func (h *Handler) CreateOverweight(c *gin.Context) {
	var req model.OverweightAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, handler.BindingError(err))
		return
	}

	visitDate, err := handler.ParseDate("visit_date", *req.VisitDate)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	a := &model.OverweightAssessment{
		PatientID: *req.PatientID,
		VisitDate: visitDate,
		Health:    *req.Health,
		Diet:      *req.Diet,
		Comments:  *req.Comments,
	}

	if err := h.service.CreateOverweight(c.Request.Context(), a); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.AssessmentResponse{
		Message:      "Overweight assessment saved",
		AssessmentID: a.ID,
	})
}
