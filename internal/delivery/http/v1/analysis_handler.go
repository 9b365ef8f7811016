package v1

import (
	"net/http"

	"go-tailoresume-backend/internal/delivery/http/response"
	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	analysisUC domain.AnalysisUsecase
}

type jobAnalysisRequest struct {
	JobDescription string `json:"job_description"`
}

type generateResumeRequest struct {
	JobDescription      string `json:"job_description"`
	MaximizeUtilization bool   `json:"maximize_utilization"`
}

type coverageResponse struct {
	Requirements *domain.JobRequirements `json:"requirements"`
	Coverage     *domain.CoverageReport  `json:"coverage"`
}

func NewAnalysisHandler(r *gin.RouterGroup, analysisUC domain.AnalysisUsecase, aiLimit gin.HandlerFunc) {
	handler := &AnalysisHandler{analysisUC: analysisUC}

	analysis := r.Group("/job-analysis")
	analysis.Use(aiLimit)
	{
		analysis.POST("/analyze", handler.Analyze)
		analysis.POST("/validate-databank-coverage", handler.ValidateCoverage)
		analysis.POST("/suggest-databank-enhancements", handler.SuggestEnhancements)
		analysis.POST("/generate-anti-hallucination-resume", handler.GenerateResume)
	}
}

// Analyze godoc
// @Summary      Analyze job description
// @Description  Extract structured requirements from a free-text job description
// @Tags         job-analysis
// @Accept       json
// @Produce      json
// @Param        request  body      jobAnalysisRequest  true  "Job description"
// @Success      200      {object}  response.Response{data=domain.JobRequirements}
// @Failure      502      {object}  response.Response
// @Router       /job-analysis/analyze [post]
// @Security     BearerAuth
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req jobAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	requirements, err := h.analysisUC.AnalyzeJob(c.Request.Context(), req.JobDescription)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job analysis", requirements)
}

// ValidateCoverage godoc
// @Summary      Validate databank coverage
// @Description  Report how much of the job's requirements the databank actually covers
// @Tags         job-analysis
// @Accept       json
// @Produce      json
// @Param        request  body      jobAnalysisRequest  true  "Job description"
// @Success      200      {object}  response.Response{data=coverageResponse}
// @Failure      502      {object}  response.Response
// @Router       /job-analysis/validate-databank-coverage [post]
// @Security     BearerAuth
func (h *AnalysisHandler) ValidateCoverage(c *gin.Context) {
	var req jobAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	coverage, requirements, err := h.analysisUC.ValidateDatabankCoverage(c.Request.Context(), req.JobDescription)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Databank coverage", coverageResponse{
		Requirements: requirements,
		Coverage:     coverage,
	})
}

// SuggestEnhancements godoc
// @Summary      Suggest databank enhancements
// @Description  Prioritized list of concrete databank additions that would close coverage gaps
// @Tags         job-analysis
// @Accept       json
// @Produce      json
// @Param        request  body      jobAnalysisRequest  true  "Job description"
// @Success      200      {object}  response.Response{data=[]domain.GapRecommendation}
// @Failure      502      {object}  response.Response
// @Router       /job-analysis/suggest-databank-enhancements [post]
// @Security     BearerAuth
func (h *AnalysisHandler) SuggestEnhancements(c *gin.Context) {
	var req jobAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	recommendations, err := h.analysisUC.SuggestDatabankEnhancements(c.Request.Context(), req.JobDescription)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Databank enhancement suggestions", recommendations)
}

// GenerateResume godoc
// @Summary      Generate constrained resume content
// @Description  Generate resume content restricted to databank facts, with a utilization audit
// @Tags         job-analysis
// @Accept       json
// @Produce      json
// @Param        request  body      generateResumeRequest  true  "Generation request"
// @Success      200      {object}  response.Response{data=domain.GeneratedResume}
// @Failure      422      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /job-analysis/generate-anti-hallucination-resume [post]
// @Security     BearerAuth
func (h *AnalysisHandler) GenerateResume(c *gin.Context) {
	var req generateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	generated, err := h.analysisUC.GenerateConstrainedResume(c.Request.Context(), req.JobDescription, req.MaximizeUtilization)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Generated resume content", generated)
}
