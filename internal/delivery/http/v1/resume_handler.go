package v1

import (
	"net/http"

	"go-tailoresume-backend/internal/delivery/http/response"
	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := r.Group("/resumes")
	{
		resumes.GET("", handler.List)
		resumes.POST("", handler.Create)
		resumes.GET("/:id", handler.Get)
		resumes.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Create resume
// @Description  Compile the selected databank records into a scored, persisted resume artifact
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        request  body      domain.CreateResumeInput  true  "Resume configuration"
// @Success      201      {object}  response.Response{data=domain.Resume}
// @Failure      422      {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) Create(c *gin.Context) {
	var input domain.CreateResumeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}

	resume, err := h.resumeUC.CreateResume(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Resume created", resume)
}

// List godoc
// @Summary      List resumes
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Resume}
// @Router       /resumes [get]
// @Security     BearerAuth
func (h *ResumeHandler) List(c *gin.Context) {
	resumes, err := h.resumeUC.ListResumes(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resumes", resumes)
}

// Get godoc
// @Summary      Get resume
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume id"
// @Success      200  {object}  response.Response{data=domain.Resume}
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [get]
// @Security     BearerAuth
func (h *ResumeHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	resume, err := h.resumeUC.GetResume(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume", resume)
}

// Delete godoc
// @Summary      Delete resume
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [delete]
// @Security     BearerAuth
func (h *ResumeHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.resumeUC.DeleteResume(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume deleted", nil)
}
