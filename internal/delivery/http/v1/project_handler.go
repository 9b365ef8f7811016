package v1

import (
	"net/http"

	"go-tailoresume-backend/internal/delivery/http/response"
	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProjectHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProjectHandler{profileUC: profileUC}

	projects := r.Group("/projects")
	{
		projects.GET("", handler.List)
		projects.POST("", handler.Create)
		projects.PUT("/:id", handler.Update)
		projects.DELETE("/:id", handler.Delete)
	}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.profileUC.ListProjects(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Projects", projects)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var project domain.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	if err := h.profileUC.CreateProject(c.Request.Context(), &project); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Project created", project)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var project domain.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	project.ID = id

	if err := h.profileUC.UpdateProject(c.Request.Context(), &project); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Project not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated", project)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.profileUC.DeleteProject(c.Request.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Project not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted", nil)
}
