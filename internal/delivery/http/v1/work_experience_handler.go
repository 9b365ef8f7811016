package v1

import (
	"net/http"

	"go-tailoresume-backend/internal/delivery/http/response"
	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type WorkExperienceHandler struct {
	profileUC domain.ProfileUsecase
}

func NewWorkExperienceHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &WorkExperienceHandler{profileUC: profileUC}

	experiences := r.Group("/work-experiences")
	{
		experiences.GET("", handler.List)
		experiences.POST("", handler.Create)
		experiences.PUT("/:id", handler.Update)
		experiences.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List work experiences
// @Tags         work-experiences
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.WorkExperience}
// @Router       /work-experiences [get]
// @Security     BearerAuth
func (h *WorkExperienceHandler) List(c *gin.Context) {
	experiences, err := h.profileUC.ListWorkExperiences(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experiences", experiences)
}

// Create godoc
// @Summary      Create work experience
// @Description  A current position must not carry an end date
// @Tags         work-experiences
// @Accept       json
// @Produce      json
// @Param        request  body      domain.WorkExperience  true  "Work experience"
// @Success      201      {object}  response.Response{data=domain.WorkExperience}
// @Failure      422      {object}  response.Response
// @Router       /work-experiences [post]
// @Security     BearerAuth
func (h *WorkExperienceHandler) Create(c *gin.Context) {
	var experience domain.WorkExperience
	if err := c.ShouldBindJSON(&experience); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	if err := h.profileUC.CreateWorkExperience(c.Request.Context(), &experience); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Work experience created", experience)
}

func (h *WorkExperienceHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var experience domain.WorkExperience
	if err := c.ShouldBindJSON(&experience); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	experience.ID = id

	if err := h.profileUC.UpdateWorkExperience(c.Request.Context(), &experience); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Work experience not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experience updated", experience)
}

func (h *WorkExperienceHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.profileUC.DeleteWorkExperience(c.Request.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Work experience not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experience deleted", nil)
}
