package v1

import (
	"net/http"

	"go-tailoresume-backend/internal/delivery/http/response"
	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	profileUC domain.ProfileUsecase
}

func NewEducationHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &EducationHandler{profileUC: profileUC}

	educations := r.Group("/educations")
	{
		educations.GET("", handler.List)
		educations.POST("", handler.Create)
		educations.PUT("/:id", handler.Update)
		educations.DELETE("/:id", handler.Delete)
	}
}

func (h *EducationHandler) List(c *gin.Context) {
	educations, err := h.profileUC.ListEducations(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Educations", educations)
}

func (h *EducationHandler) Create(c *gin.Context) {
	var education domain.Education
	if err := c.ShouldBindJSON(&education); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	if err := h.profileUC.CreateEducation(c.Request.Context(), &education); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Education created", education)
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var education domain.Education
	if err := c.ShouldBindJSON(&education); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	education.ID = id

	if err := h.profileUC.UpdateEducation(c.Request.Context(), &education); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Education not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated", education)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.profileUC.DeleteEducation(c.Request.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Education not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education deleted", nil)
}
