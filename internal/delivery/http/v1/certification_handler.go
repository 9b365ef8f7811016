package v1

import (
	"net/http"

	"go-tailoresume-backend/internal/delivery/http/response"
	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CertificationHandler struct {
	profileUC domain.ProfileUsecase
}

func NewCertificationHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &CertificationHandler{profileUC: profileUC}

	certifications := r.Group("/certifications")
	{
		certifications.GET("", handler.List)
		certifications.POST("", handler.Create)
		certifications.PUT("/:id", handler.Update)
		certifications.DELETE("/:id", handler.Delete)
	}
}

func (h *CertificationHandler) List(c *gin.Context) {
	certifications, err := h.profileUC.ListCertifications(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certifications", certifications)
}

func (h *CertificationHandler) Create(c *gin.Context) {
	var certification domain.Certification
	if err := c.ShouldBindJSON(&certification); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	if err := h.profileUC.CreateCertification(c.Request.Context(), &certification); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Certification created", certification)
}

func (h *CertificationHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var certification domain.Certification
	if err := c.ShouldBindJSON(&certification); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	certification.ID = id

	if err := h.profileUC.UpdateCertification(c.Request.Context(), &certification); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Certification not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification updated", certification)
}

func (h *CertificationHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.profileUC.DeleteCertification(c.Request.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Certification not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Certification deleted", nil)
}
