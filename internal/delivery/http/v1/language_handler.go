package v1

import (
	"net/http"

	"go-tailoresume-backend/internal/delivery/http/response"
	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type LanguageHandler struct {
	profileUC domain.ProfileUsecase
}

func NewLanguageHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &LanguageHandler{profileUC: profileUC}

	languages := r.Group("/languages")
	{
		languages.GET("", handler.List)
		languages.POST("", handler.Create)
		languages.PUT("/:id", handler.Update)
		languages.DELETE("/:id", handler.Delete)
	}
}

func (h *LanguageHandler) List(c *gin.Context) {
	languages, err := h.profileUC.ListLanguages(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Languages", languages)
}

func (h *LanguageHandler) Create(c *gin.Context) {
	var language domain.Language
	if err := c.ShouldBindJSON(&language); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	if err := h.profileUC.CreateLanguage(c.Request.Context(), &language); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Language created", language)
}

func (h *LanguageHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var language domain.Language
	if err := c.ShouldBindJSON(&language); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	language.ID = id

	if err := h.profileUC.UpdateLanguage(c.Request.Context(), &language); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Language not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Language updated", language)
}

func (h *LanguageHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.profileUC.DeleteLanguage(c.Request.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Language not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Language deleted", nil)
}
