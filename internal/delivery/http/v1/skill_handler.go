package v1

import (
	"net/http"

	"go-tailoresume-backend/internal/delivery/http/response"
	"go-tailoresume-backend/internal/domain"
	"go-tailoresume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	profileUC domain.ProfileUsecase
}

func NewSkillHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &SkillHandler{profileUC: profileUC}

	skills := r.Group("/skills")
	{
		skills.GET("", handler.List)
		skills.POST("", handler.Create)
		skills.PUT("/:id", handler.Update)
		skills.DELETE("/:id", handler.Delete)
	}
}

// List godoc
// @Summary      List skills
// @Description  List every skill in the logged-in user's databank
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Skill}
// @Failure      401  {object}  response.Response
// @Router       /skills [get]
// @Security     BearerAuth
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.profileUC.ListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills", skills)
}

// Create godoc
// @Summary      Create skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        request  body      domain.Skill  true  "Skill"
// @Success      201      {object}  response.Response{data=domain.Skill}
// @Failure      422      {object}  response.Response
// @Router       /skills [post]
// @Security     BearerAuth
func (h *SkillHandler) Create(c *gin.Context) {
	var skill domain.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	if err := h.profileUC.CreateSkill(c.Request.Context(), &skill); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Skill created", skill)
}

// Update godoc
// @Summary      Update skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id       path      int           true  "Skill id"
// @Param        request  body      domain.Skill  true  "Skill"
// @Success      200      {object}  response.Response{data=domain.Skill}
// @Failure      404      {object}  response.Response
// @Router       /skills/{id} [put]
// @Security     BearerAuth
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var skill domain.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		c.Error(apperror.BadRequest("Invalid request body: " + err.Error()))
		return
	}
	skill.ID = id

	if err := h.profileUC.UpdateSkill(c.Request.Context(), &skill); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Skill not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill updated", skill)
}

// Delete godoc
// @Summary      Delete skill
// @Tags         skills
// @Produce      json
// @Param        id   path      int  true  "Skill id"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.profileUC.DeleteSkill(c.Request.Context(), id); err != nil {
		if err == domain.ErrNotFound {
			c.Error(apperror.NotFound("Skill not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill deleted", nil)
}
