package v1

import (
	"strconv"

	"go-tailoresume-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid id parameter")
	}
	return id, nil
}
