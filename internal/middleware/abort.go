package middleware

import (
	"github.com/nearzk/ddd-leave-sample/internal/shared/apperror"
	"github.com/nearzk/ddd-leave-sample/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	c.Abort()
}
