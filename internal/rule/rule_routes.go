package rule

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, writeMiddleware ...gin.HandlerFunc) {
	rules := r.Group("/approval-rules")
	{
		rules.GET("", handler.Get)
		rules.PUT("", append(append([]gin.HandlerFunc{}, writeMiddleware...), handler.Configure)...)
	}
}
