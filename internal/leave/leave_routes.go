package leave

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the leave endpoints. writeMiddleware runs in front
// of every state changing route.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	writeMiddleware ...gin.HandlerFunc,
) {
	write := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, writeMiddleware...), h)
	}

	leaves := r.Group("/leaves")
	{
		leaves.GET("", handler.List)
		leaves.GET("/:id", handler.GetByID)
		leaves.POST("", write(handler.Create)...)
		leaves.PUT("/:id", write(handler.Update)...)
		leaves.POST("/:id/approvals", write(handler.SubmitApproval)...)
	}
}
