package rule

import (
	"net/http"

	"github.com/nearzk/ddd-leave-sample/internal/shared/apperror"
	"github.com/nearzk/ddd-leave-sample/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rule.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rule.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Configure(c *gin.Context) {
	var req ConfigureRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http configure rule validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, apperror.CodeValidation, httpErr.Message, apperror.ValidationDetails(err))
		return
	}

	if err := h.service.Configure(c.Request.Context(), req.PersonType, req.LeaveType, req.LeaderMaxLevel); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, RuleResponse(req), nil)
}

// Get resolves the level in effect, which is the default when nothing is configured.
func (h *Handler) Get(c *gin.Context) {
	personType := c.Query("person_type")
	leaveType := c.Query("leave_type")
	if personType == "" || leaveType == "" {
		httpErr := apperror.ToHTTP(apperror.RequiredField("person_type and leave_type"))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	level, err := h.service.LeaderMaxLevel(c.Request.Context(), personType, leaveType)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, RuleResponse{
		PersonType:     personType,
		LeaveType:      leaveType,
		LeaderMaxLevel: level,
	}, nil)
}
