package leave

import (
	"net/http"
	"strconv"

	leaveerrors "github.com/nearzk/ddd-leave-sample/internal/leave/errors"
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
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, op string, err error) {
	h.logger.Warn("http "+op+" validation failed", zap.Error(err))
	httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, httpErr.Status, apperror.CodeValidation, httpErr.Message, apperror.ValidationDetails(err))
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "create leave", err)
		return
	}
	h.logger.Debug("http create leave", zap.String("applicant_id", req.ApplicantID))

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "update leave", err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SubmitApproval(c *gin.Context) {
	var req SubmitApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "submit approval", err)
		return
	}
	h.logger.Debug("http submit approval", zap.String("leave_id", c.Param("id")), zap.String("decision", req.Decision))

	resp, err := h.service.SubmitApproval(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// List filters by applicant_id or approver_id; exactly one is expected.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		resp []LeaveResponse
		err  error
	)
	switch {
	case c.Query("applicant_id") != "":
		resp, err = h.service.ListByApplicant(ctx, c.Query("applicant_id"))
	case c.Query("approver_id") != "":
		resp, err = h.service.ListByApprover(ctx, c.Query("approver_id"))
	default:
		err = leaveerrors.ErrParticipantRequired
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	start, end := response.Paginate(len(resp), page, pageSize)
	meta := response.NewPaginationMeta(int64(len(resp)), page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}
