package leaveerrors

import (
	"net/http"

	"github.com/nearzk/ddd-leave-sample/internal/shared/apperror"
)

var (
	ErrInvalidLeave = apperror.New(
		apperror.CodeInvalidInput,
		"leave is required",
		http.StatusBadRequest,
	)
	ErrInvalidApplicant = apperror.New(
		apperror.CodeInvalidInput,
		"invalid applicant",
		http.StatusBadRequest,
	)
	ErrInvalidApprover = apperror.New(
		apperror.CodeInvalidInput,
		"invalid approver",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type, expected ANNUAL, SICK, UNPAID or PERSONAL",
		http.StatusBadRequest,
	)
	ErrInvalidDecision = apperror.New(
		apperror.CodeInvalidInput,
		"invalid decision, expected AGREE or REJECT",
		http.StatusBadRequest,
	)
	ErrInvalidApprovalInfo = apperror.New(
		apperror.CodeInvalidInput,
		"approval info requires an id and a decision time",
		http.StatusBadRequest,
	)
	ErrInvalidLeaderMaxLevel = apperror.New(
		apperror.CodeInvalidInput,
		"leader max level must be at least 1",
		http.StatusBadRequest,
	)
	ErrParticipantRequired = apperror.New(
		apperror.CodeInvalidInput,
		"applicant_id or approver_id is required",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrLeaveAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"leave already exists",
		http.StatusConflict,
	)
	ErrConcurrentModification = apperror.New(
		apperror.CodeConflict,
		"leave was modified by another request, reload and retry",
		http.StatusConflict,
	)
	ErrLeaveAlreadyCreated = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already been created",
		http.StatusUnprocessableEntity,
	)
	ErrLeaveNotApproving = apperror.New(
		apperror.CodeInvalidState,
		"leave request is not awaiting approval",
		http.StatusUnprocessableEntity,
	)
	ErrApproverLevelExceeded = apperror.New(
		apperror.CodeInvalidState,
		"approver level exceeds the leader max level of this request",
		http.StatusUnprocessableEntity,
	)
	ErrApproverMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"approver_id does not match the acting person",
		http.StatusBadRequest,
	)
	ErrNotCurrentApprover = apperror.New(
		apperror.CodeInvalidState,
		"decision must be made by the current approver",
		http.StatusUnprocessableEntity,
	)
	ErrNoDecisionRecorded = apperror.New(
		apperror.CodeInvalidState,
		"no approval decision has been recorded",
		http.StatusUnprocessableEntity,
	)
	ErrDecisionMismatch = apperror.New(
		apperror.CodeInvalidState,
		"recorded decision does not allow this transition",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidEndTime = apperror.New(
		apperror.CodeInvalidState,
		"end time must not be before start time",
		http.StatusUnprocessableEntity,
	)
	ErrNoApproverAvailable = apperror.New(
		apperror.CodeInvalidState,
		"no approver available within the leader max level",
		http.StatusUnprocessableEntity,
	)
)
