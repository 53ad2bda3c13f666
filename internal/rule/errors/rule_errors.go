package ruleerrors

import (
	"net/http"

	"github.com/nearzk/ddd-leave-sample/internal/shared/apperror"
)

var (
	ErrRuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"approval rule not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaderMaxLevel = apperror.New(
		apperror.CodeInvalidInput,
		"leader_max_level must be at least 1",
		http.StatusBadRequest,
	)
)
