package personerrors

import (
	"net/http"

	"github.com/nearzk/ddd-leave-sample/internal/shared/apperror"
)

var (
	ErrPersonNotFound = apperror.New(
		apperror.CodeNotFound,
		"person not found",
		http.StatusNotFound,
	)
	ErrLeaderNotFound = apperror.New(
		apperror.CodeInvalidState,
		"leader of person does not exist",
		http.StatusUnprocessableEntity,
	)
	ErrHierarchyCycle = apperror.New(
		apperror.CodeInvalidState,
		"reporting hierarchy contains a cycle",
		http.StatusUnprocessableEntity,
	)
)
