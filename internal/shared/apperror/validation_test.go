package apperror_test

import (
	"errors"
	"testing"

	"github.com/nearzk/ddd-leave-sample/internal/shared/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type leaveInput struct {
	ApplicantID string `json:"applicant_id" binding:"required"`
	LeaveType   string `json:"leave_type" binding:"required,oneof=ANNUAL SICK"`
	Reason      string `json:"reason" binding:"max=5"`
}

func validate(in leaveInput) error {
	apperror.Init()
	return binding.Validator.ValidateStruct(in)
}

func TestMapValidationError(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		err := apperror.MapValidationError(validate(leaveInput{LeaveType: "SICK"}))
		assert.Equal(t, "Applicant Id is required", apperror.ToHTTP(err).Message)
	})

	t.Run("oneof lists allowed values", func(t *testing.T) {
		err := apperror.MapValidationError(validate(leaveInput{ApplicantID: "p1", LeaveType: "HOLIDAY"}))
		assert.Equal(t, "Leave Type must be one of ANNUAL, SICK", apperror.ToHTTP(err).Message)
	})

	t.Run("max", func(t *testing.T) {
		err := apperror.MapValidationError(validate(leaveInput{ApplicantID: "p1", LeaveType: "SICK", Reason: "too long"}))
		assert.Equal(t, "Reason must be at most 5", apperror.ToHTTP(err).Message)
	})

	t.Run("not a validator error", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("unexpected EOF"))
		assert.Equal(t, "Invalid input", apperror.ToHTTP(err).Message)
		assert.Nil(t, apperror.ValidationDetails(errors.New("unexpected EOF")))
	})
}

func TestValidationDetails(t *testing.T) {
	details := apperror.ValidationDetails(validate(leaveInput{LeaveType: "HOLIDAY"}))

	assert.Equal(t, []apperror.FieldViolation{
		{Field: "applicant_id", Rule: "required"},
		{Field: "leave_type", Rule: "oneof", Param: "ANNUAL SICK"},
	}, details)
}
