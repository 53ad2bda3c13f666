package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const CodeValidation = "VALIDATION_ERROR"

// FieldViolation describes one failed binding rule.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Init makes gin's validator report fields by their json names.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// humanField turns applicant_id into "Applicant Id".
func humanField(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError reports the first failing field of a binding error.
// Errors that did not come from the validator, such as malformed JSON,
// map to a generic invalid input error.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	field := humanField(e.Field())

	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "oneof":
		return New(CodeInvalidInput,
			fmt.Sprintf("%s must be one of %s", field, strings.Join(strings.Fields(e.Param()), ", ")),
			http.StatusBadRequest)
	case "max":
		return New(CodeInvalidInput, fmt.Sprintf("%s must be at most %s", field, e.Param()), http.StatusBadRequest)
	case "min":
		return New(CodeInvalidInput, fmt.Sprintf("%s must be at least %s", field, e.Param()), http.StatusBadRequest)
	default:
		return InvalidField(field)
	}
}

// ValidationDetails lists every failing field, or nil for non validator errors.
func ValidationDetails(err error) []FieldViolation {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	return lo.Map(errs, func(e validator.FieldError, _ int) FieldViolation {
		return FieldViolation{Field: e.Field(), Rule: e.Tag(), Param: e.Param()}
	})
}
