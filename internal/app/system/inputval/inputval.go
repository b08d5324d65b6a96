// Package inputval validates request input using struct tags.
//
// Handlers declare validation rules on small input structs and get back
// human-readable messages suitable for the response envelope:
//
//	type createBlogInput struct {
//		Title   string `validate:"required,max=200" label:"Title"`
//		Content string `validate:"required" label:"Content"`
//	}
//
//	if result := inputval.Validate(input); result.HasErrors() {
//		respond.Error(w, http.StatusBadRequest, result.First())
//		return
//	}
package inputval

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Error messages use the label tag when present, the field name otherwise.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return v
}

// Result collects validation failures for one input struct.
type Result struct {
	errs []string
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.errs) > 0 }

// First returns the first failure message, or "" if validation passed.
func (r Result) First() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0]
}

// All returns every failure message in field order.
func (r Result) All() []string { return r.errs }

// Validate checks the struct's validate tags and returns the result.
func Validate(input any) Result {
	err := validate.Struct(input)
	if err == nil {
		return Result{}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{errs: []string{"Invalid input."}}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return Result{errs: msgs}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "max":
		return fmt.Sprintf("%s is too long (max %s).", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s is too short (min %s).", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s is invalid.", fe.Field())
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL.", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}
