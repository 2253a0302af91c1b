package content

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/peecock/content-admin/backend/go-services/internal/apperr"
)

// CNPJPattern is the Brazilian company tax ID format XX.XXX.XXX/XXXX-XX.
const CNPJPattern = `^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`

var cnpjRe = regexp.MustCompile(CNPJPattern)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
			return cnpjRe.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Validate checks every section of d against its field constraints. The
// returned error is an *apperr.ValidationError listing each failing field by
// JSON path, e.g. "metadata.title" or "buyButtons[2].url".
func Validate(d *Document) error {
	if d == nil {
		return apperr.NewValidation("content is empty")
	}
	err := validatorInstance().Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.NewValidationWrap("validation failed", err)
	}
	fields := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperr.FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return apperr.NewValidation("validation failed", fields...)
}

// ValidateSection validates d and keeps only the errors under section.
func ValidateSection(d *Document, section string) []apperr.FieldError {
	err := Validate(d)
	if err == nil {
		return nil
	}
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		return []apperr.FieldError{{Field: section, Message: err.Error()}}
	}
	out := []apperr.FieldError{}
	for _, f := range ve.Fields {
		if f.Field == section || strings.HasPrefix(f.Field, section+".") || strings.HasPrefix(f.Field, section+"[") {
			out = append(out, f)
		}
	}
	return out
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "cnpj":
		return "must be in format XX.XXX.XXX/XXXX-XX"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "unique":
		return fmt.Sprintf("must have unique %s values", strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}
