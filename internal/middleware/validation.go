package middleware

import (
	"encoding/json"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"storefront/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

// decimalNumber is the text a number input accepts: no hex, no Inf or NaN
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func init() {
	validate = validator.New()

	// Report fields by their JSON names, the names the form posts
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("number_min0", validateNumberMin0)
	validate.RegisterValidation("integer_min0", validateIntegerMin0)
	validate.RegisterValidation("admin_category", validateAdminCategory)
}

// validateNumberMin0 mirrors <input type="number" min="0"> on a text field
func validateNumberMin0(fl validator.FieldLevel) bool {
	text := strings.TrimSpace(fl.Field().String())
	if !decimalNumber.MatchString(text) {
		return false
	}
	v, err := strconv.ParseFloat(text, 64)
	return err == nil && v >= 0
}

// validateIntegerMin0 mirrors <input type="number" min="0" step="1">
func validateIntegerMin0(fl validator.FieldLevel) bool {
	v, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	return err == nil && v >= 0
}

func validateAdminCategory(fl validator.FieldLevel) bool {
	return domain.IsAdminCategory(fl.Field().String())
}

// ValidateRequest validates the request body against a struct with validation tags
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// DecodeAndValidate decodes JSON request body and validates it
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return ValidateRequest(v)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FormatValidationErrors converts validator errors to a readable format
func FormatValidationErrors(err error) []ValidationError {
	var errors []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errors = append(errors, ValidationError{
				Field:   e.Field(),
				Message: getErrorMessage(e),
			})
		}
	}

	return errors
}

func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "number_min0":
		return "Value must be a number greater than or equal to 0"
	case "integer_min0":
		return "Value must be a whole number greater than or equal to 0"
	case "admin_category":
		return "Value must be one of: " + strings.Join(domain.AdminCategories(), ", ")
	case "oneof":
		return "Value must be one of: " + e.Param()
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}
