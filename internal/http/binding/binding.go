package binding

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"petstore/internal/http/responses"
)

// FieldError is one entry of the "details" array of a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Validator reports struct tag violations using the JSON names of the
// offending fields.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates s. It returns nil when s is valid, the per-field failures
// otherwise, and an error when s cannot be validated at all.
func (v *Validator) Struct(s any) ([]FieldError, error) {
	err := v.v.Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: describe(fe),
		})
	}
	return out, nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "number", "numeric":
		return fmt.Sprintf("%s must be a number", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}

// DecodeJSON reads exactly one JSON object from the body into dst. Unknown
// fields are rejected.
func DecodeJSON[T any](r *http.Request, dst *T) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON value")
	}

	return nil
}

// Validate writes a 400 response and returns false when dst is invalid.
func Validate(w http.ResponseWriter, v *Validator, dst any) bool {
	details, err := v.Struct(dst)
	if err != nil {
		responses.WriteText(w, http.StatusBadRequest, err.Error())
		return false
	}
	if len(details) > 0 {
		responses.WriteBadRequest(w, "validation failed", details)
		return false
	}
	return true
}

// BindAndValidate decodes the JSON body into dst and validates it. On failure
// the 400 response has already been written and false is returned: a decode
// error as plain text, a validation error as a JSON body with details.
func BindAndValidate[T any](w http.ResponseWriter, r *http.Request, v *Validator, dst *T) bool {
	if err := DecodeJSON(r, dst); err != nil {
		responses.WriteText(w, http.StatusBadRequest, err.Error())
		return false
	}
	return Validate(w, v, dst)
}
