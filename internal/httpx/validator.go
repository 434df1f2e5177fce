package httpx

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ().\-]{6,19}$`)
)

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	validate.RegisterValidation("phone", validatePhone)
	validate.RegisterValidation("genre", validateGenre)
	validate.RegisterValidation("state", validateState)
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validateGenre(fl validator.FieldLevel) bool {
	return contains(Genres, fl.Field().String())
}

func validateState(fl validator.FieldLevel) bool {
	return contains(States, fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned by ValidateStruct when a submitted form is
// malformed or incomplete.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Message
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// ByField indexes the messages for templates.
func (e ValidationErrors) ByField() map[string]string {
	out := make(map[string]string, len(e))
	for _, v := range e {
		if _, ok := out[v.Field]; !ok {
			out[v.Field] = v.Message
		}
	}
	return out
}

// ValidateStruct returns nil when s is valid.
func ValidateStruct(s interface{}) ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Field: "", Message: err.Error()}}
	}

	var out ValidationErrors
	for _, fe := range fieldErrs {
		field := fe.Field()
		// dive reports list elements as "genres[1]"
		if i := strings.IndexByte(field, '['); i > 0 {
			field = field[:i]
		}
		label := strings.ReplaceAll(field, "_", " ")
		param := fe.Param()

		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", label)
		case "min":
			message = fmt.Sprintf("%s must have at least %s entries or characters", label, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", label, param)
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", label)
		case "phone":
			message = fmt.Sprintf("%s must be a valid phone number", label)
		case "genre":
			message = fmt.Sprintf("%s contains an unknown genre", label)
		case "state":
			message = fmt.Sprintf("%s must be a US state code", label)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", label, param)
		default:
			message = fmt.Sprintf("%s is invalid", label)
		}

		out = append(out, ValidationError{
			Field:   field,
			Message: message,
		})
	}

	return out
}
