package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/edublog/blog-service/internal/models"
)

// FieldError is a single structured validation failure.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationErrors is the ordered list of field failures for one payload.
// It satisfies error so services can return it directly.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s %s", ve[0].Path, ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

// Validator validates request payloads against their declared constraints.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with JSON-tag field paths and the custom rules
// this API uses.
func New() *Validator {
	validate := validator.New()

	// Report paths by json tag, matching the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("user_type", func(fl validator.FieldLevel) bool {
		return models.UserType(fl.Field().String()).IsValid()
	})

	return &Validator{validate: validate}
}

// Validate checks a payload and returns every field failure, in field
// order, or nil when the payload is valid.
func (v *Validator) Validate(s interface{}) ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return ValidationErrors{{Path: "", Message: err.Error()}}
	}
	ve = fieldErrs

	errs := make(ValidationErrors, 0, len(ve))
	for _, fe := range ve {
		errs = append(errs, FieldError{
			Path:    fe.Field(),
			Message: messageFor(fe),
		})
	}
	return errs
}

// messageFor renders the Portuguese message for a failed constraint.
func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "title":
		if fe.Tag() == "max" {
			return "O título deve ter no máximo 100 caracteres."
		}
		return "O título é obrigatório."
	case "content":
		return "O conteúdo é obrigatório."
	case "password":
		if fe.Tag() == "min" {
			return "A senha deve ter pelo menos 6 caracteres."
		}
		return "A senha é obrigatória."
	}

	switch fe.Tag() {
	case "required":
		return "Campo obrigatório."
	case "email":
		return "Email inválido."
	case "min":
		return fmt.Sprintf("Deve ter pelo menos %s caracteres.", fe.Param())
	case "max":
		return fmt.Sprintf("Deve ter no máximo %s caracteres.", fe.Param())
	case "user_type":
		return "Tipo de usuário inválido (esperado: PROFESSOR ou ALUNO)."
	default:
		return fmt.Sprintf("Valor inválido (%s).", fe.Tag())
	}
}
