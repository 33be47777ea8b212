package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError marks a request the console itself rejected before any
// backend call; the error middleware answers these with 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ValidateRequest checks struct tags and flattens the failures into one
// readable message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		messages := make([]string, 0, len(errs))
		for _, fe := range errs {
			messages = append(messages, fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag()))
		}
		return &ValidationError{Message: strings.Join(messages, "; ")}
	}
	return err
}
