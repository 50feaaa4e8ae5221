package middleware

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"voice2text/internal/api/errors"
)

// BindForm binds a form or multipart request into req and converts binding
// failures into bad request errors naming the offending field.
func BindForm(c *gin.Context, req interface{}) error {
	err := c.ShouldBind(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, fieldError := range validationErrs {
			field := strings.ToLower(fieldError.Field())
			switch fieldError.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", field))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", field))
			}
		}
		return errors.NewBadRequestError(strings.Join(messages, "; "))
	}

	return errors.NewBadRequestError(fmt.Sprintf("invalid form data: %v", err))
}
