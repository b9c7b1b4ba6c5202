package httperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"hotel-booking-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Response is the error-shaped body: {"success": false, "message": "..."}.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AbortWithError records err on the context for the logging middleware and
// writes the error envelope.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
	})

	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"path", c.Request.URL.Path,
			"stack", errs.ExtractStackLines(err, 10),
		)
	}

	c.AbortWithStatusJSON(status, Response{Success: false, Message: msg})
}

// BindingMessage turns a gin binding failure into a message naming the first
// offending field, e.g. "check_in is required".
func BindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "oneof":
			return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		case "max":
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		case "gt":
			return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
		default:
			return fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return "invalid request body"
}
