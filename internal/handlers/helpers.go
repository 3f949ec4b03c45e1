package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/yukikurage/campus-wellness-api/internal/errors"
	"github.com/yukikurage/campus-wellness-api/internal/middleware"
	"github.com/yukikurage/campus-wellness-api/internal/utils"
	"go.uber.org/zap"
)

// respondInternal logs an unexpected failure and sends a generic 500.
func respondInternal(c *gin.Context, err error, message string) {
	utils.Logger.Error("request_failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	utils.ErrorCount.WithLabelValues(c.FullPath(), "internal").Inc()
	apierrors.InternalError(c, message)
}

// currentUsername reads the username set by RequireAuth, answering 401 when absent.
func currentUsername(c *gin.Context) (string, bool) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return "", false
	}
	return username, true
}

// respondBindError answers 400, naming the failed rule per field when the body
// parsed but did not validate.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	apierrors.BadRequestWithDetails(c, "Invalid request body", gin.H{"fields": fields})
}
