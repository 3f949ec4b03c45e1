package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/campus-wellness-api/internal/errors"
	"github.com/yukikurage/campus-wellness-api/internal/utils"
	"go.uber.org/zap"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				utils.Logger.Error("panic_recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
				)
				utils.ErrorCount.WithLabelValues(c.FullPath(), "panic").Inc()
				apierrors.InternalError(c, "")
				c.Abort()
			}
		}()
		c.Next()
	}
}
