package mid

import (
	"github.com/gin-gonic/gin"

	"github.com/atelieraurum/studio-api/framework/web"
	"github.com/atelieraurum/studio-api/internal"
	"github.com/atelieraurum/studio-api/logger"
)

// Errors turns handler errors into uniform error responses. Shutdown errors
// are passed back up so the app can terminate.
func Errors() web.Middleware {
	return func(before web.Handler) web.Handler {
		return func(ctx *gin.Context) error {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			err := before(ctx)
			if err == nil {
				return nil
			}

			logger.FromContext(ctx).Errorf("%s: ERROR: %v", v.TraceID, err)

			if respondErr := web.RespondError(ctx, err); respondErr != nil {
				return respondErr
			}

			if web.IsShutdown(err) {
				return err
			}

			return nil
		}
	}
}
