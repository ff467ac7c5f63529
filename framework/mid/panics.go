package mid

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/atelieraurum/studio-api/framework/web"
	"github.com/atelieraurum/studio-api/internal"
	"github.com/atelieraurum/studio-api/logger"
)

// Panics recovers a panicking handler, reports it to Sentry and converts the
// panic into an error for the Errors middleware above it.
func Panics() web.Middleware {
	return func(after web.Handler) web.Handler {
		return func(ctx *gin.Context) (err error) {
			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			l := logger.FromContext(ctx)

			defer func() {
				r := recover()
				if r == nil {
					return
				}

				err = fmt.Errorf("panic: %v", r)
				l.Errorf("%s: %s\n%s", v.TraceID, err, debug.Stack())

				if hub := sentrygin.GetHubFromContext(ctx); hub != nil {
					hub.WithScope(func(scope *sentry.Scope) {
						hub.Recover(err)
						sentry.Flush(time.Second * 5)
					})
				}
			}()

			return after(ctx)
		}
	}
}
