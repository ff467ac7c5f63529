package mid

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atelieraurum/studio-api/framework/web"
	"github.com/atelieraurum/studio-api/internal"
	"github.com/atelieraurum/studio-api/logger"
)

const healthCheckPath = "/health"

// Logger logs one started and one completed line per request, tagged with
// the trace id. Health probes are not logged.
func Logger() web.Middleware {
	return func(before web.Handler) web.Handler {
		return func(ctx *gin.Context) error {
			if ctx.Request.URL.Path == healthCheckPath {
				return before(ctx)
			}

			v, ok := internal.DataFromContext(ctx)
			if !ok {
				return web.NewShutdownError("web value missing from context")
			}

			l := logger.FromContext(ctx)

			method := ctx.Request.Method
			path := ctx.Request.URL.Path
			remote := ctx.Request.RemoteAddr

			l.Printf("%s: started : %s %s -> %s", v.TraceID, method, path, remote)

			err := before(ctx)

			switch {
			case err != nil:
				l.Printf("ERROR: %s", err)
			case v.StatusCode >= http.StatusBadRequest || v.StatusCode == 0:
				if lastErr := ctx.Errors.Last(); lastErr != nil {
					l.Errorf("request failed: %s", lastErr)
				}
			}

			l.Printf("%s: completed : %s %s -> %s (%d) (%s)",
				v.TraceID, method, path, remote, v.StatusCode, time.Since(v.Now))

			return err
		}
	}
}
