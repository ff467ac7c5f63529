package internal

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CtxDataKey is the gin context key the per-request Data lives under.
const CtxDataKey = "app-context"

// Data is the request-scoped state the framework threads through every
// handler: the trace id the logger minted, the status code the response
// helper recorded, and the start time for latency logging.
type Data struct {
	TraceID    string
	StatusCode int
	Now        time.Time
}

// ContextWithData stores data on the gin context.
func ContextWithData(ctx *gin.Context, data *Data) {
	ctx.Set(CtxDataKey, data)
}

// DataFromContext retrieves the request Data, reporting whether it was set.
func DataFromContext(ctx *gin.Context) (*Data, bool) {
	v, ok := ctx.Value(CtxDataKey).(*Data)
	return v, ok
}
