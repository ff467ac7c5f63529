package logger

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
	"google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/atelieraurum/studio-api/common"
)

const (
	// CtxLoggerKey is the context key the request logger is stored under.
	CtxLoggerKey = "app-logger"

	parentLogID = "parent_logger"
	childLogID  = "child_logger"

	moduleIDField  = "module_id"
	projectIDField = "project_id"
	versionIDField = "version_id"

	appEngineService = "GAE_SERVICE"
	appEngineVersion = "GAE_VERSION"
	appEngineType    = "gae_app"

	gcpLogging = "GCP_LOGGING"

	traceHeader = "X-Cloud-Trace-Context"
)

var (
	parentLogger *logging.Logger
	childLogger  *logging.Logger
	resource     *monitoredres.MonitoredResource
	cloudLogging bool
)

// Provider hands a request-scoped logger to services without coupling them
// to gin.
type Provider func(ctx context.Context) ILogger

type Logging struct {
}

// NewLogging initializes the parent and child Cloud Logging loggers and the
// monitored resource their entries are attributed to.
func NewLogging(ctx context.Context) (*Logging, error) {
	client, err := logging.NewClient(ctx, common.ProjectID)
	if err != nil {
		return nil, err
	}

	parentLogger = client.Logger(parentLogID)
	childLogger = client.Logger(childLogID)

	// Cloud logging is on by default, off on localhost, and GCP_LOGGING
	// overrides both.
	cloudLogging = !common.IsLocalhost

	cloudLogging, err = strconv.ParseBool(common.GetEnv(gcpLogging, strconv.FormatBool(cloudLogging)))
	if err != nil {
		return nil, err
	}

	resource = &monitoredres.MonitoredResource{
		Labels: map[string]string{
			moduleIDField:  common.GetEnv(appEngineService, "studio-api"),
			projectIDField: common.ProjectID,
			versionIDField: common.GetEnv(appEngineVersion, "localhost"),
		},
		Type: appEngineType,
	}

	return &Logging{}, nil
}

// Logger returns the logger that was stored inside the context.
func (l *Logging) Logger(ctx context.Context) ILogger {
	return FromContext(ctx)
}

// NewLogger mints a request logger, correlates it with the incoming Cloud
// Trace header when one is present, and stores it on the gin context.
func NewLogger(ctx *gin.Context) (*Logger, error) {
	l := newDefaultLogger()

	if id := traceID(ctx); id != "" {
		l.trace = getTrace(l.started, id)
	}

	ctx.Set(CtxLoggerKey, l)

	return l, nil
}

// traceID extracts the trace id portion of the X-Cloud-Trace-Context header.
// All-zero ids (sampling disabled) are treated as absent.
func traceID(ctx *gin.Context) string {
	if ctx.Request == nil {
		return ""
	}

	h := ctx.Request.Header.Get(traceHeader)

	i := strings.IndexByte(h, '/')
	if i <= 0 {
		return ""
	}

	t := h[:i]
	if strings.Count(t, "0") == len(t) {
		return ""
	}

	return t
}

// FromContext returns the logger stored in the context, or a fresh default
// logger when none was set.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(CtxLoggerKey).(*Logger); ok {
		return l
	}

	return newDefaultLogger()
}

func getTrace(started time.Time, id string) string {
	return fmt.Sprintf("projects/%s/traces/%d%s", common.ProjectID, started.UnixNano(), id)
}
