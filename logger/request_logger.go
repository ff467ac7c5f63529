package logger

import (
	"fmt"
	"log"
	"strings"
	"time"

	"cloud.google.com/go/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger is the request-scoped logger. Child entries are emitted as the
// request runs; End writes the parent entry that groups them in the log
// viewer.
type Logger struct {
	trace    string
	started  time.Time
	severity logging.Severity
	labels   map[string]string
}

func newDefaultLogger() *Logger {
	now := time.Now()
	id, _ := uuid.NewRandom()

	return &Logger{
		started: now,
		trace:   getTrace(now, id.String()),
		labels:  make(map[string]string),
	}
}

// Trace returns the trace id this request's entries are grouped under.
func (l *Logger) Trace() string {
	return l.trace
}

// SetLabel attaches a key/value label to the request's parent entry.
func (l *Logger) SetLabel(key, value string) {
	l.labels[key] = value
}

// SetLabels attaches a set of labels to the request's parent entry.
func (l *Logger) SetLabels(labels map[string]string) {
	for key, value := range labels {
		l.SetLabel(key, value)
	}
}

// End writes the parent entry summarizing the request. Its severity is the
// highest severity any child entry reached.
func (l *Logger) End(ctx *gin.Context) {
	if !cloudLogging {
		return
	}

	parentLogger.Log(logging.Entry{
		Trace:    l.trace,
		Severity: l.severity,
		HTTPRequest: &logging.HTTPRequest{
			Request:      ctx.Request,
			Status:       ctx.Writer.Status(),
			Latency:      time.Since(l.started),
			ResponseSize: int64(ctx.Writer.Size()),
		},
		Labels:   l.labels,
		Resource: resource,
	})
}

func (l *Logger) emit(s logging.Severity, msg string) {
	if s > l.severity {
		l.severity = s
	}

	if cloudLogging && childLogger != nil {
		childLogger.Log(logging.Entry{
			Payload:  msg,
			Severity: s,
			Trace:    l.trace,
			Resource: resource,
		})
	}

	if gin.Mode() != gin.ReleaseMode {
		log.Printf("[%s] %s\n", strings.ToLower(s.String()), msg)
	}
}

func (l *Logger) Debug(v ...interface{}) {
	l.emit(logging.Debug, fmt.Sprint(v...))
}

func (l *Logger) Info(v ...interface{}) {
	l.emit(logging.Info, fmt.Sprint(v...))
}

func (l *Logger) Print(v ...interface{}) {
	l.emit(logging.Info, fmt.Sprint(v...))
}

func (l *Logger) Warning(v ...interface{}) {
	l.emit(logging.Warning, fmt.Sprint(v...))
}

func (l *Logger) Error(v ...interface{}) {
	l.emit(logging.Error, fmt.Sprint(v...))
}

func (l *Logger) Fatal(v ...interface{}) {
	l.emit(logging.Critical, fmt.Sprint(v...))
	panic(fmt.Sprint(v...))
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.emit(logging.Debug, fmt.Sprintf(format, v...))
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.emit(logging.Info, fmt.Sprintf(format, v...))
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.emit(logging.Info, fmt.Sprintf(format, v...))
}

func (l *Logger) Warningf(format string, v ...interface{}) {
	l.emit(logging.Warning, fmt.Sprintf(format, v...))
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.emit(logging.Error, fmt.Sprintf(format, v...))
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.emit(logging.Critical, fmt.Sprintf(format, v...))
	panic(fmt.Sprintf(format, v...))
}

func (l *Logger) Debugln(v ...interface{}) {
	l.emit(logging.Debug, fmt.Sprintln(v...))
}

func (l *Logger) Infoln(v ...interface{}) {
	l.emit(logging.Info, fmt.Sprintln(v...))
}

func (l *Logger) Println(v ...interface{}) {
	l.emit(logging.Info, fmt.Sprintln(v...))
}

func (l *Logger) Warningln(v ...interface{}) {
	l.emit(logging.Warning, fmt.Sprintln(v...))
}

func (l *Logger) Errorln(v ...interface{}) {
	l.emit(logging.Error, fmt.Sprintln(v...))
}

func (l *Logger) Fatalln(v ...interface{}) {
	l.emit(logging.Critical, fmt.Sprintln(v...))
	panic(fmt.Sprintln(v...))
}
