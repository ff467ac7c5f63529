package logger

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestCtx(t *testing.T, traceHeaderValue string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "http://example.com/foo", nil)

	if traceHeaderValue != "" {
		ctx.Request.Header.Set(traceHeader, traceHeaderValue)
	}

	return ctx
}

func TestNewLogger_NoTraceHeader(t *testing.T) {
	l, err := NewLogger(newTestCtx(t, ""))

	assert.NoError(t, err)
	assert.NotEmpty(t, l.Trace())

	// Logging must not panic with cloud logging disabled.
	l.Info("hello world")
	l.Infof("formatted %d", 42)
}

func TestNewLogger_TraceHeader(t *testing.T) {
	l, err := NewLogger(newTestCtx(t, "trace987/uselessSuffix?"))

	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(l.Trace(), "trace987"))
}

func TestTraceID(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "well formed header",
			header: "abc123/span;o=1",
			want:   "abc123",
		},
		{
			name:   "missing header",
			header: "",
			want:   "",
		},
		{
			name:   "no span separator",
			header: "abc123",
			want:   "",
		},
		{
			name:   "all zero trace is ignored",
			header: "0000/span",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, traceID(newTestCtx(t, tt.header)))
		})
	}
}

func TestFromContext_DefaultWhenUnset(t *testing.T) {
	ctx := newTestCtx(t, "")

	l := FromContext(ctx)

	assert.NotNil(t, l)
	assert.NotEmpty(t, l.Trace())
}
