package web

import (
	"log"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"

	"github.com/atelieraurum/studio-api/common"
	"github.com/atelieraurum/studio-api/framework/connection"
	"github.com/atelieraurum/studio-api/internal"
	"github.com/atelieraurum/studio-api/logger"
)

// Handler is the signature every route handler implements. Returned errors
// are translated to responses by the Errors middleware, so handlers never
// write error payloads themselves.
type Handler func(ctx *gin.Context) error

// App owns the gin engine, the app-wide middleware chain and the shutdown
// channel the runner listens on.
type App struct {
	engine      *gin.Engine
	shutdown    chan os.Signal
	conn        *connection.Connection
	middlewares []Middleware
}

// NewApp creates an App value that handles a set of routes for the application.
func NewApp(shutdown chan os.Signal, conn *connection.Connection, mw ...Middleware) *App {
	initSentry()

	engine := gin.New()
	engine.Use(sentrygin.New(sentrygin.Options{
		Repanic: true,
	}))

	return &App{
		engine:      engine,
		shutdown:    shutdown,
		conn:        conn,
		middlewares: mw,
	}
}

func initSentry() {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		log.Printf("sentry disabled, no SENTRY_DSN in env")
		return
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          common.GAEVersion,
		Environment:      common.ProjectID,
		TracesSampleRate: 1.0,
		SampleRate:       1.0,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Printf("sentry initialization failed: %v", err)
		return
	}

	log.Printf("sentry enabled, release %s environment %s", common.GAEVersion, common.ProjectID)
}

// SignalShutdown asks the runner to stop the process. Used when a handler
// chain reports a state the app cannot safely continue from.
func (a *App) SignalShutdown() {
	a.shutdown <- syscall.SIGSTOP
}

// Handle mounts a Handler for a verb and path pair, wrapping it with the
// route middlewares first and the app middlewares around those.
func (a *App) Handle(verb, path string, handler Handler, mw ...Middleware) {
	wrapped := wrapMiddleware(mw, handler)
	wrapped = wrapMiddleware(a.middlewares, wrapped)

	a.engine.Handle(verb, path, func(ctx *gin.Context) {
		l, err := logger.NewLogger(ctx)
		if err != nil {
			a.SignalShutdown()
			return
		}

		defer l.End(ctx)

		internal.ContextWithData(ctx, &internal.Data{
			TraceID: l.Trace(),
			Now:     time.Now(),
		})

		if gin.Mode() != gin.TestMode {
			a.conn.FirestoreWithContext(ctx)
		}

		// An error surviving the whole middleware chain means the Errors
		// middleware could not respond. Nothing left to do but stop.
		if err := wrapped(ctx); err != nil {
			l.Printf("unrecoverable handler error, shutting down: %s", err)
			a.SignalShutdown()
		}
	})
}

// Post executes Handle with http method POST.
func (a *App) Post(path string, handler Handler, mw ...Middleware) {
	a.Handle(http.MethodPost, path, handler, mw...)
}

// Get executes Handle with http method GET.
func (a *App) Get(path string, handler Handler, mw ...Middleware) {
	a.Handle(http.MethodGet, path, handler, mw...)
}

// Put executes Handle with http method PUT.
func (a *App) Put(path string, handler Handler, mw ...Middleware) {
	a.Handle(http.MethodPut, path, handler, mw...)
}

// Delete executes Handle with http method DELETE.
func (a *App) Delete(path string, handler Handler, mw ...Middleware) {
	a.Handle(http.MethodDelete, path, handler, mw...)
}

// Patch executes Handle with http method PATCH.
func (a *App) Patch(path string, handler Handler, mw ...Middleware) {
	a.Handle(http.MethodPatch, path, handler, mw...)
}

// ServeHTTP implements the http.Handler interface by delegating to the
// wrapped gin engine.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.engine.ServeHTTP(w, r)
}
