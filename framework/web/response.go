package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atelieraurum/studio-api/internal"
)

// Respond marshals data as the JSON response body and records the status
// code on the request data for the logging middleware.
func Respond(ctx *gin.Context, data interface{}, statusCode int) error {
	if v, ok := internal.DataFromContext(ctx); ok {
		v.StatusCode = statusCode
	}

	if data == nil || statusCode == http.StatusNoContent {
		ctx.Status(statusCode)
		return nil
	}

	ctx.JSON(statusCode, data)

	return nil
}

// RespondError writes the error response for a failed request. Errors that
// do not carry a status respond as a bare 500 without leaking the message.
func RespondError(ctx *gin.Context, err error) error {
	if webErr, ok := err.(*Error); ok {
		return Respond(ctx, ErrorResponse{Error: webErr.Err.Error()}, webErr.Status)
	}

	return Respond(ctx, ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
}
