// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/cumuna/clubhub/internal/app/system/respond"
)

// RenderBadRequest reports a validation failure to the client.
func RenderBadRequest(w http.ResponseWriter, msg string) {
	respond.Error(w, http.StatusBadRequest, msg)
}

// RenderNotFound reports that an identifier did not resolve to a record.
func RenderNotFound(w http.ResponseWriter, msg string) {
	respond.Error(w, http.StatusNotFound, msg)
}

// RenderServerError reports a store or filesystem failure. Only the generic
// message reaches the client; internal detail goes through ErrorLogger.
func RenderServerError(w http.ResponseWriter, msg string) {
	respond.Error(w, http.StatusInternalServerError, msg)
}
