// Package httpstatus maps the error kinds defined in errdefs onto HTTP
// status codes.
package httpstatus // import "github.com/staticweb/staticd/api/server/httpstatus"

import (
	"net/http"

	"github.com/containerd/log"

	"github.com/staticweb/staticd/errdefs"
)

// FromError returns the status code for err. Only a missing target maps
// to 404; a malformed request path and every other filesystem failure
// are server-side errors.
func FromError(err error) int {
	if err == nil {
		log.L.Error("unexpected HTTP error handling without error")
		return http.StatusInternalServerError
	}

	switch {
	case errdefs.IsNotFound(err):
		return http.StatusNotFound
	case errdefs.IsInvalidParameter(err), errdefs.IsSystem(err):
		return http.StatusInternalServerError
	}

	log.L.WithError(err).Debug("unclassified error kind, defaulting to 500")
	return http.StatusInternalServerError
}
