package httputils // import "github.com/staticweb/staticd/api/server/httputils"

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/staticweb/staticd/api/types"
)

// APIFunc is the signature of request handlers used throughout the
// server. The vars map carries route variables extracted by the mux.
type APIFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error

// WriteResponse transmits a materialized response. Headers set on resp
// win over defaults; Content-Length is filled in from the body when the
// response does not carry one already.
func WriteResponse(w http.ResponseWriter, resp *types.Response) error {
	h := w.Header()
	for k, vv := range resp.Header {
		for _, v := range vv {
			h.Add(k, v)
		}
	}
	if resp.Header.Get("Content-Length") == "" {
		h.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Body); err != nil {
		return errors.Wrap(err, "writing response body")
	}
	return nil
}
