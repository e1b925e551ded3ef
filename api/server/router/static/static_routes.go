package static // import "github.com/staticweb/staticd/api/server/router/static"

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/containerd/log"
	"github.com/pkg/errors"

	"github.com/staticweb/staticd/api/server/httpstatus"
	"github.com/staticweb/staticd/api/server/httputils"
	"github.com/staticweb/staticd/api/types"
	"github.com/staticweb/staticd/pkg/htmlpage"
)

func (s *staticRouter) getFile(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error {
	resp, err := s.backend.Get(ctx, r.URL.Path)
	if err != nil {
		statusCode := httpstatus.FromError(err)
		log.G(ctx).WithError(err).Debugf("%s %s resolved to %d", r.Method, r.RequestURI, statusCode)
		resp, err = errorResponse(statusCode)
		if err != nil {
			return err
		}
	}

	if s.hook != nil {
		resp, err = s.hook(r, resp, s.cfg.Root, s.cfg.UseExtensions)
		if err != nil {
			return errors.Wrap(err, "post-processing response")
		}
	}

	return httputils.WriteResponse(w, resp)
}

// errorResponse renders the standard error page for statusCode. The
// page title is the status line ("404 Not Found"); the body is empty.
// Every error response carries the same content type.
func errorResponse(statusCode int) (*types.Response, error) {
	title := fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
	page, err := htmlpage.Render(title, "")
	if err != nil {
		return nil, err
	}
	resp := types.NewResponse(statusCode)
	resp.Header.Set("Content-Length", strconv.Itoa(len(page)))
	resp.Header.Set("Content-Type", "text/html; charset=utf-8")
	resp.Body = []byte(page)
	return resp, nil
}
