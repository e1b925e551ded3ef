package middleware // import "github.com/staticweb/staticd/api/server/middleware"

import (
	"context"
	"net/http"

	"github.com/containerd/log"
)

// DebugRequestMiddleware logs every incoming request at debug level.
type DebugRequestMiddleware struct{}

// WrapHandler returns a new handler function wrapping the previous one
// in the request chain.
func (DebugRequestMiddleware) WrapHandler(handler func(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error) func(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error {
		log.G(ctx).Debugf("Calling %s %s", r.Method, r.RequestURI)
		return handler(ctx, w, r, vars)
	}
}
