package static // import "github.com/staticweb/staticd/api/server/router/static"

import (
	"context"
	"net/http"

	"github.com/staticweb/staticd/api/types"
)

// Backend is all the methods that need to be implemented to provide
// static content.
type Backend interface {
	// Get materializes the response for the given request URL path: the
	// file bytes on success, or a tagged error describing the failure.
	Get(ctx context.Context, urlPath string) (*types.Response, error)
}

// Hook post-processes a materialized response before it is written
// back. It runs exactly once per request, for success and error pages
// alike; its result is the final response. A Hook failure fails the
// whole request.
type Hook func(r *http.Request, resp *types.Response, root string, useExtensions bool) (*types.Response, error)
