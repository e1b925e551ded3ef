package router // import "github.com/staticweb/staticd/api/server/router"

import (
	"net/http"

	"github.com/staticweb/staticd/api/server/httputils"
)

// localRoute defines an individual API route to connect with the server.
// It implements Route.
type localRoute struct {
	method  string
	path    string
	handler httputils.APIFunc
}

// Handler returns the APIFunc to let the server wrap it in middlewares.
func (l localRoute) Handler() httputils.APIFunc {
	return l.handler
}

// Method returns the http method that the route responds to.
func (l localRoute) Method() string {
	return l.method
}

// Path returns the subpath where the route responds to.
func (l localRoute) Path() string {
	return l.path
}

// NewRoute initializes a new local route for the router. An empty
// method matches every HTTP method.
func NewRoute(method, path string, handler httputils.APIFunc) Route {
	return localRoute{method: method, path: path, handler: handler}
}

// NewGetRoute initializes a new route with the http method GET.
func NewGetRoute(path string, handler httputils.APIFunc) Route {
	return NewRoute(http.MethodGet, path, handler)
}

// NewAnyMethodRoute initializes a new route that responds to every HTTP
// method uniformly.
func NewAnyMethodRoute(path string, handler httputils.APIFunc) Route {
	return NewRoute("", path, handler)
}
