package router // import "github.com/staticweb/staticd/api/server/router"

import "github.com/staticweb/staticd/api/server/httputils"

// Router defines an interface to specify a group of routes to add to
// the server.
type Router interface {
	// Routes returns the list of routes to add to the server.
	Routes() []Route
}

// Route defines an individual API route in the server.
type Route interface {
	// Handler returns the raw function to create the HTTP handler.
	Handler() httputils.APIFunc
	// Method returns the HTTP method that the route responds to, or an
	// empty string when the route responds to every method.
	Method() string
	// Path returns the subpath where the route responds to.
	Path() string
}
