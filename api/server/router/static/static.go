package static // import "github.com/staticweb/staticd/api/server/router/static"

import (
	"github.com/staticweb/staticd/api/server/router"
	"github.com/staticweb/staticd/daemon/config"
)

// staticRouter serves every request path out of the configured root
// directory.
type staticRouter struct {
	backend Backend
	hook    Hook
	cfg     *config.Config
	routes  []router.Route
}

// NewRouter initializes a new static content router. hook may be nil,
// in which case responses are written unmodified.
func NewRouter(backend Backend, hook Hook, cfg *config.Config) router.Router {
	r := &staticRouter{
		backend: backend,
		hook:    hook,
		cfg:     cfg,
	}
	r.initRoutes()
	return r
}

// Routes returns the available routes to the static content controller.
func (s *staticRouter) Routes() []router.Route {
	return s.routes
}

func (s *staticRouter) initRoutes() {
	s.routes = []router.Route{
		// Every method is served uniformly; there is no method branching.
		router.NewAnyMethodRoute("/{path:.*}", s.getFile),
	}
}
