package server // import "github.com/staticweb/staticd/api/server"

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/containerd/log"
	"github.com/gorilla/mux"

	"github.com/staticweb/staticd/api/server/httpstatus"
	"github.com/staticweb/staticd/api/server/httputils"
	"github.com/staticweb/staticd/api/server/middleware"
	"github.com/staticweb/staticd/api/server/router"
	"github.com/staticweb/staticd/pkg/htmlpage"
)

// Server contains instance details for the server.
type Server struct {
	servers     []*HTTPServer
	routers     []router.Router
	middlewares []middleware.Middleware
}

// New returns a new instance of the server based on the specified
// configuration. It allocates resources which will be needed for
// ServeAPI (listeners, middlewares, routers).
func New() *Server {
	return &Server{}
}

// UseMiddleware appends a new middleware to the request chain. This
// needs to be called before the API routes are configured.
func (s *Server) UseMiddleware(m middleware.Middleware) {
	s.middlewares = append(s.middlewares, m)
}

// Accept sets a listener the server accepts connections into.
func (s *Server) Accept(addr string, listeners ...net.Listener) {
	for _, listener := range listeners {
		httpServer := &HTTPServer{
			srv: &http.Server{Addr: addr},
			l:   listener,
		}
		s.servers = append(s.servers, httpServer)
	}
}

// InitRouter initializes the list of routers for the server.
func (s *Server) InitRouter(routers ...router.Router) {
	s.routers = append(s.routers, routers...)
}

// Close closes servers and thus stop receiving requests.
func (s *Server) Close() {
	for _, srv := range s.servers {
		if err := srv.Close(); err != nil {
			log.L.WithError(err).Error("Error closing HTTP server")
		}
	}
}

// ServeAPI loops through all initialized servers and spawns a goroutine
// with Serve for each. It sets createMux() as the handler.
func (s *Server) ServeAPI() error {
	m := s.createMux()
	chErrors := make(chan error, len(s.servers))
	for _, srv := range s.servers {
		srv.srv.Handler = m
		go func(srv *HTTPServer) {
			log.L.Infof("API listen on %s", srv.l.Addr())
			err := srv.Serve()
			if err != nil && strings.Contains(err.Error(), "use of closed network connection") {
				err = nil
			}
			chErrors <- err
		}(srv)
	}

	for range s.servers {
		if err := <-chErrors; err != nil {
			return err
		}
	}
	return nil
}

// HTTPServer contains an instance of http server and the listener.
type HTTPServer struct {
	srv *http.Server
	l   net.Listener
}

// Serve starts listening for inbound requests.
func (s *HTTPServer) Serve() error {
	return s.srv.Serve(s.l)
}

// Close closes the HTTPServer from listening for the inbound requests.
func (s *HTTPServer) Close() error {
	return s.l.Close()
}

// handlerWithGlobalMiddlewares wraps the handler function for a request
// with the server's global middlewares. The chain is traversed in
// reverse order so the first registered middleware runs first.
func (s *Server) handlerWithGlobalMiddlewares(handler httputils.APIFunc) httputils.APIFunc {
	next := handler
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		next = s.middlewares[i].WrapHandler(next)
	}
	return next
}

func (s *Server) makeHTTPHandler(handler httputils.APIFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		handlerFunc := s.handlerWithGlobalMiddlewares(handler)

		vars := mux.Vars(r)
		if vars == nil {
			vars = make(map[string]string)
		}

		if err := handlerFunc(ctx, w, r, vars); err != nil {
			statusCode := httpstatus.FromError(err)
			if statusCode >= 500 {
				log.G(ctx).Errorf("Handler for %s %s returned error: %v", r.Method, r.RequestURI, err)
			}
			makeErrorHandler(err)(w, r)
		}
	}
}

// makeErrorHandler is the fallback writer for errors that escape a
// route handler (hook failures, response construction failures). When
// even the page template cannot be rendered it degrades to a plain
// text error.
func makeErrorHandler(err error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statusCode := httpstatus.FromError(err)
		title := fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
		page, rerr := htmlpage.Render(title, "")
		if rerr != nil {
			http.Error(w, title, statusCode)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(page)))
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(page))
	}
}

// createMux initializes the main router the server uses.
func (s *Server) createMux() *mux.Router {
	m := mux.NewRouter()
	// Path interpretation belongs to the resolver: the mux must not
	// rewrite dot segments or redirect to a cleaned path.
	m.SkipClean(true)

	log.L.Debug("Registering routers")
	for _, apiRouter := range s.routers {
		for _, r := range apiRouter.Routes() {
			f := s.makeHTTPHandler(r.Handler())
			log.L.Debugf("Registering %s, %s", r.Method(), r.Path())
			if r.Method() == "" {
				m.Path(r.Path()).Handler(f)
			} else {
				m.Path(r.Path()).Methods(r.Method()).Handler(f)
			}
		}
	}

	return m
}

// CreateMux exposes the configured handler for tests and embedders that
// manage their own listeners.
func (s *Server) CreateMux() http.Handler {
	return s.createMux()
}
