// Package errdefs defines the error kinds the server distinguishes.
//
// Errors are tagged by wrapping them with one of the helper
// constructors; callers test for a kind with the Is* predicates without
// depending on concrete error types. The HTTP layer turns kinds into
// status codes in api/server/httpstatus.
package errdefs // import "github.com/staticweb/staticd/errdefs"

// ErrNotFound signals that the requested object does not exist.
type ErrNotFound interface {
	NotFound()
}

// ErrInvalidParameter signals that the request itself was malformed,
// before any filesystem access was attempted.
type ErrInvalidParameter interface {
	InvalidParameter()
}

// ErrSystem signals a server-side failure: permissions, a directory
// where a file was expected, descriptor exhaustion, and the like.
type ErrSystem interface {
	System()
}
