package errdefs // import "github.com/staticweb/staticd/errdefs"

type causer interface {
	Cause() error
}

type wrapped interface {
	Unwrap() error
}

func getImplementer(err error) error {
	switch e := err.(type) {
	case ErrNotFound, ErrInvalidParameter, ErrSystem:
		return err
	case causer:
		return getImplementer(e.Cause())
	case wrapped:
		return getImplementer(e.Unwrap())
	default:
		return err
	}
}

// IsNotFound returns true when err or any error it wraps is an ErrNotFound.
func IsNotFound(err error) bool {
	_, ok := getImplementer(err).(ErrNotFound)
	return ok
}

// IsInvalidParameter returns true when err or any error it wraps is an
// ErrInvalidParameter.
func IsInvalidParameter(err error) bool {
	_, ok := getImplementer(err).(ErrInvalidParameter)
	return ok
}

// IsSystem returns true when err or any error it wraps is an ErrSystem.
func IsSystem(err error) bool {
	_, ok := getImplementer(err).(ErrSystem)
	return ok
}
