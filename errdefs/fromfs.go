package errdefs // import "github.com/staticweb/staticd/errdefs"

import (
	"errors"
	"io/fs"
)

// FromFilesystem converts a failure reported by the filesystem into a
// tagged error. A missing target becomes ErrNotFound; every other
// failure, permission errors and is-a-directory mismatches included,
// becomes ErrSystem. A nil err stays nil.
func FromFilesystem(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return NotFound(err)
	}
	return System(err)
}
