package errdefs // import "github.com/staticweb/staticd/errdefs"

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/v3/assert"
)

var errTest = errors.New("this is a test")

func TestNotFound(t *testing.T) {
	e := NotFound(errTest)
	assert.Check(t, IsNotFound(e))
	assert.Check(t, !IsSystem(e))
	assert.Check(t, !IsInvalidParameter(e))
	assert.Equal(t, e.Error(), errTest.Error())
}

func TestInvalidParameter(t *testing.T) {
	e := InvalidParameter(errTest)
	assert.Check(t, IsInvalidParameter(e))
	assert.Check(t, !IsNotFound(e))
	assert.Check(t, !IsSystem(e))
}

func TestSystem(t *testing.T) {
	e := System(errTest)
	assert.Check(t, IsSystem(e))
	assert.Check(t, !IsNotFound(e))
	assert.Check(t, !IsInvalidParameter(e))
}

func TestNilPassthrough(t *testing.T) {
	assert.Check(t, NotFound(nil) == nil)
	assert.Check(t, InvalidParameter(nil) == nil)
	assert.Check(t, System(nil) == nil)
	assert.Check(t, FromFilesystem(nil) == nil)
}

func TestDoubleWrapKeepsKind(t *testing.T) {
	e := NotFound(NotFound(errTest))
	assert.Check(t, IsNotFound(e))
	assert.Equal(t, e.Error(), errTest.Error())
}

func TestIsWalksWrappedChains(t *testing.T) {
	e := errors.Wrap(NotFound(errTest), "opening file")
	assert.Check(t, IsNotFound(e))

	e = fmt.Errorf("outer: %w", System(errTest))
	assert.Check(t, IsSystem(e))
}

func TestFromFilesystem(t *testing.T) {
	notExist := &fs.PathError{Op: "open", Path: "nope", Err: fs.ErrNotExist}
	assert.Check(t, IsNotFound(FromFilesystem(notExist)))

	denied := &fs.PathError{Op: "open", Path: "secret", Err: fs.ErrPermission}
	assert.Check(t, IsSystem(FromFilesystem(denied)))
	assert.Check(t, !IsNotFound(FromFilesystem(denied)))

	assert.Check(t, IsSystem(FromFilesystem(errTest)))
}
