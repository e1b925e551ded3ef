package daemon // import "github.com/staticweb/staticd/daemon"

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/staticweb/staticd/errdefs"
)

func TestResolveLocalPath(t *testing.T) {
	testCases := []struct {
		name        string
		requestPath string
		expected    string
	}{
		{"plain file", "/index.html", "root/index.html"},
		{"nested file", "/assets/css/site.css", "root/assets/css/site.css"},
		{"root directory", "/", "root/index.html"},
		{"subdirectory", "/docs/", "root/docs/index.html"},
		{"query stripped", "/style.css?v=2", "root/style.css"},
		{"query on directory", "/docs/?page=1", "root/docs/index.html"},
		{"empty query", "/style.css?", "root/style.css"},
		// Dot segments pass through unmodified; containment is
		// enforced separately, right before the filesystem is touched.
		{"dot segments kept", "/a/../b.txt", "root/a/../b.txt"},
		{"no extension", "/README", "root/README"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ResolveLocalPath(tc.requestPath, "root")
			assert.NilError(t, err)
			assert.Check(t, is.Equal(p, tc.expected))
		})
	}
}

func TestResolveLocalPathRelative(t *testing.T) {
	for _, requestPath := range []string{"", "relative/path", "?only=query", "http://example.com/abs"} {
		_, err := ResolveLocalPath(requestPath, "root")
		assert.Check(t, err != nil, "request path %q", requestPath)
		assert.Check(t, errdefs.IsInvalidParameter(err), "request path %q", requestPath)
	}
}

func TestWithinRoot(t *testing.T) {
	testCases := []struct {
		candidate string
		expected  bool
	}{
		{"root/index.html", true},
		{"root/a/../b.txt", true},
		{"root/../outside.txt", false},
		{"root/..", false},
		{"root/a/../../etc/passwd", false},
		{"root", true},
	}
	for _, tc := range testCases {
		assert.Check(t, is.Equal(WithinRoot("root", tc.candidate), tc.expected), "candidate %q", tc.candidate)
	}
}
