package daemon // import "github.com/staticweb/staticd/daemon"

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/staticweb/staticd/errdefs"
)

// ResolveLocalPath maps a request URL path onto the document root. The
// query component, from the first '?' onward, is stripped; the rest is
// appended to root verbatim. A path ending in '/' resolves to the
// index.html inside that directory.
//
// The function performs no canonicalization: '..' segments, symlinks
// and encoding are left for the filesystem layer to judge. A path that
// does not begin with '/' (an absolute-form request target) is a
// structural error.
func ResolveLocalPath(requestPath, root string) (string, error) {
	if !strings.HasPrefix(requestPath, "/") {
		return "", errdefs.InvalidParameter(errors.Errorf("request path %q does not begin with /", requestPath))
	}

	// Trim off the url parameters starting with '?'.
	if i := strings.IndexByte(requestPath, '?'); i >= 0 {
		requestPath = requestPath[:i]
	}

	localPath := root + filepath.FromSlash(requestPath)

	// Turn directory requests into index.html requests.
	if strings.HasSuffix(requestPath, "/") {
		localPath += "index.html"
	}

	return localPath, nil
}

// WithinRoot reports whether candidate still points inside root once
// relative segments are applied. Resolution itself never rewrites the
// path, so every caller that is about to touch the filesystem with a
// resolved candidate has to apply this check first.
func WithinRoot(root, candidate string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absCandidate, err := filepath.Abs(candidate)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absCandidate)
	if err != nil {
		return false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return true
}
