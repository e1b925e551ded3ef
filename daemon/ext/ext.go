// Package ext implements the development extensions enabled by the -x
// flag. It post-processes materialized responses: markdown sources are
// rendered to HTML, a 404 falls back to the same path with an .html
// extension, and a directory without an index file gets a generated
// listing.
package ext // import "github.com/staticweb/staticd/daemon/ext"

import (
	"fmt"
	"html"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/russross/blackfriday"

	"github.com/staticweb/staticd/api/types"
	"github.com/staticweb/staticd/daemon"
	"github.com/staticweb/staticd/errdefs"
	"github.com/staticweb/staticd/pkg/htmlpage"
)

// Map applies the development extensions to a response. It is the
// post-processing hook wired into the static router: called exactly
// once per request, success and error pages alike. With useExtensions
// disabled the response passes through untouched.
func Map(r *http.Request, resp *types.Response, root string, useExtensions bool) (*types.Response, error) {
	if !useExtensions {
		return resp, nil
	}

	switch {
	case resp.StatusCode == http.StatusOK && strings.HasSuffix(r.URL.Path, ".md"):
		return renderMarkdown(r.URL.Path, resp)
	case resp.StatusCode == http.StatusNotFound:
		return tryFallbacks(r, resp, root)
	}
	return resp, nil
}

// renderMarkdown re-renders a served markdown body as an HTML page
// titled with the file name.
func renderMarkdown(urlPath string, resp *types.Response) (*types.Response, error) {
	rendered := blackfriday.MarkdownCommon(resp.Body)
	page, err := htmlpage.Render(path.Base(urlPath), string(rendered))
	if err != nil {
		return nil, err
	}
	return htmlResponse(http.StatusOK, page), nil
}

// tryFallbacks rescues a 404: first a sibling file with an .html
// extension, then a listing when the request names a directory. When
// neither applies the original error page is returned unchanged.
func tryFallbacks(r *http.Request, resp *types.Response, root string) (*types.Response, error) {
	localPath, err := daemon.ResolveLocalPath(r.URL.Path, root)
	if err != nil {
		// A structurally broken path already produced its error page.
		return resp, nil
	}
	// The same containment rule the daemon applies: a candidate outside
	// the root must stay a 404, never be rescued into a read or a
	// listing of foreign files.
	if !daemon.WithinRoot(root, localPath) {
		return resp, nil
	}

	if !strings.HasSuffix(localPath, ".html") {
		if buf, err := os.ReadFile(localPath + ".html"); err == nil {
			out := htmlResponse(http.StatusOK, string(buf))
			return out, nil
		}
	}

	// A directory request resolves to its index.html; when that file is
	// the missing piece, list the directory instead.
	if filepath.Base(localPath) == "index.html" {
		dir := filepath.Dir(localPath)
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return directoryListing(dir, r.URL.Path)
		}
	}

	return resp, nil
}

func directoryListing(dir, urlPath string) (*types.Response, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(errdefs.FromFilesystem(err), "listing %s", dir)
	}

	var b strings.Builder
	b.WriteString("<ul>\n")
	for _, entry := range entries {
		name := entry.Name()
		href := url.PathEscape(name)
		if entry.IsDir() {
			name += "/"
			href += "/"
		}
		fmt.Fprintf(&b, "<li><a href=%q>%s</a></li>\n", href, html.EscapeString(name))
	}
	b.WriteString("</ul>\n")

	page, err := htmlpage.Render(urlPath, b.String())
	if err != nil {
		return nil, err
	}
	return htmlResponse(http.StatusOK, page), nil
}

func htmlResponse(statusCode int, body string) *types.Response {
	resp := types.NewResponse(statusCode)
	resp.Header.Set("Content-Type", "text/html; charset=utf-8")
	resp.Header.Set("Content-Length", strconv.Itoa(len(body)))
	resp.Body = []byte(body)
	return resp
}
