// Package daemon is the backend of the staticd API server: it resolves
// request paths under the document root and materializes responses for
// them.
package daemon // import "github.com/staticweb/staticd/daemon"

import (
	"context"
	"io"
	"net/http"
	"os"
	"strconv"

	"github.com/containerd/log"
	"github.com/pkg/errors"

	"github.com/staticweb/staticd/api/types"
	"github.com/staticweb/staticd/daemon/config"
	"github.com/staticweb/staticd/errdefs"
	"github.com/staticweb/staticd/pkg/mimetype"
)

// Daemon answers static content requests against an immutable
// configuration. It holds no per-request state; a single instance is
// shared by every concurrent handler.
type Daemon struct {
	cfg *config.Config
}

// NewDaemon instantiates a daemon serving the root directory named in
// the configuration.
func NewDaemon(cfg *config.Config) *Daemon {
	return &Daemon{cfg: cfg}
}

// Config returns the daemon's immutable configuration.
func (d *Daemon) Config() *config.Config {
	return d.cfg
}

// Get resolves urlPath under the document root and returns the 200
// response carrying the file bytes. Failures come back as tagged
// errors: errdefs.ErrInvalidParameter for a structurally broken path,
// errdefs.ErrNotFound for a missing file, errdefs.ErrSystem for
// everything else the filesystem reports.
func (d *Daemon) Get(ctx context.Context, urlPath string) (*types.Response, error) {
	localPath, err := ResolveLocalPath(urlPath, d.cfg.Root)
	if err != nil {
		return nil, err
	}
	if !WithinRoot(d.cfg.Root, localPath) {
		// Escapes are reported as absent so probes cannot tell
		// "outside root" from "does not exist".
		log.G(ctx).Debugf("path %s escapes the served root", urlPath)
		return nil, errdefs.NotFound(errors.Errorf("no such file %s", urlPath))
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, errdefs.FromFilesystem(err)
	}
	defer f.Close()

	return respondWithFile(f, localPath)
}

// respondWithFile reads the opened file completely and builds the 200
// response for it. The whole content is buffered: simplicity over
// memory, large files included. A failure after a successful open is a
// server-side error, not a 404.
func respondWithFile(f *os.File, localPath string) (*types.Response, error) {
	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, errdefs.System(errors.Wrapf(err, "reading %s", localPath))
	}

	resp := types.NewResponse(http.StatusOK)
	resp.Header.Set("Content-Length", strconv.Itoa(len(buf)))
	resp.Header.Set("Content-Type", mimetype.ForPath(localPath))
	resp.Body = buf
	return resp, nil
}
