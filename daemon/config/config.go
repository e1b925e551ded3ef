package config // import "github.com/staticweb/staticd/daemon/config"

import (
	"net"
	"os"

	"github.com/pkg/errors"
)

const (
	// DefaultAddr is the host:port combination served when none is given.
	DefaultAddr = "127.0.0.1:4000"
	// DefaultRoot is the document root served when none is given.
	DefaultRoot = "."
)

// Config defines the configuration of the staticd daemon. It is
// populated once at startup from command line flags and never mutated
// afterwards, so concurrent request handlers share it without
// synchronization.
type Config struct {
	// Addr is the host:port combination to listen on.
	Addr string
	// Root is the document root directory; every served path resolves
	// under it.
	Root string
	// UseExtensions enables the development post-processing hook.
	UseExtensions bool
}

// New returns a new fully initialized Config struct with default values.
func New() *Config {
	return &Config{
		Addr: DefaultAddr,
		Root: DefaultRoot,
	}
}

// Validate validates some specific configs. Validation failures are
// fatal: the process must not start serving with a broken configuration.
func Validate(conf *Config) error {
	if _, err := net.ResolveTCPAddr("tcp", conf.Addr); err != nil {
		return errors.Wrapf(err, "invalid listen address %s", conf.Addr)
	}
	fi, err := os.Stat(conf.Root)
	if err != nil {
		return errors.Wrapf(err, "invalid root directory %s", conf.Root)
	}
	if !fi.IsDir() {
		return errors.Errorf("root path %s is not a directory", conf.Root)
	}
	return nil
}
