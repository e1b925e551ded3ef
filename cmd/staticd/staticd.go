package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/containerd/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/staticweb/staticd/api/server"
	"github.com/staticweb/staticd/api/server/middleware"
	"github.com/staticweb/staticd/api/server/router/static"
	"github.com/staticweb/staticd/daemon"
	"github.com/staticweb/staticd/daemon/config"
	"github.com/staticweb/staticd/daemon/ext"
	"github.com/staticweb/staticd/pkg/listeners"
)

const version = "0.5.0"

type serverOptions struct {
	version bool
	debug   bool
	config  *config.Config
}

func newServerCommand() *cobra.Command {
	opts := serverOptions{
		config: config.New(),
	}

	cmd := &cobra.Command{
		Use:           "staticd [OPTIONS] [ROOT]",
		Short:         "A basic static content HTTP server.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.config.Root = args[0]
			}
			return runServer(&opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.version, "version", "v", false, "Print version information and quit")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	installConfigFlags(opts.config, flags)

	return cmd
}

func runServer(opts *serverOptions) error {
	if opts.version {
		showVersion()
		return nil
	}
	if opts.debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := config.Validate(opts.config); err != nil {
		return err
	}

	// Display the configuration to be helpful.
	fmt.Printf("addr: http://%s\n", opts.config.Addr)
	fmt.Printf("root dir: %s\n", opts.config.Root)
	fmt.Println()

	ls, err := listeners.Init("tcp", opts.config.Addr)
	if err != nil {
		return err
	}

	d := daemon.NewDaemon(opts.config)

	apiServer := server.New()
	apiServer.UseMiddleware(middleware.DebugRequestMiddleware{})
	apiServer.Accept(opts.config.Addr, ls...)
	apiServer.InitRouter(static.NewRouter(d, ext.Map, opts.config))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- apiServer.ServeAPI()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case sig := <-stop:
		log.L.Infof("Processing signal '%v'", sig)
		apiServer.Close()
		return nil
	}
}

func showVersion() {
	fmt.Printf("staticd version %s\n", version)
}

func main() {
	if err := newServerCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
