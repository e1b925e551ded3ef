package main

import (
	"github.com/spf13/pflag"

	"github.com/staticweb/staticd/daemon/config"
)

// installConfigFlags adds flags to the pflag.FlagSet to configure the
// server.
func installConfigFlags(conf *config.Config, flags *pflag.FlagSet) {
	flags.StringVarP(&conf.Addr, "addr", "a", conf.Addr, "IP:PORT combination to listen on")
	flags.BoolVarP(&conf.UseExtensions, "extensions", "x", false, "Enable development extensions")
}
