// Package client assembles the console, the registries and the config
// persister into a working client settings core.
package client

import (
	"io"

	"github.com/go-i2p/logger"
	"github.com/odamex/odacfg/lib/alias"
	"github.com/odamex/odacfg/lib/bind"
	"github.com/odamex/odacfg/lib/console"
	"github.com/odamex/odacfg/lib/cvar"
	"github.com/odamex/odacfg/lib/persist"
	"github.com/odamex/odacfg/lib/version"
	"github.com/spf13/afero"
)

var log = logger.GetGoI2PLogger()

// Client owns every registry of one client process.
type Client struct {
	Console   *console.Console
	Variables *cvar.Registry
	Bindings  *bind.Set
	Aliases   *alias.Registry
	Persister *persist.Persister
}

// New wires a client reading and writing config files on fs. Command output
// and save confirmations go to out.
func New(fs afero.Fs, out io.Writer, paths persist.PathResolver) *Client {
	con := console.New(fs, out)
	vars := cvar.NewRegistry()
	binds := bind.NewSet()
	aliases := alias.NewRegistry()

	vars.Register(persist.VersionVariable, version.ConfigVersion, cvar.Archive)

	p := persist.New(fs, out, paths, persist.Collaborators{
		Variables:       vars,
		Defaults:        binds,
		Bindings:        binds.Bindings,
		DoubleBindings:  binds.DoubleBindings,
		AutomapBindings: binds.AutomapBindings,
		Aliases:         aliases,
		Commands:        con,
	})

	// Commands first, then resolvers in lookup order: variables shadow aliases.
	vars.RegisterCommands(con)
	binds.RegisterCommands(con)
	aliases.RegisterCommands(con)
	p.RegisterCommands(con)

	log.WithField("at", "client.New").Debug("Client settings core ready")
	return &Client{
		Console:   con,
		Variables: vars,
		Bindings:  binds,
		Aliases:   aliases,
		Persister: p,
	}
}
