package persist

import (
	"github.com/odamex/odacfg/lib/console"
)

// CommandRegistrar accepts console commands.
type CommandRegistrar interface {
	Register(name string, cmd console.Command)
}

// RegisterCommands installs savecfg [filename].
func (p *Persister) RegisterCommands(con CommandRegistrar) {
	con.Register("savecfg", func(argv []string) error {
		filename := ""
		if len(argv) > 1 {
			filename = argv[1]
		}
		p.Save(filename)
		return nil
	})
}
