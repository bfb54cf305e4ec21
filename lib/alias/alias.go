// Package alias keeps console aliases: names that run a command string when
// typed at the console.
package alias

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/odamex/odacfg/lib/console"
	"github.com/samber/oops"
)

var log = logger.GetGoI2PLogger()

type entry struct {
	name string
	cmd  string
}

// Registry maps alias names to commands. Names are case-insensitive.
type Registry struct {
	aliases map[string]entry
}

func NewRegistry() *Registry {
	return &Registry{aliases: make(map[string]entry)}
}

// Set defines or redefines an alias.
func (r *Registry) Set(name, cmd string) {
	r.aliases[strings.ToLower(name)] = entry{name: name, cmd: cmd}
}

func (r *Registry) Get(name string) (string, bool) {
	e, ok := r.aliases[strings.ToLower(name)]
	return e.cmd, ok
}

func (r *Registry) Remove(name string) {
	delete(r.aliases, strings.ToLower(name))
}

func (r *Registry) Len() int {
	return len(r.aliases)
}

func (r *Registry) sorted() []entry {
	entries := make([]entry, 0, len(r.aliases))
	for _, e := range r.aliases {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].name) < strings.ToLower(entries[j].name)
	})
	return entries
}

// Archive writes an alias command for every alias, sorted by name.
func (r *Registry) Archive(w io.Writer) error {
	for _, e := range r.sorted() {
		if _, err := fmt.Fprintf(w, "alias %s %s\n", console.QuoteString(e.name), console.QuoteString(e.cmd)); err != nil {
			return oops.Wrapf(err, "failed to archive alias %s", e.name)
		}
	}
	return nil
}

// RegisterCommands installs alias and unalias, and the resolver that runs an
// alias when its name is typed.
func (r *Registry) RegisterCommands(con console.Registrar) {
	con.Register("alias", func(argv []string) error {
		switch len(argv) {
		case 1:
			for _, e := range r.sorted() {
				con.Printf("%s : %s\n", e.name, e.cmd)
			}
		case 2:
			r.Remove(argv[1])
		default:
			r.Set(argv[1], strings.Join(argv[2:], " "))
		}
		return nil
	})

	con.Register("unalias", func(argv []string) error {
		if len(argv) < 2 {
			con.Printf("usage: unalias <name>\n")
			return nil
		}
		r.Remove(argv[1])
		return nil
	})

	con.AddResolver(func(argv []string) (bool, error) {
		cmd, ok := r.Get(argv[0])
		if !ok {
			return false, nil
		}
		log.WithFields(logger.Fields{
			"at":    "alias resolver",
			"alias": argv[0],
		}).Debug("Running alias")
		return true, con.Run(cmd)
	})
}
