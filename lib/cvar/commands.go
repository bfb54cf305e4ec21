package cvar

import (
	"github.com/odamex/odacfg/lib/console"
)

// RegisterCommands installs set, get and toggle, plus the resolver that
// lets a bare variable name print or assign the variable.
func (r *Registry) RegisterCommands(con console.Registrar) {
	con.Register("set", func(argv []string) error {
		if len(argv) != 3 {
			con.Printf("usage: set <variable> <value>\n")
			return nil
		}
		return r.Set(argv[1], argv[2])
	})

	con.Register("get", func(argv []string) error {
		if len(argv) < 2 {
			con.Printf("usage: get <variable>\n")
			return nil
		}
		v, ok := r.Get(argv[1])
		if !ok {
			con.Printf("%s not found\n", console.QuoteString(argv[1]))
			return nil
		}
		con.Printf("%s is %s\n", console.QuoteString(v.name), console.QuoteString(v.value))
		return nil
	})

	con.Register("toggle", func(argv []string) error {
		if len(argv) < 2 {
			con.Printf("usage: toggle <variable>\n")
			return nil
		}
		v, ok := r.Get(argv[1])
		if !ok {
			con.Printf("%s not found\n", console.QuoteString(argv[1]))
			return nil
		}
		next := "1"
		if v.value != "" && v.value != "0" {
			next = "0"
		}
		return r.Set(v.name, next)
	})

	con.AddResolver(func(argv []string) (bool, error) {
		v, ok := r.Get(argv[0])
		if !ok {
			return false, nil
		}
		if len(argv) == 1 {
			con.Printf("%s is %s\n", console.QuoteString(v.name), console.QuoteString(v.value))
			return true, nil
		}
		return true, r.Set(v.name, argv[1])
	})
}
