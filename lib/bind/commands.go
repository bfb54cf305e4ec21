package bind

import (
	"strings"

	"github.com/odamex/odacfg/lib/console"
)

// RegisterCommands installs the binding commands for all three tables.
// unbindall clears the primary and double-tap tables; the automap table is
// cleared with "unambind all".
func (s *Set) RegisterCommands(con console.Registrar) {
	registerTable(con, s.Bindings, "unbind")
	registerTable(con, s.DoubleBindings, "undoublebind")
	registerTable(con, s.AutomapBindings, "")

	con.Register("unbindall", func(argv []string) error {
		s.Bindings.UnbindAll()
		s.DoubleBindings.UnbindAll()
		return nil
	})

	con.Register("unambind", func(argv []string) error {
		if len(argv) < 2 {
			con.Printf("usage: unambind <key|all>\n")
			return nil
		}
		if strings.EqualFold(argv[1], "all") {
			s.AutomapBindings.UnbindAll()
			return nil
		}
		s.AutomapBindings.Unbind(argv[1])
		return nil
	})
}

func registerTable(con console.Registrar, t *Table, unbindVerb string) {
	con.Register(t.verb, func(argv []string) error {
		switch len(argv) {
		case 1:
			for _, key := range t.sortedKeys() {
				con.Printf("%s %s\n", key, console.QuoteString(t.keys[key]))
			}
		case 2:
			if cmd, ok := t.Binding(argv[1]); ok {
				con.Printf("%s = %s\n", argv[1], console.QuoteString(cmd))
			} else {
				con.Printf("%s is unbound\n", argv[1])
			}
		default:
			t.Bind(argv[1], strings.Join(argv[2:], " "))
		}
		return nil
	})

	if unbindVerb == "" {
		return
	}
	con.Register(unbindVerb, func(argv []string) error {
		if len(argv) < 2 {
			con.Printf("usage: %s <key>\n", unbindVerb)
			return nil
		}
		t.Unbind(argv[1])
		return nil
	})
}
