// Package bind holds the key binding tables: primary bindings, double-tap
// bindings and the automap bindings used while the map is open.
package bind

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

// Table maps key names to command strings. Key names are case-insensitive.
type Table struct {
	verb string
	keys map[string]string
}

// NewTable returns an empty table archived with the given command verb.
func NewTable(verb string) *Table {
	return &Table{verb: verb, keys: make(map[string]string)}
}

// Verb is the console command that recreates an entry of this table.
func (t *Table) Verb() string {
	return t.verb
}

// Bind associates key with cmd. An empty cmd removes the binding.
func (t *Table) Bind(key, cmd string) {
	key = strings.ToLower(key)
	if cmd == "" {
		delete(t.keys, key)
		return
	}
	t.keys[key] = cmd
}

func (t *Table) Unbind(key string) {
	delete(t.keys, strings.ToLower(key))
}

func (t *Table) UnbindAll() {
	log.WithFields(logger.Fields{
		"at":    "(Table) UnbindAll",
		"table": t.verb,
		"count": len(t.keys),
	}).Debug("Clearing key bindings")
	t.keys = make(map[string]string)
}

func (t *Table) Binding(key string) (string, bool) {
	cmd, ok := t.keys[strings.ToLower(key)]
	return cmd, ok
}

func (t *Table) Len() int {
	return len(t.keys)
}

func (t *Table) sortedKeys() []string {
	keys := make([]string, 0, len(t.keys))
	for key := range t.keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Archive writes one "<verb> <key> <cmd>" line per binding, sorted by key.
func (t *Table) Archive(w io.Writer) error {
	for _, key := range t.sortedKeys() {
		line := fmt.Sprintf("%s %s %s\n", t.verb, console.QuoteString(key), console.QuoteString(t.keys[key]))
		if _, err := io.WriteString(w, line); err != nil {
			return oops.Wrapf(err, "failed to archive %s for key %s", t.verb, key)
		}
	}
	return nil
}

// Set groups the three tables the client uses.
type Set struct {
	Bindings        *Table
	DoubleBindings  *Table
	AutomapBindings *Table
}

func NewSet() *Set {
	return &Set{
		Bindings:        NewTable("bind"),
		DoubleBindings:  NewTable("doublebind"),
		AutomapBindings: NewTable("ambind"),
	}
}

// BindDefaults installs the built-in primary and automap bindings on top of
// whatever is bound already.
func (s *Set) BindDefaults() {
	for key, cmd := range defaultBindings {
		s.Bindings.Bind(key, cmd)
	}
	for key, cmd := range defaultAutomapBindings {
		s.AutomapBindings.Bind(key, cmd)
	}
	log.WithFields(logger.Fields{
		"at":      "(Set) BindDefaults",
		"primary": len(defaultBindings),
		"automap": len(defaultAutomapBindings),
	}).Debug("Installed default key bindings")
}
