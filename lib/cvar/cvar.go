// Package cvar is the registry of console variables.
package cvar

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

// Flags describe how a variable is treated.
type Flags uint32

const (
	// Archive marks a variable for saving in the config file.
	Archive Flags = 1 << iota
	// User marks a variable created at runtime by an assignment rather than
	// registered by the client.
	User
)

// Variable is a named string setting.
type Variable struct {
	name  string
	value string
	def   string
	flags Flags
}

func (v *Variable) Name() string {
	return v.name
}

// String returns the current value.
func (v *Variable) String() string {
	return v.value
}

func (v *Variable) Default() string {
	return v.def
}

func (v *Variable) Flags() Flags {
	return v.flags
}

// Archived reports whether the variable is written to the config file.
func (v *Variable) Archived() bool {
	return v.flags&Archive != 0
}

// Registry holds every known variable. Lookups are case-insensitive.
type Registry struct {
	vars               map[string]*Variable
	persistAssignments bool
}

func NewRegistry() *Registry {
	return &Registry{vars: make(map[string]*Variable)}
}

// Register adds a variable with its default value, or returns the existing
// one with the flags added.
func (r *Registry) Register(name, def string, flags Flags) *Variable {
	key := strings.ToLower(name)
	if v, ok := r.vars[key]; ok {
		v.flags |= flags
		return v
	}
	v := &Variable{name: name, value: def, def: def, flags: flags}
	r.vars[key] = v
	return v
}

func (r *Registry) Get(name string) (*Variable, bool) {
	v, ok := r.vars[strings.ToLower(name)]
	return v, ok
}

// Set assigns value to name, creating a user variable when none exists.
// While persisted assignments are on, the variable is also marked Archive.
func (r *Registry) Set(name, value string) error {
	if name == "" {
		return oops.Errorf("cannot set a variable without a name")
	}
	v, ok := r.Get(name)
	if !ok {
		log.WithField("name", name).Debug("Creating user variable")
		v = r.Register(name, "", User)
	}
	v.value = value
	if r.persistAssignments {
		v.flags |= Archive
	}
	return nil
}

// SetPersistAssignments turns the "archive everything assigned" marker on or
// off. The marker is on only while the saved config file is executing.
func (r *Registry) SetPersistAssignments(on bool) {
	r.persistAssignments = on
}

// Archive writes a set command for every archived variable, sorted by name.
func (r *Registry) Archive(w io.Writer) error {
	keys := make([]string, 0, len(r.vars))
	for key, v := range r.vars {
		if v.Archived() {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		v := r.vars[key]
		if _, err := fmt.Fprintf(w, "set %s %s\n", console.QuoteString(v.name), console.QuoteString(v.value)); err != nil {
			return oops.Wrapf(err, "failed to archive variable %s", v.name)
		}
	}
	return nil
}
