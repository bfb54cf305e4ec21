package persist

import (
	"fmt"
	"io"
	"os"

	"github.com/go-i2p/logger"
	"github.com/odamex/odacfg/lib/config"
	"github.com/odamex/odacfg/lib/console"
	"github.com/odamex/odacfg/lib/util"
	"github.com/odamex/odacfg/lib/version"
	"github.com/spf13/afero"
)

var log = logger.GetGoI2PLogger()

// VersionVariable holds the version of the client that saved the file.
const VersionVariable = "configver"

// DefaultAlias is registered on every load.
const DefaultAlias = "alias ? help"

// Archiver writes its own serialized form to w.
type Archiver interface {
	Archive(w io.Writer) error
}

// Variables is the console variable registry.
type Variables interface {
	Archiver
	Set(name, value string) error
	// SetPersistAssignments marks every variable assigned while on as archived.
	SetPersistAssignments(on bool)
}

// DefaultBinder installs the built-in key bindings.
type DefaultBinder interface {
	BindDefaults()
}

// CommandRunner executes console command lines.
type CommandRunner interface {
	Run(line string) error
}

// PathResolver supplies the default config path.
type PathResolver interface {
	ConfigPath() string
}

// Collaborators are the registries a Persister reads and the executor it
// loads through.
type Collaborators struct {
	Variables       Variables
	Defaults        DefaultBinder
	Bindings        Archiver
	DoubleBindings  Archiver
	AutomapBindings Archiver
	Aliases         Archiver
	Commands        CommandRunner
}

// Persister orders config loading and saving around its collaborators.
type Persister struct {
	fs    afero.Fs
	out   io.Writer
	paths PathResolver
	c     Collaborators

	defaultsLoaded bool
}

// New returns a Persister writing files to fs and confirmations to out.
func New(fs afero.Fs, out io.Writer, paths PathResolver, c Collaborators) *Persister {
	return &Persister{fs: fs, out: out, paths: paths, c: c}
}

// Loaded reports whether Load has completed.
func (p *Persister) Loaded() bool {
	return p.defaultsLoaded
}

// Load installs the default bindings, executes the config file with every
// assignment archived, registers the default alias and enables Save.
// Default bindings go first so that the file overrides them.
func (p *Persister) Load() {
	path := p.paths.ConfigPath()
	log.WithFields(logger.Fields{
		"at":   "(Persister) Load",
		"path": path,
	}).Debug("Loading config")

	p.c.Defaults.BindDefaults()

	p.c.Variables.SetPersistAssignments(true)
	if err := p.c.Commands.Run("exec " + console.QuoteString(path)); err != nil {
		log.WithError(err).WithField("path", path).Warn("Config file did not execute cleanly")
	}
	p.c.Variables.SetPersistAssignments(false)

	if err := p.c.Commands.Run(DefaultAlias); err != nil {
		log.WithError(err).Warn("Failed to register default alias")
	}

	p.defaultsLoaded = true
}

// Save writes the config to filename, or to the default path when filename
// is empty. filename gets the .cfg extension when it lacks one. It returns
// the path written and whether anything was written.
func (p *Persister) Save(filename string) (string, bool) {
	if !p.defaultsLoaded {
		log.Debug("Not saving config before defaults are loaded")
		return "", false
	}

	path := p.paths.ConfigPath()
	if filename != "" {
		path = util.AppendExtension(filename, config.ConfigExtension)
	}

	if err := p.c.Variables.Set(VersionVariable, version.ConfigVersion); err != nil {
		log.WithError(err).Warn("Failed to update config version")
	}

	f, err := p.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, config.StandardFilePermissions)
	if err != nil {
		log.WithError(err).WithField("path", path).Debug("Could not open config file for writing")
		return path, false
	}

	w := &sectionWriter{w: f}
	w.printf("// Generated by Odamex %s - don't hurt anything\n\n", version.DotVersion)

	w.printf("// --- Console variables ---\n\n")
	w.archive("variables", p.c.Variables)

	w.printf("// --- Key Bindings ---\n\n")
	w.printf("unbindall\n")
	w.archive("bindings", p.c.Bindings)
	w.archive("double bindings", p.c.DoubleBindings)

	w.printf("\n// --- Automap Bindings ---\n\n")
	w.printf("unambind all\n")
	w.archive("automap bindings", p.c.AutomapBindings)

	w.printf("\n// --- Aliases ---\n\n")
	w.archive("aliases", p.c.Aliases)

	if err := f.Close(); err != nil {
		log.WithError(err).WithField("path", path).Warn("Error closing config file")
	}

	log.WithFields(logger.Fields{
		"at":   "(Persister) Save",
		"path": path,
	}).Debug("Saved config")
	fmt.Fprintf(p.out, "Configuration saved to %s.\n", path)
	return path, true
}

// sectionWriter keeps writing after a failure; the config is best effort.
type sectionWriter struct {
	w io.Writer
}

func (s *sectionWriter) printf(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(s.w, format, args...); err != nil {
		log.WithError(err).Warn("Failed to write config")
	}
}

func (s *sectionWriter) archive(section string, a Archiver) {
	if a == nil {
		return
	}
	if err := a.Archive(s.w); err != nil {
		log.WithError(err).WithField("section", section).Warn("Failed to archive config section")
	}
}
