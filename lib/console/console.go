package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"github.com/spf13/afero"
)

var log = logger.GetGoI2PLogger()

// MaxDepth bounds nested execution through exec and aliases.
const MaxDepth = 64

// ErrRecursionLimit is returned when scripts or aliases nest deeper than MaxDepth.
var ErrRecursionLimit = errors.New("console: command nesting too deep")

// Command handles one command. argv[0] is the command name as typed.
type Command func(argv []string) error

// Resolver is offered commands that no registered Command claims. It reports
// whether it handled argv.
type Resolver func(argv []string) (bool, error)

// Registrar is the part of a Console that other packages install their
// commands into.
type Registrar interface {
	Register(name string, cmd Command)
	AddResolver(r Resolver)
	Printf(format string, args ...interface{})
	Run(line string) error
}

// Console dispatches command lines.
type Console struct {
	fs        afero.Fs
	out       io.Writer
	commands  map[string]Command
	resolvers []Resolver
	depth     int
}

// New returns a Console reading scripts from fs and printing to out. The exec
// and echo commands are preinstalled.
func New(fs afero.Fs, out io.Writer) *Console {
	c := &Console{
		fs:       fs,
		out:      out,
		commands: make(map[string]Command),
	}
	c.Register("exec", c.execCommand)
	c.Register("echo", func(argv []string) error {
		c.Printf("%s\n", strings.Join(argv[1:], " "))
		return nil
	})
	return c
}

// Register installs cmd under name, replacing any previous command.
// Names are case-insensitive.
func (c *Console) Register(name string, cmd Command) {
	c.commands[strings.ToLower(name)] = cmd
}

// AddResolver appends r to the fallback chain.
func (c *Console) AddResolver(r Resolver) {
	c.resolvers = append(c.resolvers, r)
}

// Out is the writer console output goes to.
func (c *Console) Out() io.Writer {
	return c.out
}

func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Run parses line and executes every command in it. Execution continues past
// failing commands; the errors are joined.
func (c *Console) Run(line string) error {
	if c.depth >= MaxDepth {
		return ErrRecursionLimit
	}
	c.depth++
	defer func() { c.depth-- }()

	var errs []error
	for _, argv := range Parse(line) {
		if err := c.Execute(argv); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Execute runs a single parsed command.
func (c *Console) Execute(argv []string) error {
	if len(argv) == 0 {
		return nil
	}
	if cmd, ok := c.commands[strings.ToLower(argv[0])]; ok {
		return cmd(argv)
	}
	for _, r := range c.resolvers {
		handled, err := r(argv)
		if handled {
			return err
		}
	}
	log.WithField("command", argv[0]).Debug("Unknown console command")
	c.Printf("Unknown command %s\n", QuoteString(argv[0]))
	return nil
}

// ExecFile runs the script at path.
func (c *Console) ExecFile(path string) error {
	log.WithFields(logger.Fields{
		"at":   "(Console) ExecFile",
		"path": path,
	}).Debug("Executing command script")

	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return oops.Wrapf(err, "could not open %s", path)
	}
	if err := c.Run(string(data)); err != nil {
		return oops.Wrapf(err, "error executing %s", path)
	}
	return nil
}

func (c *Console) execCommand(argv []string) error {
	if len(argv) < 2 {
		c.Printf("Usage: exec <filename>\n")
		return nil
	}
	return c.ExecFile(argv[1])
}
