package bind

import (
	"bytes"
	"testing"

	"github.com/odamex/odacfg/lib/console"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableBind(t *testing.T) {
	tbl := NewTable("bind")
	tbl.Bind("W", "+forward")

	cmd, ok := tbl.Binding("w")
	require.True(t, ok)
	assert.Equal(t, "+forward", cmd)

	tbl.Bind("w", "")
	_, ok = tbl.Binding("w")
	assert.False(t, ok, "binding an empty command unbinds")

	tbl.Bind("a", "+moveleft")
	tbl.Bind("d", "+moveright")
	tbl.Unbind("A")
	assert.Equal(t, 1, tbl.Len())

	tbl.UnbindAll()
	assert.Equal(t, 0, tbl.Len())
}

func TestTableArchive(t *testing.T) {
	tbl := NewTable("ambind")
	tbl.Bind("g", "am_togglegrid")
	tbl.Bind("f", "am_togglefollow")
	tbl.Bind("\"", `say "quote"`)

	var buf bytes.Buffer
	require.NoError(t, tbl.Archive(&buf))
	want := "ambind \"\\\"\" \"say \\\"quote\\\"\"\n" +
		"ambind \"f\" \"am_togglefollow\"\n" +
		"ambind \"g\" \"am_togglegrid\"\n"
	assert.Equal(t, want, buf.String())
}

func TestBindDefaults(t *testing.T) {
	s := NewSet()
	s.Bindings.Bind("w", "say custom")
	s.BindDefaults()

	cmd, ok := s.Bindings.Binding("w")
	require.True(t, ok)
	assert.Equal(t, "+forward", cmd, "defaults replace existing bindings of the same key")
	assert.Equal(t, len(defaultBindings), s.Bindings.Len())
	assert.Equal(t, len(defaultAutomapBindings), s.AutomapBindings.Len())
	assert.Equal(t, 0, s.DoubleBindings.Len())
}

func newTestConsole(s *Set) (*console.Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	con := console.New(afero.NewMemMapFs(), out)
	s.RegisterCommands(con)
	return con, out
}

func TestCommands(t *testing.T) {
	s := NewSet()
	con, out := newTestConsole(s)

	require.NoError(t, con.Run(`bind w "+forward"; doublebind mouse1 "+use"; ambind f am_togglefollow`))
	cmd, _ := s.Bindings.Binding("w")
	assert.Equal(t, "+forward", cmd)
	cmd, _ = s.DoubleBindings.Binding("mouse1")
	assert.Equal(t, "+use", cmd)
	cmd, _ = s.AutomapBindings.Binding("f")
	assert.Equal(t, "am_togglefollow", cmd)

	require.NoError(t, con.Run("bind w; bind q"))
	assert.Equal(t, "w = \"+forward\"\nq is unbound\n", out.String())

	require.NoError(t, con.Run("bind e say hello world"))
	cmd, _ = s.Bindings.Binding("e")
	assert.Equal(t, "say hello world", cmd)
}

func TestUnbindCommands(t *testing.T) {
	s := NewSet()
	s.BindDefaults()
	s.DoubleBindings.Bind("mouse1", "+use")
	con, _ := newTestConsole(s)

	require.NoError(t, con.Run("unbind w; unambind g"))
	_, ok := s.Bindings.Binding("w")
	assert.False(t, ok)
	_, ok = s.AutomapBindings.Binding("g")
	assert.False(t, ok)

	require.NoError(t, con.Run("unbindall"))
	assert.Equal(t, 0, s.Bindings.Len())
	assert.Equal(t, 0, s.DoubleBindings.Len())
	assert.NotZero(t, s.AutomapBindings.Len(), "unbindall leaves the automap table alone")

	require.NoError(t, con.Run("unambind all"))
	assert.Equal(t, 0, s.AutomapBindings.Len())
}

func TestArchiveRoundTripThroughConsole(t *testing.T) {
	s := NewSet()
	s.BindDefaults()
	s.DoubleBindings.Bind("mouse1", "+use")

	var buf bytes.Buffer
	buf.WriteString("unbindall\n")
	require.NoError(t, s.Bindings.Archive(&buf))
	require.NoError(t, s.DoubleBindings.Archive(&buf))
	buf.WriteString("unambind all\n")
	require.NoError(t, s.AutomapBindings.Archive(&buf))

	restored := NewSet()
	restored.BindDefaults()
	restored.Bindings.Bind("extra", "should vanish")
	con, _ := newTestConsole(restored)
	require.NoError(t, con.Run(buf.String()))

	assert.Equal(t, s.Bindings.keys, restored.Bindings.keys)
	assert.Equal(t, s.DoubleBindings.keys, restored.DoubleBindings.keys)
	assert.Equal(t, s.AutomapBindings.keys, restored.AutomapBindings.keys)
}
