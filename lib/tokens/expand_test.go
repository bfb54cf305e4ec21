package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	return time.Date(2020, time.March, 7, 9, 4, 5, 0, time.Local)
}

func testSnapshot() *Snapshot {
	return &Snapshot{
		PlayerName:  "Player",
		GameType:    GameDM,
		Multiplayer: true,
		MaxPlayers:  8,
		ResourceFiles: []ResourceFile{
			{Path: "/usr/share/doom/doom2.wad"},
			{Path: "odamex.wad"},
		},
		MapName:   "MAP01",
		BuildHash: "abc1234",
	}
}

func TestExpandWithoutTokensIsIdentity(t *testing.T) {
	e := NewExpander(WithClock(fixedClock))
	for _, s := range []string{"", "a", "screenshot", "dir/file.name", "ünïcode", "shot_\xff\xfe"} {
		assert.Equal(t, s, e.Expand(s, testSnapshot()))
	}
}

func TestExpandPercentRules(t *testing.T) {
	e := NewExpander(WithClock(fixedClock))
	s := testSnapshot()

	assert.Equal(t, "%", e.Expand("%%", s))
	assert.Equal(t, "abc%", e.Expand("abc%", s), "trailing percent is literal")
	assert.Equal(t, "%", e.Expand("%", s))
	assert.Equal(t, "", e.Expand("%z", s), "unknown code is dropped")
	assert.Equal(t, "ab", e.Expand("a%zb", s))
	assert.Equal(t, "%d", e.Expand("%%d", s))
	assert.Equal(t, "x", e.Expand("%éx", s), "multi-byte code is dropped whole")
	assert.Equal(t, "a\xffb", e.Expand("a\xff%zb", s))
	assert.Equal(t, "ab", e.Expand("a%\xffb", s), "invalid byte after percent is dropped")
}

func TestExpandCodes(t *testing.T) {
	e := NewExpander(WithClock(fixedClock))
	s := testSnapshot()

	tests := []struct {
		template string
		want     string
	}{
		{"%d", "20200307"},
		{"%t", "090405"},
		{"%n", "Player"},
		{"%g", "DM"},
		{"%w", "odamex"},
		{"%m", "MAP01"},
		{"%r", "gabc1234"},
		{"Odamex_%g_%d_%t", "Odamex_DM_20200307_090405"},
		{"%n-%m-%r.lmp", "Player-MAP01-gabc1234.lmp"},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Expand(tt.template, s))
		})
	}
}

func TestExpandNilSnapshot(t *testing.T) {
	e := NewExpander(WithClock(fixedClock))
	assert.Equal(t, "SOLO_g_", e.Expand("%g_%r_%w%m%n", nil))
}

func TestExpandRegisteredCode(t *testing.T) {
	e := NewExpander(WithClock(fixedClock))
	e.Register('p', func(s *Snapshot) string { return "port" })
	e.Register('n', func(s *Snapshot) string { return "override" })

	assert.Equal(t, "port_override", e.Expand("%p_%n", testSnapshot()))
}

func TestPackageExpand(t *testing.T) {
	assert.Equal(t, "Player on MAP01 100%", Expand("%n on %m 100%%", testSnapshot()))
}

func TestShortGameMode(t *testing.T) {
	tests := []struct {
		name string
		s    Snapshot
		want string
	}{
		{"solo coop", Snapshot{GameType: GameCoop, Multiplayer: false}, "SOLO"},
		{"netgame coop", Snapshot{GameType: GameCoop, Multiplayer: true}, "COOP"},
		{"duel", Snapshot{GameType: GameDM, MaxPlayers: 2}, "DUEL"},
		{"one player dm", Snapshot{GameType: GameDM, MaxPlayers: 1}, "DUEL"},
		{"deathmatch", Snapshot{GameType: GameDM, MaxPlayers: 8}, "DM"},
		{"team deathmatch", Snapshot{GameType: GameTeamDM, MaxPlayers: 2}, "TDM"},
		{"capture the flag", Snapshot{GameType: GameCTF}, "CTF"},
		{"unknown", Snapshot{GameType: GameType(42)}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortGameMode(&tt.s))
		})
	}
}

func TestMapResource(t *testing.T) {
	files := func(paths ...string) *Snapshot {
		s := &Snapshot{}
		for _, p := range paths {
			s.ResourceFiles = append(s.ResourceFiles, ResourceFile{Path: p})
		}
		return s
	}

	assert.Equal(t, "", MapResource(files()))
	assert.Equal(t, "", MapResource(files("base.wad")))
	assert.Equal(t, "map", MapResource(files("base.wad", "map.wad")))
	assert.Equal(t, "extra", MapResource(files("base.wad", "map.wad", "extra.wad")))
	assert.Equal(t, "extra", MapResource(files("base.wad", "map.wad", "extra.wad", "more.wad")))
}
