package tokens

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResourceFileBasename(t *testing.T) {
	assert.Equal(t, "doom2", ResourceFile{Path: "/usr/share/games/doom/doom2.wad"}.Basename())
	assert.Equal(t, "map", ResourceFile{Path: "map.wad"}.Basename())
	assert.Equal(t, "noext", ResourceFile{Path: "noext"}.Basename())
	assert.Equal(t, "pack.v2", ResourceFile{Path: "pack.v2.pk3"}.Basename())
}

func TestParseGameType(t *testing.T) {
	g, err := ParseGameType("TeamDM")
	require.NoError(t, err)
	assert.Equal(t, GameTeamDM, g)

	_, err = ParseGameType("horde")
	assert.Error(t, err)
}

func TestLoadSnapshot(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `
player_name: Player
game_type: ctf
multiplayer: true
max_players: 16
resource_files:
  - doom2.wad
  - odamex.wad
  - dwango5.wad
map: MAP01
build_hash: deadbee
`
	require.NoError(t, afero.WriteFile(fs, "/state.yaml", []byte(doc), 0o644))

	s, err := LoadSnapshot(fs, "/state.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Player", s.PlayerName)
	assert.Equal(t, GameCTF, s.GameType)
	assert.True(t, s.Multiplayer)
	assert.Equal(t, 16, s.MaxPlayers)
	require.Len(t, s.ResourceFiles, 3)
	assert.Equal(t, "dwango5", MapResource(s))
	assert.Equal(t, "CTF_dwango5_MAP01_gdeadbee", NewExpander().Expand("%g_%w_%m_%r", s))
}

func TestLoadSnapshotErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := LoadSnapshot(fs, "/missing.yaml")
	assert.Error(t, err)

	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("game_type: horde\n"), 0o644))
	_, err = LoadSnapshot(fs, "/bad.yaml")
	assert.Error(t, err)
}

func TestSnapshotYAMLRoundTrip(t *testing.T) {
	in := testSnapshot()
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "game_type: dm")

	var out Snapshot
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, *in, out)
}
