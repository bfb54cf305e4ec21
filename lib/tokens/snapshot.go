package tokens

import (
	"path/filepath"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// GameType is the rule set of the current game.
type GameType int

const (
	GameCoop GameType = iota
	GameDM
	GameTeamDM
	GameCTF
)

var gameTypeNames = map[GameType]string{
	GameCoop:   "coop",
	GameDM:     "dm",
	GameTeamDM: "teamdm",
	GameCTF:    "ctf",
}

func (g GameType) String() string {
	if name, ok := gameTypeNames[g]; ok {
		return name
	}
	return "unknown"
}

// ParseGameType maps a case-insensitive name to a GameType.
func ParseGameType(s string) (GameType, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for g, name := range gameTypeNames {
		if name == want {
			return g, nil
		}
	}
	return 0, oops.Errorf("unknown game type %q", s)
}

func (g *GameType) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseGameType(value.Value)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func (g GameType) MarshalYAML() (interface{}, error) {
	return g.String(), nil
}

// ResourceFile is a loaded content archive (IWAD, PWAD, ...).
type ResourceFile struct {
	Path string
}

// Basename returns the file name without directory or extension.
func (r ResourceFile) Basename() string {
	base := filepath.Base(r.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (r *ResourceFile) UnmarshalYAML(value *yaml.Node) error {
	return value.Decode(&r.Path)
}

func (r ResourceFile) MarshalYAML() (interface{}, error) {
	return r.Path, nil
}

// Snapshot is the part of the live game state that filename templates can
// refer to. It is never modified by this package.
type Snapshot struct {
	PlayerName    string         `yaml:"player_name"`
	GameType      GameType       `yaml:"game_type"`
	Multiplayer   bool           `yaml:"multiplayer"`
	MaxPlayers    int            `yaml:"max_players"`
	ResourceFiles []ResourceFile `yaml:"resource_files"`
	MapName       string         `yaml:"map"`
	BuildHash     string         `yaml:"build_hash"`
}

// LoadSnapshot reads a YAML encoded snapshot from path.
func LoadSnapshot(fs afero.Fs, path string) (*Snapshot, error) {
	log.WithField("path", path).Debug("Loading game state snapshot")

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, oops.Wrapf(err, "failed to read snapshot %s", path)
	}

	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, oops.Wrapf(err, "failed to parse snapshot %s", path)
	}
	return &s, nil
}
