package tokens

import (
	"strings"
	"time"
	"unicode/utf8"
)

// TokenFunc produces the expansion of one code.
type TokenFunc func(s *Snapshot) string

// Expander expands filename templates. The zero value is not usable; use
// NewExpander.
type Expander struct {
	codes map[rune]TokenFunc
	now   func() time.Time
}

// Option configures an Expander.
type Option func(*Expander)

// WithClock replaces the wall clock used by %d and %t.
func WithClock(now func() time.Time) Option {
	return func(e *Expander) {
		e.now = now
	}
}

// NewExpander returns an Expander with the standard codes registered.
func NewExpander(opts ...Option) *Expander {
	e := &Expander{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	e.codes = map[rune]TokenFunc{
		'd': func(*Snapshot) string { return e.now().Format("20060102") },
		't': func(*Snapshot) string { return e.now().Format("150405") },
		'n': PlayerName,
		'g': ShortGameMode,
		'w': MapResource,
		'm': MapName,
		'r': BuildTag,
		'%': func(*Snapshot) string { return "%" },
	}
	return e
}

// Register adds or replaces the expansion for code.
func (e *Expander) Register(code rune, fn TokenFunc) {
	e.codes[code] = fn
}

// Expand scans template once, left to right, replacing every recognized
// %-code with its expansion. Unknown codes expand to nothing.
func (e *Expander) Expand(template string, s *Snapshot) string {
	if s == nil {
		s = &Snapshot{}
	}

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		// Bytes outside a %-code are copied as is, valid UTF-8 or not.
		// A trailing % has nothing to format.
		if template[i] != '%' || i == len(template)-1 {
			b.WriteByte(template[i])
			continue
		}
		code, size := utf8.DecodeRuneInString(template[i+1:])
		i += size
		fn, ok := e.codes[code]
		if !ok {
			log.WithField("code", string(code)).Debug("Dropping unknown filename token")
			continue
		}
		b.WriteString(fn(s))
	}
	return b.String()
}

var defaultExpander = NewExpander()

// Expand expands template with the standard codes and the wall clock.
func Expand(template string, s *Snapshot) string {
	return defaultExpander.Expand(template, s)
}

// PlayerName returns the local player's name.
func PlayerName(s *Snapshot) string {
	return s.PlayerName
}

// MapName returns the current map id.
func MapName(s *Snapshot) string {
	return s.MapName
}

// BuildTag returns the short build hash prefixed with "g".
func BuildTag(s *Snapshot) string {
	return "g" + s.BuildHash
}

// ShortGameMode abbreviates the game mode for use in filenames.
func ShortGameMode(s *Snapshot) string {
	switch {
	case s.GameType == GameCoop && s.Multiplayer:
		return "COOP"
	case s.GameType == GameCoop:
		return "SOLO"
	case s.GameType == GameDM && s.MaxPlayers <= 2:
		return "DUEL"
	case s.GameType == GameDM:
		return "DM"
	case s.GameType == GameTeamDM:
		return "TDM"
	case s.GameType == GameCTF:
		return "CTF"
	}
	return ""
}

// MapResource returns the basename of the resource file holding the current
// map. Position 0 is always the base resource: two files means an IWAD map
// from position 1, more means a PWAD map from position 2.
func MapResource(s *Snapshot) string {
	switch n := len(s.ResourceFiles); {
	case n == 2:
		return s.ResourceFiles[1].Basename()
	case n > 2:
		return s.ResourceFiles[2].Basename()
	}
	return ""
}
