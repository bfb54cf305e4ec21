// Package version identifies the client build that writes a config file.
package version

// DotVersion is the human readable release number.
const DotVersion = "0.9.5"

// ConfigVersion is stored in the configver variable of every saved config so
// that newer builds can compensate for settings written by older ones.
const ConfigVersion = "95"

// GitShortHash is overridden at link time:
//
//	go build -ldflags "-X github.com/odamex/odacfg/lib/version.GitShortHash=$(git rev-parse --short HEAD)"
var GitShortHash = "0000000"
