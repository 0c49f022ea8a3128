package conf

import (
	"runtime/debug"
)

const (
	Name    = "cwd-cli"
	Version = "0.2.0"
)

// GetVersion appends the short vcs revision, marked dirty when the tree
// had local changes at build time.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	var revision, modified string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}
	if revision == "" {
		return Version
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if modified == "true" {
		revision += "-dirty"
	}
	return Version + "+" + revision
}
