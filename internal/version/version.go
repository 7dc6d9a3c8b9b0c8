package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const (
	develVersion = "devel"
	unknown      = "unknown"
	shortCommit  = 7
)

var (
	// Version is the semantic version, set via -ldflags "-X .../version.Version=1.2.3".
	Version = develVersion
	// Commit is the short git SHA, set via -ldflags.
	Commit = unknown
	// BuildTime is the UTC build timestamp, set via -ldflags.
	BuildTime = unknown
)

// Metadata describes the running binary.
type Metadata struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
}

// Current returns ldflags values, completed from the module build info
// for plain `go install` builds where ldflags were not set.
func Current() Metadata {
	meta := Metadata{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		meta = fillFromBuildInfo(meta, info)
	}

	return meta
}

// fillFromBuildInfo only replaces fields still holding their defaults.
func fillFromBuildInfo(meta Metadata, info *debug.BuildInfo) Metadata {
	if meta.Version == develVersion {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			meta.Version = strings.TrimPrefix(v, "v")
		}
	}

	var revision, modified string

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		case "vcs.time":
			if meta.BuildTime == unknown && setting.Value != "" {
				meta.BuildTime = setting.Value
			}
		}
	}

	if meta.Commit == unknown && revision != "" {
		meta.Commit = revision[:min(len(revision), shortCommit)]
		if modified == "true" {
			meta.Commit += "-dirty"
		}
	}

	return meta
}

// Short returns only the version, used by `worldclock --version`.
func Short() string {
	return Current().Version
}

// Full returns the version with commit, build time and Go toolchain.
func Full() string {
	meta := Current()

	return fmt.Sprintf("worldclock %s (commit %s, built %s, %s)", meta.Version, meta.Commit, meta.BuildTime, meta.GoVersion)
}
