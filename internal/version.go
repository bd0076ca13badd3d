package internal

import (
	"runtime/debug"
	"strings"
)

// Version information, overridden with -ldflags "-X ..." at release time
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildInfo describes the binary that is running
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// vcsSettings returns the VCS settings embedded by the go tool, if any
func vcsSettings() map[string]string {
	settings := map[string]string{}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}
	for _, s := range info.Settings {
		if strings.HasPrefix(s.Key, "vcs.") && s.Value != "" {
			settings[s.Key] = s.Value
		}
	}
	return settings
}

func shortRevision(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// GetVersion returns the release version, the VCS tag, or a dev revision
func GetVersion() string {
	if Version != "dev" {
		return Version
	}

	vcs := vcsSettings()
	if tag := strings.TrimPrefix(vcs["vcs.tag"], "v"); tag != "" {
		return tag
	}
	if rev := vcs["vcs.revision"]; rev != "" {
		return "dev-" + shortRevision(rev)
	}
	return "dev"
}

// GetBuildInfo returns version, commit and build time, filling gaps from
// the embedded VCS settings.
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   GetVersion(),
		Commit:    Commit,
		BuildTime: BuildTime,
	}

	vcs := vcsSettings()
	if info.Commit == "unknown" && vcs["vcs.revision"] != "" {
		info.Commit = shortRevision(vcs["vcs.revision"])
	}
	if info.BuildTime == "unknown" && vcs["vcs.time"] != "" {
		info.BuildTime = vcs["vcs.time"]
	}
	return info
}
