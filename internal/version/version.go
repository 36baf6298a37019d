package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set at build time via ldflags
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version string (commit-hash based, no semver).
// Without ldflags the commit and time come from the VCS stamp `go build`
// embeds, when there is one.
func String() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = fromBuildInfo(info, commit, built)
	}
	return fmt.Sprintf("laramig dev (commit: %s, built: %s, %s)", shortCommit(commit), built, runtime.Version())
}

func fromBuildInfo(info *debug.BuildInfo, commit, built string) (string, string) {
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && commit == "unknown":
			commit = s.Value
		case s.Key == "vcs.time" && built == "unknown":
			built = s.Value
		}
	}
	return commit, built
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
