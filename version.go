// Package kodeline is the prompt line editor of a terminal assistant. The
// editing engine lives in the cursor, keys, gate and session packages; the
// Bubble Tea component is in prompt.
package kodeline

import (
	_ "embed"
	"regexp"
	"runtime/debug"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release version in SemVer format (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// BuildVersion is Version with the VCS revision appended as SemVer build
// metadata when the binary carries it, e.g. "0.1.0+3f2a9c1" or
// "0.1.0+3f2a9c1.dirty".
func BuildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version()
	}
	return withRevision(Version(), info.Settings)
}

func withRevision(v string, settings []debug.BuildSetting) string {
	var rev string
	var dirty bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" || strings.Contains(v, "+") {
		return v
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	v += "+" + rev
	if dirty {
		v += ".dirty"
	}
	return v
}
