// Package version reports which amankeys build is running.
//
// Release builds stamp the values through ldflags:
//
//	-X github.com/Aman-CERP/amankeys/pkg/version.Version=1.2.0
//	-X github.com/Aman-CERP/amankeys/pkg/version.Commit=$(git rev-parse HEAD)
//	-X github.com/Aman-CERP/amankeys/pkg/version.Date=$(date -u +%FT%TZ)
//
// Anything left unstamped is filled from the module and VCS data the Go
// toolchain embeds (go install, go build inside a checkout).
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Stamped at link time. Empty means unknown.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)

const (
	devVersion    = "dev"
	unknown       = "unknown"
	develSentinel = "(devel)"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Get returns the build information, preferring ldflags values.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi)
	}
	info.setDefaults()
	return info
}

// fillFromBuildInfo completes the fields ldflags left empty.
func fillFromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != develSentinel {
		info.Version = strings.TrimPrefix(bi.Main.Version, "v")
	}

	stamped := info.Commit != ""
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if !stamped {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			if !stamped {
				info.Modified = s.Value == "true"
			}
		}
	}
}

func (i *Info) setDefaults() {
	if i.Version == "" {
		i.Version = devVersion
	}
	if i.Commit == "" {
		i.Commit = unknown
	}
	if i.Date == "" {
		i.Date = unknown
	}
}

// ShortCommit is the first 7 characters of the commit, with a "-dirty"
// suffix for builds from a modified tree.
func (i Info) ShortCommit() string {
	c := i.Commit
	if len(c) > 7 && c != unknown {
		c = c[:7]
	}
	if i.Modified {
		c += "-dirty"
	}
	return c
}

// String renders a one-line summary, e.g.
// "amankeys 1.2.0 (commit: 3f2a9c1, built: 2026-05-01T10:00:00Z, go1.25.5 linux/amd64)".
func (i Info) String() string {
	return fmt.Sprintf("amankeys %s (commit: %s, built: %s, %s %s/%s)",
		i.Version, i.ShortCommit(), i.Date, i.GoVersion, i.OS, i.Arch)
}
