package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stamp(t *testing.T, v, commit, date string) {
	t.Helper()
	prevV, prevC, prevD := Version, Commit, Date
	Version, Commit, Date = v, commit, date
	t.Cleanup(func() { Version, Commit, Date = prevV, prevC, prevD })
}

func TestGet_PrefersLdflags(t *testing.T) {
	// Given: every value stamped at link time
	stamp(t, "1.2.0", "3f2a9c1d5e6f", "2026-05-01T10:00:00Z")

	// When
	info := Get()

	// Then
	assert.Equal(t, "1.2.0", info.Version)
	assert.Equal(t, "3f2a9c1d5e6f", info.Commit)
	assert.Equal(t, "2026-05-01T10:00:00Z", info.Date)
	assert.False(t, info.Modified)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
}

func TestGet_NeverEmpty(t *testing.T) {
	stamp(t, "", "", "")

	info := Get()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Commit)
	assert.NotEmpty(t, info.Date)
}

func TestFillFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/Aman-CERP/amankeys", Version: "v1.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abcdef0123456789"},
			{Key: "vcs.time", Value: "2026-06-01T08:30:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name  string
		start Info
		want  Info
	}{
		{
			name:  "fills everything unstamped",
			start: Info{},
			want:  Info{Version: "1.3.0", Commit: "abcdef0123456789", Date: "2026-06-01T08:30:00Z", Modified: true},
		},
		{
			name:  "stamped commit wins over vcs data",
			start: Info{Version: "2.0.0", Commit: "1111111"},
			want:  Info{Version: "2.0.0", Commit: "1111111", Date: "2026-06-01T08:30:00Z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start
			fillFromBuildInfo(&got, bi)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFillFromBuildInfo_IgnoresDevelVersion(t *testing.T) {
	info := Info{}
	fillFromBuildInfo(&info, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	info.setDefaults()

	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "unknown", info.Commit)
	assert.Equal(t, "unknown", info.Date)
}

func TestInfo_ShortCommit(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"full hash", Info{Commit: "abcdef0123456789"}, "abcdef0"},
		{"already short", Info{Commit: "abc"}, "abc"},
		{"unknown kept", Info{Commit: "unknown"}, "unknown"},
		{"dirty tree", Info{Commit: "abcdef0123456789", Modified: true}, "abcdef0-dirty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.ShortCommit())
		})
	}
}

func TestInfo_String(t *testing.T) {
	info := Info{
		Version:   "1.2.0",
		Commit:    "3f2a9c1d5e6f",
		Date:      "2026-05-01T10:00:00Z",
		GoVersion: "go1.25.5",
		OS:        "linux",
		Arch:      "amd64",
	}

	assert.Equal(t,
		"amankeys 1.2.0 (commit: 3f2a9c1, built: 2026-05-01T10:00:00Z, go1.25.5 linux/amd64)",
		info.String())
}
