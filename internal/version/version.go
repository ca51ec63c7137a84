// Package version provides build information for the twothumbs CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/twothumbs/twothumbs/internal/about"
)

// Build-time variables set via ldflags.
var (
	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

const unknown = "unknown"

// Info contains version information.
type Info struct {
	// Version is the package version from the metadata source.
	Version string `json:"version" yaml:"version" toml:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit" yaml:"gitCommit" toml:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate" yaml:"buildDate" toml:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion" yaml:"goVersion" toml:"goVersion"`

	// Platform is GOOS/GOARCH.
	Platform string `json:"platform" yaml:"platform" toml:"platform"`
}

// Get returns the current version information. Commit and date fall back to
// the VCS stamps embedded by the Go toolchain when ldflags did not set them.
func Get() Info {
	commit, date := resolveBuild(GitCommit, BuildDate, debug.ReadBuildInfo)

	return Info{
		Version:   about.Version,
		GitCommit: commit,
		BuildDate: date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func resolveBuild(commit, date string, read func() (*debug.BuildInfo, bool)) (string, string) {
	if commit != unknown && date != unknown {
		return commit, date
	}

	bi, ok := read()
	if !ok || bi == nil {
		return commit, date
	}

	var revision, vcsTime string
	var modified bool
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			vcsTime = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if commit == unknown && revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		commit = revision
		if modified {
			commit += "-dirty"
		}
	}
	if date == unknown && vcsTime != "" {
		date = vcsTime
	}

	return commit, date
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("%s:\n  Version:  %s\n  Commit:   %s\n  Built:    %s\n  Go:       %s\n  Platform: %s",
		about.Title, i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}

// Short returns a single machine-parseable line.
func (i Info) Short() string {
	return fmt.Sprintf("%s %s (%s, %s) %s", about.Title, i.Version, i.GitCommit, i.BuildDate, i.Platform)
}
