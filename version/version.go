package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time using -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	GitBranch = ""
	BuildTime = ""
	GoVersion = ""
)

var readBuildInfo = debug.ReadBuildInfo

// Info is the build information of the running binary.
type Info struct {
	Version   string    `json:"version" yaml:"version" toml:"version"`
	GitCommit string    `json:"git_commit,omitempty" yaml:"git_commit,omitempty" toml:"git_commit,omitempty"`
	GitBranch string    `json:"git_branch,omitempty" yaml:"git_branch,omitempty" toml:"git_branch,omitempty"`
	GoVersion string    `json:"go_version" yaml:"go_version" toml:"go_version"`
	Module    string    `json:"module,omitempty" yaml:"module,omitempty" toml:"module,omitempty"`
	BuildDate time.Time `json:"build_date" yaml:"build_date" toml:"build_date"`
	IsRelease bool      `json:"is_release" yaml:"is_release" toml:"is_release"`
	IsDirty   bool      `json:"is_dirty" yaml:"is_dirty" toml:"is_dirty"`
}

// Get returns the build information, preferring link-time values over the
// embedded VCS stamp.
func Get() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
		GitBranch: GitBranch,
		GoVersion: GoVersion,
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	if bi, ok := readBuildInfo(); ok {
		info.Module = bi.Main.Path
		if info.GoVersion == "" {
			info.GoVersion = bi.GoVersion
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = shortCommit(s.Value)
				}
			case "vcs.modified":
				info.IsDirty = s.Value == "true"
			case "vcs.time":
				if info.BuildDate.IsZero() {
					if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
						info.BuildDate = t
					}
				}
			}
		}
	}
	return info
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Short returns version-commit, with a -dirty suffix for modified trees.
func (i *Info) Short() string {
	if i.GitCommit == "" {
		return i.Version
	}
	if i.IsDirty {
		return fmt.Sprintf("%s-%s-dirty", i.Version, i.GitCommit)
	}
	return fmt.Sprintf("%s-%s", i.Version, i.GitCommit)
}

// String returns the detailed one-line form printed by `gocmd version`.
func (i *Info) String() string {
	parts := []string{i.Version}
	if i.GitCommit != "" {
		parts = append(parts, i.GitCommit)
	}
	if i.GitBranch != "" && i.GitBranch != "main" && i.GitBranch != "master" {
		parts = append(parts, i.GitBranch)
	}
	if i.IsDirty {
		parts = append(parts, "dirty")
	}
	s := strings.Join(parts, "-")
	if !i.BuildDate.IsZero() {
		s += " (built " + i.BuildDate.UTC().Format(time.RFC3339) + ")"
	}
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	return s
}
