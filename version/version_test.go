package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func withBuild(t *testing.T, version, commit, branch, buildTime, goVersion string, bi *debug.BuildInfo) {
	t.Helper()
	origVersion, origCommit, origBranch, origBuildTime, origGoVersion, origRead :=
		Version, GitCommit, GitBranch, BuildTime, GoVersion, readBuildInfo
	t.Cleanup(func() {
		Version, GitCommit, GitBranch, BuildTime, GoVersion, readBuildInfo =
			origVersion, origCommit, origBranch, origBuildTime, origGoVersion, origRead
	})
	Version, GitCommit, GitBranch, BuildTime, GoVersion = version, commit, branch, buildTime, goVersion
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestGetDefaults(t *testing.T) {
	withBuild(t, "dev", "", "", "", "", nil)

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
	if !info.BuildDate.IsZero() {
		t.Error("expected zero build date without build time or VCS stamp")
	}
	if info.Short() != "dev" || info.String() != "dev" {
		t.Errorf("unexpected dev strings %q / %q", info.Short(), info.String())
	}
}

func TestGetLinkTimeValues(t *testing.T) {
	withBuild(t, "1.0.0", "abc1234", "main", "2024-01-15T10:30:00Z", "go1.26.0", nil)

	info := Get()
	if !info.IsRelease {
		t.Error("1.0.0 should be a release")
	}
	if info.BuildDate.Year() != 2024 {
		t.Errorf("expected build year 2024, got %d", info.BuildDate.Year())
	}
	if info.Short() != "1.0.0-abc1234" {
		t.Errorf("unexpected short version %q", info.Short())
	}
	full := info.String()
	if strings.Contains(full, "main") {
		t.Errorf("main branch should not appear, got %q", full)
	}
	if !strings.Contains(full, "built 2024-01-15T10:30:00Z") || !strings.HasSuffix(full, "go1.26.0") {
		t.Errorf("unexpected full version %q", full)
	}
}

func TestGetDirtyVersionIsNotRelease(t *testing.T) {
	withBuild(t, "1.0.0-dirty", "", "", "", "", nil)

	if Get().IsRelease {
		t.Error("dirty version should not be a release")
	}
}

func TestGetFallsBackToVCSStamp(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Main:      debug.Module{Path: "github.com/kbukum/gocmd"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2025-03-01T12:00:00Z"},
		},
	}
	withBuild(t, "1.1.0", "", "feature/x", "", "", bi)

	info := Get()
	if info.GitCommit != "0123456" {
		t.Errorf("expected short revision, got %q", info.GitCommit)
	}
	if !info.IsDirty {
		t.Error("expected dirty tree")
	}
	if info.Module != "github.com/kbukum/gocmd" || info.GoVersion != "go1.26.0" {
		t.Errorf("unexpected module info %+v", info)
	}
	if info.BuildDate.Year() != 2025 {
		t.Errorf("expected VCS time, got %v", info.BuildDate)
	}
	if info.Short() != "1.1.0-0123456-dirty" {
		t.Errorf("unexpected short version %q", info.Short())
	}
	if !strings.Contains(info.String(), "feature/x") {
		t.Errorf("expected feature branch in %q", info.String())
	}
}

func TestLinkTimeCommitWins(t *testing.T) {
	bi := &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffff"}}}
	withBuild(t, "1.0.0", "abc1234", "", "", "", bi)

	if got := Get().GitCommit; got != "abc1234" {
		t.Errorf("expected link-time commit, got %q", got)
	}
}
