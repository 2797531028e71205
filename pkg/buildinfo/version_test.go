package buildinfo

import (
	"runtime/debug"
	"strings"
	"testing"
)

func TestFillFromBuildInfo(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "dev", "none", "unknown"
	fill(&debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	if Version != "v0.3.0" || Commit != "abc123" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("got %s %s %s, want v0.3.0 abc123 2026-01-02T03:04:05Z", Version, Commit, Date)
	}
}

func TestFillKeepsLinkerValues(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })

	Version, Commit, Date = "v1.0.0", "deadbeef", "2025-12-20"
	fill(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
	})

	if Version != "v1.0.0" || Commit != "deadbeef" {
		t.Errorf("got %s %s, want linker values kept", Version, Commit)
	}
}

func TestTemplateAndUserAgent(t *testing.T) {
	if !strings.Contains(Template(), Version) {
		t.Errorf("Template() = %q, should contain %q", Template(), Version)
	}
	if got, want := UserAgent(), "sparkbar/"+Version; got != want {
		t.Errorf("UserAgent() = %q, want %q", got, want)
	}
}
