package version

import (
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version == "" {
		t.Error("Version is empty")
	}
	if info.BuildDate.IsZero() {
		t.Error("BuildDate was not filled")
	}
	if info.BuildTime == "" {
		t.Error("BuildTime was not filled")
	}
}

func TestGetShortVersion(t *testing.T) {
	short := GetShortVersion()
	if short == "" {
		t.Fatal("GetShortVersion returned empty string")
	}
	if !strings.HasPrefix(short, Version) {
		t.Errorf("short version %q does not start with %q", short, Version)
	}
}

func TestDevBuildIsNotRelease(t *testing.T) {
	if Version == "dev" && GetVersionInfo().IsRelease {
		t.Error("dev build reported as release")
	}
}
