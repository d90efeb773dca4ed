package settings

import (
	"testing"
)

func TestNewCliParams(t *testing.T) {
	got := NewCliParams()
	if got.MinLogLevel != 0 || got.IsQuiet || got.NoColor || len(got.Commands) != 0 {
		t.Errorf("NewCliParams() = %+v, want zero-valued interactive defaults", got)
	}
}

func TestVersionInformationDefaults(t *testing.T) {
	if VersionInformation.BuildVersion == "" || VersionInformation.Commit == "" {
		t.Errorf("VersionInformation should carry placeholders, got %+v", VersionInformation)
	}
}
