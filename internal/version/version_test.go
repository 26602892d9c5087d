package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	defer func(name, ver, commit string) {
		Name, Version, Commit = name, ver, commit
	}(Name, Version, Commit)

	Name, Version, Commit = "opensonic-go", "1.0.0", ""
	if got := String(); got != "opensonic-go v1.0.0" {
		t.Errorf("String() = %q", got)
	}

	Commit = "abcdef1234567890"
	if got := String(); got != "opensonic-go v1.0.0 (abcdef1)" {
		t.Errorf("String() with commit = %q", got)
	}

	Commit = "ab12"
	if got := String(); !strings.HasSuffix(got, "(ab12)") {
		t.Errorf("short commit not passed through: %q", got)
	}
}

func TestNameNotEmpty(t *testing.T) {
	if Name == "" {
		t.Error("Name must not be empty, it is the default client name")
	}
}
