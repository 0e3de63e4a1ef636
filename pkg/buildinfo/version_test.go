package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })
	Version = "v9.9.9"

	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version v9.9.9\n") {
		t.Errorf("Template() = %q", got)
	}
	if got := String(); !strings.Contains(got, "commit: ") {
		t.Errorf("String() = %q", got)
	}
}
