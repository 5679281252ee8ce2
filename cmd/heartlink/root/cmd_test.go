package rootcmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootListsSubcommands(t *testing.T) {
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, name := range []string{"serve", "catalog"} {
		if !strings.Contains(out.String(), name) {
			t.Fatalf("help output missing %q:\n%s", name, out.String())
		}
	}
}

func TestRootRejectsUnknownConfigFile(t *testing.T) {
	cmd := New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"serve", "--config", t.TempDir()})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error when the config path is a directory")
	}
}
