package catalogcmd

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ivankudzin/heartlink/cmd/heartlink/shared"
	"github.com/ivankudzin/heartlink/internal/domain/model"
	"github.com/ivankudzin/heartlink/internal/repo/memory"
)

func TestCatalogPrintsDirectory(t *testing.T) {
	cmd := New(&shared.Context{}).Cmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var got catalog
	if err := yaml.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if got.CurrentUser.ID != memory.CurrentUserID {
		t.Fatalf("unexpected current user: %s", got.CurrentUser.ID)
	}
	if len(got.Candidates) != 5 {
		t.Fatalf("unexpected candidate count: %d", len(got.Candidates))
	}
}

func TestCatalogPrintsSingleUser(t *testing.T) {
	cmd := New(&shared.Context{}).Cmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--user", "user2"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	var user model.User
	if err := yaml.Unmarshal(out.Bytes(), &user); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if user.ID != "user2" || user.Name != "Taylor Reed" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestCatalogUnknownUser(t *testing.T) {
	cmd := New(&shared.Context{}).Cmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--user", "ghost"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for unknown user")
	}
}
