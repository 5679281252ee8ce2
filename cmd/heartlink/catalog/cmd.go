// Package catalogcmd implements `heartlink catalog`.
package catalogcmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ivankudzin/heartlink/cmd/heartlink/shared"
	"github.com/ivankudzin/heartlink/internal/domain/model"
	"github.com/ivankudzin/heartlink/internal/repo/memory"
	"github.com/ivankudzin/heartlink/internal/services/directory"
)

type Command struct {
	ctx    *shared.Context
	cmd    *cobra.Command
	userID string
}

func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "catalog",
		Short: "Print the mock user directory as YAML",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.cmd.Flags().StringVar(&c.userID, "user", "", "Print only the user with this id")
	return c
}

func (c *Command) Cmd() *cobra.Command { return c.cmd }

type catalog struct {
	CurrentUser model.User   `yaml:"current_user"`
	Candidates  []model.User `yaml:"candidates"`
}

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	now := time.Now().UTC()
	dir := directory.NewService(memory.CurrentUser(now), memory.Users(now))

	var out any = catalog{
		CurrentUser: dir.CurrentUser(),
		Candidates:  dir.Candidates(),
	}
	if c.userID != "" {
		user, ok := dir.GetUserByID(c.userID)
		if !ok {
			return fmt.Errorf("user %q not found", c.userID)
		}
		out = user
	}

	b, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}
