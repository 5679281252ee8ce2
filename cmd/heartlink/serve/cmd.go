// Package servecmd implements `heartlink serve`.
package servecmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ivankudzin/heartlink/cmd/heartlink/shared"
	"github.com/ivankudzin/heartlink/internal/app/apiapp"
	"github.com/ivankudzin/heartlink/internal/app/heartlink"
	"github.com/ivankudzin/heartlink/internal/infra/logger"
)

const shutdownTimeout = 10 * time.Second

type Command struct {
	ctx  *shared.Context
	cmd  *cobra.Command
	addr string
}

func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	c.cmd.Flags().StringVar(&c.addr, "addr", "", "Listen address (overrides http.addr)")
	return c
}

func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	cfg, err := c.ctx.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.addr != "" {
		cfg.HTTP.Addr = c.addr
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	app, err := apiapp.New(cfg, log, heartlink.Options{})
	if err != nil {
		return fmt.Errorf("create api app: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run()
	}()

	select {
	case <-cmd.Context().Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown api app", zap.Error(err))
			return err
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("api server failed", zap.Error(err))
			return err
		}
		return nil
	}
}
