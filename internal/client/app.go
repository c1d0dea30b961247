package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/eat-around/internal/adapter"
	"github.com/MKhiriev/eat-around/internal/logger"
)

type App struct {
	api    adapter.APIClient
	out    io.Writer
	logger *logger.Logger
}

func NewApp(api adapter.APIClient, out io.Writer, logger *logger.Logger) *App {
	return &App{api: api, out: out, logger: logger}
}

// Run builds a fresh command tree and executes args against it.
func (a *App) Run(ctx context.Context, args []string) error {
	a.logger.Debug().Strs("args", args).Msg("running command")

	root := a.Command()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.out)

	return root.ExecuteContext(ctx)
}

// Command returns the root command of the CLI.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:           "eat-around",
		Short:         "Command-line client for the eat-around API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.healthCmd(),
		a.registerCmd(),
		a.loginCmd(),
		a.meCmd(),
		a.foodsCmd(),
		a.recoveryCmd(),
		a.ordersCmd(),
	)

	return root
}

func (a *App) print(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}
