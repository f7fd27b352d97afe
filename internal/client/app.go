// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/prosumer-ledger-client/internal/adapter"
	"github.com/MKhiriev/prosumer-ledger-client/internal/config"
	"github.com/MKhiriev/prosumer-ledger-client/internal/logger"
	"github.com/MKhiriev/prosumer-ledger-client/models"
	"github.com/spf13/cobra"
)

// App is the ledger command-line application.
type App struct {
	flags      config.StructuredConfig
	newClient  DataClientFactory
	dataClient adapter.DataClient

	buildInfo models.AppBuildInfo

	out    io.Writer
	errOut io.Writer

	logger *logger.Logger
}

// Option customizes an [App] built by [NewApp].
type Option func(*App)

// WithOutput redirects command output and error messages.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// NewApp returns an App that builds its data client with newClient once the
// configuration has been loaded.
func NewApp(newClient DataClientFactory, buildInfo models.AppBuildInfo, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		newClient: newClient,
		buildInfo: buildInfo,
		out:       os.Stdout,
		errOut:    os.Stderr,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Execute implements [Client].
func (a *App) Execute(ctx context.Context, args []string) int {
	root := a.rootCommand()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		a.logger.Error().Err(err).Strs("args", args).Msg("command failed")
		fmt.Fprintln(a.errOut, err.Error())
		return 1
	}
	return 0
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "ledger",
		Short:         "Command-line client of the energy ledger backend",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	config.BindClientFlags(root.PersistentFlags(), &a.flags)

	root.AddCommand(
		a.accountCommand(),
		a.transactCommand(),
		a.historyCommand(),
		a.snapshotCommand(),
		a.overviewCommand(),
		a.versionCommand(),
	)

	return root
}

func (a *App) connect() error {
	if a.dataClient != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(&a.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataClient, err := a.newClient(cfg)
	if err != nil {
		return fmt.Errorf("create data client: %w", err)
	}

	a.logger.Debug().Str("base_url", cfg.Adapter.BaseURL).Msg("data client ready")
	a.dataClient = dataClient
	return nil
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// no backend is needed to print the build info
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(a.out, a.buildInfo.String())
			return err
		},
	}
}
