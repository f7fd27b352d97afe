// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/prosumer-ledger-client/models"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// overview is the combined view printed by the overview command.
type overview struct {
	Account models.Account         `json:"account"`
	History []models.HistoryRecord `json:"history"`
}

func (a *App) transactCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "transact [json-array]",
		Short: "Post an ordered batch of transactions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var transactions []models.Transaction
			if err := decodePayload(file, args, cmd.InOrStdin(), &transactions); err != nil {
				return err
			}

			resp, err := a.dataClient.Transact(cmd.Context(), transactions)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the JSON payload from file (\"-\" for stdin)")

	return cmd
}

func (a *App) historyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Print the transaction history of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.dataClient.GetHistory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(records)
		},
	}
}

func (a *App) snapshotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Print the transaction snapshot published by the metering devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			transactions, err := a.dataClient.GetSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(transactions)
		},
	}
}

func (a *App) overviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview <id>",
		Short: "Print an account together with its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				view overview
				g    errgroup.Group
			)

			g.Go(func() error {
				account, err := a.dataClient.GetAccount(cmd.Context(), args[0])
				view.Account = account
				return err
			})
			g.Go(func() error {
				records, err := a.dataClient.GetHistory(cmd.Context(), args[0])
				view.History = records
				return err
			})

			if err := g.Wait(); err != nil {
				return err
			}
			return a.printJSON(view)
		},
	}
}
