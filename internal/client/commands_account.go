// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/prosumer-ledger-client/models"
	"github.com/spf13/cobra"
)

func (a *App) accountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Read, create, update or delete accounts",
	}

	cmd.AddCommand(
		a.accountGetCommand(),
		a.accountCreateCommand(),
		a.accountUpdateCommand(),
		a.accountDeleteCommand(),
	)
	return cmd
}

func (a *App) accountGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := a.dataClient.GetAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(account)
		},
	}
}

func (a *App) accountCreateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create [json]",
		Short: "Create an account from a JSON object",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var account models.Account
			if err := decodePayload(file, args, cmd.InOrStdin(), &account); err != nil {
				return err
			}

			resp, err := a.dataClient.AddAccount(cmd.Context(), account)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the JSON payload from file (\"-\" for stdin)")

	return cmd
}

func (a *App) accountUpdateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "update <id> [json]",
		Short: "Update an account with a partial JSON object",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update models.AccountUpdate
			if err := decodePayload(file, args[1:], cmd.InOrStdin(), &update); err != nil {
				return err
			}

			resp, err := a.dataClient.UpdateAccount(cmd.Context(), args[0], update)
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the JSON payload from file (\"-\" for stdin)")

	return cmd
}

func (a *App) accountDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.dataClient.DeleteAccount(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printJSON(resp)
		},
	}
}
