package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/manuver-backend/pkg/ctxutil"
)

func reportCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "report <record-id>",
		Short: "Print the WhatsApp report of a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid record id: %w", err)
			}

			b, scope, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer b.close()

			text, err := b.service.Report(ctxutil.WithScope(cmd.Context(), scope), id)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
