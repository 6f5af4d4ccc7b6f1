package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/manuver-backend/internal/auth"
)

func tokenCmd(flags *scopeFlags) *cobra.Command {
	var (
		secret      string
		issuer      string
		ttl         time.Duration
		masterGardu string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				return fmt.Errorf("--secret or AUTH_JWT_SECRET is required")
			}

			scope, err := flags.scope()
			if err != nil {
				return err
			}

			token, err := auth.NewJWTManager(secret, issuer, ttl, masterGardu).GenerateAccessToken(scope)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", os.Getenv("AUTH_JWT_SECRET"), "signing secret")
	cmd.Flags().StringVar(&issuer, "issuer", "manuver", "token issuer")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	cmd.Flags().StringVar(&masterGardu, "master-gardu", "MASTER", "substation code of the master account")

	return cmd
}
