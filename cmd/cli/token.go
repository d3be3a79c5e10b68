package cli

import (
	"fmt"
	"time"

	"recipe-service/pkg/jwt"

	"github.com/spf13/cobra"
)

// NewTokenCommand issues a bearer token for the write routes.
func NewTokenCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for POST, PUT and DELETE routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := jwt.NewJWTService().GenerateToken(subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", jwt.DefaultTokenTTL, "token lifetime")

	return cmd
}
