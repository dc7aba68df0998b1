package main

import (
	"errors"
	"fmt"
	"time"

	jwtpkg "github.com/piresc/duespay/internal/pkg/jwt"
	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var adminID, associationID int64

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an admin token for one association",
		RunE: func(cmd *cobra.Command, args []string) error {
			if associationID <= 0 {
				return errors.New("--association is required")
			}

			configs, appLogger, err := loadConfig()
			if err != nil {
				return err
			}
			defer appLogger.Close()

			if configs.JWT.Secret == "" {
				return errors.New("JWT_SECRET is not set")
			}

			token, expiresAt, err := jwtpkg.GenerateToken(adminID, associationID, configs)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}

			fmt.Println(token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", time.Unix(expiresAt, 0).UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().Int64Var(&adminID, "admin", 1, "Admin user ID")
	cmd.Flags().Int64Var(&associationID, "association", 0, "Association the token is scoped to")
	return cmd
}
