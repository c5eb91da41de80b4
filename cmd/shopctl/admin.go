package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dheerghayush/naturals/internal/service"
	"github.com/dheerghayush/naturals/pkg/hash"
)

func createAdminCmd() *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account unless one with the email exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			svc := &service.AuthService{Accounts: s.store, Hasher: hash.New(s.cfg.BcryptCost), Secret: s.cfg.JWTSecret}
			created, err := svc.EnsureAdmin(s.ctx, name, email, password)
			if err != nil {
				if msg := service.Message(err); msg != "" {
					return fmt.Errorf("create admin: %s", msg)
				}
				return fmt.Errorf("create admin: %w", err)
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "admin %s already exists\n", email)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s created\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (defaults to Admin)")
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
