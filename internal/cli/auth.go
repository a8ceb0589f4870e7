package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSignupCmd() *cobra.Command {
	var handle, pass string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new handle",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"userHandle": handle,
				"password":   pass,
			}
			var result MessageResult

			if err := client.Post("/signup", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&handle, "handle", "", "User handle (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("handle")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newLoginCmd() *cobra.Command {
	var handle, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login and store the bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"userHandle": handle,
				"password":   pass,
			}
			var result LoginResult

			if err := client.Post("/login", req, &result); err != nil {
				return err
			}

			// Save token
			if err := cfg.SaveToken(result.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&handle, "handle", "", "User handle (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("handle")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}
