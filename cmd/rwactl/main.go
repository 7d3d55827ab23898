// Package main provides rwactl, the operator tool for the RWA ledger.
// It issues bearer tokens and checks bootstrap plans offline.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"rwa-ledger/config"
	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/service"

	"github.com/spf13/cobra"
)

const appName = "rwactl"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Operator tool for the RWA ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")

	cmd.AddCommand(tokenCmd(&configPath))
	cmd.AddCommand(bootstrapCmd())

	return cmd
}

func tokenCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage API bearer tokens",
	}

	var (
		account string
		ttl     time.Duration
	)
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Issue a bearer token for a ledger account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return issueToken(cmd.OutOrStdout(), cfg.JWT, account, ttl)
		},
	}
	issue.Flags().StringVar(&account, "account", "", "Account the token authenticates")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to jwt.expiry)")
	_ = issue.MarkFlagRequired("account")

	cmd.AddCommand(issue)
	return cmd
}

func issueToken(w io.Writer, cfg config.JWTConfig, rawAccount string, ttl time.Duration) error {
	if cfg.Secret == "" {
		return fmt.Errorf("jwt.secret is not configured")
	}
	acct, err := domain.ParseAccount(rawAccount)
	if err != nil {
		return fmt.Errorf("account: %w", err)
	}
	if ttl <= 0 {
		ttl = cfg.Expiry
	}

	token, expiresAt, err := service.NewJWTTokenService(cfg.Secret, ttl, cfg.Issuer).Generate(acct)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n# account=%s expires=%s\n", token, acct, expiresAt.UTC().Format(time.RFC3339))
	return nil
}

func bootstrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Inspect genesis plans",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check <file>",
		Short: "Validate a bootstrap plan and print what it would apply",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := service.LoadBootstrapPlan(args[0])
			if err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	})
	return cmd
}

func printPlan(w io.Writer, plan *service.BootstrapPlan) {
	fmt.Fprintln(w, "bootstrap plan OK")
	for _, r := range plan.Roles {
		fmt.Fprintf(w, "  role     %s %v\n", r.Account, r.Roles)
	}
	for _, t := range plan.AssetTypes {
		fmt.Fprintf(w, "  type     %s\n", t)
	}
	for _, id := range plan.Identities {
		fmt.Fprintf(w, "  identity %s verified=%t\n", id.Account, id.Verified)
	}
	for _, v := range plan.Verifiers {
		fmt.Fprintf(w, "  verifier %s %q\n", v.Account, v.Description)
	}
	fmt.Fprintf(w, "%d role grants, %d asset types, %d identities, %d verifiers\n",
		len(plan.Roles), len(plan.AssetTypes), len(plan.Identities), len(plan.Verifiers))
}
