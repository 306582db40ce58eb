package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mpesa "github.com/DanielPopoola/mpesa-go"
)

// app carries what every subcommand needs: a lazily built client and an output sink.
type app struct {
	newClient func() (*mpesa.Client, error)
	out       io.Writer
	output    string
}

func NewRootCmd(version string) *cobra.Command {
	a := &app{
		newClient: func() (*mpesa.Client, error) { return mpesa.NewFromEnv() },
		out:       os.Stdout,
	}
	return a.rootCmd(version)
}

func (a *app) rootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mpesa",
		Short: "mpesa - command line client for the Safaricom M-Pesa (Daraja) API",
		Long: `Calls Daraja operations using credentials from the environment:
- MPESA_CLIENT_KEY and MPESA_CLIENT_SECRET (required)
- MPESA_ENVIRONMENT (sandbox or production, default sandbox)
- MPESA_INITIATOR_PASSWORD and MPESA_PASS_KEY (optional)
- MPESA_CERTIFICATE_FILE (optional PEM replacing the embedded certificate)`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.output != "json" && a.output != "yaml" {
				return fmt.Errorf("unsupported output format %q", a.output)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "json", "Output format (json, yaml)")

	rootCmd.AddCommand(a.authCmd())
	rootCmd.AddCommand(a.b2cCmd())
	rootCmd.AddCommand(a.b2bCmd())
	rootCmd.AddCommand(a.c2bCmd())
	rootCmd.AddCommand(a.balanceCmd())
	rootCmd.AddCommand(a.expressCmd())
	rootCmd.AddCommand(a.reversalCmd())
	rootCmd.AddCommand(a.statusCmd())
	rootCmd.AddCommand(a.qrCmd())
	rootCmd.AddCommand(a.billCmd())

	return rootCmd
}

func (a *app) authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Check that the configured credentials can obtain an access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}
			connected := client.IsConnected(cmd.Context())
			if err := a.render(map[string]any{
				"environment": client.Environment().String(),
				"connected":   connected,
			}); err != nil {
				return err
			}
			if !connected {
				return fmt.Errorf("could not authenticate against %s", client.Environment())
			}
			return nil
		},
	}
}

func (a *app) render(v any) error {
	switch a.output {
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		defer enc.Close()
		return enc.Encode(v)
	default:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
}

// run builds the client, lets build issue the request and renders the response.
func run[Resp any](a *app, build func(*mpesa.Client) (*Resp, error)) error {
	client, err := a.newClient()
	if err != nil {
		return err
	}
	resp, err := build(client)
	if err != nil {
		return err
	}
	return a.render(resp)
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected RFC3339 or YYYY-MM-DD", value)
	}
	return t, nil
}
