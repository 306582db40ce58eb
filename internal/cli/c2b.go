package cli

import (
	"github.com/spf13/cobra"

	mpesa "github.com/DanielPopoola/mpesa-go"
)

func (a *app) c2bCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "c2b",
		Short: "Customer to business operations",
	}
	cmd.AddCommand(a.c2bRegisterCmd())
	cmd.AddCommand(a.c2bSimulateCmd())
	return cmd
}

func (a *app) c2bRegisterCmd() *cobra.Command {
	var shortCode, responseType, confirmationURL, validationURL string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register confirmation and validation URLs for a shortcode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.C2BRegisterResponse, error) {
				b := c.C2BRegister().
					ShortCode(shortCode).
					ConfirmationURL(confirmationURL).
					ValidationURL(validationURL)
				if responseType != "" {
					rt, err := mpesa.ParseResponseType(responseType)
					if err != nil {
						return nil, err
					}
					b.ResponseType(rt)
				}
				return b.Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&shortCode, "short-code", "", "Shortcode to register")
	cmd.Flags().StringVar(&responseType, "response-type", "", "Completed or Cancelled (default Completed)")
	cmd.Flags().StringVar(&confirmationURL, "confirmation-url", "", "Confirmation URL")
	cmd.Flags().StringVar(&validationURL, "validation-url", "", "Validation URL")
	markRequired(cmd, "short-code", "confirmation-url", "validation-url")

	return cmd
}

func (a *app) c2bSimulateCmd() *cobra.Command {
	var shortCode, commandID, msisdn, billRef string
	var amount float64

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a customer payment (sandbox only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.C2BSimulateResponse, error) {
				b := c.C2BSimulate().
					ShortCode(shortCode).
					Amount(amount).
					Msisdn(msisdn).
					BillRefNumber(billRef)
				if commandID != "" {
					id, err := mpesa.ParseCommandID(commandID)
					if err != nil {
						return nil, err
					}
					b.CommandID(id)
				}
				return b.Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&shortCode, "short-code", "", "Receiving shortcode")
	cmd.Flags().StringVar(&commandID, "command-id", "", "Command id (default CustomerPayBillOnline)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount paid")
	cmd.Flags().StringVar(&msisdn, "msisdn", "", "Paying phone number")
	cmd.Flags().StringVar(&billRef, "bill-ref", "", "Bill reference number")
	markRequired(cmd, "short-code", "amount", "msisdn")

	return cmd
}
