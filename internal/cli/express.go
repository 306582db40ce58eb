package cli

import (
	"github.com/spf13/cobra"

	mpesa "github.com/DanielPopoola/mpesa-go"
)

func (a *app) expressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "express",
		Short: "STK-Push (Lipa na M-Pesa Online) operations",
	}
	cmd.AddCommand(a.expressRequestCmd())
	cmd.AddCommand(a.expressQueryCmd())
	return cmd
}

func (a *app) expressRequestCmd() *cobra.Command {
	var (
		shortCode, passKey, transactionType, partyA string
		partyB, phone, callbackURL, accountRef      string
		description                                 string
		amount                                      float64
	)

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Prompt a customer's phone to authorize a payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.ExpressPushResponse, error) {
				b := c.ExpressRequest(shortCode).
					PassKey(passKey).
					Amount(amount).
					PartyA(partyA).
					PartyB(orDefault(partyB, shortCode)).
					PhoneNumber(orDefault(phone, partyA)).
					CallbackURL(callbackURL).
					AccountReference(accountRef).
					TransactionDesc(description)
				if transactionType != "" {
					id, err := mpesa.ParseCommandID(transactionType)
					if err != nil {
						return nil, err
					}
					b.TransactionType(id)
				}
				return b.Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&shortCode, "short-code", "", "Business shortcode")
	cmd.Flags().StringVar(&passKey, "pass-key", "", "Pass key (defaults to MPESA_PASS_KEY or the sandbox key)")
	cmd.Flags().StringVar(&transactionType, "transaction-type", "", "CustomerPayBillOnline or BusinessBuyGoods")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount to request")
	cmd.Flags().StringVar(&partyA, "party-a", "", "Paying phone number")
	cmd.Flags().StringVar(&partyB, "party-b", "", "Receiving organization (defaults to the shortcode)")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number to prompt (defaults to party A)")
	cmd.Flags().StringVar(&callbackURL, "callback-url", "", "Callback URL")
	cmd.Flags().StringVar(&accountRef, "account-ref", "", "Account reference")
	cmd.Flags().StringVar(&description, "description", "", "Transaction description")
	markRequired(cmd, "short-code", "amount", "party-a", "callback-url", "account-ref")

	return cmd
}

func (a *app) expressQueryCmd() *cobra.Command {
	var shortCode, passKey, checkoutRequestID string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Check the result of an STK-Push",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.ExpressQueryResponse, error) {
				return c.ExpressQuery(shortCode).
					PassKey(passKey).
					CheckoutRequestID(checkoutRequestID).
					Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&shortCode, "short-code", "", "Business shortcode")
	cmd.Flags().StringVar(&passKey, "pass-key", "", "Pass key (defaults to MPESA_PASS_KEY or the sandbox key)")
	cmd.Flags().StringVar(&checkoutRequestID, "checkout-request-id", "", "CheckoutRequestID returned by express request")
	markRequired(cmd, "short-code", "checkout-request-id")

	return cmd
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
