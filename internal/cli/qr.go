package cli

import (
	"github.com/spf13/cobra"

	mpesa "github.com/DanielPopoola/mpesa-go"
)

func (a *app) qrCmd() *cobra.Command {
	var merchantName, refNo, transactionType, cpi, size string
	var amount float64

	cmd := &cobra.Command{
		Use:   "qr",
		Short: "Generate a dynamic M-Pesa QR code",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.DynamicQRResponse, error) {
				t, err := mpesa.ParseTransactionType(transactionType)
				if err != nil {
					return nil, err
				}
				return c.DynamicQR().
					MerchantName(merchantName).
					RefNo(refNo).
					Amount(amount).
					TransactionType(t).
					CreditPartyIdentifier(cpi).
					Size(size).
					Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&merchantName, "merchant-name", "", "Merchant name")
	cmd.Flags().StringVar(&refNo, "ref-no", "", "Transaction reference")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount")
	cmd.Flags().StringVar(&transactionType, "type", "", "Transaction type (BuyGoods/BG, PayBill/PB, SendMoney/SM, SendToBusiness/SB)")
	cmd.Flags().StringVar(&cpi, "cpi", "", "Credit party identifier")
	cmd.Flags().StringVar(&size, "size", "300", "QR image size in pixels")
	markRequired(cmd, "merchant-name", "ref-no", "amount", "type", "cpi")

	return cmd
}
