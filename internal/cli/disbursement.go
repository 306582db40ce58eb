package cli

import (
	"github.com/spf13/cobra"

	mpesa "github.com/DanielPopoola/mpesa-go"
)

func (a *app) b2cCmd() *cobra.Command {
	var (
		initiator, commandID, partyA, partyB string
		remarks, occasion, resultURL         string
		timeoutURL                           string
		amount                               float64
	)

	cmd := &cobra.Command{
		Use:   "b2c",
		Short: "Pay out from a business shortcode to a customer phone number",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.B2CResponse, error) {
				b := c.B2C(initiator).
					Amount(amount).
					PartyA(partyA).
					PartyB(partyB).
					ResultURL(resultURL).
					TimeoutURL(timeoutURL).
					Remarks(remarks).
					Occasion(occasion)
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

	cmd.Flags().StringVar(&initiator, "initiator", "", "Initiator name")
	cmd.Flags().StringVar(&commandID, "command-id", "", "Command id (default BusinessPayment)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount to send")
	cmd.Flags().StringVar(&partyA, "party-a", "", "Sending shortcode")
	cmd.Flags().StringVar(&partyB, "party-b", "", "Receiving phone number")
	cmd.Flags().StringVar(&remarks, "remarks", "", "Remarks")
	cmd.Flags().StringVar(&occasion, "occasion", "", "Occasion")
	cmd.Flags().StringVar(&resultURL, "result-url", "", "Result callback URL")
	cmd.Flags().StringVar(&timeoutURL, "timeout-url", "", "Queue timeout callback URL")
	markRequired(cmd, "initiator", "amount", "party-a", "party-b", "result-url", "timeout-url")

	return cmd
}

func (a *app) b2bCmd() *cobra.Command {
	var (
		initiator, commandID, partyA, partyB string
		remarks, accountRef, resultURL       string
		timeoutURL, senderType, receiverType string
		amount                               float64
	)

	cmd := &cobra.Command{
		Use:   "b2b",
		Short: "Move funds between two business accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.B2BResponse, error) {
				b := c.B2B(initiator).
					Amount(amount).
					PartyA(partyA).
					PartyB(partyB).
					ResultURL(resultURL).
					TimeoutURL(timeoutURL).
					Remarks(remarks).
					AccountReference(accountRef)
				if commandID != "" {
					id, err := mpesa.ParseCommandID(commandID)
					if err != nil {
						return nil, err
					}
					b.CommandID(id)
				}
				if senderType != "" {
					t, err := mpesa.ParseIdentifierType(senderType)
					if err != nil {
						return nil, err
					}
					b.SenderIdentifierType(t)
				}
				if receiverType != "" {
					t, err := mpesa.ParseIdentifierType(receiverType)
					if err != nil {
						return nil, err
					}
					b.ReceiverIdentifierType(t)
				}
				return b.Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&initiator, "initiator", "", "Initiator name")
	cmd.Flags().StringVar(&commandID, "command-id", "", "Command id (default BusinessToBusinessTransfer)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount to send")
	cmd.Flags().StringVar(&partyA, "party-a", "", "Sending shortcode")
	cmd.Flags().StringVar(&partyB, "party-b", "", "Receiving shortcode")
	cmd.Flags().StringVar(&senderType, "sender-type", "", "Sender identifier type (MSISDN, TillNumber, ShortCode)")
	cmd.Flags().StringVar(&receiverType, "receiver-type", "", "Receiver identifier type (MSISDN, TillNumber, ShortCode)")
	cmd.Flags().StringVar(&remarks, "remarks", "", "Remarks")
	cmd.Flags().StringVar(&accountRef, "account-ref", "", "Account reference")
	cmd.Flags().StringVar(&resultURL, "result-url", "", "Result callback URL")
	cmd.Flags().StringVar(&timeoutURL, "timeout-url", "", "Queue timeout callback URL")
	markRequired(cmd, "initiator", "amount", "party-a", "party-b", "result-url", "timeout-url")

	return cmd
}

func (a *app) balanceCmd() *cobra.Command {
	var initiator, partyA, identifierType, remarks, resultURL, timeoutURL string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Query the balance of a shortcode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.AccountBalanceResponse, error) {
				b := c.AccountBalance(initiator).
					PartyA(partyA).
					Remarks(remarks).
					ResultURL(resultURL).
					TimeoutURL(timeoutURL)
				if identifierType != "" {
					t, err := mpesa.ParseIdentifierType(identifierType)
					if err != nil {
						return nil, err
					}
					b.IdentifierType(t)
				}
				return b.Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&initiator, "initiator", "", "Initiator name")
	cmd.Flags().StringVar(&partyA, "party-a", "", "Shortcode to query")
	cmd.Flags().StringVar(&identifierType, "identifier-type", "", "Identifier type of party A (default ShortCode)")
	cmd.Flags().StringVar(&remarks, "remarks", "", "Remarks")
	cmd.Flags().StringVar(&resultURL, "result-url", "", "Result callback URL")
	cmd.Flags().StringVar(&timeoutURL, "timeout-url", "", "Queue timeout callback URL")
	markRequired(cmd, "initiator", "party-a", "result-url", "timeout-url")

	return cmd
}

func (a *app) reversalCmd() *cobra.Command {
	var (
		initiator, transactionID, receiverParty, receiverType string
		remarks, occasion, resultURL, timeoutURL              string
		amount                                                float64
	)

	cmd := &cobra.Command{
		Use:   "reversal",
		Short: "Reverse a completed M-Pesa transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.TransactionReversalResponse, error) {
				b := c.TransactionReversal(initiator).
					TransactionID(transactionID).
					ReceiverParty(receiverParty).
					Amount(amount).
					ResultURL(resultURL).
					TimeoutURL(timeoutURL).
					Remarks(remarks).
					Occasion(occasion)
				if receiverType != "" {
					t, err := mpesa.ParseIdentifierType(receiverType)
					if err != nil {
						return nil, err
					}
					b.ReceiverIdentifierType(t)
				}
				return b.Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&initiator, "initiator", "", "Initiator name")
	cmd.Flags().StringVar(&transactionID, "transaction-id", "", "M-Pesa receipt number to reverse")
	cmd.Flags().StringVar(&receiverParty, "receiver-party", "", "Organization receiving the reversal")
	cmd.Flags().StringVar(&receiverType, "receiver-type", "", "Receiver identifier type (default ShortCode)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount to reverse")
	cmd.Flags().StringVar(&remarks, "remarks", "", "Remarks")
	cmd.Flags().StringVar(&occasion, "occasion", "", "Occasion")
	cmd.Flags().StringVar(&resultURL, "result-url", "", "Result callback URL")
	cmd.Flags().StringVar(&timeoutURL, "timeout-url", "", "Queue timeout callback URL")
	markRequired(cmd, "initiator", "transaction-id", "receiver-party", "amount", "result-url", "timeout-url")

	return cmd
}

func (a *app) statusCmd() *cobra.Command {
	var (
		initiator, transactionID, partyA, identifierType string
		remarks, occasion, resultURL, timeoutURL         string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Query the status of a transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.TransactionStatusResponse, error) {
				b := c.TransactionStatus(initiator).
					TransactionID(transactionID).
					PartyA(partyA).
					ResultURL(resultURL).
					TimeoutURL(timeoutURL).
					Remarks(remarks).
					Occasion(occasion)
				if identifierType != "" {
					t, err := mpesa.ParseIdentifierType(identifierType)
					if err != nil {
						return nil, err
					}
					b.IdentifierType(t)
				}
				return b.Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&initiator, "initiator", "", "Initiator name")
	cmd.Flags().StringVar(&transactionID, "transaction-id", "", "M-Pesa receipt number")
	cmd.Flags().StringVar(&partyA, "party-a", "", "Organization or phone number that made the transaction")
	cmd.Flags().StringVar(&identifierType, "identifier-type", "", "Identifier type of party A (default ShortCode)")
	cmd.Flags().StringVar(&remarks, "remarks", "", "Remarks")
	cmd.Flags().StringVar(&occasion, "occasion", "", "Occasion")
	cmd.Flags().StringVar(&resultURL, "result-url", "", "Result callback URL")
	cmd.Flags().StringVar(&timeoutURL, "timeout-url", "", "Queue timeout callback URL")
	markRequired(cmd, "initiator", "transaction-id", "party-a", "result-url", "timeout-url")

	return cmd
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		_ = cmd.MarkFlagRequired(name)
	}
}
