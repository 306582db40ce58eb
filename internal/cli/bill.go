package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	mpesa "github.com/DanielPopoola/mpesa-go"
)

func (a *app) billCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Bill Manager operations",
	}
	cmd.AddCommand(a.onboardCmd())
	cmd.AddCommand(a.onboardModifyCmd())
	cmd.AddCommand(a.invoiceCmd())
	cmd.AddCommand(a.bulkInvoiceCmd())
	cmd.AddCommand(a.cancelInvoiceCmd())
	cmd.AddCommand(a.cancelBulkInvoicesCmd())
	cmd.AddCommand(a.reconcileCmd())
	return cmd
}

func (a *app) onboardCmd() *cobra.Command {
	var callbackURL, email, logo, contact, reminders, shortCode string

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Opt a shortcode in to Bill Manager",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.OnboardResponse, error) {
				b := c.Onboard().
					CallbackURL(callbackURL).
					Email(email).
					Logo(logo).
					OfficialContact(contact).
					ShortCode(shortCode)
				if reminders != "" {
					r, err := mpesa.ParseSendRemindersType(reminders)
					if err != nil {
						return nil, err
					}
					b.SendReminders(r)
				}
				return b.Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&callbackURL, "callback-url", "", "Payment notification URL")
	cmd.Flags().StringVar(&email, "email", "", "Official contact email")
	cmd.Flags().StringVar(&logo, "logo", "", "Logo image for invoices and receipts")
	cmd.Flags().StringVar(&contact, "contact", "", "Official contact phone number")
	cmd.Flags().StringVar(&reminders, "reminders", "", "Enable or Disable (default Disable)")
	cmd.Flags().StringVar(&shortCode, "short-code", "", "Paybill or till number")
	markRequired(cmd, "callback-url", "email", "logo", "contact", "short-code")

	return cmd
}

func (a *app) onboardModifyCmd() *cobra.Command {
	var callbackURL, email, logo, contact, reminders, shortCode string

	cmd := &cobra.Command{
		Use:   "onboard-modify",
		Short: "Change Bill Manager opt-in details",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.OnboardModifyResponse, error) {
				b := c.OnboardModify()
				if callbackURL != "" {
					b.CallbackURL(callbackURL)
				}
				if email != "" {
					b.Email(email)
				}
				if reminders != "" {
					r, err := mpesa.ParseSendRemindersType(reminders)
					if err != nil {
						return nil, err
					}
					b.SendReminders(r)
				}
				return b.Logo(logo).
					OfficialContact(contact).
					ShortCode(shortCode).
					Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&callbackURL, "callback-url", "", "Payment notification URL")
	cmd.Flags().StringVar(&email, "email", "", "Official contact email")
	cmd.Flags().StringVar(&logo, "logo", "", "Logo image for invoices and receipts")
	cmd.Flags().StringVar(&contact, "contact", "", "Official contact phone number")
	cmd.Flags().StringVar(&reminders, "reminders", "", "Enable or Disable")
	cmd.Flags().StringVar(&shortCode, "short-code", "", "Paybill or till number")

	return cmd
}

func (a *app) invoiceCmd() *cobra.Command {
	var accountRef, fullName, period, phone, dueDate, externalRef, name string
	var amount float64

	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Send a single invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := parseDate(dueDate)
			if err != nil {
				return err
			}
			return run(a, func(c *mpesa.Client) (*mpesa.SingleInvoiceResponse, error) {
				return c.SingleInvoice().
					Amount(amount).
					AccountReference(accountRef).
					BilledFullName(fullName).
					BilledPeriod(period).
					BilledPhoneNumber(phone).
					DueDate(due).
					ExternalReference(externalRef).
					InvoiceName(name).
					Send(cmd.Context())
			})
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Invoice amount")
	cmd.Flags().StringVar(&accountRef, "account-ref", "", "Customer account reference")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Name of the billed customer")
	cmd.Flags().StringVar(&period, "period", "", "Billed period, e.g. \"August 2021\"")
	cmd.Flags().StringVar(&phone, "phone", "", "Billed phone number")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "Due date (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&externalRef, "external-ref", "", "Unique invoice reference")
	cmd.Flags().StringVar(&name, "name", "", "Invoice name")
	markRequired(cmd, "amount", "account-ref", "full-name", "period", "phone", "due-date", "external-ref", "name")

	return cmd
}

func (a *app) bulkInvoiceCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "bulk-invoice",
		Short: "Send invoices listed in a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			invoices, err := loadInvoices(file)
			if err != nil {
				return err
			}
			return run(a, func(c *mpesa.Client) (*mpesa.BulkInvoiceResponse, error) {
				return c.BulkInvoice().Invoices(invoices...).Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file holding a list of invoices")
	markRequired(cmd, "file")

	return cmd
}

func (a *app) cancelInvoiceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel [external-reference]",
		Short: "Cancel a single invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.CancelSingleInvoiceResponse, error) {
				return c.CancelSingleInvoice().ExternalReference(args[0]).Send(cmd.Context())
			})
		},
	}
}

func (a *app) cancelBulkInvoicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel-bulk [external-reference...]",
		Short: "Cancel several invoices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(a, func(c *mpesa.Client) (*mpesa.CancelBulkInvoicesResponse, error) {
				return c.CancelBulkInvoices().ExternalReferences(args...).Send(cmd.Context())
			})
		},
	}
}

func (a *app) reconcileCmd() *cobra.Command {
	var accountRef, dateCreated, msisdn, shortCode, transactionID string
	var paidAmount float64

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile a payment against an invoice",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := parseDate(dateCreated)
			if err != nil {
				return err
			}
			return run(a, func(c *mpesa.Client) (*mpesa.ReconciliationResponse, error) {
				return c.Reconciliation().
					AccountReference(accountRef).
					DateCreated(created).
					Msisdn(msisdn).
					PaidAmount(paidAmount).
					ShortCode(shortCode).
					TransactionID(transactionID).
					Send(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&accountRef, "account-ref", "", "Customer account reference")
	cmd.Flags().StringVar(&dateCreated, "date", "", "Payment date (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&msisdn, "msisdn", "", "Paying phone number")
	cmd.Flags().Float64Var(&paidAmount, "amount", 0, "Amount paid")
	cmd.Flags().StringVar(&shortCode, "short-code", "", "Receiving shortcode")
	cmd.Flags().StringVar(&transactionID, "transaction-id", "", "M-Pesa receipt number")
	markRequired(cmd, "account-ref", "date", "msisdn", "amount", "short-code", "transaction-id")

	return cmd
}

func loadInvoices(path string) ([]mpesa.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading invoices file: %w", err)
	}

	var invoices []mpesa.Invoice
	if err := yaml.Unmarshal(data, &invoices); err != nil {
		return nil, fmt.Errorf("error parsing invoices file: %w", err)
	}
	return invoices, nil
}
