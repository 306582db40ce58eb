package mpesa

import (
	"context"
	"net/http"
	"time"
)

// Invoice is a Bill Manager invoice, sent alone or in bulk.
type Invoice struct {
	Amount            float64       `json:"amount" yaml:"amount"`
	AccountReference  string        `json:"accountReference" yaml:"account_reference"`
	BilledFullName    string        `json:"billedFullName" yaml:"billed_full_name"`
	BilledPeriod      string        `json:"billedPeriod" yaml:"billed_period"`
	BilledPhoneNumber string        `json:"billedPhoneNumber" yaml:"billed_phone_number"`
	DueDate           time.Time     `json:"dueDate" yaml:"due_date"`
	ExternalReference string        `json:"externalReference" yaml:"external_reference"`
	InvoiceItems      []InvoiceItem `json:"invoiceItems,omitempty" yaml:"invoice_items,omitempty"`
	InvoiceName       string        `json:"invoiceName" yaml:"invoice_name"`
}

type InvoiceItem struct {
	ItemName string  `json:"itemName" yaml:"item_name"`
	Amount   float64 `json:"amount" yaml:"amount"`
}

// InvoiceResponse acknowledges invoicing and invoice cancellation requests.
type InvoiceResponse struct {
	ResponseCode    string `json:"rescode"`
	ResponseMessage string `json:"resmsg"`
	StatusMessage   string `json:"Status_Message"`
}

type SingleInvoiceResponse = InvoiceResponse

type SingleInvoiceBuilder struct {
	builder
	amount            *float64
	accountReference  string
	billedFullName    string
	billedPeriod      string
	billedPhoneNumber string
	dueDate           time.Time
	externalReference string
	invoiceItems      []InvoiceItem
	invoiceName       string
}

func (c *Client) SingleInvoice() *SingleInvoiceBuilder {
	return &SingleInvoiceBuilder{builder: builder{client: c}}
}

func (b *SingleInvoiceBuilder) Amount(amount float64) *SingleInvoiceBuilder {
	b.amount = &amount
	return b
}

func (b *SingleInvoiceBuilder) AccountReference(accountReference string) *SingleInvoiceBuilder {
	b.accountReference = accountReference
	return b
}

func (b *SingleInvoiceBuilder) BilledFullName(billedFullName string) *SingleInvoiceBuilder {
	b.billedFullName = billedFullName
	return b
}

// BilledPeriod is the month and year being billed, e.g. "August 2021".
func (b *SingleInvoiceBuilder) BilledPeriod(billedPeriod string) *SingleInvoiceBuilder {
	b.billedPeriod = billedPeriod
	return b
}

func (b *SingleInvoiceBuilder) BilledPhoneNumber(billedPhoneNumber string) *SingleInvoiceBuilder {
	b.billedPhoneNumber = billedPhoneNumber
	return b
}

func (b *SingleInvoiceBuilder) DueDate(dueDate time.Time) *SingleInvoiceBuilder {
	b.dueDate = dueDate
	return b
}

func (b *SingleInvoiceBuilder) ExternalReference(externalReference string) *SingleInvoiceBuilder {
	b.externalReference = externalReference
	return b
}

func (b *SingleInvoiceBuilder) InvoiceItems(items ...InvoiceItem) *SingleInvoiceBuilder {
	b.invoiceItems = append(b.invoiceItems, items...)
	return b
}

func (b *SingleInvoiceBuilder) InvoiceName(invoiceName string) *SingleInvoiceBuilder {
	b.invoiceName = invoiceName
	return b
}

func (b *SingleInvoiceBuilder) Build() (*Invoice, error) {
	if b.err != nil {
		return nil, b.err
	}

	var f fields
	req := &Invoice{
		Amount:            f.requiredAmount("amount", b.amount),
		AccountReference:  f.required("account_reference", b.accountReference),
		BilledFullName:    f.required("billed_full_name", b.billedFullName),
		BilledPeriod:      f.required("billed_period", b.billedPeriod),
		BilledPhoneNumber: f.required("billed_phone_number", b.billedPhoneNumber),
		DueDate:           f.requiredTime("due_date", b.dueDate),
		ExternalReference: f.required("external_reference", b.externalReference),
		InvoiceItems:      b.invoiceItems,
		InvoiceName:       f.required("invoice_name", b.invoiceName),
	}
	if err := f.err(); err != nil {
		return nil, err
	}
	return req, nil
}

func (b *SingleInvoiceBuilder) Send(ctx context.Context) (*SingleInvoiceResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[Invoice, SingleInvoiceResponse](ctx, b.client, http.MethodPost, singleInvoicePath, req)
}
