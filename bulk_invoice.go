package mpesa

import (
	"context"
	"net/http"
)

type BulkInvoiceResponse = InvoiceResponse

type BulkInvoiceBuilder struct {
	builder
	invoices []Invoice
}

func (c *Client) BulkInvoice() *BulkInvoiceBuilder {
	return &BulkInvoiceBuilder{builder: builder{client: c}}
}

// Invoices appends to the batch; it may be called repeatedly.
func (b *BulkInvoiceBuilder) Invoices(invoices ...Invoice) *BulkInvoiceBuilder {
	b.invoices = append(b.invoices, invoices...)
	return b
}

func (b *BulkInvoiceBuilder) Build() ([]Invoice, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.invoices) == 0 {
		return nil, newBuilderError("invoices")
	}
	return b.invoices, nil
}

func (b *BulkInvoiceBuilder) Send(ctx context.Context) (*BulkInvoiceResponse, error) {
	invoices, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[[]Invoice, BulkInvoiceResponse](ctx, b.client, http.MethodPost, bulkInvoicePath, &invoices)
}
