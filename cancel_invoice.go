package mpesa

import (
	"context"
	"net/http"
)

type CancelInvoiceRequest struct {
	ExternalReference string `json:"externalReference"`
}

type CancelSingleInvoiceResponse = InvoiceResponse

type CancelBulkInvoicesResponse = InvoiceResponse

type CancelSingleInvoiceBuilder struct {
	builder
	externalReference string
}

func (c *Client) CancelSingleInvoice() *CancelSingleInvoiceBuilder {
	return &CancelSingleInvoiceBuilder{builder: builder{client: c}}
}

func (b *CancelSingleInvoiceBuilder) ExternalReference(externalReference string) *CancelSingleInvoiceBuilder {
	b.externalReference = externalReference
	return b
}

func (b *CancelSingleInvoiceBuilder) Build() (*CancelInvoiceRequest, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.externalReference == "" {
		return nil, newBuilderError("external_reference")
	}
	return &CancelInvoiceRequest{ExternalReference: b.externalReference}, nil
}

func (b *CancelSingleInvoiceBuilder) Send(ctx context.Context) (*CancelSingleInvoiceResponse, error) {
	req, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[CancelInvoiceRequest, CancelSingleInvoiceResponse](ctx, b.client, http.MethodPost, cancelSingleInvoicePath, req)
}

type CancelBulkInvoicesBuilder struct {
	builder
	externalReferences []string
}

func (c *Client) CancelBulkInvoices() *CancelBulkInvoicesBuilder {
	return &CancelBulkInvoicesBuilder{builder: builder{client: c}}
}

func (b *CancelBulkInvoicesBuilder) ExternalReferences(refs ...string) *CancelBulkInvoicesBuilder {
	b.externalReferences = append(b.externalReferences, refs...)
	return b
}

func (b *CancelBulkInvoicesBuilder) Build() ([]CancelInvoiceRequest, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.externalReferences) == 0 {
		return nil, newBuilderError("external_references")
	}

	reqs := make([]CancelInvoiceRequest, 0, len(b.externalReferences))
	for _, ref := range b.externalReferences {
		if ref == "" {
			return nil, newBuilderError("external_reference")
		}
		reqs = append(reqs, CancelInvoiceRequest{ExternalReference: ref})
	}
	return reqs, nil
}

func (b *CancelBulkInvoicesBuilder) Send(ctx context.Context) (*CancelBulkInvoicesResponse, error) {
	reqs, err := b.Build()
	if err != nil {
		return nil, err
	}
	return send[[]CancelInvoiceRequest, CancelBulkInvoicesResponse](ctx, b.client, http.MethodPost, cancelBulkInvoicesPath, &reqs)
}
