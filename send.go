package mpesa

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	b2cPath                 = "mpesa/b2c/v1/paymentrequest"
	b2bPath                 = "mpesa/b2b/v1/paymentrequest"
	c2bRegisterPath         = "mpesa/c2b/v1/registerurl"
	c2bSimulatePath         = "mpesa/c2b/v1/simulate"
	accountBalancePath      = "mpesa/accountbalance/v1/query"
	expressRequestPath      = "mpesa/stkpush/v1/processrequest"
	expressQueryPath        = "mpesa/stkpushquery/v1/query"
	transactionReversalPath = "mpesa/reversal/v1/request"
	transactionStatusPath   = "mpesa/transactionstatus/v1/query"
	dynamicQRPath           = "mpesa/qrcode/v1/generate"
	onboardPath             = "v1/billmanager-invoice/optin"
	onboardModifyPath       = "v1/billmanager-invoice/change-optin-details"
	bulkInvoicePath         = "v1/billmanager-invoice/bulk-invoicing"
	singleInvoicePath       = "v1/billmanager-invoice/single-invoicing"
	cancelSingleInvoicePath = "v1/billmanager-invoice/cancel-single-invoice"
	cancelBulkInvoicesPath  = "v1/billmanager-invoice/cancel-bulk-invoices"
	reconciliationPath      = "v1/billmanager-invoice/reconciliation"
)

var operationsByPath = map[string]Operation{
	authPath:                OpAuth,
	b2cPath:                 OpB2c,
	b2bPath:                 OpB2b,
	c2bRegisterPath:         OpC2bRegister,
	c2bSimulatePath:         OpC2bSimulate,
	accountBalancePath:      OpAccountBalance,
	expressRequestPath:      OpExpress,
	expressQueryPath:        OpExpressQuery,
	transactionReversalPath: OpReversal,
	transactionStatusPath:   OpStatus,
	dynamicQRPath:           OpDynamicQr,
	onboardPath:             OpOnboard,
	onboardModifyPath:       OpOnboardModify,
	bulkInvoicePath:         OpBulkInvoice,
	singleInvoicePath:       OpSingleInvoice,
	cancelSingleInvoicePath: OpCancelSingleInvoice,
	cancelBulkInvoicesPath:  OpCancelBulkInvoices,
	reconciliationPath:      OpReconciliation,
}

func operationForPath(path string) Operation {
	return operationsByPath[strings.TrimLeft(path, "/")]
}

func joinURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// decodeResponseError falls back to carrying the raw body when it is not a Daraja error record.
func decodeResponseError(body []byte) *ResponseError {
	var respErr ResponseError
	if err := json.Unmarshal(body, &respErr); err != nil || respErr == (ResponseError{}) {
		return &ResponseError{ErrorMessage: strings.TrimSpace(string(body))}
	}
	return &respErr
}

// send performs one authenticated JSON request against the client's environment.
func send[Req any, Resp any](ctx context.Context, c *Client, method, path string, reqBody *Req) (*Resp, error) {
	op := operationForPath(path)
	traceID := uuid.NewString()
	start := time.Now()

	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return nil, newCodecError(op, "error marshalling json", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	token, err := c.auth(ctx)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, joinURL(c.environment.BaseURL(), path), bodyReader)
	if err != nil {
		return nil, newTransportError(op, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.DebugContext(ctx, "mpesa request failed",
			"trace_id", traceID,
			"op", op,
			"error", err,
		)
		return nil, newTransportError(op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newTransportError(op, err)
	}

	c.logger.DebugContext(ctx, "mpesa request",
		"trace_id", traceID,
		"op", op,
		"method", method,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if !isSuccess(resp.StatusCode) {
		return nil, newServiceError(op, resp.StatusCode, decodeResponseError(body))
	}

	var out Resp
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, newCodecError(op, "error decoding json response", err)
	}

	return &out, nil
}
