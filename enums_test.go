package mpesa_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mpesa "github.com/DanielPopoola/mpesa-go"
)

func TestCommandID_ParseAndJSON(t *testing.T) {
	id, err := mpesa.ParseCommandID("BusinessToBusinessTransfer")
	require.NoError(t, err)
	assert.Equal(t, mpesa.BusinessToBusinessTransfer, id)

	_, err = mpesa.ParseCommandID("businesspayment")
	assert.True(t, errors.Is(err, mpesa.ErrValidation))

	var decoded mpesa.CommandID
	require.NoError(t, json.Unmarshal([]byte(`"AccountBalance"`), &decoded))
	assert.Equal(t, mpesa.AccountBalanceCommand, decoded)
	assert.Error(t, json.Unmarshal([]byte(`"Unknown"`), &decoded))
}

func TestIdentifierType(t *testing.T) {
	tests := []struct {
		in   string
		want mpesa.IdentifierType
	}{
		{"1", mpesa.MSISDN},
		{"MSISDN", mpesa.MSISDN},
		{"2", mpesa.TillNumber},
		{"TillNumber", mpesa.TillNumber},
		{"4", mpesa.ShortCode},
		{"ShortCode", mpesa.ShortCode},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := mpesa.ParseIdentifierType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := mpesa.ParseIdentifierType("3")
	assert.True(t, errors.Is(err, mpesa.ErrValidation))

	data, err := json.Marshal(mpesa.ShortCode)
	require.NoError(t, err)
	assert.JSONEq(t, `"4"`, string(data))
	assert.Equal(t, "ShortCode", mpesa.ShortCode.String())

	var fromNumber, fromString mpesa.IdentifierType
	require.NoError(t, json.Unmarshal([]byte(`2`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`"1"`), &fromString))
	assert.Equal(t, mpesa.TillNumber, fromNumber)
	assert.Equal(t, mpesa.MSISDN, fromString)
}

func TestNamedEnums(t *testing.T) {
	rt, err := mpesa.ParseResponseType("Cancelled")
	require.NoError(t, err)
	assert.Equal(t, mpesa.Cancelled, rt)
	_, err = mpesa.ParseResponseType("Pending")
	assert.Error(t, err)

	reminders, err := mpesa.ParseSendRemindersType("Enable")
	require.NoError(t, err)
	assert.Equal(t, mpesa.RemindersEnable, reminders)
	data, err := json.Marshal(mpesa.RemindersDisable)
	require.NoError(t, err)
	assert.JSONEq(t, `"Disable"`, string(data))

	for in, want := range map[string]mpesa.TransactionType{
		"BuyGoods":       mpesa.BuyGoods,
		"BG":             mpesa.BuyGoods,
		"PayBill":        mpesa.PayBill,
		"PB":             mpesa.PayBill,
		"SendMoney":      mpesa.SendMoney,
		"SM":             mpesa.SendMoney,
		"SendToBusiness": mpesa.SendToBusiness,
		"SB":             mpesa.SendToBusiness,
	} {
		got, err := mpesa.ParseTransactionType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err = mpesa.ParseTransactionType("Withdraw")
	assert.Error(t, err)
}

func TestResultCode(t *testing.T) {
	code, err := mpesa.ParseResultCode("26")
	require.NoError(t, err)
	assert.Equal(t, mpesa.ResultTrafficBlocking, code)
	assert.Equal(t, "TrafficBlocking", code.String())
	assert.Equal(t, "Success", mpesa.ResultSuccess.String())
	assert.Equal(t, "ResultCode(99)", mpesa.ResultCode(99).String())

	_, err = mpesa.ParseResultCode("abc")
	assert.True(t, errors.Is(err, mpesa.ErrValidation))
}
