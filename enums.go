package mpesa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type CommandID string

const (
	TransactionReversal              CommandID = "TransactionReversal"
	SalaryPayment                    CommandID = "SalaryPayment"
	BusinessPayment                  CommandID = "BusinessPayment"
	PromotionPayment                 CommandID = "PromotionPayment"
	AccountBalanceCommand            CommandID = "AccountBalance"
	CustomerPayBillOnline            CommandID = "CustomerPayBillOnline"
	TransactionStatusQuery           CommandID = "TransactionStatusQuery"
	CheckIdentity                    CommandID = "CheckIdentity"
	BusinessPayBill                  CommandID = "BusinessPayBill"
	BusinessBuyGoods                 CommandID = "BusinessBuyGoods"
	DisburseFundsToBusiness          CommandID = "DisburseFundsToBusiness"
	BusinessToBusinessTransfer       CommandID = "BusinessToBusinessTransfer"
	BusinessTransferFromMMFToUtility CommandID = "BusinessTransferFromMMFToUtility"
)

var commandIDs = []CommandID{
	TransactionReversal,
	SalaryPayment,
	BusinessPayment,
	PromotionPayment,
	AccountBalanceCommand,
	CustomerPayBillOnline,
	TransactionStatusQuery,
	CheckIdentity,
	BusinessPayBill,
	BusinessBuyGoods,
	DisburseFundsToBusiness,
	BusinessToBusinessTransfer,
	BusinessTransferFromMMFToUtility,
}

func (c CommandID) String() string {
	return string(c)
}

func ParseCommandID(s string) (CommandID, error) {
	for _, c := range commandIDs {
		if string(c) == s {
			return c, nil
		}
	}
	return "", newValidationError(fmt.Sprintf("unknown command id %q", s))
}

func (c *CommandID) UnmarshalJSON(data []byte) error {
	return unmarshalNamed(data, ParseCommandID, c)
}

// IdentifierType identifies a transaction party as a phone number, till or shortcode.
// On the wire it is the numeric code as a string, e.g. "4".
type IdentifierType int

const (
	MSISDN     IdentifierType = 1
	TillNumber IdentifierType = 2
	ShortCode  IdentifierType = 4
)

func (t IdentifierType) String() string {
	switch t {
	case MSISDN:
		return "MSISDN"
	case TillNumber:
		return "TillNumber"
	case ShortCode:
		return "ShortCode"
	default:
		return "IdentifierType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Code returns the wire form.
func (t IdentifierType) Code() string {
	return strconv.Itoa(int(t))
}

// ParseIdentifierType accepts the wire code ("1", "2", "4") or the variant name.
func ParseIdentifierType(s string) (IdentifierType, error) {
	switch s {
	case "1", "MSISDN":
		return MSISDN, nil
	case "2", "TillNumber":
		return TillNumber, nil
	case "4", "ShortCode":
		return ShortCode, nil
	default:
		return 0, newValidationError(fmt.Sprintf("unknown identifier type %q", s))
	}
}

func (t IdentifierType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Code())
}

func (t *IdentifierType) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	parsed, err := ParseIdentifierType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

type ResponseType string

const (
	Completed ResponseType = "Completed"
	Cancelled ResponseType = "Cancelled"
)

func (r ResponseType) String() string {
	return string(r)
}

func ParseResponseType(s string) (ResponseType, error) {
	switch ResponseType(s) {
	case Completed, Cancelled:
		return ResponseType(s), nil
	default:
		return "", newValidationError(fmt.Sprintf("unknown response type %q", s))
	}
}

func (r *ResponseType) UnmarshalJSON(data []byte) error {
	return unmarshalNamed(data, ParseResponseType, r)
}

type SendRemindersType string

const (
	RemindersEnable  SendRemindersType = "Enable"
	RemindersDisable SendRemindersType = "Disable"
)

func (s SendRemindersType) String() string {
	return string(s)
}

func ParseSendRemindersType(s string) (SendRemindersType, error) {
	switch SendRemindersType(s) {
	case RemindersEnable, RemindersDisable:
		return SendRemindersType(s), nil
	default:
		return "", newValidationError(fmt.Sprintf("unknown send reminders type %q", s))
	}
}

func (s *SendRemindersType) UnmarshalJSON(data []byte) error {
	return unmarshalNamed(data, ParseSendRemindersType, s)
}

// TransactionType is the TrxCode of a dynamic QR code.
type TransactionType string

const (
	BuyGoods       TransactionType = "BuyGoods"
	PayBill        TransactionType = "PayBill"
	SendMoney      TransactionType = "SendMoney"
	SendToBusiness TransactionType = "SendToBusiness"
)

func (t TransactionType) String() string {
	return string(t)
}

// ParseTransactionType accepts the variant name or the Daraja short code (BG, PB, SM, SB).
func ParseTransactionType(s string) (TransactionType, error) {
	switch s {
	case "BuyGoods", "BG":
		return BuyGoods, nil
	case "PayBill", "PB":
		return PayBill, nil
	case "SendMoney", "SM":
		return SendMoney, nil
	case "SendToBusiness", "SB":
		return SendToBusiness, nil
	default:
		return "", newValidationError(fmt.Sprintf("unknown transaction type %q", s))
	}
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	return unmarshalNamed(data, ParseTransactionType, t)
}

func unmarshalNamed[T any](data []byte, parse func(string) (T, error), dst *T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := parse(s)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// ResultCode is a documented M-Pesa result or response code.
type ResultCode int

const (
	ResultSuccess                ResultCode = 0
	ResultInsufficientFunds      ResultCode = 1
	ResultLessThanMinimum        ResultCode = 2
	ResultMoreThanMaximum        ResultCode = 3
	ResultExceededDailyLimit     ResultCode = 4
	ResultExceededMinimumBalance ResultCode = 5
	ResultUnresolvedPrimaryParty ResultCode = 6
	ResultUnresolvedReceiver     ResultCode = 7
	ResultExceededMaximumBalance ResultCode = 8
	ResultInvalidDebitAccount    ResultCode = 11
	ResultInvalidCreditAccount   ResultCode = 12
	ResultUnresolvedDebitAccount ResultCode = 13
	ResultUnresolvedCreditAcct   ResultCode = 14
	ResultDuplicateDetected      ResultCode = 15
	ResultInternalFailure        ResultCode = 17
	ResultUnresolvedInitiator    ResultCode = 20
	ResultTrafficBlocking        ResultCode = 26
)

var resultCodeNames = map[ResultCode]string{
	ResultSuccess:                "Success",
	ResultInsufficientFunds:      "InsufficientFunds",
	ResultLessThanMinimum:        "LessThanMinimum",
	ResultMoreThanMaximum:        "MoreThanMaximum",
	ResultExceededDailyLimit:     "ExceededDailyLimit",
	ResultExceededMinimumBalance: "ExceededMinimumBalance",
	ResultUnresolvedPrimaryParty: "UnresolvedPrimaryParty",
	ResultUnresolvedReceiver:     "UnresolvedReceiverParty",
	ResultExceededMaximumBalance: "ExceededMaximumBalance",
	ResultInvalidDebitAccount:    "InvalidDebitAccount",
	ResultInvalidCreditAccount:   "InvalidCreditAccount",
	ResultUnresolvedDebitAccount: "UnresolvedDebitAccount",
	ResultUnresolvedCreditAcct:   "UnresolvedCreditAccount",
	ResultDuplicateDetected:      "DuplicateDetected",
	ResultInternalFailure:        "InternalFailure",
	ResultUnresolvedInitiator:    "UnresolvedInitiator",
	ResultTrafficBlocking:        "TrafficBlocking",
}

func (r ResultCode) String() string {
	if name, ok := resultCodeNames[r]; ok {
		return name
	}
	return "ResultCode(" + strconv.Itoa(int(r)) + ")"
}

// ParseResultCode reads a ResponseCode or ResultCode field such as "0".
func ParseResultCode(s string) (ResultCode, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, newValidationError(fmt.Sprintf("invalid result code %q", s))
	}
	return ResultCode(n), nil
}
