package service

import (
	"fmt"
	"strconv"
)

const (
	_refusalRangeStart = 100
	_refusalRangeEnd   = 199
)

var _returnCodeMessages = map[string]string{
	"00001": "The connection to the authorization center failed. " +
		"You may redirect the customer to the backup server tpeweb1.paybox.com",
	"00003": "Paybox error",
	"00004": "Invalid card number or visual cryptogram",
	"00006": "Access refused or site/rank/identifier incorrect",
	"00008": "Incorrect expiry date",
	"00009": "Error while creating the subscription",
	"00010": "Unknown currency",
	"00011": "Incorrect amount",
	"00015": "Payment already done",
	"00016": "Subscriber already exists",
	"00021": "Card not authorized",
	"00029": "Non-compliant card",
	"00030": "The buyer waited more than 15 minutes on the payment page",
	"00031": "Code reserved by Paybox",
	"00032": "Code reserved by Paybox",
	"00033": "The country of the browser IP address is not authorized",
	"00040": "Operation without 3DSecure authentication, blocked by the fraud filter",
}

// Describe turns a platform return code into a readable message. It never fails.
func Describe(code string) string {
	if message, ok := _returnCodeMessages[code]; ok {
		return message
	}

	if n, err := strconv.Atoi(code); err == nil && n >= _refusalRangeStart && n <= _refusalRangeEnd {
		return "Payment refused by the authorization center"
	}

	return fmt.Sprintf("No information for code %s", code)
}
