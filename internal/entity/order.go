package entity

import (
	"github.com/shopspring/decimal"
)

type Order struct {
	ID             int64           `json:"id"              validate:"required,gte=1"`
	Ref            string          `json:"ref"             validate:"required,max=45"`
	CurrencyCode   string          `json:"currency_code"   validate:"required,len=3"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Paid           bool            `json:"paid"`
	TransactionRef string          `json:"transaction_ref" validate:"max=100"`
	CustomerEmail  string          `json:"customer_email"  validate:"required,email"`
	Items          []*OrderItem    `json:"items"           validate:"dive"`
	Billing        *Address        `json:"billing"`
}

// TotalQuantity sums the quantities of all order lines.
func (o *Order) TotalQuantity() int {
	var quantity int
	for _, item := range o.Items {
		quantity += item.Quantity
	}
	return quantity
}
