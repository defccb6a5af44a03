package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale represents a customer transaction with one or more line items.
type Sale struct {
	ID              string          `json:"id"`
	SaleNumber      string          `json:"saleNumber" validate:"notblank"`
	Date            time.Time       `json:"date"`
	Customer        string          `json:"customer" validate:"notblank"`
	Branch          string          `json:"branch" validate:"notblank"`
	Items           []SaleItem      `json:"products" validate:"dive"`
	TotalSaleAmount decimal.Decimal `json:"totalSaleAmount"`
	Cancelled       bool            `json:"cancelled"`
}

// SaleItem is a single product entry within a sale.
type SaleItem struct {
	Name        string          `json:"name" validate:"notblank"`
	Quantity    int             `json:"quantity" validate:"gt=0"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"gt=0"`
	Discount    decimal.Decimal `json:"discount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// SaleInput is the caller-provided part of a sale. Identifier, date,
// cancellation state and derived amounts are never taken from input.
type SaleInput struct {
	SaleNumber string      `json:"saleNumber"`
	Customer   string      `json:"customer"`
	Branch     string      `json:"branch"`
	Items      []ItemInput `json:"products"`
}

// ItemInput is the caller-provided part of a line item.
type ItemInput struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

func (in ItemInput) toItem() SaleItem {
	return SaleItem{
		Name:      in.Name,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	}
}

func itemsFromInput(in []ItemInput) []SaleItem {
	items := make([]SaleItem, 0, len(in))
	for _, it := range in {
		items = append(items, it.toItem())
	}
	return items
}

// clone returns a copy of the sale that shares no item storage with s.
func (s *Sale) clone() *Sale {
	c := *s
	if s.Items != nil {
		c.Items = make([]SaleItem, len(s.Items))
		copy(c.Items, s.Items)
	}
	return &c
}
