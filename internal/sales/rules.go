package sales

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxIdenticalItems is the largest quantity of one product a sale may carry.
const MaxIdenticalItems = 20

var (
	noDiscount    = decimal.Zero
	tenPercent    = decimal.RequireFromString("0.10")
	twentyPercent = decimal.RequireFromString("0.20")
	one           = decimal.NewFromInt(1)
)

// DiscountFor returns the discount fraction for a line item quantity.
//
//	q < 4         -> 0
//	4 <= q < 10   -> 0.10
//	10 <= q <= 20 -> 0.20
//	q > 20        -> error
func DiscountFor(quantity int) (decimal.Decimal, error) {
	switch {
	case quantity > MaxIdenticalItems:
		return decimal.Decimal{}, fmt.Errorf("cannot sell more than %d identical items", MaxIdenticalItems)
	case quantity >= 10:
		return twentyPercent, nil
	case quantity >= 4:
		return tenPercent, nil
	default:
		return noDiscount, nil
	}
}

// ApplyBusinessRules computes discount and line total for every item and the
// sale total. Results are only written to sale when every item passes, so a
// *DomainRuleError leaves sale as it was.
func ApplyBusinessRules(sale *Sale) error {
	items := make([]SaleItem, len(sale.Items))
	total := decimal.Zero

	for i, item := range sale.Items {
		if item.Quantity <= 0 {
			return &DomainRuleError{Item: item.Name, Reason: "quantity must be greater than zero"}
		}
		if !item.UnitPrice.IsPositive() {
			return &DomainRuleError{Item: item.Name, Reason: "unit price must be greater than zero"}
		}

		discount, err := DiscountFor(item.Quantity)
		if err != nil {
			return &DomainRuleError{Item: item.Name, Reason: err.Error()}
		}

		item.Discount = discount
		item.TotalAmount = item.UnitPrice.
			Mul(decimal.NewFromInt(int64(item.Quantity))).
			Mul(one.Sub(discount))
		total = total.Add(item.TotalAmount)
		items[i] = item
	}

	sale.Items = items
	sale.TotalSaleAmount = total
	return nil
}
