package sales

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSale() *Sale {
	return &Sale{
		SaleNumber: "S-001",
		Customer:   "Acme",
		Branch:     "Downtown",
		Items: []SaleItem{
			{Name: "Beer", Quantity: 5, UnitPrice: d("10.00")},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validSale()))
}

func TestValidate_QuantityAboveLimitIsNotAViolation(t *testing.T) {
	sale := validSale()
	sale.Items[0].Quantity = 50
	assert.NoError(t, Validate(sale))
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	sale := &Sale{
		SaleNumber: "",
		Customer:   "   ",
		Branch:     "",
		Items: []SaleItem{
			{Name: "Beer", Quantity: 1, UnitPrice: d("1.00")},
			{Name: "", Quantity: 0, UnitPrice: d("0")},
		},
	}

	err := Validate(sale)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)

	fields := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		fields = append(fields, v.Field)
		assert.NotEmpty(t, v.Message)
	}
	assert.ElementsMatch(t, []string{
		"saleNumber",
		"customer",
		"branch",
		"products[1].name",
		"products[1].quantity",
		"products[1].unitPrice",
	}, fields)
}

func TestValidate_Messages(t *testing.T) {
	sale := validSale()
	sale.Customer = ""
	sale.Items[0].UnitPrice = d("-2")

	var verr *ValidationError
	require.ErrorAs(t, Validate(sale), &verr)
	require.Len(t, verr.Violations, 2)

	byField := map[string]string{}
	for _, v := range verr.Violations {
		byField[v.Field] = v.Message
	}
	assert.Equal(t, "must not be empty", byField["customer"])
	assert.Equal(t, "must be greater than 0", byField["products[0].unitPrice"])
}

func TestValidate_DoesNotMutate(t *testing.T) {
	sale := validSale()
	before := *sale.clone()

	_ = Validate(sale)

	assert.Equal(t, before, *sale)
}
