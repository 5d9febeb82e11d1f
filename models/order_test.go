package models

import (
	"testing"

	"github.com/bayezid0075/Dreamy-Life-v2.0/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nullDecimal(value string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(value), Valid: true}
}

func testProduct(id uint64, price string) *Product {
	return &Product{
		ID:                         id,
		Title:                      "product",
		Price:                      decimal.RequireFromString(price),
		DeliveryChargeInsideDhaka:  decimal.NewFromInt(60),
		DeliveryChargeOutsideDhaka: decimal.NewFromInt(120),
	}
}

func TestUnitPriceListPrice(t *testing.T) {
	product := testProduct(1, "500")

	price, resellerApplied := product.UnitPrice(false)
	assert.Equal(t, "500", price.String())
	assert.False(t, resellerApplied)
}

func TestUnitPriceDiscountWins(t *testing.T) {
	product := testProduct(1, "500")
	product.DiscountPrice = nullDecimal("450")

	price, resellerApplied := product.UnitPrice(false)
	assert.Equal(t, "450", price.String())
	assert.False(t, resellerApplied)
}

func TestUnitPriceResellerWins(t *testing.T) {
	product := testProduct(1, "500")
	product.DiscountPrice = nullDecimal("450")
	product.ResellerMRPPrice = nullDecimal("400")

	price, resellerApplied := product.UnitPrice(true)
	assert.Equal(t, "400", price.String())
	assert.True(t, resellerApplied)

	// A non-qualifying buyer still gets the discount price.
	price, resellerApplied = product.UnitPrice(false)
	assert.Equal(t, "450", price.String())
	assert.False(t, resellerApplied)
}

func TestUnitPriceResellerWithoutMRP(t *testing.T) {
	product := testProduct(1, "500")

	price, resellerApplied := product.UnitPrice(true)
	assert.Equal(t, "500", price.String())
	assert.False(t, resellerApplied)
}

func TestComputeTotalsSingleLine(t *testing.T) {
	product := testProduct(1, "500")
	product.VAT = decimal.NewFromInt(5)

	totals := ComputeTotals([]OrderLine{{Product: product, Quantity: 2}}, types.AreaInsideDhaka, false)

	assert.Equal(t, "1000", totals.Subtotal.String())
	assert.Equal(t, "50", totals.VATAmount.String())
	assert.Equal(t, "60", totals.DeliveryCharge.String())
	assert.Equal(t, "1110", totals.TotalAmount.String())
	assert.False(t, totals.ResellerApplied)
	assert.False(t, totals.ResellerPriceTotal.Valid)

	require.Len(t, totals.Items, 1)
	assert.Equal(t, "500", totals.Items[0].UnitPrice.String())
	assert.Equal(t, "1000", totals.Items[0].Subtotal.String())
}

func TestComputeTotalsDeliveryChargeIsMax(t *testing.T) {
	cheap := testProduct(1, "100")
	bulky := testProduct(2, "100")
	bulky.DeliveryChargeInsideDhaka = decimal.NewFromInt(200)

	totals := ComputeTotals([]OrderLine{
		{Product: cheap, Quantity: 1},
		{Product: bulky, Quantity: 1},
	}, types.AreaInsideDhaka, false)

	assert.Equal(t, "200", totals.DeliveryCharge.String())
}

func TestComputeTotalsOutsideDhaka(t *testing.T) {
	product := testProduct(1, "100")

	totals := ComputeTotals([]OrderLine{{Product: product, Quantity: 1}}, types.AreaOutsideDhaka, false)

	assert.Equal(t, "120", totals.DeliveryCharge.String())
}

func TestComputeTotalsResellerPricing(t *testing.T) {
	discounted := testProduct(1, "500")
	discounted.ResellerMRPPrice = nullDecimal("400")

	plain := testProduct(2, "300")

	totals := ComputeTotals([]OrderLine{
		{Product: discounted, Quantity: 2},
		{Product: plain, Quantity: 1},
	}, types.AreaInsideDhaka, true)

	assert.Equal(t, "1100", totals.Subtotal.String())
	assert.True(t, totals.ResellerApplied)
	require.True(t, totals.ResellerPriceTotal.Valid)
	assert.Equal(t, "1100", totals.ResellerPriceTotal.Decimal.String())

	require.Len(t, totals.Items, 2)

	// Items keep the list price; the reseller price rides alongside.
	assert.Equal(t, "500", totals.Items[0].UnitPrice.String())
	require.True(t, totals.Items[0].ResellerUnitPrice.Valid)
	assert.Equal(t, "400", totals.Items[0].ResellerUnitPrice.Decimal.String())

	assert.False(t, totals.Items[1].ResellerUnitPrice.Valid)
}

func TestComputeTotalsVATRounding(t *testing.T) {
	product := testProduct(1, "99.99")
	product.VAT = decimal.RequireFromString("7.5")

	totals := ComputeTotals([]OrderLine{{Product: product, Quantity: 1}}, types.AreaInsideDhaka, false)

	// 99.99 * 7.5% = 7.49925, rounded to 7.5 at two places.
	assert.Equal(t, "7.5", totals.VATAmount.String())
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, types.AreaInsideDhaka, false)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TotalAmount.IsZero())
	assert.Empty(t, totals.Items)
}
