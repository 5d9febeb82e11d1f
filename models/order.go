package models

import (
	"time"

	"github.com/bayezid0075/Dreamy-Life-v2.0/types"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID                   uint64              `json:"id" gorm:"primaryKey"`
	UserID               uint64              `json:"user_id" gorm:"index"`
	OrderNumber          string              `json:"order_number" gorm:"uniqueIndex;size:50"`
	CustomerName         string              `json:"customer_name" gorm:"size:200"`
	CustomerEmail        string              `json:"customer_email"`
	CustomerPhone        string              `json:"customer_phone" gorm:"size:20"`
	DeliveryAddress      string              `json:"delivery_address"`
	DeliveryArea         types.DeliveryArea  `json:"delivery_area" gorm:"size:20"`
	Subtotal             decimal.Decimal     `json:"subtotal" gorm:"type:decimal(10,2)"`
	DeliveryCharge       decimal.Decimal     `json:"delivery_charge" gorm:"type:decimal(10,2)"`
	VATAmount            decimal.Decimal     `json:"vat_amount" gorm:"type:decimal(10,2)"`
	TotalAmount          decimal.Decimal     `json:"total_amount" gorm:"type:decimal(10,2)"`
	ResellerPriceApplied bool                `json:"reseller_price_applied" gorm:"default:false"`
	ResellerPriceTotal   decimal.NullDecimal `json:"reseller_price_total" gorm:"type:decimal(10,2)"`
	OrderStatus          types.OrderStatus   `json:"order_status" gorm:"size:20;default:pending"`
	PaymentStatus        types.PaymentStatus `json:"payment_status" gorm:"size:20;default:pending"`
	Items                []OrderItem         `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

type OrderItem struct {
	ID                uint64              `json:"id" gorm:"primaryKey"`
	OrderID           uint64              `json:"order_id" gorm:"index"`
	ProductID         uint64              `json:"product_id"`
	Quantity          uint64              `json:"quantity" gorm:"default:1"`
	UnitPrice         decimal.Decimal     `json:"unit_price" gorm:"type:decimal(10,2)"`
	ResellerUnitPrice decimal.NullDecimal `json:"reseller_unit_price" gorm:"type:decimal(10,2)"`
	Subtotal          decimal.Decimal     `json:"subtotal" gorm:"type:decimal(10,2)"`
	CreatedAt         time.Time           `json:"created_at"`
}

// OrderLine pairs a product with a quantity for pricing.
type OrderLine struct {
	Product  *Product
	Quantity uint64
}

// OrderTotals is the priced shape of a cart before persistence.
type OrderTotals struct {
	Subtotal           decimal.Decimal
	DeliveryCharge     decimal.Decimal
	VATAmount          decimal.Decimal
	TotalAmount        decimal.Decimal
	ResellerApplied    bool
	ResellerPriceTotal decimal.NullDecimal
	Items              []OrderItem
}

// ComputeTotals prices a cart. When resellerPricing holds, each item with a
// reseller MRP sells at that unit price instead of the list/discount price.
// Delivery charge is the maximum per-product charge for the area, VAT is
// applied per line on the priced subtotal.
func ComputeTotals(lines []OrderLine, area types.DeliveryArea, resellerPricing bool) OrderTotals {
	totals := OrderTotals{
		Subtotal:       decimal.Zero,
		DeliveryCharge: decimal.Zero,
		VATAmount:      decimal.Zero,
	}

	hundred := decimal.NewFromInt(100)

	for _, line := range lines {
		unitPrice, applied := line.Product.UnitPrice(resellerPricing)
		quantity := decimal.NewFromInt(int64(line.Quantity))
		lineSubtotal := unitPrice.Mul(quantity)

		item := OrderItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
			Subtotal:  lineSubtotal,
		}

		if applied {
			totals.ResellerApplied = true
			item.ResellerUnitPrice = decimal.NullDecimal{Decimal: unitPrice, Valid: true}
		}

		totals.Subtotal = totals.Subtotal.Add(lineSubtotal)
		totals.VATAmount = totals.VATAmount.Add(lineSubtotal.Mul(line.Product.VAT).Div(hundred).Round(2))

		if charge := line.Product.DeliveryCharge(area); charge.GreaterThan(totals.DeliveryCharge) {
			totals.DeliveryCharge = charge
		}

		totals.Items = append(totals.Items, item)
	}

	totals.TotalAmount = totals.Subtotal.Add(totals.DeliveryCharge).Add(totals.VATAmount)

	if totals.ResellerApplied {
		totals.ResellerPriceTotal = decimal.NullDecimal{Decimal: totals.Subtotal, Valid: true}
	}

	return totals
}
