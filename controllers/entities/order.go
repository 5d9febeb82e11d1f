package entities

import (
	"time"

	"github.com/bayezid0075/Dreamy-Life-v2.0/types"
	"github.com/shopspring/decimal"
)

type ProductEntity struct {
	ID               uint64              `json:"id"`
	VendorID         uint64              `json:"vendor_id"`
	Title            string              `json:"title"`
	SKU              string              `json:"sku"`
	Price            decimal.Decimal     `json:"price"`
	DiscountPrice    decimal.NullDecimal `json:"discount_price"`
	ResellerMRPPrice decimal.NullDecimal `json:"reseller_mrp_price"`
	VAT              decimal.Decimal     `json:"vat"`
}

type OrderItemEntity struct {
	ProductID         uint64              `json:"product_id"`
	Quantity          uint64              `json:"quantity"`
	UnitPrice         decimal.Decimal     `json:"unit_price"`
	ResellerUnitPrice decimal.NullDecimal `json:"reseller_unit_price"`
	Subtotal          decimal.Decimal     `json:"subtotal"`
}

type OrderEntity struct {
	ID                   uint64              `json:"id"`
	OrderNumber          string              `json:"order_number"`
	DeliveryArea         types.DeliveryArea  `json:"delivery_area"`
	Subtotal             decimal.Decimal     `json:"subtotal"`
	DeliveryCharge       decimal.Decimal     `json:"delivery_charge"`
	VATAmount            decimal.Decimal     `json:"vat_amount"`
	TotalAmount          decimal.Decimal     `json:"total_amount"`
	ResellerPriceApplied bool                `json:"reseller_price_applied"`
	OrderStatus          types.OrderStatus   `json:"order_status"`
	PaymentStatus        types.PaymentStatus `json:"payment_status"`
	Items                []OrderItemEntity   `json:"items"`
	CreatedAt            time.Time           `json:"created_at"`
}
