package models

import (
	"time"

	"github.com/bayezid0075/Dreamy-Life-v2.0/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Vendor struct {
	ID            uint64    `json:"id" gorm:"primaryKey"`
	UserID        uint64    `json:"user_id" gorm:"uniqueIndex"`
	ShopName      string    `json:"shop_name" gorm:"size:200"`
	Address       string    `json:"address" gorm:"size:255"`
	BannerURL     string    `json:"banner_url"`
	MemberStatus  string    `json:"member_status" gorm:"default:Normal"`
	PaymentStatus bool      `json:"payment_status" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Category struct {
	ID   uint64 `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100"`
}

type SubCategory struct {
	ID         uint64 `json:"id" gorm:"primaryKey"`
	CategoryID uint64 `json:"category_id" gorm:"index"`
	Name       string `json:"name" gorm:"size:100"`
}

type Brand struct {
	ID   uint64 `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100"`
}

type Product struct {
	ID                         uint64              `json:"id" gorm:"primaryKey"`
	VendorID                   uint64              `json:"vendor_id" gorm:"index"`
	Title                      string              `json:"title" gorm:"size:200"`
	Description                string              `json:"description"`
	SKU                        string              `json:"sku" gorm:"uniqueIndex;size:100"`
	CategoryID                 *uint64             `json:"category_id"`
	SubCategoryID              *uint64             `json:"subcategory_id"`
	BrandID                    *uint64             `json:"brand_id"`
	ImageURL                   string              `json:"image_url"`
	Price                      decimal.Decimal     `json:"price" gorm:"type:decimal(10,2)" validate:"ValidatePrice"`
	DiscountPrice              decimal.NullDecimal `json:"discount_price" gorm:"type:decimal(10,2)"`
	ResellerMRPPrice           decimal.NullDecimal `json:"reseller_mrp_price" gorm:"type:decimal(10,2)"`
	DeliveryChargeInsideDhaka  decimal.Decimal     `json:"delivery_charge_inside_dhaka" gorm:"type:decimal(10,2)"`
	DeliveryChargeOutsideDhaka decimal.Decimal     `json:"delivery_charge_outside_dhaka" gorm:"type:decimal(10,2)"`
	VAT                        decimal.Decimal     `json:"vat" gorm:"type:decimal(5,2)"`
	CreatedAt                  time.Time           `json:"created_at"`
	UpdatedAt                  time.Time           `json:"updated_at"`
}

func (p Product) ValidatePrice(Price decimal.Decimal) bool {
	return Price.IsPositive()
}

// UnitPrice is the price one unit sells at for the given buyer: the reseller
// MRP when the buyer qualifies and the product carries one, the discount
// price when set, the list price otherwise.
func (p *Product) UnitPrice(resellerPricing bool) (price decimal.Decimal, resellerApplied bool) {
	if resellerPricing && p.ResellerMRPPrice.Valid {
		return p.ResellerMRPPrice.Decimal, true
	}

	if p.DiscountPrice.Valid {
		return p.DiscountPrice.Decimal, false
	}

	return p.Price, false
}

func (p *Product) DeliveryCharge(area types.DeliveryArea) decimal.Decimal {
	if area == types.AreaInsideDhaka {
		return p.DeliveryChargeInsideDhaka
	}

	return p.DeliveryChargeOutsideDhaka
}

func FindProduct(db *gorm.DB, id uint64) (*Product, error) {
	var product *Product

	if result := db.First(&product, "id = ?", id); result.Error != nil {
		return nil, result.Error
	}

	return product, nil
}
