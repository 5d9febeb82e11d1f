package vendor_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/helpers"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
)

type CreateProductParams struct {
	Title                      string              `json:"title" form:"title" validate:"required"`
	Description                string              `json:"description" form:"description"`
	SKU                        string              `json:"sku" form:"sku" validate:"required"`
	CategoryID                 *uint64             `json:"category_id" form:"category_id"`
	SubCategoryID              *uint64             `json:"subcategory_id" form:"subcategory_id"`
	BrandID                    *uint64             `json:"brand_id" form:"brand_id"`
	ImageURL                   string              `json:"image_url" form:"image_url"`
	Price                      decimal.Decimal     `json:"price" form:"price" validate:"ValidatePrice"`
	DiscountPrice              decimal.NullDecimal `json:"discount_price" form:"discount_price" validate:"ValidateDiscountPrice"`
	ResellerMRPPrice           decimal.NullDecimal `json:"reseller_mrp_price" form:"reseller_mrp_price" validate:"ValidateResellerMRPPrice"`
	DeliveryChargeInsideDhaka  decimal.Decimal     `json:"delivery_charge_inside_dhaka" form:"delivery_charge_inside_dhaka"`
	DeliveryChargeOutsideDhaka decimal.Decimal     `json:"delivery_charge_outside_dhaka" form:"delivery_charge_outside_dhaka"`
	VAT                        decimal.Decimal     `json:"vat" form:"vat"`
}

func (p CreateProductParams) Messages() map[string]string {
	invalid_message := "vendor.product.invalid_{field}"

	return map[string]string{
		"required":                 "vendor.product.missing_{field}",
		"ValidatePrice":            invalid_message,
		"ValidateDiscountPrice":    invalid_message,
		"ValidateResellerMRPPrice": invalid_message,
	}
}

func (p CreateProductParams) ValidatePrice(Price decimal.Decimal) bool {
	return Price.IsPositive()
}

func (p CreateProductParams) ValidateDiscountPrice(DiscountPrice decimal.NullDecimal) bool {
	if DiscountPrice.Valid {
		return DiscountPrice.Decimal.IsPositive()
	}

	return true
}

func (p CreateProductParams) ValidateResellerMRPPrice(ResellerMRPPrice decimal.NullDecimal) bool {
	if ResellerMRPPrice.Valid {
		return ResellerMRPPrice.Decimal.IsPositive()
	}

	return true
}

func currentVendor(c *fiber.Ctx) (*models.Vendor, error) {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	var vendor *models.Vendor
	result := config.DataBase.First(&vendor, "user_id = ?", CurrentUser.ID)

	return vendor, result.Error
}

// CreateProduct lists a product under the current user's shop.
func CreateProduct(c *fiber.Ctx) error {
	vendor, err := currentVendor(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"vendor.not_found"},
		})
	}
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	errs := new(helpers.Errors)
	params := new(CreateProductParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_body"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	product := &models.Product{
		VendorID:                   vendor.ID,
		Title:                      params.Title,
		Description:                params.Description,
		SKU:                        params.SKU,
		CategoryID:                 params.CategoryID,
		SubCategoryID:              params.SubCategoryID,
		BrandID:                    params.BrandID,
		ImageURL:                   params.ImageURL,
		Price:                      params.Price,
		DiscountPrice:              params.DiscountPrice,
		ResellerMRPPrice:           params.ResellerMRPPrice,
		DeliveryChargeInsideDhaka:  params.DeliveryChargeInsideDhaka,
		DeliveryChargeOutsideDhaka: params.DeliveryChargeOutsideDhaka,
		VAT:                        params.VAT,
	}

	if result := config.DataBase.Create(product); result.Error != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"vendor.product.sku_taken"},
		})
	}

	return c.Status(201).JSON(product)
}

// GetMyProducts lists the current vendor's catalog.
func GetMyProducts(c *fiber.Ctx) error {
	vendor, err := currentVendor(c)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"vendor.not_found"},
		})
	}
	if err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	var products []*models.Product
	config.DataBase.Order("id desc").Find(&products, "vendor_id = ?", vendor.ID)

	return c.Status(200).JSON(products)
}
