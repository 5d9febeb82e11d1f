package vendor_controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/helpers"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
)

type CreateVendorParams struct {
	ShopName  string `json:"shop_name" form:"shop_name" validate:"required"`
	Address   string `json:"address" form:"address" validate:"required"`
	BannerURL string `json:"banner_url" form:"banner_url"`
}

// CreateVendor registers the current user's shop. One shop per user.
func CreateVendor(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	errs := new(helpers.Errors)
	params := new(CreateVendorParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_body"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	var count int64
	config.DataBase.Model(&models.Vendor{}).Where("user_id = ?", CurrentUser.ID).Count(&count)
	if count > 0 {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{"vendor.already_exists"},
		})
	}

	vendor := &models.Vendor{
		UserID:       CurrentUser.ID,
		ShopName:     params.ShopName,
		Address:      params.Address,
		BannerURL:    params.BannerURL,
		MemberStatus: CurrentUser.MemberStatus,
	}

	if result := config.DataBase.Create(vendor); result.Error != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.internal_error"},
		})
	}

	return c.Status(201).JSON(vendor)
}

func GetVendors(c *fiber.Ctx) error {
	var vendors []*models.Vendor

	config.DataBase.Order("id desc").Limit(100).Find(&vendors)

	return c.Status(200).JSON(vendors)
}
