package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/entities"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
)

func GetTimestamp(c *fiber.Ctx) error {
	return c.Status(200).JSON(time.Now().Unix())
}

// GetMemberships lists the plans. The list only changes on reseed, which
// invalidates the key, so it is served from redis with a short TTL.
func GetMemberships(c *fiber.Ctx) error {
	membership_entities := make([]*entities.MembershipEntity, 0)

	if err := config.Redis.GetKey(models.MembershipsCacheKey, &membership_entities); err == nil {
		return c.Status(200).JSON(membership_entities)
	}

	var memberships []*models.Membership
	config.DataBase.Order("price asc").Find(&memberships)

	for _, membership := range memberships {
		membership_entities = append(membership_entities, &entities.MembershipEntity{
			ID:          membership.ID,
			Name:        membership.Name,
			Price:       membership.Price,
			Description: membership.Description,
		})
	}

	if err := config.Redis.SetKey(models.MembershipsCacheKey, membership_entities, 5*time.Minute); err != nil {
		config.Logger.Warnf("Failed to cache memberships: %v", err)
	}

	return c.Status(200).JSON(membership_entities)
}

// GetProducts is the public marketplace listing.
func GetProducts(c *fiber.Ctx) error {
	var products []*models.Product

	config.DataBase.Order("id desc").Limit(100).Find(&products)

	product_entities := make([]*entities.ProductEntity, 0)
	for _, product := range products {
		product_entities = append(product_entities, &entities.ProductEntity{
			ID:               product.ID,
			VendorID:         product.VendorID,
			Title:            product.Title,
			SKU:              product.SKU,
			Price:            product.Price,
			DiscountPrice:    product.DiscountPrice,
			ResellerMRPPrice: product.ResellerMRPPrice,
			VAT:              product.VAT,
		})
	}

	return c.Status(200).JSON(product_entities)
}
