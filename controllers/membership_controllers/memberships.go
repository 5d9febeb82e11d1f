package membership_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/entities"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/helpers"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/bayezid0075/Dreamy-Life-v2.0/services/membership_service"
)

type PurchaseParams struct {
	MembershipID uint64 `json:"membership_id" form:"membership_id" validate:"required"`
}

type WebhookParams struct {
	UserID       uint64 `json:"user_id" form:"user_id" validate:"required"`
	MembershipID uint64 `json:"membership_id" form:"membership_id" validate:"required"`
	Status       string `json:"status" form:"status" validate:"required"`
}

func newService() *membership_service.Service {
	return membership_service.New(membership_service.NewGormStore(config.DataBase))
}

// PurchaseMembership is the authenticated purchase API.
func PurchaseMembership(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	errs := new(helpers.Errors)
	params := new(PurchaseParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_body"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	purchase, err := newService().Purchase(CurrentUser, params.MembershipID)
	if errors.Is(err, membership_service.ErrMembershipNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"membership.not_found"},
		})
	}
	if err != nil {
		config.Logger.Errorf("Membership purchase failed for user %d: %v", CurrentUser.ID, err)

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"membership.purchase_failed"},
		})
	}

	return c.Status(201).JSON(&entities.MembershipPurchaseEntity{
		ID:           purchase.ID,
		MembershipID: purchase.MembershipID,
		Membership:   purchase.Membership().Name,
		IsActive:     purchase.IsActive,
		PurchasedAt:  purchase.PurchasedAt,
	})
}

// PaymentWebhook handles gateway confirmations. Repeated deliveries for the
// same (user, membership) settle on the first purchase record.
func PaymentWebhook(c *fiber.Ctx) error {
	errs := new(helpers.Errors)
	params := new(WebhookParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_body"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if params.Status != "COMPLETED" {
		return c.Status(200).JSON(fiber.Map{"ignored": true})
	}

	purchase, err := newService().ConfirmPayment(params.UserID, params.MembershipID)
	if errors.Is(err, membership_service.ErrUserNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"user.not_found"},
		})
	}
	if errors.Is(err, membership_service.ErrMembershipNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"membership.not_found"},
		})
	}
	if err != nil {
		config.Logger.Errorf("Payment webhook failed for user %d: %v", params.UserID, err)

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"membership.purchase_failed"},
		})
	}

	return c.Status(200).JSON(fiber.Map{
		"purchase_id": purchase.ID,
	})
}

// GetMyPurchases lists the current user's purchase history.
func GetMyPurchases(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	var purchases []*models.MembershipPurchase
	config.DataBase.Order("id desc").Find(&purchases, "user_id = ?", CurrentUser.ID)

	purchase_entities := make([]*entities.MembershipPurchaseEntity, 0)
	for _, purchase := range purchases {
		purchase_entities = append(purchase_entities, &entities.MembershipPurchaseEntity{
			ID:           purchase.ID,
			MembershipID: purchase.MembershipID,
			Membership:   purchase.Membership().Name,
			IsActive:     purchase.IsActive,
			PurchasedAt:  purchase.PurchasedAt,
		})
	}

	return c.Status(200).JSON(purchase_entities)
}
