package wallet_controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/entities"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/helpers"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/queries"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
)

func GetWallet(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	wallet := CurrentUser.GetWallet()

	return c.Status(200).JSON(&entities.WalletEntity{
		Balance:   wallet.Balance,
		UpdatedAt: wallet.UpdatedAt,
	})
}

func GetWalletTransactions(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	errs := new(helpers.Errors)
	params := new(queries.PaginationQueries)

	if err := c.QueryParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_query"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	if params.Limit == 0 {
		params.Limit = 100
	}
	if params.Page == 0 {
		params.Page = 1
	}

	wallet := CurrentUser.GetWallet()

	var transactions []*models.WalletTransaction
	config.DataBase.
		Order("id desc").
		Offset(params.Page*params.Limit-params.Limit).
		Limit(params.Limit).
		Find(&transactions, "wallet_id = ?", wallet.ID)

	transaction_entities := make([]*entities.WalletTransactionEntity, 0)
	for _, transaction := range transactions {
		transaction_entities = append(transaction_entities, &entities.WalletTransactionEntity{
			ID:          transaction.ID,
			Amount:      transaction.Amount,
			Direction:   transaction.Direction,
			Description: transaction.Description,
			CreatedAt:   transaction.CreatedAt,
		})
	}

	c.Response().Header.Add("page", strconv.FormatInt(int64(params.Page), 10))
	c.Response().Header.Add("per-page", strconv.FormatInt(int64(len(transactions)), 10))

	return c.Status(200).JSON(transaction_entities)
}

// GetNotifications lists the current user's notifications, newest first.
func GetNotifications(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	var notifications []*models.Notification
	config.DataBase.Order("id desc").Limit(100).Find(&notifications, "user_id = ?", CurrentUser.ID)

	notification_entities := make([]*entities.NotificationEntity, 0)
	for _, notification := range notifications {
		notification_entities = append(notification_entities, &entities.NotificationEntity{
			ID:        notification.ID,
			Title:     notification.Title,
			Message:   notification.Message,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		})
	}

	return c.Status(200).JSON(notification_entities)
}
