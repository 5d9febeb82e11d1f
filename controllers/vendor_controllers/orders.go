package vendor_controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/entities"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/helpers"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/bayezid0075/Dreamy-Life-v2.0/services/order_service"
	"github.com/bayezid0075/Dreamy-Life-v2.0/types"
)

type CheckoutItemParams struct {
	ProductID uint64 `json:"product_id" form:"product_id" validate:"required"`
	Quantity  uint64 `json:"quantity" form:"quantity" validate:"required"`
}

type CheckoutParams struct {
	CustomerName    string               `json:"customer_name" form:"customer_name" validate:"required"`
	CustomerEmail   string               `json:"customer_email" form:"customer_email" validate:"required|email"`
	CustomerPhone   string               `json:"customer_phone" form:"customer_phone" validate:"required"`
	DeliveryAddress string               `json:"delivery_address" form:"delivery_address" validate:"required"`
	DeliveryArea    types.DeliveryArea   `json:"delivery_area" form:"delivery_area" validate:"required|ValidateDeliveryArea"`
	Items           []CheckoutItemParams `json:"items" form:"items"`
}

func (p CheckoutParams) ValidateDeliveryArea(area types.DeliveryArea) bool {
	return area == types.AreaInsideDhaka || area == types.AreaOutsideDhaka
}

func orderEntity(order *models.Order) *entities.OrderEntity {
	item_entities := make([]entities.OrderItemEntity, 0)
	for _, item := range order.Items {
		item_entities = append(item_entities, entities.OrderItemEntity{
			ProductID:         item.ProductID,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice,
			ResellerUnitPrice: item.ResellerUnitPrice,
			Subtotal:          item.Subtotal,
		})
	}

	return &entities.OrderEntity{
		ID:                   order.ID,
		OrderNumber:          order.OrderNumber,
		DeliveryArea:         order.DeliveryArea,
		Subtotal:             order.Subtotal,
		DeliveryCharge:       order.DeliveryCharge,
		VATAmount:            order.VATAmount,
		TotalAmount:          order.TotalAmount,
		ResellerPriceApplied: order.ResellerPriceApplied,
		OrderStatus:          order.OrderStatus,
		PaymentStatus:        order.PaymentStatus,
		Items:                item_entities,
		CreatedAt:            order.CreatedAt,
	}
}

// CreateOrder checks out the current user's cart.
func CreateOrder(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	errs := new(helpers.Errors)
	params := new(CheckoutParams)

	if err := c.BodyParser(params); err != nil {
		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"server.method.invalid_body"},
		})
	}

	helpers.Validate(params, errs)
	if errs.Size() > 0 {
		return c.Status(422).JSON(errs)
	}

	items := make([]order_service.CartItem, 0, len(params.Items))
	for _, item := range params.Items {
		items = append(items, order_service.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := order_service.Checkout(CurrentUser, order_service.CheckoutParams{
		CustomerName:    params.CustomerName,
		CustomerEmail:   params.CustomerEmail,
		CustomerPhone:   params.CustomerPhone,
		DeliveryAddress: params.DeliveryAddress,
		DeliveryArea:    params.DeliveryArea,
		Items:           items,
	})
	if errors.Is(err, order_service.ErrEmptyCart) || errors.Is(err, order_service.ErrBadQuantity) {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{err.Error()},
		})
	}
	if errors.Is(err, order_service.ErrProductNotFound) {
		return c.Status(404).JSON(helpers.Errors{
			Errors: []string{"product.not_found"},
		})
	}
	if err != nil {
		config.Logger.Errorf("Checkout failed for user %d: %v", CurrentUser.ID, err)

		return c.Status(500).JSON(helpers.Errors{
			Errors: []string{"order.checkout_failed"},
		})
	}

	return c.Status(201).JSON(orderEntity(order))
}

// GetMyOrders lists the current user's orders, newest first.
func GetMyOrders(c *fiber.Ctx) error {
	CurrentUser := c.Locals("CurrentUser").(*models.User)

	var orders []*models.Order
	config.DataBase.Preload("Items").Order("id desc").Limit(100).Find(&orders, "user_id = ?", CurrentUser.ID)

	order_entities := make([]*entities.OrderEntity, 0)
	for _, order := range orders {
		order_entities = append(order_entities, orderEntity(order))
	}

	return c.Status(200).JSON(order_entities)
}
