package order_service

import (
	"errors"
	"strings"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/bayezid0075/Dreamy-Life-v2.0/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product.not_found")
	ErrEmptyCart       = errors.New("order.empty_cart")
	ErrBadQuantity     = errors.New("order.non_positive_quantity")
)

type CartItem struct {
	ProductID uint64
	Quantity  uint64
}

type CheckoutParams struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
	DeliveryArea    types.DeliveryArea
	Items           []CartItem
}

// Checkout prices the cart and persists the order with its items in one
// transaction. Buyers holding an active membership get reseller unit prices
// substituted where products carry one.
func Checkout(user *models.User, params CheckoutParams) (*models.Order, error) {
	if len(params.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var order *models.Order

	err := config.DataBase.Transaction(func(tx *gorm.DB) error {
		var lines []models.OrderLine

		for _, item := range params.Items {
			if item.Quantity == 0 {
				return ErrBadQuantity
			}

			product, err := models.FindProduct(tx, item.ProductID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			if err != nil {
				return err
			}

			lines = append(lines, models.OrderLine{Product: product, Quantity: item.Quantity})
		}

		totals := models.ComputeTotals(lines, params.DeliveryArea, user.IsVerified)

		order = &models.Order{
			UserID:               user.ID,
			OrderNumber:          NewOrderNumber(),
			CustomerName:         params.CustomerName,
			CustomerEmail:        params.CustomerEmail,
			CustomerPhone:        params.CustomerPhone,
			DeliveryAddress:      params.DeliveryAddress,
			DeliveryArea:         params.DeliveryArea,
			Subtotal:             totals.Subtotal,
			DeliveryCharge:       totals.DeliveryCharge,
			VATAmount:            totals.VATAmount,
			TotalAmount:          totals.TotalAmount,
			ResellerPriceApplied: totals.ResellerApplied,
			ResellerPriceTotal:   totals.ResellerPriceTotal,
			OrderStatus:          types.OrderPending,
			PaymentStatus:        types.PaymentPending,
		}

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range totals.Items {
			totals.Items[i].OrderID = order.ID
			if err := tx.Create(&totals.Items[i]).Error; err != nil {
				return err
			}
		}

		order.Items = totals.Items

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func NewOrderNumber() string {
	return "DL-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:20]
}
