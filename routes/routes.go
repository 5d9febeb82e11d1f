package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/auth"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/membership_controllers"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/referral_controllers"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/vendor_controllers"
	"github.com/bayezid0075/Dreamy-Life-v2.0/controllers/wallet_controllers"
	"github.com/bayezid0075/Dreamy-Life-v2.0/routes/middlewares"
)

func SetupRouter() *fiber.App {
	app := fiber.New()

	app.Get("/api/v2/public/timestamp", controllers.GetTimestamp)
	app.Get("/api/v2/public/memberships", controllers.GetMemberships)
	app.Get("/api/v2/public/products", controllers.GetProducts)

	app.Post("/api/v2/auth/register", auth.Register)
	app.Post("/api/v2/auth/login", auth.Login)

	app.Post("/api/v2/membership/payments/webhook", membership_controllers.PaymentWebhook)

	api := app.Group("/api/v2", middlewares.Authenticate)

	api.Post("/membership/purchases", membership_controllers.PurchaseMembership)
	api.Get("/membership/purchases", membership_controllers.GetMyPurchases)

	api.Get("/wallet", wallet_controllers.GetWallet)
	api.Get("/wallet/transactions", wallet_controllers.GetWalletTransactions)
	api.Get("/notifications", wallet_controllers.GetNotifications)

	api.Get("/referral/downlines", referral_controllers.GetDownlines)
	api.Get("/referral/commissions", referral_controllers.GetCommissions)
	api.Get("/referral/summaries", referral_controllers.GetReferralSummaries)

	api.Post("/vendors", vendor_controllers.CreateVendor)
	api.Get("/vendors", vendor_controllers.GetVendors)
	api.Post("/vendors/products", vendor_controllers.CreateProduct)
	api.Get("/vendors/products", vendor_controllers.GetMyProducts)

	api.Post("/market/orders", vendor_controllers.CreateOrder)
	api.Get("/market/orders", vendor_controllers.GetMyOrders)

	return app
}
