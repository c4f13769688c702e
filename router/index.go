package router

import (
	"github.com/sampathraj01/Apsara-Cinemas-Backend/handler"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/middleware"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	order := v1.Group("/order", logger.New())

	// Customer-facing checkout flow
	order.Post("/", validate.CreateOrder(), handler.AddOrder)
	order.Post("/payment-status", validate.UpdatePaymentStatus(), handler.UpdateOrderPaymentStatus)
	order.Get("/status", handler.GetOrderStatusByNo)
	order.Get("/status/:orderid", handler.GetOrderStatusById)

	// Staff counter app
	order.Get("/", middleware.Protected(), handler.GetAllOrders)
	order.Get("/print-queue", middleware.Protected(), handler.GetRecentOrders)
	order.Get("/print-feed", middleware.Protected(), websocket.New(handler.PrintFeedWebsocket))
	order.Post("/printed", middleware.Protected(), validate.MarkPrinted(), handler.MarkPrinted)
	order.Post("/delivered", middleware.Protected(), validate.UpdateOrderStatus(), handler.UpdateOrderStatus)
}
