package handler

import (
	"errors"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/constants"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/database"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetOrderStatusById(c *fiber.Ctx) error {
	orderId := c.Params("orderid")
	if orderId == "" {
		return utils.ErrorResponseWithCode(c, fiber.StatusBadRequest,
			"orderid is required", nil, constants.VALIDATION_ERROR)
	}

	var order model.Order
	if err := database.DB.First(&order, "order_id = ?", orderId).Error; err != nil {
		return orderStatusLookupError(c, err)
	}

	return orderStatusResponse(c, order)
}

func GetOrderStatusByNo(c *fiber.Ctx) error {
	orderNo := c.Query("orderNo")
	if orderNo == "" {
		return utils.ErrorResponseWithCode(c, fiber.StatusBadRequest,
			"orderNo is required", nil, constants.VALIDATION_ERROR)
	}

	// Duplicate numbers are possible under concurrent checkout; take the
	// most recent one
	var order model.Order
	if err := database.DB.Where("order_no = ?", orderNo).
		Order("created_time desc").First(&order).Error; err != nil {
		return orderStatusLookupError(c, err)
	}

	return orderStatusResponse(c, order)
}

// UpdateOrderStatus marks an order delivered. Marking an already delivered
// order again is a no-op success.
func UpdateOrderStatus(c *fiber.Ctx) error {
	input := c.Locals("updateOrderStatusInput").(model.UpdateOrderStatusInput)
	db := database.DB

	var order model.Order
	if err := db.Where("order_no = ?", input.OrderNo).
		Order("created_time desc").First(&order).Error; err != nil {
		return orderStatusLookupError(c, err)
	}

	if order.OrderStatus == constants.ORDER_DELIVERED {
		return utils.SuccessResponse(c, fiber.StatusOK, "Order already delivered", nil)
	}

	if err := db.Model(&order).Update("order_status", constants.ORDER_DELIVERED).Error; err != nil {
		utils.LogError("orders", "updateorderstatus", err, "")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error updating order status", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Order status updated to 'delivered' successfully", nil)
}

func orderStatusLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponseWithCode(c, fiber.StatusNotFound,
			"Order not found", nil, constants.ORDER_NOT_FOUND)
	}
	utils.LogError("orders", "getorderstatus", err, "")
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching order status", err)
}

func orderStatusResponse(c *fiber.Ctx, order model.Order) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Order status fetched successfully", fiber.Map{
		"orderid":       order.OrderId,
		"orderNo":       order.OrderNo,
		"orderstatus":   order.OrderStatus,
		"paymentstatus": order.PaymentStatus,
		"name":          order.CustomerName,
		"seatNo":        order.SeatNo,
		"amount":        order.Amount,
	})
}
