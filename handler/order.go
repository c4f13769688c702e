package handler

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/constants"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/database"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/helper"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// AddOrder persists the order header, then every line item, after opening a
// payment transaction on the gateway. The header insert happens before any
// item insert; item inserts run concurrently and are jointly awaited. A
// failed item insert does not roll back the header - the caller gets an
// explicit partial-write error instead.
func AddOrder(c *fiber.Ctx) error {
	input := c.Locals("createOrderInput").(model.CreateOrderInput)
	db := database.DB

	orderNo, err := helper.NextOrderNo(db)
	if err != nil {
		utils.LogError("orders", "addorder", err, "")
		return utils.ErrorResponseWithCode(c, fiber.StatusServiceUnavailable,
			"Could not allocate an order number, please retry", err, constants.ALLOCATION_UNAVAILABLE)
	}

	razorpay := NewRazorpay()
	razorpayOrder, err := razorpay.CreateOrder(c.Context(), input.Amount)
	if err != nil {
		utils.LogError("orders", "addorder", err, "")
		return utils.ErrorResponseWithCode(c, fiber.StatusBadGateway,
			"Payment gateway is unavailable", err, constants.GATEWAY_ERROR)
	}

	now := time.Now().In(utils.VenueLocation())
	order := model.Order{
		OrderId:         uuid.NewString(),
		OrderNo:         orderNo,
		CreatedTime:     now,
		OrderDate:       now.Format("02-01-2006"),
		OrderTime:       now.Format("03:04 PM"),
		PaymentStatus:   constants.PAYMENT_PENDING,
		OrderStatus:     constants.ORDER_NOT_DELIVERED,
		RazorpayOrderId: razorpayOrder.Id,
	}
	copier.Copy(&order, &input)

	if err := db.Create(&order).Error; err != nil {
		utils.LogError("orders", "addorder", err, "")
		return utils.ErrorResponseWithCode(c, fiber.StatusInternalServerError,
			"Error adding order", err, constants.ORDER_CREATE_FAILED)
	}

	items := buildOrderItems(order.OrderId, input.Products, now)
	failedProducts := writeOrderItems(items, func(item *model.OrderItem) error {
		return db.Create(item).Error
	})

	if len(failedProducts) > 0 {
		err := fmt.Errorf("order %s is missing line items for products: %s",
			order.OrderId, strings.Join(failedProducts, ", "))
		return utils.ErrorResponseWithCode(c, fiber.StatusInternalServerError,
			"Order saved but some items were not", err, constants.PARTIAL_ORDER_WRITE)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "order added successfully", fiber.Map{
		"razorpay_order_id": razorpayOrder.Id,
		"orderId":           order.OrderId,
		"orderNo":           order.OrderNo,
		"createdtime":       order.CreatedTime,
	})
}

// buildOrderItems expands a cart into persistable line items. Item ids carry
// the order id, product id and a nanosecond stamp so repeats of the same
// product stay distinct.
func buildOrderItems(orderId string, products []model.OrderItemInput, now time.Time) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(products))
	for _, product := range products {
		items = append(items, model.OrderItem{
			OrderItemId: fmt.Sprintf("%s-%s-%d", orderId, product.ProductId, time.Now().UnixNano()),
			OrderRefId:  orderId,
			ProductId:   product.ProductId,
			ProductName: product.Name,
			Description: product.Description,
			Photo:       product.Photo,
			Qty:         product.Qty,
			Price:       product.Price,
			Total:       model.LineTotal(product.Qty, product.Price),
			CreatedTime: now,
		})
	}
	return items
}

// writeOrderItems inserts every line item concurrently and waits for all of
// them. A failed insert never stops the others; the product ids that did not
// make it are collected and returned so the caller can surface the partial
// write.
func writeOrderItems(items []model.OrderItem, insert func(*model.OrderItem) error) []string {
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failedProducts []string

	for _, item := range items {
		wg.Add(1)
		go func(item model.OrderItem) {
			defer wg.Done()
			if err := insert(&item); err != nil {
				mu.Lock()
				failedProducts = append(failedProducts, item.ProductId)
				mu.Unlock()
				utils.LogError("orderitems", "addorder", err, "")
			}
		}(item)
	}
	wg.Wait()

	return failedProducts
}

func GetAllOrders(c *fiber.Ctx) error {
	var orders []model.Order
	if err := database.DB.Order("created_time desc").Find(&orders).Error; err != nil {
		utils.LogError("orders", "getallorders", err, "")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching orders", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Orders fetched successfully", orders)
}

// GetRecentOrders returns the print queue: paid orders not yet printed,
// each with its line items
func GetRecentOrders(c *fiber.Ctx) error {
	orders, err := pendingPrintOrders(database.DB)
	if err != nil {
		utils.LogError("orders", "getrecentorders", err, "")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching print queue", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Print queue fetched successfully", fiber.Map{
		"orders": orders,
	})
}

func MarkPrinted(c *fiber.Ctx) error {
	input := c.Locals("markPrintedInput").(model.MarkPrintedInput)

	result := database.DB.Model(&model.Order{}).
		Where("order_id = ?", input.OrderId).
		Update("print_flag", true)
	if result.Error != nil {
		utils.LogError("orders", "markprinted", result.Error, "")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error marking order printed", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponseWithCode(c, fiber.StatusNotFound,
			"Order not found", nil, constants.ORDER_NOT_FOUND)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Order marked as printed", nil)
}

func pendingPrintOrders(db *gorm.DB) ([]model.Order, error) {
	var orders []model.Order
	err := db.Preload("Items").
		Where("payment_status = ? AND print_flag = ?", constants.PAYMENT_SUCCESS, false).
		Order("created_time asc").
		Find(&orders).Error
	return orders, err
}
