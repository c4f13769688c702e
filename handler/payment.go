package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/constants"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/database"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/helper"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UpdateOrderPaymentStatus moves an order from pending to success or failed.
// Terminal states are final: a second transition is rejected, not replayed.
// On success the invoice is composed from the supplied line items, stored,
// and linked; the push notification and print feed fire after that.
func UpdateOrderPaymentStatus(c *fiber.Ctx) error {
	input := c.Locals("paymentStatusInput").(model.UpdatePaymentStatusInput)
	db := database.DB

	var order model.Order
	if err := db.First(&order, "order_id = ?", input.OrderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponseWithCode(c, fiber.StatusNotFound,
				"Order not found", nil, constants.ORDER_NOT_FOUND)
		}
		utils.LogError("orders", "updateorderpaymentstatus", err, "")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error fetching order", err)
	}

	if order.PaymentStatus != constants.PAYMENT_PENDING {
		return utils.ErrorResponseWithCode(c, fiber.StatusConflict,
			fmt.Sprintf("Order is already %s", order.PaymentStatus), nil, constants.ORDER_ALREADY_FINAL)
	}
	// The read above is only for the friendly message; the transition itself
	// is guarded again inside the UPDATE so two racing gateway callbacks
	// cannot both finalize the same order.

	if input.PaymentStatus == constants.PAYMENT_SUCCESS {
		razorpay := NewRazorpay()
		if !razorpay.VerifyPaymentSignature(order.RazorpayOrderId, input.RazorpayPaymentId, input.RazorpaySignature) {
			return utils.ErrorResponseWithCode(c, fiber.StatusBadRequest,
				"Payment signature mismatch", nil, constants.VALIDATION_ERROR)
		}
	}

	columns, err := paymentUpdateColumns(input, time.Now())
	if err != nil {
		return utils.ErrorResponseWithCode(c, fiber.StatusBadRequest, err.Error(), nil, constants.VALIDATION_ERROR)
	}

	result := pendingOrder(db, input.OrderId).Updates(columns)
	if result.Error != nil {
		utils.LogError("orders", "updateorderpaymentstatus", result.Error, "")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error updating payment status", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponseWithCode(c, fiber.StatusConflict,
			"Order is already finalized", nil, constants.ORDER_ALREADY_FINAL)
	}

	if input.PaymentStatus == constants.PAYMENT_FAILED {
		return utils.SuccessResponse(c, fiber.StatusOK, "Payment failed .", nil)
	}

	// Success path: compose invoice, store it, link it. Status is already
	// terminal at this point; a failure below leaves the order retriable by
	// the reconciler and is reported as a missing invoice link, not a
	// failed payment.
	items := invoiceItems(input.Products)

	doc := helper.BuildInvoiceDocument(order, items)
	rendered, err := helper.RenderInvoice(doc)
	if err != nil {
		utils.LogError("orders", "updateorderpaymentstatus", err, "")
		return utils.ErrorResponseWithCode(c, fiber.StatusInternalServerError,
			"Payment recorded but invoice could not be generated", err, constants.INVOICE_LINK_MISSING)
	}

	key := fmt.Sprintf("invoices/%s-%s", order.OrderId, order.OrderNo)
	invoiceUrl, err := helper.UploadInvoice(c.Context(), rendered, key)
	if err != nil {
		utils.LogError("orders", "updateorderpaymentstatus", err, "")
		return utils.ErrorResponseWithCode(c, fiber.StatusInternalServerError,
			"Payment recorded but invoice could not be stored", err, constants.INVOICE_LINK_MISSING)
	}

	if err := db.Model(&order).Update("invoice_url", invoiceUrl).Error; err != nil {
		utils.LogError("orders", "updateorderpaymentstatus", err, "")
		return utils.ErrorResponseWithCode(c, fiber.StatusInternalServerError,
			"Payment recorded but invoice could not be linked", err, constants.INVOICE_LINK_MISSING)
	}

	PublishPrintJob(order, items)
	helper.SendPaymentSuccessPush(order, invoiceUrl, input.FcmToken)
	if order.Email != "" {
		utils.SendInvoiceEmail(order.Email, utils.InvoiceEmailData{
			OrderNo:    order.OrderNo,
			Amount:     utils.FormatCurrency(order.Amount),
			InvoiceUrl: invoiceUrl,
			SeatNo:     order.SeatNo,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Payment success order placed ", fiber.Map{
		"invoiceurl": invoiceUrl,
	})
}

// pendingOrder scopes a write to an order that has not reached a terminal
// payment state yet. Putting the status condition in the UPDATE itself makes
// the transition first-writer-wins under concurrent gateway callbacks.
func pendingOrder(db *gorm.DB, orderId string) *gorm.DB {
	return db.Model(&model.Order{}).
		Where("order_id = ? AND payment_status = ?", orderId, constants.PAYMENT_PENDING)
}

// invoiceItems rebuilds the cart lines supplied with the success callback.
// They feed the invoice document and the print feed payload, so each line
// carries its computed total.
func invoiceItems(products []model.OrderItemInput) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(products))
	for _, product := range products {
		items = append(items, model.OrderItem{
			ProductName: product.Name,
			Description: product.Description,
			Qty:         product.Qty,
			Price:       product.Price,
			Total:       model.LineTotal(product.Qty, product.Price),
		})
	}
	return items
}

// paymentUpdateColumns builds the single atomic column set for a terminal
// transition. Proof fields only on success, reason only on failure; an
// invoice link is never part of a transition update.
func paymentUpdateColumns(input model.UpdatePaymentStatusInput, now time.Time) (map[string]interface{}, error) {
	columns := map[string]interface{}{
		"payment_status":    input.PaymentStatus,
		"payment_timestamp": now,
	}

	switch input.PaymentStatus {
	case constants.PAYMENT_SUCCESS:
		columns["razorpay_payment_id"] = input.RazorpayPaymentId
		columns["razorpay_signature"] = input.RazorpaySignature
	case constants.PAYMENT_FAILED:
		reason := input.PaymentFailedReason
		if reason == "" {
			reason = constants.DEFAULT_FAILED_REASON
		}
		columns["payment_failed_reason"] = reason
	default:
		return nil, fmt.Errorf("paymentstatus must be success or failed, got %q", input.PaymentStatus)
	}

	return columns, nil
}
