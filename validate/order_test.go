package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"

	"github.com/gofiber/fiber/v2"
)

func createOrderApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Post("/order", CreateOrder(), func(c *fiber.Ctx) error {
		// reached only when validation passed
		input := c.Locals("createOrderInput").(model.CreateOrderInput)
		return c.JSON(fiber.Map{"products": len(input.Products)})
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp.StatusCode
}

func TestCreateOrderValidInput(t *testing.T) {
	status := postJSON(t, createOrderApp(t), "/order", `{
		"amount": 250,
		"phoneNumber": "9876543210",
		"name": "Raj",
		"seatNo": "F12",
		"products": [
			{"productid": "p1", "name": "Popcorn Large", "qty": 2, "price": 50},
			{"productid": "p2", "name": "Cola", "qty": 1, "price": 150}
		]
	}`)
	if status != fiber.StatusOK {
		t.Errorf("valid cart rejected with status %d", status)
	}
}

// An empty cart must be rejected before any write happens
func TestCreateOrderEmptyProducts(t *testing.T) {
	status := postJSON(t, createOrderApp(t), "/order", `{
		"amount": 250,
		"phoneNumber": "9876543210",
		"name": "Raj",
		"seatNo": "F12",
		"products": []
	}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("empty products accepted with status %d", status)
	}
}

func TestCreateOrderMissingFields(t *testing.T) {
	cases := map[string]string{
		"no amount":  `{"phoneNumber": "9876543210", "name": "Raj", "seatNo": "F12", "products": [{"productid": "p1", "name": "Cola", "qty": 1, "price": 150}]}`,
		"no phone":   `{"amount": 150, "name": "Raj", "seatNo": "F12", "products": [{"productid": "p1", "name": "Cola", "qty": 1, "price": 150}]}`,
		"no name":    `{"amount": 150, "phoneNumber": "9876543210", "seatNo": "F12", "products": [{"productid": "p1", "name": "Cola", "qty": 1, "price": 150}]}`,
		"no seat":    `{"amount": 150, "phoneNumber": "9876543210", "name": "Raj", "products": [{"productid": "p1", "name": "Cola", "qty": 1, "price": 150}]}`,
		"zero qty":   `{"amount": 150, "phoneNumber": "9876543210", "name": "Raj", "seatNo": "F12", "products": [{"productid": "p1", "name": "Cola", "qty": 0, "price": 150}]}`,
		"bad json":   `{"amount": `,
		"empty body": `{}`,
	}

	app := createOrderApp(t)
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if status := postJSON(t, app, "/order", body); status != fiber.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
		})
	}
}

func TestUpdatePaymentStatusValidation(t *testing.T) {
	app := fiber.New()
	app.Post("/payment-status", UpdatePaymentStatus(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// success without proof fields or products is malformed
	status := postJSON(t, app, "/payment-status", `{"orderid": "ord-1", "paymentstatus": "success"}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("success without proof accepted with status %d", status)
	}

	// failed needs nothing beyond orderid and status
	status = postJSON(t, app, "/payment-status", `{"orderid": "ord-1", "paymentstatus": "failed"}`)
	if status != fiber.StatusOK {
		t.Errorf("plain failed report rejected with status %d", status)
	}

	// only terminal statuses are accepted
	status = postJSON(t, app, "/payment-status", `{"orderid": "ord-1", "paymentstatus": "pending"}`)
	if status != fiber.StatusBadRequest {
		t.Errorf("pending accepted with status %d", status)
	}

	status = postJSON(t, app, "/payment-status", `{
		"orderid": "ord-1",
		"paymentstatus": "success",
		"razorpay_payment_id": "pay_123",
		"razorpay_signature": "sig",
		"products": [{"productid": "p1", "name": "Cola", "qty": 1, "price": 150}]
	}`)
	if status != fiber.StatusOK {
		t.Errorf("complete success report rejected with status %d", status)
	}
}
