package validate

import (
	"fmt"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/constants"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder rejects a malformed cart before anything is written.
// amount, phoneNumber, name, seatNo and a non-empty products list are
// required; each product needs an id, a name and a positive qty.
func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseWithCode(c, fiber.StatusBadRequest,
				fmt.Sprintf("Could not parse request: %s", err.Error()), err, constants.VALIDATION_ERROR)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponseWithCode(c, fiber.StatusBadRequest,
				"amount, phoneNumber, name, seatNo and products are required", err, constants.VALIDATION_ERROR)
		}

		c.Locals("createOrderInput", input)
		return c.Next()
	}
}

// UpdatePaymentStatus requires orderid and a terminal paymentstatus; on
// success the gateway proof fields and the line items must come along.
func UpdatePaymentStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePaymentStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseWithCode(c, fiber.StatusBadRequest,
				fmt.Sprintf("Could not parse request: %s", err.Error()), err, constants.VALIDATION_ERROR)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponseWithCode(c, fiber.StatusBadRequest,
				"Required fields are missing", err, constants.VALIDATION_ERROR)
		}

		c.Locals("paymentStatusInput", input)
		return c.Next()
	}
}

func MarkPrinted() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.MarkPrintedInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseWithCode(c, fiber.StatusBadRequest,
				fmt.Sprintf("Could not parse request: %s", err.Error()), err, constants.VALIDATION_ERROR)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponseWithCode(c, fiber.StatusBadRequest,
				"orderid is required", err, constants.VALIDATION_ERROR)
		}

		c.Locals("markPrintedInput", input)
		return c.Next()
	}
}

func UpdateOrderStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponseWithCode(c, fiber.StatusBadRequest,
				fmt.Sprintf("Could not parse request: %s", err.Error()), err, constants.VALIDATION_ERROR)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponseWithCode(c, fiber.StatusBadRequest,
				"orderNo is required", err, constants.VALIDATION_ERROR)
		}

		c.Locals("updateOrderStatusInput", input)
		return c.Next()
	}
}
