package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Response envelope used by the counter app: {success, message, color, data}

func SuccessResponse(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"color":   "success",
		"data":    data,
	})
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"color":   "warning",
		"error":   errMsg,
	})
}

// ErrorResponseWithCode adds a stable machine-readable code for callers
// that branch on the failure class rather than the message.
func ErrorResponseWithCode(c *fiber.Ctx, status int, message string, err error, code string) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"color":   "warning",
		"code":    code,
		"error":   errMsg,
	})
}

// VenueLocation is the fixed venue timezone used for order date/time snapshots
func VenueLocation() *time.Location {
	return time.FixedZone("IST", 5*3600+1800)
}
