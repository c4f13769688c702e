package constants

// Stable error codes returned in the response "code" field
const (
	VALIDATION_ERROR       = "VALIDATION_ERROR"
	ALLOCATION_UNAVAILABLE = "ALLOCATION_UNAVAILABLE"
	ORDER_CREATE_FAILED    = "ORDER_CREATE_FAILED"
	PARTIAL_ORDER_WRITE    = "PARTIAL_ORDER_WRITE"
	ORDER_NOT_FOUND        = "ORDER_NOT_FOUND"
	ORDER_ALREADY_FINAL    = "ORDER_ALREADY_FINAL"
	INVOICE_LINK_MISSING   = "INVOICE_LINK_MISSING"
	GATEWAY_ERROR          = "GATEWAY_ERROR"
)

// Payment lifecycle. pending is initial, success/failed are terminal.
const (
	PAYMENT_PENDING = "pending"
	PAYMENT_SUCCESS = "success"
	PAYMENT_FAILED  = "failed"
)

// Fulfillment lifecycle, independent of payment
const (
	ORDER_NOT_DELIVERED = "not_delivered"
	ORDER_DELIVERED     = "delivered"
)

const DEFAULT_FAILED_REASON = "Unknown error"
