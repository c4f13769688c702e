package model

import (
	"math"
	"time"
)

type Order struct {
	OrderId             string     `gorm:"primaryKey;size:64" json:"orderid"`
	OrderNo             string     `gorm:"size:10;index" json:"orderNo"` // display number, zero padded, not unique under concurrent checkout
	CustomerName        string     `json:"name"`
	PhoneNumber         string     `json:"phoneNumber"`
	Email               string     `json:"email,omitempty"`
	SeatNo              string     `json:"seatNo"`
	Amount              float64    `json:"amount"`
	CreatedTime         time.Time  `json:"createdtime"`
	OrderDate           string     `gorm:"size:12" json:"orderDate"` // dd-mm-yyyy, venue local time
	OrderTime           string     `gorm:"size:12" json:"orderTime"`
	PaymentStatus       string     `gorm:"size:10;default:pending;index" json:"paymentstatus"`
	OrderStatus         string     `gorm:"size:16;default:not_delivered" json:"orderstatus"`
	PrintFlag           bool       `gorm:"default:false" json:"printflag"`
	RazorpayOrderId     string     `gorm:"size:64" json:"razorpay_order_id"`
	RazorpayPaymentId   *string    `gorm:"size:64" json:"razorpay_payment_id,omitempty"`
	RazorpaySignature   *string    `gorm:"size:128" json:"razorpay_signature,omitempty"`
	PaymentFailedReason *string    `json:"paymentfailedreason,omitempty"`
	InvoiceUrl          *string    `json:"invoiceurl,omitempty"`
	PaymentTimestamp    *time.Time `json:"paymenttimestamp,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderRefId;references:OrderId" json:"items,omitempty"`
}

// OrderItem rows are written once with their order and never updated
type OrderItem struct {
	OrderItemId string    `gorm:"primaryKey;size:128" json:"orderitemid"` // orderid-productid-nanos
	OrderRefId  string    `gorm:"size:64;index" json:"orderrefid"`
	ProductId   string    `gorm:"size:64" json:"productid"`
	ProductName string    `json:"productname"`
	Description string    `json:"description,omitempty"`
	Photo       string    `json:"photo,omitempty"`
	Qty         int       `json:"qty"`
	Price       float64   `json:"price"`
	Total       float64   `json:"total"`
	CreatedTime time.Time `json:"createdtime"`
}

// LineTotal is qty × unit price rounded to 2 decimals
func LineTotal(qty int, price float64) float64 {
	return math.Round(float64(qty)*price*100) / 100
}

type OrderItemInput struct {
	ProductId   string  `json:"productid" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Photo       string  `json:"photo"`
	Qty         int     `json:"qty" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"gte=0"`
	Total       float64 `json:"total"`
}

type CreateOrderInput struct {
	Amount       float64          `json:"amount" validate:"required,gt=0"`
	PhoneNumber  string           `json:"phoneNumber" validate:"required"`
	CustomerName string           `json:"name" validate:"required"`
	Email        string           `json:"email" validate:"omitempty,email"`
	SeatNo       string           `json:"seatNo" validate:"required"`
	Products     []OrderItemInput `json:"products" validate:"required,min=1,dive"`
}

type UpdatePaymentStatusInput struct {
	OrderId             string           `json:"orderid" validate:"required"`
	PaymentStatus       string           `json:"paymentstatus" validate:"required,oneof=success failed"`
	RazorpayPaymentId   string           `json:"razorpay_payment_id" validate:"required_if=PaymentStatus success"`
	RazorpaySignature   string           `json:"razorpay_signature" validate:"required_if=PaymentStatus success"`
	PaymentFailedReason string           `json:"paymentfailedreason"`
	FcmToken            string           `json:"fcmtoken"`
	Products            []OrderItemInput `json:"products" validate:"required_if=PaymentStatus success,omitempty,min=1,dive"`
}

type MarkPrintedInput struct {
	OrderId string `json:"orderid" validate:"required"`
}

type UpdateOrderStatusInput struct {
	OrderNo string `json:"orderNo" validate:"required"`
}
