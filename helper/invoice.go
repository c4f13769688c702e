package helper

import (
	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/utils"
)

// InvoiceLine is one rendered row of the receipt table
type InvoiceLine struct {
	Name        string
	Description string // second line, omitted when empty
	Qty         int
	Rate        string
	Amount      string
}

// InvoiceDocument is the full print-document description for one order.
// Building it touches no network or storage; rendering happens elsewhere.
type InvoiceDocument struct {
	VenueName   string
	Title       string
	Date        string
	Phone       string
	Time        string
	Lines       []InvoiceLine
	NoItems     bool
	Total       string
	OrderNo     string
	QRContent   string
	FooterLines []string
}

// BuildInvoiceDocument composes the receipt for an order. Pure and
// deterministic: the same order and items always produce an equal document.
// The printed total is the sum of qty × rate per line, not the stored
// order amount, so a tampered item list shows up on paper.
func BuildInvoiceDocument(order model.Order, items []model.OrderItem) InvoiceDocument {
	doc := InvoiceDocument{
		VenueName: "Apsara Theatre",
		Title:     "Order Summary",
		Date:      order.OrderDate,
		Phone:     utils.FormatPhoneNumber(order.PhoneNumber),
		Time:      order.OrderTime,
		OrderNo:   order.OrderNo,
		QRContent: order.OrderId,
		FooterLines: []string{
			"Your order is being prepared in 15-20 mins.",
			"We will contact you when the food is ready.",
		},
	}

	total := 0.0
	for _, item := range items {
		lineTotal := model.LineTotal(item.Qty, item.Price)
		total += lineTotal

		doc.Lines = append(doc.Lines, InvoiceLine{
			Name:        item.ProductName,
			Description: item.Description,
			Qty:         item.Qty,
			Rate:        utils.FormatCurrency(item.Price),
			Amount:      utils.FormatCurrency(lineTotal),
		})
	}

	doc.NoItems = len(items) == 0
	doc.Total = utils.FormatCurrency(total)
	return doc
}
