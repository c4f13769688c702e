package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"strconv"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/config"

	"gopkg.in/gomail.v2"
)

// InvoiceEmailData feeds the payment receipt mail template
type InvoiceEmailData struct {
	OrderNo    string
	Amount     string
	InvoiceUrl string
	SeatNo     string
}

const invoiceEmailTemplate = `<html><body style="font-family:Arial,sans-serif">
<h2 style="color:#CB202D">Apsara Theatre</h2>
<p>Payment received for order <b># {{.OrderNo}}</b> (seat {{.SeatNo}}).</p>
<p>Amount paid: <b>₹ {{.Amount}}</b></p>
<p><a href="{{.InvoiceUrl}}">Download your invoice</a></p>
<p>Your order is being prepared in 15-20 mins.</p>
</body></html>`

var invoiceEmailTmpl = template.Must(template.New("invoice_email").Parse(invoiceEmailTemplate))

// SendInvoiceEmail sends the receipt mail (async so it never delays the response)
func SendInvoiceEmail(to string, data InvoiceEmailData) {
	go func() {
		var body bytes.Buffer
		if err := invoiceEmailTmpl.Execute(&body, data); err != nil {
			log.Printf("Failed to render invoice email: %v", err)
			return
		}

		m := gomail.NewMessage()
		m.SetHeader("From", config.Config("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Payment received - Order #"+data.OrderNo)
		m.SetBody("text/html", body.String())

		if err := dialer().DialAndSend(m); err != nil {
			log.Printf("Failed to send invoice email: %v", err)
		}
	}()
}

// SendSalesReportEmail mails the daily summary with the CSV attached
func SendSalesReportEmail(to, subject, htmlBody, attachmentName string, attachment []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", config.Config("SMTP_FROM"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))

	return dialer().DialAndSend(m)
}

func dialer() *gomail.Dialer {
	port, err := strconv.Atoi(config.ConfigDefault("SMTP_PORT", "587"))
	if err != nil {
		log.Printf("Invalid SMTP_PORT: %v", err)
		port = 587
	}
	return gomail.NewDialer(
		config.Config("SMTP_HOST"),
		port,
		config.Config("SMTP_USERNAME"),
		config.Config("SMTP_PASSWORD"),
	)
}
