package helper

import (
	"bytes"
	"encoding/base64"
	"html/template"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/utils"
)

// Receipt-width page. Dashed rules match the thermal printer layout the
// counter app mirrors on screen.
const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { width: 380px; margin: 0 auto; padding: 8px; font-family: Arial, sans-serif; color: #000; }
  .header { text-align: center; font-size: 24px; font-weight: bold; color: #CB202D; margin-top: 12px; }
  .subheader { font-size: 12px; color: #CB202D; margin-top: 20px; }
  .meta { display: flex; justify-content: space-between; font-size: 14px; margin-top: 20px; }
  .meta .phone { font-weight: bold; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  th { font-size: 14px; font-weight: bold; border-top: 2px dashed #000; border-bottom: 2px dashed #000; padding: 12px 0; }
  td { font-size: 16px; font-weight: bold; padding: 8px 0; }
  td.desc { font-size: 12px; padding: 0; }
  .num { text-align: center; }
  .total-row { border-top: 2px dashed #000; border-bottom: 2px dashed #000; padding: 12px 0; text-align: right; margin-top: 8px; }
  .total-label { font-size: 14px; font-weight: bold; }
  .total-amount { font-size: 26px; font-weight: bold; }
  .order-no { text-align: center; font-size: 14px; font-weight: bold; margin-top: 12px; }
  .order-no span { font-size: 18px; color: #CB202D; }
  .qr { text-align: center; margin-top: 8px; }
  .footer { text-align: center; font-size: 14px; margin-top: 24px; }
</style>
</head>
<body>
  <div class="header">{{.VenueName}}</div>
  <div class="subheader">{{.Title}}</div>
  <div class="meta"><span>Date: {{.Date}}</span><span class="phone">Ph: {{.Phone}}</span></div>
  <div class="meta"><span>Time: {{.Time}}</span></div>
  <table>
    <tr><th style="text-align:left;width:50%">Items</th><th class="num" style="width:12%">Qty</th><th class="num" style="width:15%">Rate</th><th class="num" style="width:23%">Amount</th></tr>
    {{if .NoItems}}
    <tr><td colspan="4" class="num">No items</td></tr>
    {{else}}
    {{range .Lines}}
    <tr>
      <td>{{.Name}}{{if .Description}}<div class="desc">({{.Description}})</div>{{end}}</td>
      <td class="num">{{.Qty}}</td>
      <td class="num">&#8377; {{.Rate}}</td>
      <td class="num">&#8377; {{.Amount}}</td>
    </tr>
    {{end}}
    {{end}}
  </table>
  <div class="total-row"><span class="total-label">Total &#8377; </span><span class="total-amount">{{.Total}}</span></div>
  <div class="order-no">Order No: <span># {{.OrderNo}}</span></div>
  {{if .QRData}}<div class="qr"><img src="{{.QRData}}" width="150" height="150"/></div>{{end}}
  {{range .FooterLines}}<div class="footer">{{.}}</div>{{end}}
</body>
</html>`

var invoiceTmpl = template.Must(template.New("invoice").Parse(invoiceTemplate))

type invoicePage struct {
	InvoiceDocument
	QRData template.URL
}

// RenderInvoice turns a composed document into printable HTML bytes,
// embedding the order QR as an inline PNG
func RenderInvoice(doc InvoiceDocument) ([]byte, error) {
	page := invoicePage{InvoiceDocument: doc}

	if doc.QRContent != "" {
		qrBytes, err := utils.OrderQRCode(doc.QRContent, 150)
		if err != nil {
			return nil, err
		}
		page.QRData = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes))
	}

	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
