package utils

import (
	"bytes"
	"image/png"

	"github.com/skip2/go-qrcode"
)

// OrderQRCode renders an order id into a PNG QR code sized for the
// receipt footer. Medium error correction is enough for a short id.
func OrderQRCode(orderId string, size int) ([]byte, error) {
	code, err := qrcode.New(orderId, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code.Image(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
