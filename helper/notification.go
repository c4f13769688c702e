package helper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/config"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"
	"github.com/sampathraj01/Apsara-Cinemas-Backend/utils"
)

const fcmEndpoint = "https://fcm.googleapis.com/fcm/send"

var pushClient = &http.Client{Timeout: 10 * time.Second}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmMessage struct {
	To           string            `json:"to"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data"`
}

// SendPaymentSuccessPush notifies the ordering device that payment went
// through and where the invoice lives. Fire and forget: failure is logged
// to the error sink and never affects the payment transition result.
func SendPaymentSuccessPush(order model.Order, invoiceUrl, deviceToken string) {
	if deviceToken == "" {
		return
	}

	go func() {
		msg := fcmMessage{
			To: deviceToken,
			Notification: fcmNotification{
				Title: "New Order received",
				Body:  fmt.Sprintf("Order #%s - ₹%s", order.OrderNo, utils.FormatCurrency(order.Amount)),
			},
			Data: map[string]string{
				"invoiceUrl": invoiceUrl,
				"orderId":    order.OrderId,
			},
		}

		payload, err := json.Marshal(msg)
		if err != nil {
			log.Printf("Failed to build push payload for order %s: %v", order.OrderId, err)
			return
		}

		req, err := http.NewRequest(http.MethodPost, fcmEndpoint, bytes.NewReader(payload))
		if err != nil {
			log.Printf("Failed to build push request for order %s: %v", order.OrderId, err)
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "key="+config.Config("FCM_SERVER_KEY"))

		resp, err := pushClient.Do(req)
		if err != nil {
			log.Printf("Push failed for order %s: %v", order.OrderId, err)
			utils.LogError("orders", "sendpush", err, "")
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			err := fmt.Errorf("fcm returned status %d", resp.StatusCode)
			log.Printf("Push failed for order %s: %v", order.OrderId, err)
			utils.LogError("orders", "sendpush", err, "")
		}
	}()
}
