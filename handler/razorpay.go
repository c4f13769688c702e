package handler

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/sampathraj01/Apsara-Cinemas-Backend/model"

	"github.com/joho/godotenv"
)

// Razorpay gateway adapter
type Razorpay struct {
	Config model.RazorpayConfig
}

var razorpayClient = &http.Client{Timeout: 15 * time.Second}

func NewRazorpay() *Razorpay {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment...")
	}
	baseURL := os.Getenv("RAZORPAY_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.razorpay.com/v1"
	}
	return &Razorpay{
		Config: model.RazorpayConfig{
			KeyId:     os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
			BaseURL:   baseURL,
		},
	}
}

// CreateOrder opens a payment transaction on the gateway. Amount is rupees;
// Razorpay wants paise.
func (r *Razorpay) CreateOrder(ctx context.Context, amount float64) (*model.RazorpayOrder, error) {
	reqBody := model.RazorpayOrderRequest{
		Amount:   int64(math.Round(amount * 100)),
		Currency: "INR",
		Receipt:  fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Config.BaseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(r.Config.KeyId, r.Config.KeySecret)

	resp, err := razorpayClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var rzErr model.RazorpayError
		if err := json.NewDecoder(resp.Body).Decode(&rzErr); err == nil && rzErr.Error.Description != "" {
			return nil, fmt.Errorf("razorpay order create failed: %s", rzErr.Error.Description)
		}
		return nil, fmt.Errorf("razorpay order create failed: status %d", resp.StatusCode)
	}

	var order model.RazorpayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyPaymentSignature checks the callback proof against the stored
// gateway order id: HMAC-SHA256 hex of "order_id|payment_id" keyed with
// the secret, as Razorpay signs it.
func (r *Razorpay) VerifyPaymentSignature(gatewayOrderId, paymentId, signature string) bool {
	if gatewayOrderId == "" || paymentId == "" || signature == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(r.Config.KeySecret))
	h.Write([]byte(gatewayOrderId + "|" + paymentId))
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
