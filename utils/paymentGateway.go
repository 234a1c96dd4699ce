package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"lms/config"

	"github.com/go-resty/resty/v2"
)

// PaymentOrder is the gateway's view of a pending payment
type PaymentOrder struct {
	OrderID  string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
}

// CreatePaymentOrder registers an order with the payment gateway and returns
// its id. Amount is in the main currency unit; the gateway wants subunits.
func CreatePaymentOrder(amount float64, receipt string) (*PaymentOrder, error) {
	client := resty.New()
	resp, err := client.R().
		SetBasicAuth(config.AppConfig.PaymentApiKey, config.AppConfig.PaymentSecretKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":   int64(amount * 100),
			"currency": "INR",
			"receipt":  receipt,
		}).
		Post(config.AppConfig.PaymentApiURL + "orders")
	if err != nil {
		log.Printf("Failed to create payment order: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Payment order creation failed: %s", resp.String())
		return nil, fmt.Errorf("payment gateway returned %d", resp.StatusCode())
	}

	var order PaymentOrder
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		log.Printf("Failed to parse payment order response: %v", err)
		return nil, err
	}
	return &order, nil
}

// VerifyPayment fetches the order from the gateway and reports whether it
// has been paid
func VerifyPayment(orderID string) (bool, error) {
	client := resty.New()
	resp, err := client.R().
		SetBasicAuth(config.AppConfig.PaymentApiKey, config.AppConfig.PaymentSecretKey).
		Get(config.AppConfig.PaymentApiURL + "orders/" + orderID)
	if err != nil {
		log.Printf("Failed to verify payment: %v", err)
		return false, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Payment verification failed: %s", resp.String())
		return false, fmt.Errorf("payment gateway returned %d", resp.StatusCode())
	}

	var order PaymentOrder
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		log.Printf("Failed to parse payment verification response: %v", err)
		return false, err
	}
	return order.Status == "paid", nil
}
