package service

import (
	"errors"
	"os"

	"github.com/stripe/stripe-go/v74/client"
)

var ErrMissingAPIKey = errors.New("stripe api key is not configured")

// Client wraps the Stripe SDK client together with the webhook signing key.
// One client is created at process start and shared across requests.
type Client struct {
	*client.API
	webhookSignKey string
}

func NewStripeClient() (*Client, error) {
	apiKey := os.Getenv("STRIPE_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var stripeClient client.API

	stripeClient.Init(apiKey, nil)

	return &Client{
		&stripeClient,
		os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}, nil
}

// NewStripeClientWithKeys is used by tests.
func NewStripeClientWithKeys(apiKey, webhookSignKey string) *Client {
	var stripeClient client.API

	stripeClient.Init(apiKey, nil)

	return &Client{
		&stripeClient,
		webhookSignKey,
	}
}
