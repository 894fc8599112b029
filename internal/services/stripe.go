package services

import (
	"context"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// PaymentGateway creates payment intents with the external gateway and
// returns the client-side secret used to complete the charge.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error)
}

// StripeGateway implements PaymentGateway against the Stripe API.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// CreatePaymentIntent creates a card payment intent for the given amount in
// the smallest currency unit. The currency is fixed to USD.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amountInCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountInCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}
