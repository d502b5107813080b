package paymentgateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/evening-academy/academy-management/internal/payment"
)

// StripeGateway implements payment.Gateway on Stripe hosted checkout.
type StripeGateway struct {
	api      *client.API
	currency string
	logger   *slog.Logger
}

func NewStripeGateway(apiKey, currency string, logger *slog.Logger) *StripeGateway {
	api := client.New(apiKey, nil)
	return &StripeGateway{
		api:      api,
		currency: currency,
		logger:   logger,
	}
}

func (g *StripeGateway) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx

	customer, err := g.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe customer create: %w", err)
	}

	g.logger.Info("gateway customer created", "customer_id", customer.ID)
	return customer.ID, nil
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, customerID string, items []payment.LineItem, successURL, cancelURL string) (*payment.CheckoutSession, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, len(items))
	for i, item := range items {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Description != "" {
			productData.Description = stripe.String(item.Description)
		}
		lineItems[i] = &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(g.currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(item.Amount),
			},
			Quantity: stripe.Int64(1),
		}
	}

	params := &stripe.CheckoutSessionParams{
		Customer:   stripe.String(customerID),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session create: %w", err)
	}

	return toSession(session), nil
}

func (g *StripeGateway) RetrieveSession(ctx context.Context, sessionID string) (*payment.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session get: %w", err)
	}

	return toSession(session), nil
}

func toSession(s *stripe.CheckoutSession) *payment.CheckoutSession {
	out := &payment.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
	}
	if s.Customer != nil {
		out.CustomerID = s.Customer.ID
	}
	return out
}
