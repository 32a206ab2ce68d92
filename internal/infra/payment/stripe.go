package payment

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	domorder "example.com/forever-shop/backend/internal/domain/order"
)

// StripeGateway translates an order into a hosted checkout session. It is
// stateless with respect to the order store; it only reads the order.
type StripeGateway struct {
	api         *client.API
	currency    string
	deliveryFee float64
}

func NewStripeGateway(secretKey, currency string, deliveryFee float64) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{
		api:         api,
		currency:    strings.ToLower(currency),
		deliveryFee: deliveryFee,
	}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, ord *domorder.Order, origin string) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(ord.Items)+1)
	for _, item := range ord.Items {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if len(item.Image) > 0 {
			product.Images = stripe.StringSlice(item.Image[:1])
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(g.currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(MinorUnits(item.Price)),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}
	lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
		PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(g.currency),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String("Delivery Fee"),
			},
			UnitAmount: stripe.Int64(MinorUnits(g.deliveryFee)),
		},
		Quantity: stripe.Int64(1),
	})

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(fmt.Sprintf("%s/verify?success=true&orderId=%s", origin, ord.ID)),
		CancelURL:          stripe.String(fmt.Sprintf("%s/verify?success=false&orderId=%s", origin, ord.ID)),
	}
	params.AddMetadata("orderId", ord.ID)
	params.AddMetadata("userId", ord.UserID)

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}
	return sess.URL, nil
}

// MinorUnits converts a major-unit amount to the integer minor-unit
// representation payment providers require, rounding to nearest.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
