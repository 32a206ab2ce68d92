package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	domorder "example.com/forever-shop/backend/internal/domain/order"
	orderuc "example.com/forever-shop/backend/internal/usecase/order"
)

type RazorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
	currency  string
}

func NewRazorpayGateway(keyID, keySecret, currency string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
		currency:  currency,
	}
}

// CreateProviderOrder opens a Razorpay order tagged with the local order id
// as receipt and in the notes, so the provider side can be traced back.
func (g *RazorpayGateway) CreateProviderOrder(ctx context.Context, ord *domorder.Order) (*orderuc.ProviderOrder, error) {
	data := map[string]interface{}{
		"amount":   MinorUnits(ord.Amount),
		"currency": g.currency,
		"receipt":  ord.ID,
		"notes": map[string]interface{}{
			"orderId": ord.ID,
			"userId":  ord.UserID,
		},
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}

	id, ok := body["id"].(string)
	if !ok {
		return nil, fmt.Errorf("razorpay: order response missing id")
	}
	return &orderuc.ProviderOrder{
		ID:       id,
		Amount:   MinorUnits(ord.Amount),
		Currency: g.currency,
	}, nil
}

// VerifySignature recomputes HMAC-SHA256 over "providerOrderID|paymentID"
// with the shared secret and compares it to the supplied hex signature.
func (g *RazorpayGateway) VerifySignature(providerOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(providerOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}
