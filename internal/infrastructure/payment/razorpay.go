package payment

import (
	"context"

	razorpay "github.com/razorpay/razorpay-go"

	"courseplatform/internal/domain"
)

// RazorpayGateway создает рекуррентные подписки в Razorpay.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{client: razorpay.NewClient(keyID, keySecret)}
}

var _ domain.PaymentGateway = (*RazorpayGateway)(nil)

func (g *RazorpayGateway) CreateSubscription(ctx context.Context, planID string) (domain.GatewaySubscription, error) {
	_ = ctx // razorpay-go не принимает context

	data := map[string]interface{}{
		"plan_id":         planID,
		"customer_notify": 1,
		"total_count":     12,
	}

	sub, err := g.client.Subscription.Create(data, nil)
	if err != nil {
		return domain.GatewaySubscription{}, domain.NewGateway("subscription create failed: " + err.Error())
	}

	id, _ := sub["id"].(string)
	status, _ := sub["status"].(string)
	if id == "" {
		return domain.GatewaySubscription{}, domain.NewGateway("subscription create failed: empty subscription id")
	}

	return domain.GatewaySubscription{ID: id, Status: status}, nil
}
