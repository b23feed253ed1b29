package domain

import "context"

// GatewaySubscription — то, что возвращает платежный шлюз при создании подписки.
type GatewaySubscription struct {
	ID     string
	Status string
}

type PaymentGateway interface {
	CreateSubscription(ctx context.Context, planID string) (GatewaySubscription, error)
}
