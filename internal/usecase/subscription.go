package usecase

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"courseplatform/internal/domain"
)

type SubscriptionUseCase struct {
	users   domain.UserRepository
	gateway domain.PaymentGateway
	planID  string
}

func NewSubscriptionUseCase(users domain.UserRepository, gateway domain.PaymentGateway, planID string) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		users:   users,
		gateway: gateway,
		planID:  planID,
	}
}

// Buy создает подписку на стороне шлюза и зеркалит ее id/статус на юзера.
// Не идемпотентно: повторный вызов создаст вторую подписку в шлюзе и
// перезапишет локальный id.
func (uc *SubscriptionUseCase) Buy(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if user.Role == domain.RoleAdmin {
		return "", domain.NewError(http.StatusBadRequest, "Admin can't buy subscription")
	}

	sub, err := uc.gateway.CreateSubscription(ctx, uc.planID)
	if err != nil {
		return "", err
	}

	user.Subscription.ID = sub.ID
	user.Subscription.Status = sub.Status

	if err := uc.users.Update(ctx, user); err != nil {
		return "", err
	}
	return sub.ID, nil
}
