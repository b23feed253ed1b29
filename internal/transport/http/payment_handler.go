package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"courseplatform/internal/usecase"
)

type PaymentHandler struct {
	subscriptions *usecase.SubscriptionUseCase
}

func NewPaymentHandler(subscriptions *usecase.SubscriptionUseCase) *PaymentHandler {
	return &PaymentHandler{subscriptions: subscriptions}
}

// POST /api/v1/subscribe
func (h *PaymentHandler) BuySubscription(c *gin.Context) {
	userID, err := parseID(c.GetString("userId"), "User")
	if err != nil {
		respondError(c, err)
		return
	}

	subscriptionID, err := h.subscriptions.Buy(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "subscriptionId": subscriptionID})
}
