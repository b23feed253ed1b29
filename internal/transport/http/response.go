package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"courseplatform/internal/domain"
)

// respondError отдает доменную ошибку с ее кодом,
// все остальное прячется за 500
func respondError(c *gin.Context, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		c.JSON(derr.Code, gin.H{"success": false, "message": derr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
}

// Кривой или пустой id неотличим от несуществующего ресурса
func parseID(raw, what string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewNotFound(what + " not found")
	}
	return id, nil
}
