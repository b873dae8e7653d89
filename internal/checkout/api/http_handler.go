package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	cartDomain "github.com/ridloal/go-stock-manager/internal/cart/domain"
	"github.com/ridloal/go-stock-manager/internal/checkout/service"
	"github.com/ridloal/go-stock-manager/internal/platform/logger"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(cs service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: cs}
}

func (h *CheckoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/checkout", h.Checkout)
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	receipt, err := h.checkoutService.Checkout(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		var vErr *cartDomain.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error(), "problems": vErr.Problems})
			return
		}
		logger.Error("Checkout: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to checkout"})
		return
	}

	c.JSON(http.StatusOK, receipt)
}
