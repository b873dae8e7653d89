package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/go-stock-manager/internal/cart/domain"
	"github.com/ridloal/go-stock-manager/internal/cart/repository"
	"github.com/ridloal/go-stock-manager/internal/cart/service"
	catalogRepo "github.com/ridloal/go-stock-manager/internal/catalog/repository"
	"github.com/ridloal/go-stock-manager/internal/platform/logger"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cs service.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/cart")
	{
		cartRoutes.POST("", h.CreateCart)
		cartRoutes.GET("", h.ViewCart)
		cartRoutes.POST("/items", h.AddItem)
		cartRoutes.DELETE("/items/:id", h.RemoveItem)
	}
}

func (h *CartHandler) CreateCart(c *gin.Context) {
	if err := h.cartService.CreateCart(c.Request.Context()); err != nil {
		logger.Error("CreateCart: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "New cart created"})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req service.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("AddItem: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	item, err := h.cartService.AddItem(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingProductID), errors.Is(err, service.ErrMissingQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, catalogRepo.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, catalogRepo.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			var vErr *domain.ValidationError
			if errors.As(err, &vErr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error(), "problems": vErr.Problems})
				return
			}
			logger.Error("AddItem: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		}
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	err := h.cartService.RemoveItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingProductID):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrCartItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("RemoveItem: service error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (h *CartHandler) ViewCart(c *gin.Context) {
	view, err := h.cartService.ViewCart(c.Request.Context())
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Error(), "problems": vErr.Problems})
			return
		}
		logger.Error("ViewCart: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}
	c.JSON(http.StatusOK, view)
}
