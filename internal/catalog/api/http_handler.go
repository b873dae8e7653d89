package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/go-stock-manager/internal/catalog/domain"
	"github.com/ridloal/go-stock-manager/internal/catalog/repository"
	"github.com/ridloal/go-stock-manager/internal/catalog/service"
	"github.com/ridloal/go-stock-manager/internal/platform/logger"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(cs service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.POST("", h.AddProduct)
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/", h.ListProducts)
		productRoutes.PATCH("/:id", h.UpdateProduct)
		productRoutes.DELETE("/:id", h.RemoveProduct)
	}
	// Alias print_stock dari CLI: output sama dengan daftar produk.
	router.GET("/stock", h.ListProducts)
}

func (h *CatalogHandler) AddProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("AddProduct: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}

	product, err := h.catalogService.AddProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrProductConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("AddProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("ListProducts: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req domain.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("UpdateProduct: bad request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	req.ID = c.Param("id")

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingProductID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("UpdateProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) RemoveProduct(c *gin.Context) {
	err := h.catalogService.RemoveProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMissingProductID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("RemoveProduct: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}
