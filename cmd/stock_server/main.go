// stock_server mengekspos operasi katalog, cart, dan checkout lewat HTTP.
// Backend penyimpanan dipilih lewat STORAGE_DRIVER: "json" (default, dua
// dokumen JSON seperti CLI) atau "postgres".
package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	cartAPI "github.com/ridloal/go-stock-manager/internal/cart/api"
	cartRepo "github.com/ridloal/go-stock-manager/internal/cart/repository"
	cartService "github.com/ridloal/go-stock-manager/internal/cart/service"
	catalogAPI "github.com/ridloal/go-stock-manager/internal/catalog/api"
	catalogRepo "github.com/ridloal/go-stock-manager/internal/catalog/repository"
	catalogService "github.com/ridloal/go-stock-manager/internal/catalog/service"
	checkoutAPI "github.com/ridloal/go-stock-manager/internal/checkout/api"
	checkoutService "github.com/ridloal/go-stock-manager/internal/checkout/service"
	"github.com/ridloal/go-stock-manager/internal/platform/config"
	"github.com/ridloal/go-stock-manager/internal/platform/database"
	"github.com/ridloal/go-stock-manager/internal/platform/jsonstore"
	"github.com/ridloal/go-stock-manager/internal/platform/logger"
)

func buildRepositories() (catalogRepo.ProductRepository, cartRepo.CartRepository, func(), error) {
	switch driver := config.StorageDriver(); driver {
	case "postgres":
		dbCfg := config.LoadStockDBConfig()
		db, err := database.Connect(dbCfg.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		ctx := context.Background()
		if err := catalogRepo.EnsureProductSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		if err := cartRepo.EnsureCartSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return catalogRepo.NewPostgresProductRepository(db),
			cartRepo.NewPostgresCartRepository(db),
			func() { db.Close() }, nil
	case "json":
		storeCfg := config.LoadStoreConfig()
		store := jsonstore.New(storeCfg.DataDir)
		return catalogRepo.NewJSONProductRepository(store, storeCfg.ProductsDoc),
			cartRepo.NewJSONCartRepository(store, storeCfg.CartDoc),
			func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// startLowStockWatcher menjadwalkan job yang menulis warning untuk produk
// dengan stok di bawah atau sama dengan threshold. Hanya observasi, tidak
// mengubah data.
func startLowStockWatcher(catalog catalogService.CatalogService) *cron.Cron {
	cfg := config.LoadWatcherConfig()
	scheduler := cron.New(cron.WithSeconds())

	scheduler.AddFunc(cfg.Schedule, func() {
		products, err := catalog.ListProducts(context.Background())
		if err != nil {
			logger.Error("LowStockWatcher: failed to list products", err)
			return
		}
		for _, p := range products {
			if p.Quantity <= cfg.Threshold {
				logger.Warn(fmt.Sprintf("LowStockWatcher: product %s (%s) is low on stock: %d left", p.ID, p.Name, p.Quantity))
			}
		}
	})
	scheduler.Start()
	logger.Info(fmt.Sprintf("Low stock watcher initialized with spec '%s' and threshold %d", cfg.Schedule, cfg.Threshold))
	return scheduler
}

func main() {
	serverCfg := config.LoadServerConfig("8085")

	logger.Info("Starting Stock Manager Server...")

	productRepository, cartRepository, closeRepos, err := buildRepositories()
	if err != nil {
		logger.Error("Failed to set up storage for Stock Manager Server", err)
		return
	}
	defer closeRepos()

	// Setup Dependencies
	catalogSvc := catalogService.NewCatalogService(productRepository)
	cartSvc := cartService.NewCartService(cartRepository, productRepository)
	checkoutSvc := checkoutService.NewCheckoutService(cartRepository, productRepository)

	catalogHandler := catalogAPI.NewCatalogHandler(catalogSvc)
	cartHandler := cartAPI.NewCartHandler(cartSvc)
	checkoutHandler := checkoutAPI.NewCheckoutHandler(checkoutSvc)

	scheduler := startLowStockWatcher(catalogSvc)
	defer scheduler.Stop()

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false

	apiV1 := router.Group("/api/v1")
	catalogHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	checkoutHandler.RegisterRoutes(apiV1)

	logger.Info("Stock Manager Server running on port " + serverCfg.Port)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run Stock Manager Server", err)
	}
}
