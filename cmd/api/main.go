package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/odanga/stockledger-api/internal/application/service"
	"github.com/odanga/stockledger-api/internal/config"
	"github.com/odanga/stockledger-api/internal/infrastructure/persistence"
	"github.com/odanga/stockledger-api/internal/infrastructure/store"
	"github.com/odanga/stockledger-api/internal/presentation/http/handler"
	"github.com/odanga/stockledger-api/internal/presentation/http/routes"
	"github.com/odanga/stockledger-api/pkg/logger"
	"github.com/odanga/stockledger-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logging
	logger.Init(cfg.App.Name, cfg.App.Env != "production")
	logger.SetLevel(cfg.App.LogLevel)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Hydrate the in-memory state from the snapshot file, then attach the
	// save observer. Attaching after hydration keeps startup from rewriting
	// the file with a partially loaded state.
	fileStore := persistence.NewFileStore(cfg.Snapshot.Path)
	st := store.New()
	st.Hydrate(fileStore.Load())
	st.OnChange(fileStore.Save)

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	productRepo := store.NewProductRepository(st)
	saleRepo := store.NewSaleRepository(st)
	damageRepo := store.NewDamageRepository(st)
	ledgerRepo := store.NewLedgerRepository(st)

	// Initialize services
	authService := service.NewAuthService(cfg.Admin.Email, cfg.Admin.Password, jwtManager)
	catalogService := service.NewCatalogService(productRepo, cfg.Inventory.LowStockThreshold)
	saleService := service.NewSaleService(saleRepo, productRepo, ledgerRepo)
	damageService := service.NewDamageService(damageRepo, productRepo, ledgerRepo)
	dashboardService := service.NewDashboardService(productRepo, saleRepo, damageRepo, cfg.Inventory.LowStockThreshold)
	exportService := service.NewExportService(saleRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(catalogService),
		Sale:      handler.NewSaleHandler(saleService, exportService),
		Damage:    handler.NewDamageHandler(damageService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
