package routes

import (
	"storefront/configs"
	"storefront/controllers"
	"storefront/giftwrap"
	"storefront/hooks"
	"storefront/middlewares"
	"storefront/repository"
	"storefront/services"
	"storefront/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Server is the wired HTTP storefront.
type Server struct {
	Engine *gin.Engine
	Feed   *ws.OrderFeedHub
	Hooks  *hooks.Registry
}

// NewServer builds repositories, services and controllers on db and registers
// the storefront extensions. reg may be nil to skip metrics.
func NewServer(db *gorm.DB, cfg *configs.Config, log *zap.Logger, reg *prometheus.Registry) *Server {
	registry := hooks.NewRegistry()

	productRepo := repository.NewProductRepository(db)
	metaRepo := repository.NewProductMetaRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	var metrics *giftwrap.Metrics
	var gatherer prometheus.Gatherer
	if reg != nil {
		metrics = giftwrap.NewMetrics(reg)
		gatherer = reg
	}
	giftwrap.New(metaRepo, giftwrap.Options{
		CurrencySymbol: cfg.CurrencySymbol,
		Logger:         log,
		Metrics:        metrics,
	}).Register(registry)

	feed := ws.NewOrderFeedHub(log)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	productSvc := services.NewProductService(db, productRepo, registry, log)
	cartSvc := services.NewCartService(db, cartRepo, productRepo, registry, log)
	orderSvc := services.NewOrderService(db, orderRepo, cartSvc, registry, feed, log)

	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(log))

	RegisterRoutes(r, Deps{
		JWTSecret: cfg.JWTSecret,
		Metrics:   gatherer,
		Auth:      controllers.NewAuthController(authSvc),
		Product:   controllers.NewProductController(productSvc),
		Cart:      controllers.NewCartController(cartSvc),
		Order:     controllers.NewOrderController(orderSvc),
		Admin:     controllers.NewAdminController(cartSvc, orderSvc),
		Feed:      feed,
	})

	return &Server{Engine: r, Feed: feed, Hooks: registry}
}
