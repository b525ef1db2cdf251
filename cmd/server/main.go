package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	cartapp "github.com/wyfcoding/retailmall/internal/cart/application"
	cartdomain "github.com/wyfcoding/retailmall/internal/cart/domain"
	cartmsg "github.com/wyfcoding/retailmall/internal/cart/infrastructure/messaging"
	cartmysql "github.com/wyfcoding/retailmall/internal/cart/infrastructure/persistence/mysql"
	carthttp "github.com/wyfcoding/retailmall/internal/cart/interfaces/http"
	catalogapp "github.com/wyfcoding/retailmall/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/retailmall/internal/catalog/domain"
	catalogmsg "github.com/wyfcoding/retailmall/internal/catalog/infrastructure/messaging"
	catalogmysql "github.com/wyfcoding/retailmall/internal/catalog/infrastructure/persistence/mysql"
	cataloghttp "github.com/wyfcoding/retailmall/internal/catalog/interfaces/http"
	checkoutapp "github.com/wyfcoding/retailmall/internal/checkout/application"
	"github.com/wyfcoding/retailmall/internal/checkout/infrastructure/gateway"
	checkoutmsg "github.com/wyfcoding/retailmall/internal/checkout/infrastructure/messaging"
	checkouthttp "github.com/wyfcoding/retailmall/internal/checkout/interfaces/http"
	customerapp "github.com/wyfcoding/retailmall/internal/customer/application"
	customerdomain "github.com/wyfcoding/retailmall/internal/customer/domain"
	customermysql "github.com/wyfcoding/retailmall/internal/customer/infrastructure/persistence/mysql"
	customerhttp "github.com/wyfcoding/retailmall/internal/customer/interfaces/http"
	"github.com/wyfcoding/retailmall/pkg/cache"
	"github.com/wyfcoding/retailmall/pkg/config"
	"github.com/wyfcoding/retailmall/pkg/db"
	"github.com/wyfcoding/retailmall/pkg/logger"
	"github.com/wyfcoding/retailmall/pkg/metrics"
	"github.com/wyfcoding/retailmall/pkg/middleware"
	"github.com/wyfcoding/retailmall/pkg/mq"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "configs/config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("load config failed: %v", err))
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}); err != nil {
		panic(fmt.Sprintf("init logger failed: %v", err))
	}

	ctx := context.Background()
	log := logger.Get()

	// 指标
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New("checkout")
		if err := m.Register(); err != nil {
			panic(fmt.Sprintf("register metrics failed: %v", err))
		}
		metrics.StartHTTPServer(cfg.Metrics.Port, cfg.Metrics.Path)
	}

	database, err := db.Init(db.Config{
		Driver:             cfg.Database.Driver,
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		LogEnabled:         cfg.Database.LogEnabled,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
		Metrics:            m,
	})
	if err != nil {
		panic(fmt.Sprintf("connect db failed: %v", err))
	}
	defer database.Close()

	if err := database.AutoMigrate(
		&customerdomain.Customer{},
		&catalogdomain.Product{},
		&cartdomain.Cart{},
		&cartdomain.CartItem{},
	); err != nil {
		panic(fmt.Sprintf("auto migrate failed: %v", err))
	}

	// Redis 缓存（可选）
	var productCache catalogapp.ProductCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.New(cache.Config{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			MaxPoolSize:  cfg.Redis.MaxPoolSize,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			panic(fmt.Sprintf("connect redis failed: %v", err))
		}
		defer redisCache.Close()
		productCache = redisCache
	}

	// Kafka 生产者（可选）
	var producer *mq.KafkaProducer
	if cfg.Kafka.Enabled {
		producer, err = mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		if err != nil {
			panic(fmt.Sprintf("create kafka producer failed: %v", err))
		}
		defer producer.Close()
	}

	// 仓储与应用服务
	customerRepo := customermysql.NewCustomerRepository(database.DB)
	catalogRepo := catalogmysql.NewCatalogRepository(database.DB)
	cartRepo := cartmysql.NewCartRepository(database.DB)

	customerService := customerapp.NewCustomerService(customerRepo)
	catalogService := catalogapp.NewCatalogService(
		catalogRepo,
		productCache,
		catalogmsg.NewKafkaEventPublisher(producer, cfg.Kafka.Topic),
		time.Duration(cfg.Redis.TTL)*time.Second,
	)
	cartService := cartapp.NewCartService(
		cartRepo,
		catalogService,
		cartmsg.NewKafkaEventPublisher(producer, cfg.Kafka.Topic),
		m,
	)

	// 外部服务网关
	inventoryGateway := gateway.NewInventoryClient(
		cfg.Inventory.BaseURL,
		time.Duration(cfg.Inventory.Timeout)*time.Second,
	)
	paymentGateway := gateway.NewPaymentClient(
		cfg.Payment.BaseURL,
		time.Duration(cfg.Payment.Timeout)*time.Second,
	)

	checkoutService := checkoutapp.NewCheckoutService(
		customerService,
		cartService,
		database,
		inventoryGateway,
		paymentGateway,
		checkoutmsg.NewKafkaEventPublisher(producer, cfg.Kafka.Topic),
		m,
		log,
	)

	// HTTP 服务
	if cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.GinLoggingMiddleware(),
		middleware.GinRecoveryMiddleware(),
		middleware.GinMetricsMiddleware(m),
	)

	root := engine.Group("")
	customerhttp.NewCustomerHandler(customerService).RegisterRoutes(root)
	cataloghttp.NewCatalogHandler(catalogService).RegisterRoutes(root)
	carthttp.NewCartHandler(cartService).RegisterRoutes(root)
	checkouthttp.NewCheckoutHandler(checkoutService).RegisterRoutes(root)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info(ctx, "HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "HTTP server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "server shutdown failed", "error", err)
	}
}
