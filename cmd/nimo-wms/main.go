package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitfantasy/nimo-wms/internal/config"
	"github.com/bitfantasy/nimo-wms/internal/middleware"
	"github.com/bitfantasy/nimo-wms/internal/wms/entity"
	"github.com/bitfantasy/nimo-wms/internal/wms/handler"
	"github.com/bitfantasy/nimo-wms/internal/wms/repository"
	"github.com/bitfantasy/nimo-wms/internal/wms/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// 加载 .env 文件
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化日志
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting nimo-wms service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// 初始化数据库
	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// AutoMigrate WMS tables
	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to auto-migrate WMS tables", zap.Error(err))
	}
	zapLogger.Info("WMS database migration completed")

	// 初始化 Redis；连不上只降级看板缓存，不阻塞启动
	rdb := initRedis(cfg.Redis)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		zapLogger.Warn("Redis unavailable, dashboard cache disabled", zap.Error(err))
		rdb = nil
	}

	// 初始化 WMS 依赖
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, db)
	handlers := handler.NewHandlers(services)

	// 确定端口
	port := os.Getenv("WMS_PORT")
	if port == "" {
		port = fmt.Sprintf("%d", cfg.Server.Port)
	}
	if port == "0" || port == "" {
		port = "8082"
	}

	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建路由
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	// 健康检查
	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "nimo-wms"})
	})
	router.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "nimo-wms"})
	})

	// 版本信息
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":    "nimo-wms",
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	RegisterRoutes(router, handlers, cfg.JWT.Secret)

	// 创建HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		zapLogger.Info("WMS Server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down WMS server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("WMS Server exited")
}

// RegisterRoutes 挂载 WMS API。路径沿用上游前端的操作名
// （CreateData/EditData/DeleteData/FetchData 等），便于前端无改动迁移。
func RegisterRoutes(router *gin.Engine, handlers *handler.Handlers, jwtSecret string) {
	v1 := router.Group("/api/v1")
	v1.Use(middleware.JWTAuth(jwtSecret))
	{
		// 看板
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/Summary", handlers.Dashboard.Summary)
		}

		// 收货管理
		receiving := v1.Group("/receiving")
		{
			receiving.POST("/CreateData", handlers.Receiving.CreateData)
			receiving.PUT("/EditData", handlers.Receiving.EditData)
			receiving.DELETE("/DeleteData", middleware.RequireRole("warehouse-manager"), handlers.Receiving.DeleteData)
			receiving.GET("/FetchData", handlers.Receiving.FetchData)
			receiving.PUT("/UpdateStatus", middleware.RequireRole("warehouse-manager", "qa"), handlers.Receiving.UpdateStatus)
			receiving.POST("/PostInventoryData", middleware.RequireRole("warehouse-manager"), handlers.Receiving.PostInventoryData)
			receiving.GET("/FetchPO", handlers.Receiving.FetchPO)
			receiving.GET("/ExportData", handlers.Receiving.ExportData)
		}

		// 库存管理
		inventory := v1.Group("/inventory")
		{
			inventory.POST("/CreateData", handlers.Inventory.CreateData)
			inventory.PUT("/EditData", handlers.Inventory.EditData)
			inventory.DELETE("/DeleteData", middleware.RequireRole("warehouse-manager"), handlers.Inventory.DeleteData)
			inventory.GET("/FetchData", handlers.Inventory.FetchData)
			inventory.GET("/FetchProduct", handlers.Inventory.FetchProduct)
		}

		// 补货提醒
		reorders := v1.Group("/reorders")
		{
			reorders.POST("/CreateData", handlers.Reorder.CreateData)
			reorders.PUT("/EditData", handlers.Reorder.EditData)
			reorders.DELETE("/DeleteData", middleware.RequireRole("warehouse-manager"), handlers.Reorder.DeleteData)
			reorders.GET("/FetchData", handlers.Reorder.FetchData)
			reorders.GET("/FetchSupplier", handlers.Reorder.FetchSupplier)
		}

		// 采购单
		purchaseOrders := v1.Group("/purchase-orders")
		{
			purchaseOrders.POST("/CreateData", handlers.PurchaseOrder.CreateData)
			purchaseOrders.PUT("/EditData", handlers.PurchaseOrder.EditData)
			purchaseOrders.DELETE("/DeleteData", middleware.RequireRole("warehouse-manager", "buyer"), handlers.PurchaseOrder.DeleteData)
			purchaseOrders.GET("/FetchData", handlers.PurchaseOrder.FetchData)
		}

		// 库存调拨
		transfers := v1.Group("/transfers")
		{
			transfers.POST("/CreateData", handlers.Transfer.CreateData)
			transfers.PUT("/EditData", handlers.Transfer.EditData)
			transfers.DELETE("/DeleteData", middleware.RequireRole("warehouse-manager"), handlers.Transfer.DeleteData)
			transfers.GET("/FetchData", handlers.Transfer.FetchData)
			transfers.GET("/FetchProduct", handlers.Transfer.FetchProduct)
		}

		// 出库单
		stockouts := v1.Group("/stockouts")
		{
			stockouts.POST("/CreateData", handlers.StockOut.CreateData)
			stockouts.PUT("/EditData", handlers.StockOut.EditData)
			stockouts.DELETE("/DeleteData", middleware.RequireRole("warehouse-manager"), handlers.StockOut.DeleteData)
			stockouts.GET("/FetchData", handlers.StockOut.FetchData)
		}

		// 供应商档案
		suppliers := v1.Group("/suppliers")
		{
			suppliers.POST("/CreateData", handlers.Supplier.CreateData)
			suppliers.PUT("/EditData", handlers.Supplier.EditData)
			suppliers.DELETE("/DeleteData", middleware.RequireRole("warehouse-manager"), handlers.Supplier.DeleteData)
			suppliers.GET("/FetchData", handlers.Supplier.FetchData)
		}
	}
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}
	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}
