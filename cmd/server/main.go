package main

import (
	"os"
	"strconv"

	"debatearena/config"
	"debatearena/controllers"
	"debatearena/db"
	"debatearena/routes"
	"debatearena/store"
	"debatearena/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	logger, err := utils.InitLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := db.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	logger.Info("connected to Redis and MongoDB")

	controllers.Init(db.GetRedisClient(), store.NewProfileStore(db.MongoDatabase))
	utils.SeedDemoData()

	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	logger.Info("server starting", zap.String("port", port))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CorsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Admin-Secret"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	routes.SetupUserRoutes(router)
	routes.SetupDebateRoutes(router)
	routes.SetupAdminRoutes(router, cfg.Admin.Secret)

	router.GET("/openapi.json", controllers.GetOpenAPISchema)
	router.GET("/ping", controllers.Ping)

	return router
}
