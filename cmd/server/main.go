package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rabbitmq/amqp091-go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"smartkuliner-seller-service/internal/config"
	"smartkuliner-seller-service/internal/controller"
	"smartkuliner-seller-service/internal/middleware"
	"smartkuliner-seller-service/internal/rabbit"
	"smartkuliner-seller-service/internal/repository"
	"smartkuliner-seller-service/internal/service"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	db := client.Database(cfg.MongoDBName)

	// Repositories and services
	orderRepo := repository.NewMongoOrderRepository(db)
	recipeRepo := repository.NewMongoRecipeRepository(db)
	likeRepo := repository.NewMongoLikeRepository(client, db)

	orderService := service.NewOrderService(orderRepo)
	analyticsService := service.NewAnalyticsService(orderRepo)
	recipeService := service.NewRecipeService(recipeRepo)
	engagementService := service.NewEngagementService(likeRepo)
	authService := service.NewAuthService(cfg.AuthURL)

	// Handlers
	orderCtrl := controller.NewOrderController(orderService, analyticsService)
	recipeCtrl := controller.NewRecipeController(recipeService, engagementService)

	// Router
	r := gin.Default()

	// Public browse
	r.GET("/recipes", recipeCtrl.GetAll)
	r.GET("/recipes/:recipeId", recipeCtrl.GetByID)

	// Authenticated routes
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(authService))

	auth.POST("/recipes/:recipeId/like", recipeCtrl.Like)
	auth.DELETE("/recipes/:recipeId/like", recipeCtrl.Unlike)

	// Seller dashboard
	seller := auth.Group("/seller")
	seller.Use(middleware.SellerOnly())
	seller.GET("/orders", orderCtrl.GetMyOrders)
	seller.GET("/orders/:orderId", orderCtrl.GetOrder)
	seller.POST("/orders/:orderId/advance", orderCtrl.AdvanceOrder)
	seller.POST("/orders/:orderId/cancel", orderCtrl.CancelOrder)
	seller.GET("/analytics/sales", orderCtrl.GetSalesReport)
	seller.POST("/recipes", recipeCtrl.Create)
	seller.PUT("/recipes/:recipeId", recipeCtrl.Update)
	seller.DELETE("/recipes/:recipeId", recipeCtrl.Delete)

	// RabbitMQ intake
	conn, err := amqp091.Dial(cfg.RabbitURL)
	if err != nil {
		logger.Fatal("rabbitmq connect failed", zap.Error(err))
	}
	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal("rabbitmq channel failed", zap.Error(err))
	}

	rabbit.SetupConsumers(ch, orderService, logger)

	logger.Info("seller service listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
