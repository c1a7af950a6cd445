package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bookorbit-backend-go/internal/api"
	"bookorbit-backend-go/internal/config"
	"bookorbit-backend-go/internal/core"
	"bookorbit-backend-go/internal/db"
	"bookorbit-backend-go/internal/middleware"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var zapLogger *zap.Logger
	if strings.ToLower(cfg.GinMode) == "release" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInit()
	clients, err := db.NewClients(initCtx, cfg)
	if err != nil {
		zapLogger.Fatal("failed to initialize Firebase clients", zap.Error(err))
	}
	defer clients.Close()
	zapLogger.Info("Firebase Admin SDK initialized", zap.String("project", cfg.FirebaseProjectID))

	userRepo := db.NewFirestoreUserRepository(clients.Firestore)
	bookRepo := db.NewFirestoreBookRepository(clients.Firestore)
	orderRepo := db.NewFirestoreOrderRepository(clients.Firestore)

	userService := core.NewUserService(userRepo)
	bookService := core.NewBookService(bookRepo, userService)
	orderService := core.NewOrderService(orderRepo)

	if strings.ToLower(cfg.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if cfg.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(cfg))
		zapLogger.Info("CORS enabled", zap.String("clientURL", cfg.ClientURL))
	} else {
		zapLogger.Warn("CORS disabled: CLIENT_URL is not configured")
	}

	authMW := middleware.NewAuthMiddleware(clients.Auth, zapLogger)
	api.SetupRoutes(router, zapLogger, authMW, userService, bookService, orderService)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		zapLogger.Info("starting HTTP server", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("forced shutdown", zap.Error(err))
	}
	zapLogger.Info("server exited gracefully")
}
