package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Data-collector-ADIA/Front-end/internal/api"
	"github.com/Data-collector-ADIA/Front-end/internal/api/static"
	"github.com/Data-collector-ADIA/Front-end/internal/api/task"
	"github.com/Data-collector-ADIA/Front-end/internal/channels"
	"github.com/Data-collector-ADIA/Front-end/internal/pkg/config"
	"github.com/Data-collector-ADIA/Front-end/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting Data Collector Frontend Gateway")

	if err := run(cfg); err != nil {
		zap.L().Fatal("Gateway exited",
			zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Upstream channels are created lazily on first use and closed on
	// the way out.
	manager := channels.NewManager(cfg)
	defer manager.Close()

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	tasks := task.NewHandler(manager, cfg.RPCTimeout())
	assets := static.NewHandler(cfg.Static.Dir)
	api.SetupRouter(r, tasks, assets)

	srv := &http.Server{
		Addr:              cfg.GetFrontendServiceAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Print startup info
	line := strings.Repeat("=", 60)
	fmt.Println(line)
	fmt.Println("🌐 Starting Frontend Gateway")
	fmt.Println(line)
	fmt.Printf("📊 Service: Data Collector ADIA Gateway\n")
	fmt.Printf("🌐 URL: http://%s\n", cfg.GetFrontendServiceAddr())
	fmt.Printf("🤖 Backend gRPC: %s\n", cfg.GetBackendServiceAddr())
	fmt.Printf("💾 Database gRPC: %s\n", cfg.GetDatabaseServiceAddr())
	fmt.Println(line)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down gateway")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
