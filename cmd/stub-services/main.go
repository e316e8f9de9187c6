package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Data-collector-ADIA/Front-end/internal/pkg/config"
	"github.com/Data-collector-ADIA/Front-end/internal/pkg/logger"
	"github.com/Data-collector-ADIA/Front-end/internal/rpc"
	"github.com/Data-collector-ADIA/Front-end/internal/stubserver"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
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

	logger.Info("Starting stub backend and database services")

	if err := run(cfg); err != nil {
		zap.L().Fatal("Stub services exited",
			zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := stubserver.NewStore()

	backendSrv := grpc.NewServer()
	rpc.RegisterBackendServiceServer(backendSrv, stubserver.NewBackendServer(store))

	databaseSrv := grpc.NewServer()
	rpc.RegisterDatabaseServiceServer(databaseSrv, stubserver.NewDatabaseServer(store))

	// Print startup info
	line := strings.Repeat("=", 60)
	fmt.Println(line)
	fmt.Println("🚀 Starting Stub Services")
	fmt.Println(line)
	fmt.Printf("🤖 Backend gRPC: %s\n", cfg.GetBackendServiceAddr())
	fmt.Printf("💾 Database gRPC: %s\n", cfg.GetDatabaseServiceAddr())
	fmt.Println(line)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return serveGRPC(ctx, backendSrv, cfg.GetBackendServiceAddr())
	})
	g.Go(func() error {
		return serveGRPC(ctx, databaseSrv, cfg.GetDatabaseServiceAddr())
	})
	g.Go(func() error {
		store.Simulate(ctx, 2*time.Second)
		return nil
	})

	return g.Wait()
}

// serveGRPC runs one gRPC server until ctx is cancelled, then stops it
// gracefully.
func serveGRPC(ctx context.Context, srv *grpc.Server, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	logger.Info("gRPC server listening", zap.String("addr", addr))
	if err := srv.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve on %s: %w", addr, err)
	}
	return nil
}
