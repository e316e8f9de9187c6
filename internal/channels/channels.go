// Package channels owns the gRPC client connections the gateway holds
// toward its upstream services. Connections are created lazily on first
// use and shared for the life of the process.
package channels

import (
	"fmt"
	"sync"

	"github.com/Data-collector-ADIA/Front-end/internal/pkg/config"
	"github.com/Data-collector-ADIA/Front-end/internal/rpc"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Channel names understood by the manager.
const (
	Backend  = "backend"
	Database = "database"
)

// Manager hands out one shared client connection per upstream service.
type Manager struct {
	mu      sync.Mutex
	targets map[string]string
	conns   map[string]*grpc.ClientConn
	closed  bool
	log     *zap.Logger
}

// NewManager builds a manager for the upstream addresses in cfg. No
// connection is dialed until a handler asks for one.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		targets: map[string]string{
			Backend:  cfg.GetBackendServiceAddr(),
			Database: cfg.GetDatabaseServiceAddr(),
		},
		conns: make(map[string]*grpc.ClientConn),
		log:   zap.L().With(zap.String("component", "channels")),
	}
}

// Get returns the shared connection for name, creating it on first use.
// Concurrent callers get the same connection. After Close, Get fails
// instead of resurrecting connections.
func (m *Manager) Get(name string) (*grpc.ClientConn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, fmt.Errorf("channel manager is closed")
	}
	if conn, ok := m.conns[name]; ok {
		return conn, nil
	}

	target, ok := m.targets[name]
	if !ok {
		return nil, fmt.Errorf("unknown channel %q", name)
	}

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.Name)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create channel %q: %w", name, err)
	}

	m.conns[name] = conn
	m.log.Info("Channel created",
		zap.String("name", name),
		zap.String("target", target))

	return conn, nil
}

// BackendClient returns a typed stub for the backend service.
func (m *Manager) BackendClient() (rpc.BackendServiceClient, error) {
	conn, err := m.Get(Backend)
	if err != nil {
		return nil, err
	}
	return rpc.NewBackendServiceClient(conn), nil
}

// DatabaseClient returns a typed stub for the database service.
func (m *Manager) DatabaseClient() (rpc.DatabaseServiceClient, error) {
	conn, err := m.Get(Database)
	if err != nil {
		return nil, err
	}
	return rpc.NewDatabaseServiceClient(conn), nil
}

// Close closes every connection the manager created. The manager is
// unusable afterwards.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true

	var firstErr error
	for name, conn := range m.conns {
		if err := conn.Close(); err != nil {
			m.log.Error("Failed to close channel",
				zap.String("name", name),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	m.conns = nil

	return firstErr
}
