package stubserver

import (
	"context"
	"fmt"

	"github.com/Data-collector-ADIA/Front-end/internal/rpc"
	"go.uber.org/zap"
)

// BackendServer is the stand-in task-execution service.
type BackendServer struct {
	rpc.UnimplementedBackendServiceServer

	store *Store
	log   *zap.Logger
}

// NewBackendServer creates a backend service over the shared store.
func NewBackendServer(store *Store) *BackendServer {
	return &BackendServer{
		store: store,
		log:   zap.L().With(zap.String("component", "stub-backend")),
	}
}

// StartTask records a new task. The simulator picks it up from there.
func (s *BackendServer) StartTask(ctx context.Context, req *rpc.StartTaskRequest) (*rpc.StartTaskResponse, error) {
	if req.TaskPrompt == "" {
		return &rpc.StartTaskResponse{Success: false, Message: "task_prompt is required"}, nil
	}

	t := s.store.CreateTask(req.TaskPrompt, req.MaxSteps, req.UserID)
	s.log.Info("Task created",
		zap.String("task_id", t.TaskID),
		zap.String("user_id", t.UserID),
		zap.Int32("max_steps", t.MaxSteps),
		zap.String("browser", req.BrowserName),
		zap.Int32("browser_port", req.BrowserPort))

	return &rpc.StartTaskResponse{
		Success: true,
		TaskID:  t.TaskID,
		Message: "Task queued",
	}, nil
}

// GetTaskStatus reports the current lifecycle state of a task.
func (s *BackendServer) GetTaskStatus(ctx context.Context, req *rpc.GetTaskStatusRequest) (*rpc.GetTaskStatusResponse, error) {
	t, ok := s.store.Task(req.TaskID)
	if !ok {
		return &rpc.GetTaskStatusResponse{
			Success: false,
			Message: fmt.Sprintf("Task not found: %s", req.TaskID),
		}, nil
	}

	return &rpc.GetTaskStatusResponse{
		Success: true,
		Status:  t.Status,
		Message: fmt.Sprintf("Task is %s", t.Status),
	}, nil
}
