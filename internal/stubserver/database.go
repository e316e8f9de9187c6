package stubserver

import (
	"context"
	"fmt"

	"github.com/Data-collector-ADIA/Front-end/internal/rpc"
)

// DatabaseServer is the stand-in persistence service.
type DatabaseServer struct {
	rpc.UnimplementedDatabaseServiceServer

	store *Store
}

// NewDatabaseServer creates a database service over the shared store.
func NewDatabaseServer(store *Store) *DatabaseServer {
	return &DatabaseServer{store: store}
}

// ListTasks returns tasks newest first with the total match count.
func (s *DatabaseServer) ListTasks(ctx context.Context, req *rpc.ListTasksRequest) (*rpc.ListTasksResponse, error) {
	tasks, total := s.store.List(req.UserID, req.Limit, req.Offset)
	return &rpc.ListTasksResponse{Tasks: tasks, Total: total}, nil
}

// GetTaskHistory returns the recorded outputs of a task.
func (s *DatabaseServer) GetTaskHistory(ctx context.Context, req *rpc.GetTaskHistoryRequest) (*rpc.GetTaskHistoryResponse, error) {
	outputs, ok := s.store.History(req.TaskID)
	if !ok {
		return &rpc.GetTaskHistoryResponse{
			Success: false,
			Message: fmt.Sprintf("Task not found: %s", req.TaskID),
		}, nil
	}
	return &rpc.GetTaskHistoryResponse{Success: true, Outputs: outputs}, nil
}

// GetTask returns a single task record.
func (s *DatabaseServer) GetTask(ctx context.Context, req *rpc.GetTaskRequest) (*rpc.GetTaskResponse, error) {
	t, ok := s.store.Task(req.TaskID)
	if !ok {
		return &rpc.GetTaskResponse{
			Success: false,
			Message: fmt.Sprintf("Task not found: %s", req.TaskID),
		}, nil
	}
	return &rpc.GetTaskResponse{Success: true, Task: t}, nil
}
