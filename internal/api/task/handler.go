package task

import (
	"context"
	"net/http"
	"time"

	"github.com/Data-collector-ADIA/Front-end/internal/channels"
	"github.com/Data-collector-ADIA/Front-end/internal/rpc"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler translates task endpoints into backend and database service
// calls.
type Handler struct {
	channels *channels.Manager
	timeout  time.Duration
	log      *zap.Logger
}

// NewHandler creates a task handler using the given channel manager.
// Every upstream call is bounded by timeout.
func NewHandler(m *channels.Manager, timeout time.Duration) *Handler {
	return &Handler{
		channels: m,
		timeout:  timeout,
		log:      zap.L().With(zap.String("component", "tasks")),
	}
}

// callCtx bounds one upstream call. Deliberately not derived from the
// request context: a dropped HTTP client does not cancel an in-flight
// RPC.
func (h *Handler) callCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), h.timeout)
}

// StartTask submits a new task to the backend service
func (h *Handler) StartTask(c *gin.Context) {
	var body startTaskBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := translateStartTask(&body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.channels.BackendClient()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.callCtx()
	defer cancel()

	resp, err := client.StartTask(ctx, req)
	if err != nil {
		h.log.Error("StartTask call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamError(err)})
		return
	}

	h.log.Info("Task start forwarded",
		zap.String("task_id", resp.TaskID),
		zap.Bool("success", resp.Success))
	c.JSON(http.StatusOK, renderStartTask(resp))
}

// ListTasks returns recent tasks from the database service
func (h *Handler) ListTasks(c *gin.Context) {
	req, err := translateListTasks(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.channels.DatabaseClient()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.callCtx()
	defer cancel()

	resp, err := client.ListTasks(ctx, req)
	if err != nil {
		h.log.Error("ListTasks call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamError(err)})
		return
	}

	c.JSON(http.StatusOK, renderTasks(resp.Tasks))
}

// GetTask returns a single task record from the database service
func (h *Handler) GetTask(c *gin.Context) {
	taskID := c.Param("task_id")

	client, err := h.channels.DatabaseClient()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.callCtx()
	defer cancel()

	resp, err := client.GetTask(ctx, &rpc.GetTaskRequest{TaskID: taskID})
	if err != nil {
		h.log.Error("GetTask call failed",
			zap.String("task_id", taskID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamError(err)})
		return
	}
	if !resp.Success {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, renderTask(resp.Task))
}

// TaskHistory returns the recorded steps of a task from the database
// service
func (h *Handler) TaskHistory(c *gin.Context) {
	taskID := c.Param("task_id")

	client, err := h.channels.DatabaseClient()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.callCtx()
	defer cancel()

	resp, err := client.GetTaskHistory(ctx, &rpc.GetTaskHistoryRequest{TaskID: taskID})
	if err != nil {
		h.log.Error("GetTaskHistory call failed",
			zap.String("task_id", taskID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamError(err)})
		return
	}
	if !resp.Success {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	c.JSON(http.StatusOK, renderTaskOutputs(resp.Outputs))
}

// TaskStatus returns the live status of a task from the backend service
func (h *Handler) TaskStatus(c *gin.Context) {
	taskID := c.Param("task_id")

	client, err := h.channels.BackendClient()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.callCtx()
	defer cancel()

	resp, err := client.GetTaskStatus(ctx, &rpc.GetTaskStatusRequest{TaskID: taskID})
	if err != nil {
		h.log.Error("GetTaskStatus call failed",
			zap.String("task_id", taskID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamError(err)})
		return
	}

	c.JSON(http.StatusOK, renderTaskStatus(resp))
}
