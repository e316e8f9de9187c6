package model

import "encoding/json"

// Task statuses reported by the backend.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// Task represents a task record as rendered to HTTP clients.
type Task struct {
	TaskID      string      `json:"task_id"`
	TaskPrompt  string      `json:"task_prompt"`
	MaxSteps    int32       `json:"max_steps"`
	Status      string      `json:"status"` // pending, running, completed, failed, cancelled
	UserID      string      `json:"user_id"`
	CreatedAt   int64       `json:"created_at"`
	UpdatedAt   int64       `json:"updated_at"`
	FinalResult interface{} `json:"final_result,omitempty"`
}

// TaskOutput represents one recorded step of a task as rendered to HTTP
// clients.
type TaskOutput struct {
	OutputID   int64       `json:"output_id"`
	TaskID     string      `json:"task_id"`
	OutputType string      `json:"output_type"`
	StepData   interface{} `json:"step_data"`
	StepNumber int32       `json:"step_number"`
	Timestamp  int64       `json:"timestamp"`
}

// StartTaskResult represents the response to a task start request.
type StartTaskResult struct {
	Success bool   `json:"success"`
	TaskID  string `json:"task_id,omitempty"`
	Message string `json:"message"`
}

// TaskStatusResult represents the response to a task status query.
type TaskStatusResult struct {
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}

// OpaqueJSON decodes a payload the backend stores as an opaque string.
// An empty string means no payload. A string that parses as JSON is
// passed through structured; anything else is returned verbatim so
// plain-text payloads survive the round trip.
func OpaqueJSON(raw string) interface{} {
	if raw == "" {
		return nil
	}
	if json.Valid([]byte(raw)) {
		return json.RawMessage(raw)
	}
	return raw
}
