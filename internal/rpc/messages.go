// Package rpc defines the wire contract between the gateway and the two
// upstream services: adia.BackendService (task execution) and
// adia.DatabaseService (persistence). The contract is owned by those
// services; this package mirrors it with plain structs and hand-written
// stubs so that no generated protobuf code is needed on either side.
package rpc

// Task is the persistence service's view of a task. final_result holds an
// opaque JSON blob and is empty until the task produces one.
type Task struct {
	TaskID      string `json:"task_id"`
	TaskPrompt  string `json:"task_prompt"`
	MaxSteps    int32  `json:"max_steps"`
	Status      string `json:"status"`
	UserID      string `json:"user_id"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
	FinalResult string `json:"final_result"`
}

// TaskOutput is one recorded step of a task. step_data holds an opaque JSON
// blob describing the step.
type TaskOutput struct {
	OutputID   int64  `json:"output_id"`
	TaskID     string `json:"task_id"`
	OutputType string `json:"output_type"`
	StepData   string `json:"step_data"`
	StepNumber int32  `json:"step_number"`
	Timestamp  int64  `json:"timestamp"`
}

// StartTaskRequest asks the backend service to queue a new task.
type StartTaskRequest struct {
	TaskPrompt  string `json:"task_prompt"`
	MaxSteps    int32  `json:"max_steps"`
	UserID      string `json:"user_id"`
	BrowserName string `json:"browser_name"`
	BrowserPort int32  `json:"browser_port"`
}

type StartTaskResponse struct {
	Success bool   `json:"success"`
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

type GetTaskStatusRequest struct {
	TaskID string `json:"task_id"`
}

type GetTaskStatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ListTasksRequest pages through tasks, newest first. An empty user_id
// selects tasks for all users.
type ListTasksRequest struct {
	UserID string `json:"user_id"`
	Limit  int32  `json:"limit"`
	Offset int32  `json:"offset"`
}

type ListTasksResponse struct {
	Tasks []*Task `json:"tasks"`
	Total int32   `json:"total"`
}

type GetTaskHistoryRequest struct {
	TaskID string `json:"task_id"`
}

type GetTaskHistoryResponse struct {
	Success bool          `json:"success"`
	Outputs []*TaskOutput `json:"outputs"`
	Message string        `json:"message"`
}

type GetTaskRequest struct {
	TaskID string `json:"task_id"`
}

type GetTaskResponse struct {
	Success bool   `json:"success"`
	Task    *Task  `json:"task"`
	Message string `json:"message"`
}
