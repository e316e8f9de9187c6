package task

import (
	"fmt"

	"github.com/Data-collector-ADIA/Front-end/internal/model"
	"github.com/Data-collector-ADIA/Front-end/internal/rpc"
	"google.golang.org/grpc/status"
)

// renderTask converts a task record into its JSON view. The final
// result is stored upstream as an opaque string; valid JSON is embedded
// structured so clients do not have to decode it twice.
func renderTask(t *rpc.Task) *model.Task {
	return &model.Task{
		TaskID:      t.TaskID,
		TaskPrompt:  t.TaskPrompt,
		MaxSteps:    t.MaxSteps,
		Status:      t.Status,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		FinalResult: model.OpaqueJSON(t.FinalResult),
	}
}

func renderTasks(tasks []*rpc.Task) []*model.Task {
	out := make([]*model.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, renderTask(t))
	}
	return out
}

func renderTaskOutputs(outputs []*rpc.TaskOutput) []*model.TaskOutput {
	out := make([]*model.TaskOutput, 0, len(outputs))
	for _, o := range outputs {
		out = append(out, &model.TaskOutput{
			OutputID:   o.OutputID,
			TaskID:     o.TaskID,
			OutputType: o.OutputType,
			StepData:   model.OpaqueJSON(o.StepData),
			StepNumber: o.StepNumber,
			Timestamp:  o.Timestamp,
		})
	}
	return out
}

// renderStartTask surfaces only the message when the backend reports
// failure; the task id is meaningless in that case.
func renderStartTask(resp *rpc.StartTaskResponse) *model.StartTaskResult {
	if !resp.Success {
		return &model.StartTaskResult{Success: false, Message: resp.Message}
	}
	return &model.StartTaskResult{
		Success: true,
		TaskID:  resp.TaskID,
		Message: resp.Message,
	}
}

func renderTaskStatus(resp *rpc.GetTaskStatusResponse) *model.TaskStatusResult {
	if !resp.Success {
		return &model.TaskStatusResult{Success: false, Message: resp.Message}
	}
	return &model.TaskStatusResult{
		Success: true,
		Status:  resp.Status,
		Message: resp.Message,
	}
}

// upstreamError formats a failed RPC for the error envelope, keeping
// the remote code and details visible to the caller.
func upstreamError(err error) string {
	st := status.Convert(err)
	return fmt.Sprintf("gRPC Error: %s - %s", st.Code(), st.Message())
}
