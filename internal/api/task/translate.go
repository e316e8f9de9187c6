package task

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Data-collector-ADIA/Front-end/internal/rpc"
)

// Defaults applied when a request leaves a field unset.
const (
	defaultMaxSteps    = 15
	defaultUserID      = "default"
	defaultBrowserName = "chrome"
	defaultBrowserPort = 9999
	defaultListLimit   = 50
)

var errTaskPromptRequired = errors.New("task_prompt is required")

// startTaskBody is the JSON body accepted by POST /tasks/start. Numeric
// fields are pointers so an explicit zero is distinguishable from an
// absent field.
type startTaskBody struct {
	TaskPrompt  string `json:"task_prompt"`
	MaxSteps    *int32 `json:"max_steps"`
	UserID      string `json:"user_id"`
	BrowserName string `json:"browser_name"`
	BrowserPort *int32 `json:"browser_port"`
}

// translateStartTask validates the body and builds the upstream request,
// filling in defaults for everything the caller left out. Validation
// failures are reported before any RPC is attempted.
func translateStartTask(body *startTaskBody) (*rpc.StartTaskRequest, error) {
	if body.TaskPrompt == "" {
		return nil, errTaskPromptRequired
	}

	req := &rpc.StartTaskRequest{
		TaskPrompt:  body.TaskPrompt,
		MaxSteps:    defaultMaxSteps,
		UserID:      defaultUserID,
		BrowserName: defaultBrowserName,
		BrowserPort: defaultBrowserPort,
	}
	if body.MaxSteps != nil {
		req.MaxSteps = *body.MaxSteps
	}
	if body.UserID != "" {
		req.UserID = body.UserID
	}
	if body.BrowserName != "" {
		req.BrowserName = body.BrowserName
	}
	if body.BrowserPort != nil {
		req.BrowserPort = *body.BrowserPort
	}

	return req, nil
}

// translateListTasks reads pagination parameters from the query string.
// An empty user_id means all users.
func translateListTasks(query url.Values) (*rpc.ListTasksRequest, error) {
	req := &rpc.ListTasksRequest{
		UserID: query.Get("user_id"),
		Limit:  defaultListLimit,
		Offset: 0,
	}

	limit, err := queryInt(query, "limit", defaultListLimit)
	if err != nil {
		return nil, err
	}
	req.Limit = limit

	offset, err := queryInt(query, "offset", 0)
	if err != nil {
		return nil, err
	}
	req.Offset = offset

	return req, nil
}

func queryInt(query url.Values, key string, fallback int32) (int32, error) {
	raw := query.Get(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return int32(n), nil
}
