// Package stubserver provides in-memory stand-ins for the backend and
// database services. They implement the real RPC contracts, so the
// gateway can be exercised end to end without the browser-automation
// engine or its database.
package stubserver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Data-collector-ADIA/Front-end/internal/model"
	"github.com/Data-collector-ADIA/Front-end/internal/rpc"
	"github.com/google/uuid"
)

// simulateSteps is how many steps a simulated task runs before it
// completes. Kept small so demo tasks finish quickly regardless of
// their max_steps.
const simulateSteps = 3

// Store holds tasks and their outputs for both stub services.
type Store struct {
	mu           sync.RWMutex
	tasks        map[string]*rpc.Task
	outputs      map[string][]*rpc.TaskOutput
	order        []string
	nextOutputID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		tasks:   make(map[string]*rpc.Task),
		outputs: make(map[string][]*rpc.TaskOutput),
	}
}

// CreateTask records a new pending task and returns a copy of it.
func (s *Store) CreateTask(prompt string, maxSteps int32, userID string) *rpc.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().Unix()
	t := &rpc.Task{
		TaskID:     uuid.NewString(),
		TaskPrompt: prompt,
		MaxSteps:   maxSteps,
		Status:     model.StatusPending,
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.tasks[t.TaskID] = t
	s.order = append(s.order, t.TaskID)

	return cloneTask(t)
}

// Task returns a copy of the task with the given id.
func (s *Store) Task(id string) (*rpc.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, false
	}
	return cloneTask(t), true
}

// List returns tasks newest first, optionally filtered by user, plus
// the total count of matching tasks before pagination.
func (s *Store) List(userID string, limit, offset int32) ([]*rpc.Task, int32) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*rpc.Task, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		t := s.tasks[s.order[i]]
		if userID != "" && t.UserID != userID {
			continue
		}
		matched = append(matched, t)
	}

	total := int32(len(matched))
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []*rpc.Task{}, total
	}
	matched = matched[offset:]
	if limit > 0 && int32(len(matched)) > limit {
		matched = matched[:limit]
	}

	out := make([]*rpc.Task, 0, len(matched))
	for _, t := range matched {
		out = append(out, cloneTask(t))
	}
	return out, total
}

// History returns copies of a task's outputs in step order. The second
// result reports whether the task exists at all.
func (s *Store) History(id string) ([]*rpc.TaskOutput, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.tasks[id]; !ok {
		return nil, false
	}
	outputs := s.outputs[id]
	out := make([]*rpc.TaskOutput, 0, len(outputs))
	for _, o := range outputs {
		clone := *o
		out = append(out, &clone)
	}
	return out, true
}

// Advance moves one task a single step through its lifecycle and
// reports whether anything changed. Pending tasks start running;
// running tasks either record a step or complete.
func (s *Store) Advance(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return false
	}

	switch t.Status {
	case model.StatusPending:
		t.Status = model.StatusRunning
		s.appendOutputLocked(t.TaskID, "log", `{"message": "browser session started"}`, 0)
	case model.StatusRunning:
		step := int32(len(s.outputs[t.TaskID]))
		if step > t.MaxSteps || step > simulateSteps {
			t.Status = model.StatusCompleted
			t.FinalResult = fmt.Sprintf(`{"outcome": "ok", "steps": %d}`, step-1)
			s.appendOutputLocked(t.TaskID, "result", t.FinalResult, step)
		} else {
			data := fmt.Sprintf(`{"action": "navigate", "step": %d}`, step)
			s.appendOutputLocked(t.TaskID, "step", data, step)
		}
	default:
		return false
	}

	t.UpdatedAt = time.Now().Unix()
	return true
}

func (s *Store) appendOutputLocked(taskID, outputType, stepData string, stepNumber int32) {
	s.nextOutputID++
	s.outputs[taskID] = append(s.outputs[taskID], &rpc.TaskOutput{
		OutputID:   s.nextOutputID,
		TaskID:     taskID,
		OutputType: outputType,
		StepData:   stepData,
		StepNumber: stepNumber,
		Timestamp:  time.Now().Unix(),
	})
}

// active returns the ids of tasks that still have lifecycle left.
func (s *Store) active() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for id, t := range s.tasks {
		if t.Status == model.StatusPending || t.Status == model.StatusRunning {
			ids = append(ids, id)
		}
	}
	return ids
}

// Simulate advances every unfinished task once per interval until ctx
// is done. It drives the lifecycle a real execution engine would.
func (s *Store) Simulate(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, id := range s.active() {
				s.Advance(id)
			}
		}
	}
}

func cloneTask(t *rpc.Task) *rpc.Task {
	clone := *t
	return &clone
}
