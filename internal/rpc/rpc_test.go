package rpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// ---------------------------------------------------------------------------
// test fixtures
// ---------------------------------------------------------------------------

type testBackend struct {
	UnimplementedBackendServiceServer
}

func (testBackend) StartTask(ctx context.Context, req *StartTaskRequest) (*StartTaskResponse, error) {
	if req.TaskPrompt == "" {
		return nil, status.Errorf(codes.InvalidArgument, "empty prompt")
	}
	return &StartTaskResponse{
		Success: true,
		TaskID:  "echo-" + req.UserID,
		Message: fmt.Sprintf("%s/%s:%d/steps=%d", req.TaskPrompt, req.BrowserName, req.BrowserPort, req.MaxSteps),
	}, nil
}

type testDatabase struct {
	UnimplementedDatabaseServiceServer
}

func (testDatabase) GetTask(ctx context.Context, req *GetTaskRequest) (*GetTaskResponse, error) {
	return &GetTaskResponse{
		Success: true,
		Task: &Task{
			TaskID:      req.TaskID,
			TaskPrompt:  "stored prompt",
			Status:      "completed",
			FinalResult: `{"n":1}`,
		},
	}, nil
}

func dialTestServer(t *testing.T, register func(*grpc.Server)) *grpc.ClientConn {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	srv := grpc.NewServer()
	register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(Name)),
	)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func callCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// ---------------------------------------------------------------------------
// BackendService
// ---------------------------------------------------------------------------

func TestBackendService_RoundTrip(t *testing.T) {
	conn := dialTestServer(t, func(s *grpc.Server) {
		RegisterBackendServiceServer(s, testBackend{})
	})
	client := NewBackendServiceClient(conn)

	resp, err := client.StartTask(callCtx(t), &StartTaskRequest{
		TaskPrompt:  "scrape listings",
		MaxSteps:    7,
		UserID:      "alice",
		BrowserName: "firefox",
		BrowserPort: 9222,
	})
	if err != nil {
		t.Fatalf("StartTask: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.TaskID != "echo-alice" {
		t.Errorf("TaskID = %q, want %q", resp.TaskID, "echo-alice")
	}
	want := "scrape listings/firefox:9222/steps=7"
	if resp.Message != want {
		t.Errorf("Message = %q, want %q (request fields did not survive the wire)", resp.Message, want)
	}
}

func TestBackendService_ErrorCode(t *testing.T) {
	conn := dialTestServer(t, func(s *grpc.Server) {
		RegisterBackendServiceServer(s, testBackend{})
	})
	client := NewBackendServiceClient(conn)

	_, err := client.StartTask(callCtx(t), &StartTaskRequest{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	st := status.Convert(err)
	if st.Code() != codes.InvalidArgument {
		t.Errorf("code = %s, want InvalidArgument", st.Code())
	}
	if st.Message() != "empty prompt" {
		t.Errorf("message = %q, want %q", st.Message(), "empty prompt")
	}
}

func TestBackendService_UnimplementedFallback(t *testing.T) {
	conn := dialTestServer(t, func(s *grpc.Server) {
		RegisterBackendServiceServer(s, testBackend{})
	})
	client := NewBackendServiceClient(conn)

	_, err := client.GetTaskStatus(callCtx(t), &GetTaskStatusRequest{TaskID: "t-1"})
	if status.Code(err) != codes.Unimplemented {
		t.Errorf("code = %s, want Unimplemented", status.Code(err))
	}
}

// ---------------------------------------------------------------------------
// DatabaseService
// ---------------------------------------------------------------------------

func TestDatabaseService_NestedMessage(t *testing.T) {
	conn := dialTestServer(t, func(s *grpc.Server) {
		RegisterDatabaseServiceServer(s, testDatabase{})
	})
	client := NewDatabaseServiceClient(conn)

	resp, err := client.GetTask(callCtx(t), &GetTaskRequest{TaskID: "t-9"})
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if resp.Task == nil {
		t.Fatal("Task is nil")
	}
	if resp.Task.TaskID != "t-9" {
		t.Errorf("Task.TaskID = %q, want %q", resp.Task.TaskID, "t-9")
	}
	if resp.Task.FinalResult != `{"n":1}` {
		t.Errorf("Task.FinalResult = %q, want the opaque blob verbatim", resp.Task.FinalResult)
	}
}

// ---------------------------------------------------------------------------
// codec
// ---------------------------------------------------------------------------

func TestCodecName(t *testing.T) {
	// Clients select the codec by content-subtype; the registered name
	// is part of the wire contract.
	if Name != "json" {
		t.Errorf("codec name = %q, want json", Name)
	}
}
