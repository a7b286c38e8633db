package server

import (
	"context"
	"io"
	"log"
	"net"
	"testing"
	"time"

	grpchandler "github.com/ogurasousui/employee-records/internal/adapters/grpc/handler"
)

func TestServer_ServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	srv := New("127.0.0.1:0", grpchandler.NewEmployeeGrpcHandler(emptyUseCase{}, log.New(io.Discard, "", 0)))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
