package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	grpchandler "github.com/ogurasousui/employee-records/internal/adapters/grpc/handler"
	"google.golang.org/grpc"
)

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
// メッセージは JSON コーデックで符号化されます。
func New(listenAddr string, employees grpchandler.EmployeeServiceServer, opts ...grpc.ServerOption) *Server {
	opts = append([]grpc.ServerOption{grpc.ForceServerCodec(grpchandler.JSONCodec{})}, opts...)
	srv := grpc.NewServer(opts...)
	grpchandler.RegisterEmployeeServiceServer(srv, employees)

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は与えられたリスナーで待ち受けます。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			s.grpcServer.GracefulStop()
		case <-stopped:
		}
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
