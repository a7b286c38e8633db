package handler

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName は社員サービスの完全修飾名です。
const ServiceName = "employees.v1.EmployeeService"

const (
	methodCreateEmployee = "/" + ServiceName + "/CreateEmployee"
	methodListEmployees  = "/" + ServiceName + "/ListEmployees"
	methodUpdateEmployee = "/" + ServiceName + "/UpdateEmployee"
	methodDeleteEmployee = "/" + ServiceName + "/DeleteEmployee"
)

// EmployeeServiceServer は社員サービスのサーバー側インターフェースです。
type EmployeeServiceServer interface {
	CreateEmployee(context.Context, *CreateEmployeeRequest) (*CreateEmployeeResponse, error)
	ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error)
	UpdateEmployee(context.Context, *UpdateEmployeeRequest) (*UpdateEmployeeResponse, error)
	DeleteEmployee(context.Context, *DeleteEmployeeRequest) (*DeleteEmployeeResponse, error)
}

// RegisterEmployeeServiceServer はサービスを gRPC サーバーに登録します。
func RegisterEmployeeServiceServer(s grpc.ServiceRegistrar, srv EmployeeServiceServer) {
	s.RegisterService(&EmployeeServiceDesc, srv)
}

// EmployeeServiceDesc は社員サービスの grpc.ServiceDesc です。
var EmployeeServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EmployeeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateEmployee", Handler: createEmployeeHandler},
		{MethodName: "ListEmployees", Handler: listEmployeesHandler},
		{MethodName: "UpdateEmployee", Handler: updateEmployeeHandler},
		{MethodName: "DeleteEmployee", Handler: deleteEmployeeHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func createEmployeeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateEmployeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmployeeServiceServer).CreateEmployee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodCreateEmployee}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(EmployeeServiceServer).CreateEmployee(ctx, req.(*CreateEmployeeRequest))
	})
}

func listEmployeesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListEmployeesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmployeeServiceServer).ListEmployees(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodListEmployees}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(EmployeeServiceServer).ListEmployees(ctx, req.(*ListEmployeesRequest))
	})
}

func updateEmployeeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateEmployeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmployeeServiceServer).UpdateEmployee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodUpdateEmployee}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(EmployeeServiceServer).UpdateEmployee(ctx, req.(*UpdateEmployeeRequest))
	})
}

func deleteEmployeeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteEmployeeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EmployeeServiceServer).DeleteEmployee(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: methodDeleteEmployee}
	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		return srv.(EmployeeServiceServer).DeleteEmployee(ctx, req.(*DeleteEmployeeRequest))
	})
}

// EmployeeServiceClient は社員サービスのクライアントです。
type EmployeeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEmployeeServiceClient は EmployeeServiceClient を生成します。
// 呼び出しには JSONCodec を強制します。
func NewEmployeeServiceClient(cc grpc.ClientConnInterface) *EmployeeServiceClient {
	return &EmployeeServiceClient{cc: cc}
}

func (c *EmployeeServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.ForceCodec(JSONCodec{})}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *EmployeeServiceClient) CreateEmployee(ctx context.Context, in *CreateEmployeeRequest, opts ...grpc.CallOption) (*CreateEmployeeResponse, error) {
	out := new(CreateEmployeeResponse)
	if err := c.invoke(ctx, methodCreateEmployee, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeServiceClient) ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error) {
	out := new(ListEmployeesResponse)
	if err := c.invoke(ctx, methodListEmployees, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeServiceClient) UpdateEmployee(ctx context.Context, in *UpdateEmployeeRequest, opts ...grpc.CallOption) (*UpdateEmployeeResponse, error) {
	out := new(UpdateEmployeeResponse)
	if err := c.invoke(ctx, methodUpdateEmployee, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeServiceClient) DeleteEmployee(ctx context.Context, in *DeleteEmployeeRequest, opts ...grpc.CallOption) (*DeleteEmployeeResponse, error) {
	out := new(DeleteEmployeeResponse)
	if err := c.invoke(ctx, methodDeleteEmployee, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
