// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: invoicerd/v1/invoicerd.proto

package invoicerdv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	InvoicerdService_CreateVendor_FullMethodName      = "/invoicerd.v1.InvoicerdService/CreateVendor"
	InvoicerdService_ListVendors_FullMethodName       = "/invoicerd.v1.InvoicerdService/ListVendors"
	InvoicerdService_SetVendorRules_FullMethodName    = "/invoicerd.v1.InvoicerdService/SetVendorRules"
	InvoicerdService_GetVendorRules_FullMethodName    = "/invoicerd.v1.InvoicerdService/GetVendorRules"
	InvoicerdService_ListDocuments_FullMethodName     = "/invoicerd.v1.InvoicerdService/ListDocuments"
	InvoicerdService_ExtractFile_FullMethodName       = "/invoicerd.v1.InvoicerdService/ExtractFile"
	InvoicerdService_ProcessMailbox_FullMethodName    = "/invoicerd.v1.InvoicerdService/ProcessMailbox"
	InvoicerdService_ReprocessDocument_FullMethodName = "/invoicerd.v1.InvoicerdService/ReprocessDocument"
	InvoicerdService_ExportDocuments_FullMethodName   = "/invoicerd.v1.InvoicerdService/ExportDocuments"
)

// InvoicerdServiceClient is the client API for InvoicerdService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type InvoicerdServiceClient interface {
	CreateVendor(ctx context.Context, in *CreateVendorRequest, opts ...grpc.CallOption) (*CreateVendorResponse, error)
	ListVendors(ctx context.Context, in *ListVendorsRequest, opts ...grpc.CallOption) (*ListVendorsResponse, error)
	SetVendorRules(ctx context.Context, in *SetVendorRulesRequest, opts ...grpc.CallOption) (*SetVendorRulesResponse, error)
	GetVendorRules(ctx context.Context, in *GetVendorRulesRequest, opts ...grpc.CallOption) (*GetVendorRulesResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	ExtractFile(ctx context.Context, in *ExtractFileRequest, opts ...grpc.CallOption) (*ExtractFileResponse, error)
	ProcessMailbox(ctx context.Context, in *ProcessMailboxRequest, opts ...grpc.CallOption) (*ProcessMailboxResponse, error)
	ReprocessDocument(ctx context.Context, in *ReprocessDocumentRequest, opts ...grpc.CallOption) (*ReprocessDocumentResponse, error)
	ExportDocuments(ctx context.Context, in *ExportDocumentsRequest, opts ...grpc.CallOption) (*ExportDocumentsResponse, error)
}

type invoicerdServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInvoicerdServiceClient(cc grpc.ClientConnInterface) InvoicerdServiceClient {
	return &invoicerdServiceClient{cc}
}

func (c *invoicerdServiceClient) CreateVendor(ctx context.Context, in *CreateVendorRequest, opts ...grpc.CallOption) (*CreateVendorResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateVendorResponse)
	err := c.cc.Invoke(ctx, InvoicerdService_CreateVendor_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicerdServiceClient) ListVendors(ctx context.Context, in *ListVendorsRequest, opts ...grpc.CallOption) (*ListVendorsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListVendorsResponse)
	err := c.cc.Invoke(ctx, InvoicerdService_ListVendors_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicerdServiceClient) SetVendorRules(ctx context.Context, in *SetVendorRulesRequest, opts ...grpc.CallOption) (*SetVendorRulesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetVendorRulesResponse)
	err := c.cc.Invoke(ctx, InvoicerdService_SetVendorRules_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicerdServiceClient) GetVendorRules(ctx context.Context, in *GetVendorRulesRequest, opts ...grpc.CallOption) (*GetVendorRulesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetVendorRulesResponse)
	err := c.cc.Invoke(ctx, InvoicerdService_GetVendorRules_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicerdServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, InvoicerdService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicerdServiceClient) ExtractFile(ctx context.Context, in *ExtractFileRequest, opts ...grpc.CallOption) (*ExtractFileResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractFileResponse)
	err := c.cc.Invoke(ctx, InvoicerdService_ExtractFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicerdServiceClient) ProcessMailbox(ctx context.Context, in *ProcessMailboxRequest, opts ...grpc.CallOption) (*ProcessMailboxResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessMailboxResponse)
	err := c.cc.Invoke(ctx, InvoicerdService_ProcessMailbox_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicerdServiceClient) ReprocessDocument(ctx context.Context, in *ReprocessDocumentRequest, opts ...grpc.CallOption) (*ReprocessDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReprocessDocumentResponse)
	err := c.cc.Invoke(ctx, InvoicerdService_ReprocessDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *invoicerdServiceClient) ExportDocuments(ctx context.Context, in *ExportDocumentsRequest, opts ...grpc.CallOption) (*ExportDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportDocumentsResponse)
	err := c.cc.Invoke(ctx, InvoicerdService_ExportDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InvoicerdServiceServer is the server API for InvoicerdService service.
// All implementations must embed UnimplementedInvoicerdServiceServer
// for forward compatibility.
type InvoicerdServiceServer interface {
	CreateVendor(context.Context, *CreateVendorRequest) (*CreateVendorResponse, error)
	ListVendors(context.Context, *ListVendorsRequest) (*ListVendorsResponse, error)
	SetVendorRules(context.Context, *SetVendorRulesRequest) (*SetVendorRulesResponse, error)
	GetVendorRules(context.Context, *GetVendorRulesRequest) (*GetVendorRulesResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	ExtractFile(context.Context, *ExtractFileRequest) (*ExtractFileResponse, error)
	ProcessMailbox(context.Context, *ProcessMailboxRequest) (*ProcessMailboxResponse, error)
	ReprocessDocument(context.Context, *ReprocessDocumentRequest) (*ReprocessDocumentResponse, error)
	ExportDocuments(context.Context, *ExportDocumentsRequest) (*ExportDocumentsResponse, error)
	mustEmbedUnimplementedInvoicerdServiceServer()
}

// UnimplementedInvoicerdServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedInvoicerdServiceServer struct{}

func (UnimplementedInvoicerdServiceServer) CreateVendor(context.Context, *CreateVendorRequest) (*CreateVendorResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateVendor not implemented")
}
func (UnimplementedInvoicerdServiceServer) ListVendors(context.Context, *ListVendorsRequest) (*ListVendorsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListVendors not implemented")
}
func (UnimplementedInvoicerdServiceServer) SetVendorRules(context.Context, *SetVendorRulesRequest) (*SetVendorRulesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetVendorRules not implemented")
}
func (UnimplementedInvoicerdServiceServer) GetVendorRules(context.Context, *GetVendorRulesRequest) (*GetVendorRulesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVendorRules not implemented")
}
func (UnimplementedInvoicerdServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedInvoicerdServiceServer) ExtractFile(context.Context, *ExtractFileRequest) (*ExtractFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractFile not implemented")
}
func (UnimplementedInvoicerdServiceServer) ProcessMailbox(context.Context, *ProcessMailboxRequest) (*ProcessMailboxResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessMailbox not implemented")
}
func (UnimplementedInvoicerdServiceServer) ReprocessDocument(context.Context, *ReprocessDocumentRequest) (*ReprocessDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReprocessDocument not implemented")
}
func (UnimplementedInvoicerdServiceServer) ExportDocuments(context.Context, *ExportDocumentsRequest) (*ExportDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportDocuments not implemented")
}
func (UnimplementedInvoicerdServiceServer) mustEmbedUnimplementedInvoicerdServiceServer() {}
func (UnimplementedInvoicerdServiceServer) testEmbeddedByValue()                          {}

// UnsafeInvoicerdServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to InvoicerdServiceServer will
// result in compilation errors.
type UnsafeInvoicerdServiceServer interface {
	mustEmbedUnimplementedInvoicerdServiceServer()
}

func RegisterInvoicerdServiceServer(s grpc.ServiceRegistrar, srv InvoicerdServiceServer) {
	// If the following call pancis, it indicates UnimplementedInvoicerdServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&InvoicerdService_ServiceDesc, srv)
}

func _InvoicerdService_CreateVendor_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateVendorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicerdServiceServer).CreateVendor(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicerdService_CreateVendor_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicerdServiceServer).CreateVendor(ctx, req.(*CreateVendorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicerdService_ListVendors_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListVendorsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicerdServiceServer).ListVendors(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicerdService_ListVendors_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicerdServiceServer).ListVendors(ctx, req.(*ListVendorsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicerdService_SetVendorRules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetVendorRulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicerdServiceServer).SetVendorRules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicerdService_SetVendorRules_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicerdServiceServer).SetVendorRules(ctx, req.(*SetVendorRulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicerdService_GetVendorRules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVendorRulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicerdServiceServer).GetVendorRules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicerdService_GetVendorRules_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicerdServiceServer).GetVendorRules(ctx, req.(*GetVendorRulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicerdService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicerdServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicerdService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicerdServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicerdService_ExtractFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicerdServiceServer).ExtractFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicerdService_ExtractFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicerdServiceServer).ExtractFile(ctx, req.(*ExtractFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicerdService_ProcessMailbox_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessMailboxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicerdServiceServer).ProcessMailbox(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicerdService_ProcessMailbox_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicerdServiceServer).ProcessMailbox(ctx, req.(*ProcessMailboxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicerdService_ReprocessDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReprocessDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicerdServiceServer).ReprocessDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicerdService_ReprocessDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicerdServiceServer).ReprocessDocument(ctx, req.(*ReprocessDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InvoicerdService_ExportDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InvoicerdServiceServer).ExportDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: InvoicerdService_ExportDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(InvoicerdServiceServer).ExportDocuments(ctx, req.(*ExportDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InvoicerdService_ServiceDesc is the grpc.ServiceDesc for InvoicerdService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var InvoicerdService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "invoicerd.v1.InvoicerdService",
	HandlerType: (*InvoicerdServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateVendor",
			Handler:    _InvoicerdService_CreateVendor_Handler,
		},
		{
			MethodName: "ListVendors",
			Handler:    _InvoicerdService_ListVendors_Handler,
		},
		{
			MethodName: "SetVendorRules",
			Handler:    _InvoicerdService_SetVendorRules_Handler,
		},
		{
			MethodName: "GetVendorRules",
			Handler:    _InvoicerdService_GetVendorRules_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _InvoicerdService_ListDocuments_Handler,
		},
		{
			MethodName: "ExtractFile",
			Handler:    _InvoicerdService_ExtractFile_Handler,
		},
		{
			MethodName: "ProcessMailbox",
			Handler:    _InvoicerdService_ProcessMailbox_Handler,
		},
		{
			MethodName: "ReprocessDocument",
			Handler:    _InvoicerdService_ReprocessDocument_Handler,
		},
		{
			MethodName: "ExportDocuments",
			Handler:    _InvoicerdService_ExportDocuments_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "invoicerd/v1/invoicerd.proto",
}
