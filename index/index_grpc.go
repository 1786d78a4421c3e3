// Copyright 2023 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package index

import (
	"context"

	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully-qualified name of the Index service.
const ServiceName = "linkedbst.Index"

// IndexClient is the client API for Index service.
type IndexClient interface {
	Add(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*empty.Empty, error)
	Find(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Remove(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Replace(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	RangeFind(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Successor(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Predecessor(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Inorder(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Rebalance(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*empty.Empty, error)
	Stats(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	Clear(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*empty.Empty, error)
}

type indexClient struct {
	cc grpc.ClientConnInterface
}

// NewIndexClient creates a new client for Index service.
func NewIndexClient(cc grpc.ClientConnInterface) IndexClient {
	return &indexClient{cc}
}

// invoke performs a unary call of the given method.
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *indexClient) Add(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*empty.Empty, error) {
	return invoke[empty.Empty](ctx, c.cc, "Add", in, opts)
}

func (c *indexClient) Find(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke[wrapperspb.StringValue](ctx, c.cc, "Find", in, opts)
}

func (c *indexClient) Remove(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke[wrapperspb.StringValue](ctx, c.cc, "Remove", in, opts)
}

func (c *indexClient) Replace(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke[wrapperspb.StringValue](ctx, c.cc, "Replace", in, opts)
}

func (c *indexClient) RangeFind(ctx context.Context, in *structpb.ListValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke[structpb.ListValue](ctx, c.cc, "RangeFind", in, opts)
}

func (c *indexClient) Successor(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke[wrapperspb.StringValue](ctx, c.cc, "Successor", in, opts)
}

func (c *indexClient) Predecessor(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke[wrapperspb.StringValue](ctx, c.cc, "Predecessor", in, opts)
}

func (c *indexClient) Inorder(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke[structpb.ListValue](ctx, c.cc, "Inorder", in, opts)
}

func (c *indexClient) Rebalance(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*empty.Empty, error) {
	return invoke[empty.Empty](ctx, c.cc, "Rebalance", in, opts)
}

func (c *indexClient) Stats(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, "Stats", in, opts)
}

func (c *indexClient) Clear(ctx context.Context, in *empty.Empty, opts ...grpc.CallOption) (*empty.Empty, error) {
	return invoke[empty.Empty](ctx, c.cc, "Clear", in, opts)
}

// IndexServer is the server API for Index service.
// All implementations must embed UnimplementedIndexServer
// for forward compatibility.
type IndexServer interface {
	Add(context.Context, *wrapperspb.StringValue) (*empty.Empty, error)
	Find(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Remove(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Replace(context.Context, *structpb.ListValue) (*wrapperspb.StringValue, error)
	RangeFind(context.Context, *structpb.ListValue) (*structpb.ListValue, error)
	Successor(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Predecessor(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Inorder(context.Context, *empty.Empty) (*structpb.ListValue, error)
	Rebalance(context.Context, *empty.Empty) (*empty.Empty, error)
	Stats(context.Context, *empty.Empty) (*structpb.Struct, error)
	Clear(context.Context, *empty.Empty) (*empty.Empty, error)
	mustEmbedUnimplementedIndexServer()
}

// UnimplementedIndexServer must be embedded to have forward compatible implementations.
type UnimplementedIndexServer struct {
}

func (UnimplementedIndexServer) Add(context.Context, *wrapperspb.StringValue) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Add not implemented")
}
func (UnimplementedIndexServer) Find(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Find not implemented")
}
func (UnimplementedIndexServer) Remove(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Remove not implemented")
}
func (UnimplementedIndexServer) Replace(context.Context, *structpb.ListValue) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Replace not implemented")
}
func (UnimplementedIndexServer) RangeFind(context.Context, *structpb.ListValue) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RangeFind not implemented")
}
func (UnimplementedIndexServer) Successor(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Successor not implemented")
}
func (UnimplementedIndexServer) Predecessor(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Predecessor not implemented")
}
func (UnimplementedIndexServer) Inorder(context.Context, *empty.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Inorder not implemented")
}
func (UnimplementedIndexServer) Rebalance(context.Context, *empty.Empty) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Rebalance not implemented")
}
func (UnimplementedIndexServer) Stats(context.Context, *empty.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Stats not implemented")
}
func (UnimplementedIndexServer) Clear(context.Context, *empty.Empty) (*empty.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Clear not implemented")
}
func (UnimplementedIndexServer) mustEmbedUnimplementedIndexServer() {}

// RegisterIndexServer registers the given implementation of Index service.
func RegisterIndexServer(s grpc.ServiceRegistrar, srv IndexServer) {
	s.RegisterService(&Index_ServiceDesc, srv)
}

// unary describes a unary method whose implementation is the given method
// expression on IndexServer.
func unary[Req, Resp any](name string, call func(IndexServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(IndexServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(IndexServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// Index_ServiceDesc is the grpc.ServiceDesc for Index service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy).
var Index_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*IndexServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Add", IndexServer.Add),
		unary("Find", IndexServer.Find),
		unary("Remove", IndexServer.Remove),
		unary("Replace", IndexServer.Replace),
		unary("RangeFind", IndexServer.RangeFind),
		unary("Successor", IndexServer.Successor),
		unary("Predecessor", IndexServer.Predecessor),
		unary("Inorder", IndexServer.Inorder),
		unary("Rebalance", IndexServer.Rebalance),
		unary("Stats", IndexServer.Stats),
		unary("Clear", IndexServer.Clear),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "linkedbst/index",
}
