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

// Package index provides a gRPC service that keeps a single ordered index of
// strings in a link-based binary search tree.  The tree itself is not safe for
// concurrent use, so the service serializes every call on one lock.
package index

import (
	"context"
	"errors"
	"sync"

	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/9rum/linkedbst/internal/bst"
)

// indexServer implements the server API for Index service.
type indexServer struct {
	UnimplementedIndexServer
	mu   sync.Mutex
	tree *bst.Tree[string]
}

// NewIndexServer creates a new index server holding the given words.
func NewIndexServer(words ...string) IndexServer {
	return &indexServer{
		tree: bst.New(words...),
	}
}

// Add adds the given word to the index.  Duplicates are kept.
func (s *indexServer) Add(ctx context.Context, in *wrapperspb.StringValue) (*empty.Empty, error) {
	glog.V(2).Infof("Add called with %q", in.GetValue())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Add(in.GetValue())

	return new(empty.Empty), nil
}

// Find returns the stored word equal to the given one.
func (s *indexServer) Find(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	glog.V(2).Infof("Find called with %q", in.GetValue())

	s.mu.Lock()
	defer s.mu.Unlock()
	word, ok := s.tree.Find(in.GetValue())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "%q not found", in.GetValue())
	}

	return wrapperspb.String(word), nil
}

// Remove removes one occurrence of the given word and returns it.
func (s *indexServer) Remove(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	glog.V(2).Infof("Remove called with %q", in.GetValue())

	s.mu.Lock()
	defer s.mu.Unlock()
	word, err := s.tree.Remove(in.GetValue())
	if errors.Is(err, bst.ErrNotFound) {
		return nil, status.Errorf(codes.NotFound, "%q: %v", in.GetValue(), err)
	}
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return wrapperspb.String(word), nil
}

// Replace overwrites the stored word equal to the first element of the list
// with the second one and returns the previous word.  The position of the word
// in the tree does not change.
func (s *indexServer) Replace(ctx context.Context, in *structpb.ListValue) (*wrapperspb.StringValue, error) {
	word, newWord, err := pair(in)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("Replace called with %q %q", word, newWord)

	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.tree.Replace(word, newWord)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "%q not found", word)
	}

	return wrapperspb.String(old), nil
}

// RangeFind returns the words between the two elements of the list, inclusive,
// in ascending order.
func (s *indexServer) RangeFind(ctx context.Context, in *structpb.ListValue) (*structpb.ListValue, error) {
	low, high, err := pair(in)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("RangeFind called with %q %q", low, high)

	s.mu.Lock()
	defer s.mu.Unlock()
	words, err := s.tree.RangeFind(low, high)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	return list(words), nil
}

// Successor returns the smallest word greater than the given one.
func (s *indexServer) Successor(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	word, ok := s.tree.Successor(in.GetValue())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no successor of %q", in.GetValue())
	}

	return wrapperspb.String(word), nil
}

// Predecessor returns the greatest word less than the given one.
func (s *indexServer) Predecessor(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	word, ok := s.tree.Predecessor(in.GetValue())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no predecessor of %q", in.GetValue())
	}

	return wrapperspb.String(word), nil
}

// Inorder returns every word in ascending order.
func (s *indexServer) Inorder(ctx context.Context, in *empty.Empty) (*structpb.ListValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return list(s.tree.Inorder()), nil
}

// Rebalance rebuilds the index into a minimum-height tree.
func (s *indexServer) Rebalance(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.tree.Height()
	s.tree.Rebalance()
	glog.Infof("Rebalance called with size: %d height: %d -> %d", s.tree.Len(), before, s.tree.Height())

	return new(empty.Empty), nil
}

// Stats reports the size, height and balance of the index.
func (s *indexServer) Stats(ctx context.Context, in *empty.Empty) (*structpb.Struct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, err := structpb.NewStruct(map[string]interface{}{
		"size":     s.tree.Len(),
		"height":   s.tree.Height(),
		"balanced": s.tree.IsBalanced(),
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return stats, nil
}

// Clear removes every word from the index.
func (s *indexServer) Clear(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	glog.Info("Clear called")

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Clear()

	return new(empty.Empty), nil
}

// pair extracts the two strings of the given list.
func pair(in *structpb.ListValue) (first, second string, err error) {
	values := in.GetValues()
	if len(values) != 2 {
		err = status.Errorf(codes.InvalidArgument, "want 2 values, got %d", len(values))
		return
	}
	for i, v := range values {
		if _, ok := v.GetKind().(*structpb.Value_StringValue); !ok {
			err = status.Errorf(codes.InvalidArgument, "value %d is not a string", i)
			return
		}
	}
	return values[0].GetStringValue(), values[1].GetStringValue(), nil
}

// list converts the given words to a list value.
func list(words []string) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(words))
	for _, word := range words {
		values = append(values, structpb.NewStringValue(word))
	}
	return &structpb.ListValue{Values: values}
}

// NewPair returns the list value holding the two given strings, as taken by
// Replace and RangeFind.
func NewPair(first, second string) *structpb.ListValue {
	return list([]string{first, second})
}

// Strings returns the string values of the given list, as returned by
// RangeFind and Inorder.
func Strings(in *structpb.ListValue) []string {
	out := make([]string, 0, len(in.GetValues()))
	for _, v := range in.GetValues() {
		out = append(out, v.GetStringValue())
	}
	return out
}
