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
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// dial starts an in-process server holding the given words and returns a
// client connected to it.
func dial(t *testing.T, words ...string) IndexClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	RegisterIndexServer(server, NewIndexServer(words...))
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewIndexClient(conn)
}

func inorder(t *testing.T, c IndexClient) []string {
	t.Helper()
	r, err := c.Inorder(context.Background(), new(emptypb.Empty))
	require.NoError(t, err)
	return Strings(r)
}

func TestIndexServer(t *testing.T) {
	ctx := context.Background()
	c := dial(t, "e", "c", "h", "b", "d", "g")

	_, err := c.Add(ctx, wrapperspb.String("f"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d", "e", "f", "g", "h"}, inorder(t, c))

	r, err := c.Find(ctx, wrapperspb.String("d"))
	require.NoError(t, err)
	assert.Equal(t, "d", r.GetValue())

	_, err = c.Find(ctx, wrapperspb.String("z"))
	assert.Equal(t, codes.NotFound, status.Code(err))

	r, err = c.Successor(ctx, wrapperspb.String("c"))
	require.NoError(t, err)
	assert.Equal(t, "d", r.GetValue())
	r, err = c.Predecessor(ctx, wrapperspb.String("c"))
	require.NoError(t, err)
	assert.Equal(t, "b", r.GetValue())
	_, err = c.Successor(ctx, wrapperspb.String("h"))
	assert.Equal(t, codes.NotFound, status.Code(err))
	_, err = c.Predecessor(ctx, wrapperspb.String("b"))
	assert.Equal(t, codes.NotFound, status.Code(err))

	l, err := c.RangeFind(ctx, NewPair("c", "f"))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d", "e", "f"}, Strings(l))

	_, err = c.RangeFind(ctx, NewPair("f", "c"))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	r, err = c.Remove(ctx, wrapperspb.String("e"))
	require.NoError(t, err)
	assert.Equal(t, "e", r.GetValue())
	_, err = c.Remove(ctx, wrapperspb.String("e"))
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, []string{"b", "c", "d", "f", "g", "h"}, inorder(t, c))

	r, err = c.Replace(ctx, NewPair("h", "i"))
	require.NoError(t, err)
	assert.Equal(t, "h", r.GetValue())
	assert.Equal(t, []string{"b", "c", "d", "f", "g", "i"}, inorder(t, c))
	_, err = c.Replace(ctx, NewPair("x", "y"))
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestIndexServerStats(t *testing.T) {
	ctx := context.Background()
	c := dial(t, "a", "b", "c", "d", "e", "f", "g")

	stats, err := c.Stats(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	assert.Equal(t, 7., stats.GetFields()["size"].GetNumberValue())
	assert.Equal(t, 6., stats.GetFields()["height"].GetNumberValue())
	assert.False(t, stats.GetFields()["balanced"].GetBoolValue())

	_, err = c.Rebalance(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	stats, err = c.Stats(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	assert.Equal(t, 7., stats.GetFields()["size"].GetNumberValue())
	assert.Equal(t, 2., stats.GetFields()["height"].GetNumberValue())
	assert.True(t, stats.GetFields()["balanced"].GetBoolValue())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, inorder(t, c))

	_, err = c.Clear(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	assert.Empty(t, inorder(t, c))
	stats, err = c.Stats(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	assert.Equal(t, 0., stats.GetFields()["size"].GetNumberValue())
	assert.True(t, stats.GetFields()["balanced"].GetBoolValue())
}

func TestIndexServerInvalidPair(t *testing.T) {
	ctx := context.Background()
	c := dial(t, "a")

	one, err := structpb.NewList([]interface{}{"a"})
	require.NoError(t, err)
	_, err = c.RangeFind(ctx, one)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	mixed, err := structpb.NewList([]interface{}{"a", 1})
	require.NoError(t, err)
	_, err = c.Replace(ctx, mixed)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestIndexServerConcurrent(t *testing.T) {
	const workers, words = 8, 100
	ctx := context.Background()
	c := dial(t)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < words; i++ {
				if _, err := c.Add(ctx, wrapperspb.String(string(rune('a'+w))+string(rune('a'+i%26)))); err != nil {
					t.Errorf("could not add: %v", err)
				}
			}
		}(w)
	}
	wg.Wait()

	got := inorder(t, c)
	assert.Len(t, got, workers*words)
	assert.IsNonDecreasing(t, got)
}
