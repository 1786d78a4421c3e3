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

// Package main implements the index server.  Given a word list with -dict, it
// instead measures the lookup time of the word list in a sorted list, in
// binary search trees of different shapes and in other ordered containers,
// and prints the results.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"

	"github.com/9rum/linkedbst/benchmark"
	"github.com/9rum/linkedbst/index"
	"github.com/9rum/linkedbst/internal/data"
)

func main() {
	port := flag.Int("p", 50051, "The server port")
	dict := flag.String("dict", "", "Run the lookup benchmark on the given word list instead of serving")
	queries := flag.Int("n", 10000, "The number of random words to look up in the benchmark")
	seed := flag.Int64("seed", 0, "The seed used to sample the words to look up; 0 picks one at random")
	flag.Parse()
	defer glog.Flush()

	if *dict != "" {
		if err := bench(*dict, *queries, *seed); err != nil {
			glog.Fatalf("failed to run benchmark: %v", err)
		}
		return
	}

	if err := serve(*port); err != nil {
		glog.Fatalf("failed to serve: %v", err)
	}
}

func bench(path string, queries int, seed int64) error {
	dict, err := data.LoadDictionary(path)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = rand.Int63()
	}
	glog.Infof("loaded %d words from %s, sampling %d with seed %d", dict.Len(), path, queries, seed)

	report := benchmark.Run(dict, dict.Sample(queries, rand.New(rand.NewSource(seed))))
	fmt.Print(report)
	return nil
}

func serve(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	server := newServer()
	glog.Infof("server listening at %v", lis.Addr())

	return server.Serve(lis)
}

func newServer() *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
		),
	)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func(done <-chan os.Signal, server *grpc.Server) {
		<-done
		glog.Info("shutting down")
		server.GracefulStop()
	}(done, server)

	index.RegisterIndexServer(server, index.NewIndexServer())

	return server
}
