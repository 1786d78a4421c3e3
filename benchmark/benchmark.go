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

// Package benchmark compares the lookup time of a word list kept in a plain
// sorted list against link-based binary search trees built in sorted order, in
// arbitrary order and after rebalancing.  Well-known ordered containers of the
// Go ecosystem are measured alongside as a point of reference.
package benchmark

import (
	"fmt"
	"strings"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/golang/glog"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/9rum/linkedbst/internal/bst"
	"github.com/9rum/linkedbst/internal/data"
)

// degree is the B-tree degree of the btree baseline.
const degree = 32

// Measurement is the outcome of searching every query in one container.
type Measurement struct {
	// Name identifies the container.
	Name string

	// Elapsed is the total time taken by the lookups.
	Elapsed time.Duration

	// Hits is the number of queries found.
	Hits int

	// Height and Balanced describe the shape of a link-based tree at the time
	// of the lookups and are meaningful only if Tree is set.
	Tree     bool
	Height   int
	Balanced bool
}

// Report holds the measurements of a single run.
type Report struct {
	Queries      int
	Measurements []Measurement
}

// String prints one line per measurement.
func (r *Report) String() string {
	var b strings.Builder
	for _, m := range r.Measurements {
		fmt.Fprintf(&b, "Time to search %d random words in a dictionary (%s): %.6f seconds\n", r.Queries, m.Name, m.Elapsed.Seconds())
	}
	return b.String()
}

// measure times looking up every query with the given function.
func measure(name string, queries []string, find func(string) bool) (m Measurement) {
	m.Name = name
	start := time.Now()
	for _, query := range queries {
		if find(query) {
			m.Hits++
		}
	}
	m.Elapsed = time.Since(start)
	return
}

// measureTree times looking up every query in the given tree.
func measureTree(name string, queries []string, tree *bst.Tree[string]) Measurement {
	m := measure(name, queries, tree.Has)
	m.Tree, m.Height, m.Balanced = true, tree.Height(), tree.IsBalanced()
	glog.V(1).Infof("%s: size: %d height: %d balanced: %v", name, tree.Len(), m.Height, m.Balanced)
	return m
}

// Run searches the given queries in each of the containers built from the
// dictionary.  The tree built from the dictionary in the order it was read is
// rebalanced in place during the run.
func Run(dict *data.Dictionary, queries []string) *Report {
	sorted := dict.Sorted()
	report := &Report{Queries: len(queries)}

	glog.Infof("building trees from %d words", dict.Len())
	sortedTree := dict.Tree(true)
	unsortedTree := dict.Tree(false)

	report.Measurements = append(report.Measurements,
		measure("sorted list", queries, func(query string) bool {
			// a plain membership scan, as a list offers no ordered search
			for _, word := range sorted {
				if word == query {
					return true
				}
			}
			return false
		}),
		measureTree("sorted BST", queries, sortedTree),
		measureTree("unsorted BST", queries, unsortedTree),
	)

	unsortedTree.Rebalance()
	report.Measurements = append(report.Measurements,
		measureTree("balanced BST", queries, unsortedTree))

	report.Measurements = append(report.Measurements, baselines(dict.Words(), queries)...)
	return report
}

// baselines measures third-party ordered containers holding the given words.
func baselines(words, queries []string) []Measurement {
	bt := btree.NewOrderedG[string](degree)
	rb := redblacktree.NewWithStringComparator()
	lr := llrb.New()
	for _, word := range words {
		bt.ReplaceOrInsert(word)
		rb.Put(word, struct{}{})
		lr.ReplaceOrInsert(llrb.String(word))
	}

	return []Measurement{
		measure("B-tree", queries, bt.Has),
		measure("red-black tree", queries, func(query string) bool {
			_, found := rb.Get(query)
			return found
		}),
		measure("left-leaning red-black tree", queries, func(query string) bool {
			return lr.Has(llrb.String(query))
		}),
	}
}
