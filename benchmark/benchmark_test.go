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

package benchmark

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/9rum/linkedbst/internal/data"
)

// dictionary returns a dictionary of n distinct words in random order.
func dictionary(t testing.TB, n int) *data.Dictionary {
	t.Helper()
	words := make([]string, 0, n)
	for _, v := range rand.Perm(n) {
		words = append(words, fmt.Sprintf("w%06d", v))
	}
	d, err := data.NewDictionary(words)
	require.NoError(t, err)
	return d
}

func TestRun(t *testing.T) {
	const dictSize, queries = 1 << 10, 1 << 8
	d := dictionary(t, dictSize)
	report := Run(d, d.Sample(queries, rand.New(rand.NewSource(1))))

	require.Len(t, report.Measurements, 7)
	assert.Equal(t, queries, report.Queries)

	names := make([]string, 0, len(report.Measurements))
	for _, m := range report.Measurements {
		names = append(names, m.Name)
		assert.Equal(t, queries, m.Hits, m.Name)
	}
	assert.Equal(t, []string{
		"sorted list",
		"sorted BST",
		"unsorted BST",
		"balanced BST",
		"B-tree",
		"red-black tree",
		"left-leaning red-black tree",
	}, names)

	sorted, balanced := report.Measurements[1], report.Measurements[3]
	assert.True(t, sorted.Tree)
	assert.Equal(t, dictSize-1, sorted.Height)
	assert.False(t, sorted.Balanced)
	assert.True(t, balanced.Tree)
	assert.Equal(t, 10, balanced.Height)
	assert.True(t, balanced.Balanced)
	assert.False(t, report.Measurements[0].Tree)
}

func TestRunMisses(t *testing.T) {
	d := dictionary(t, 64)
	report := Run(d, []string{"absent", "w000001", "zzz"})
	for _, m := range report.Measurements {
		assert.Equal(t, 1, m.Hits, m.Name)
	}
}

func TestReportString(t *testing.T) {
	report := &Report{
		Queries: 10000,
		Measurements: []Measurement{
			{Name: "sorted list", Elapsed: 1500000000},
			{Name: "balanced BST", Elapsed: 2000},
		},
	}
	lines := strings.Split(strings.TrimSuffix(report.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Time to search 10000 random words in a dictionary (sorted list): 1.500000 seconds",
		"Time to search 10000 random words in a dictionary (balanced BST): 0.000002 seconds",
	}, lines)
}

func BenchmarkRun(b *testing.B) {
	d := dictionary(b, 1<<12)
	queries := d.Sample(1<<10, rand.New(rand.NewSource(0)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Run(d, queries)
	}
}
