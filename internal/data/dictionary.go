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

// Package data provides primitives for loading a word list and turning it into
// the trees and queries the benchmark works on.
package data

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/9rum/linkedbst/internal/bst"
)

// ErrEmptyDictionary is returned when a word list holds no words.
var ErrEmptyDictionary = errors.New("empty dictionary")

// Dictionary represents a list of words in the order they were read.
type Dictionary struct {
	words []string
}

// NewDictionary creates a new dictionary with the given words.
func NewDictionary(words []string) (*Dictionary, error) {
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}
	return &Dictionary{words: words}, nil
}

// LoadDictionary reads the word list at the given path.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := ReadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// ReadDictionary reads one word per line from r.  Surrounding whitespace is
// trimmed and blank lines are skipped.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if word := strings.TrimSpace(scanner.Text()); word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewDictionary(words)
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns the words in the order they were read.
func (d *Dictionary) Words() []string {
	return d.words
}

// Sorted returns a sorted copy of the words.
func (d *Dictionary) Sorted() []string {
	sorted := make([]string, len(d.words))
	copy(sorted, d.words)
	sort.Strings(sorted)
	return sorted
}

// Tree builds a tree by adding the words one by one, in sorted order if sorted
// is set and in the order they were read otherwise.
func (d *Dictionary) Tree(sorted bool) *bst.Tree[string] {
	if sorted {
		return bst.New(d.Sorted()...)
	}
	return bst.New(d.words...)
}

// Sample selects n distinct positions of the dictionary at random and returns
// the words found there.  All words are returned, shuffled, if n is not less
// than the size of the dictionary.
func (d *Dictionary) Sample(n int, rng *rand.Rand) []string {
	n = max(0, min(n, len(d.words)))
	out := make([]string, 0, n)
	for _, index := range rng.Perm(len(d.words))[:n] {
		out = append(out, d.words[index])
	}
	return out
}
