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

package bst

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// node is a single linked node in a tree.  A node is owned exclusively by its
// parent, or by the tree for the root; there are no back references.
type node[T constraints.Ordered] struct {
	value       T
	left, right *node[T]
}

// newNode creates a new leaf holding the given value.
func newNode[T constraints.Ordered](value T) *node[T] {
	return &node[T]{value: value}
}

// height returns the number of nodes on the longest path from n down to a leaf.
// The height of an empty subtree is 0.
func (n *node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// walk calls iter for every value in the subtree rooted at n in ascending
// order.  It returns false as soon as iter does.
func (n *node[T]) walk(iter Iterator[T]) bool {
	if n == nil {
		return true
	}
	return n.left.walk(iter) && iter(n.value) && n.right.walk(iter)
}

// build creates a minimum-height subtree from the given sorted values by
// picking the middle element as the root and recursing on both halves.  It
// returns nil for an empty slice.
func build[T constraints.Ordered](values []T) *node[T] {
	if len(values) == 0 {
		return nil
	}
	mid := (len(values) - 1) / 2
	return &node[T]{
		value: values[mid],
		left:  build(values[:mid]),
		right: build(values[mid+1:]),
	}
}

// render writes the subtree rooted at n rotated 90 degrees counterclockwise:
// the right subtree first, then the node indented by level, then the left
// subtree.
func (n *node[T]) render(b *strings.Builder, level int, format func(T) string) {
	if n == nil {
		return
	}
	n.right.render(b, level+1, format)
	b.WriteString(strings.Repeat("| ", level))
	b.WriteString(format(n.value))
	b.WriteByte('\n')
	n.left.render(b, level+1, format)
}
