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

// Package bst implements an in-memory, link-based binary search tree.
//
// The tree keeps no balance on its own: Add and Remove perform plain pointer
// surgery and the shape of the tree follows the insertion order.  Balance is
// restored only on request with Rebalance, which rebuilds the tree into a
// minimum-height shape.  IsBalanced reports whether doing so is worthwhile.
//
// Duplicate values are permitted.  An item equal to a stored value descends to
// the right, so runs of equal values grow toward the right side of the tree.
//
// A Tree is not safe for concurrent use; callers sharing a tree must serialize
// access themselves.
package bst

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	// ErrNotFound is returned by Remove when the item is not in the tree.
	ErrNotFound = errors.New("item not in tree")

	// ErrInvalidRange is returned by RangeFind when low is greater than high.
	ErrInvalidRange = errors.New("low must be less than or equal to high")
)

// Iterator allows callers of Ascend to iterate in-order over the tree.  When
// this function returns false, iteration will stop and Ascend will immediately
// return.
type Iterator[T constraints.Ordered] func(T) bool

// Tree is a link-based binary search tree.
//
// For every node, the values in its left subtree are less than or equal to its
// value and the values in its right subtree are greater than or equal to it.
// The zero value is an empty tree ready to use.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

// New creates a new tree containing the given items, added in order.
func New[T constraints.Ordered](items ...T) *Tree[T] {
	t := new(Tree[T])
	t.Extend(items...)
	return t
}

// Extend adds the given items to the tree in order.
func (t *Tree[T]) Extend(items ...T) {
	for _, item := range items {
		t.Add(item)
	}
}

// Len returns the number of items currently in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree holds no items.
func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Clear removes all items from the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Preorder returns a closure f that yields the items of the tree in preorder,
// a node before its left subtree and its left subtree before its right one.
// Calling f is like calling "Next()" of iterators: item, ok = f().  item is
// meaningful only if ok is true; once f is exhausted it keeps returning false.
// f walks the tree with an explicit stack, so it is safe on degenerate trees of
// any depth.  The tree must not be modified while f is in use.
func (t *Tree[T]) Preorder() func() (T, bool) {
	var stack []*node[T]
	if t.root != nil {
		stack = append(stack, t.root)
	}
	return func() (_ T, _ bool) {
		if len(stack) == 0 {
			return
		}
		n := stack[len(stack)-1]
		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
		return n.value, true
	}
}

// Ascend calls the iterator for every item in the tree in ascending order,
// until iterator returns false.
func (t *Tree[T]) Ascend(iterator Iterator[T]) {
	t.root.walk(iterator)
}

// Inorder returns all items of the tree in ascending order.
func (t *Tree[T]) Inorder() []T {
	out := make([]T, 0, t.size)
	t.Ascend(func(item T) bool {
		out = append(out, item)
		return true
	})
	return out
}

// Find looks for an item equal to the given one and returns the stored item.
// The second return value reports whether such an item exists.
func (t *Tree[T]) Find(item T) (_ T, _ bool) {
	for n := t.root; n != nil; {
		if item == n.value {
			return n.value, true
		}
		if item < n.value {
			n = n.left
		} else {
			n = n.right
		}
	}
	return
}

// Has reports whether an item equal to the given one is in the tree.
func (t *Tree[T]) Has(item T) bool {
	_, ok := t.Find(item)
	return ok
}

// Add adds the given item to the tree.  Items equal to a stored value are
// placed as if they were greater than it.  The tree is not rebalanced.
func (t *Tree[T]) Add(item T) {
	t.size++
	if t.root == nil {
		t.root = newNode(item)
		return
	}

	var parent *node[T]
	for n := t.root; n != nil; {
		parent = n
		if item < n.value {
			n = n.left
		} else {
			n = n.right
		}
	}

	// the final placement compares against the parent only
	if item < parent.value {
		parent.left = newNode(item)
	} else {
		parent.right = newNode(item)
	}
}

// direction tells which link of its parent a node hangs from.
type direction int

const (
	descendLeft = direction(iota)
	descendRight
)

// Remove removes an item equal to the given one from the tree and returns the
// stored item.  It returns ErrNotFound, leaving the tree untouched, if there is
// no such item.
func (t *Tree[T]) Remove(item T) (_ T, err error) {
	// preRoot stands in as the parent of the root, so that removing the root
	// takes the same path as removing any other node.
	preRoot := &node[T]{left: t.root}
	parent, dir := preRoot, descendLeft

	n := t.root
	for n != nil && n.value != item {
		parent = n
		if item < n.value {
			n, dir = n.left, descendLeft
		} else {
			n, dir = n.right, descendRight
		}
	}
	if n == nil {
		err = ErrNotFound
		return
	}
	removed := n.value

	if n.left != nil && n.right != nil {
		liftMaxOfLeft(n)
	} else {
		child := n.right
		if n.right == nil {
			child = n.left
		}
		if dir == descendLeft {
			parent.left = child
		} else {
			parent.right = child
		}
	}

	t.size--
	if t.size == 0 {
		t.root = nil
	} else {
		t.root = preRoot.left
	}
	return removed, nil
}

// liftMaxOfLeft replaces the value of top with the maximum value in its left
// subtree and unlinks the node that held it.  top must have a left child.
func liftMaxOfLeft[T constraints.Ordered](top *node[T]) {
	parent, n := top, top.left
	for n.right != nil {
		parent, n = n, n.right
	}
	top.value = n.value
	if parent == top {
		top.left = n.left
	} else {
		parent.right = n.left
	}
}

// Replace overwrites the stored item equal to the given one with newItem and
// returns the previous item.  The position of the node is left unchanged, so it
// is up to the caller to keep newItem consistent with the ordering of the tree.
// The second return value is false if no such item exists.
func (t *Tree[T]) Replace(item, newItem T) (_ T, _ bool) {
	for n := t.root; n != nil; {
		if n.value == item {
			old := n.value
			n.value = newItem
			return old, true
		}
		if item < n.value {
			n = n.left
		} else {
			n = n.right
		}
	}
	return
}

// Height returns the number of edges on the longest path from the root to a
// leaf.  Both an empty tree and a single-node tree have height 0.
func (t *Tree[T]) Height() int {
	return max(t.root.height()-1, 0)
}

// IsBalanced reports whether the height of the tree is less than
// 2*log2(n+1)-1 for a tree of n items.  An empty tree is balanced.
func (t *Tree[T]) IsBalanced() bool {
	if t.size == 0 {
		return true
	}
	return float64(t.Height()) < 2*math.Log2(float64(t.size+1))-1
}

// RangeFind returns the items v with low <= v <= high in ascending order.  It
// walks the whole tree, so it takes time linear in the size of the tree
// regardless of how many items match.
func (t *Tree[T]) RangeFind(low, high T) ([]T, error) {
	if high < low {
		return nil, ErrInvalidRange
	}
	var out []T
	t.Ascend(func(item T) bool {
		if low <= item && item <= high {
			out = append(out, item)
		}
		return true
	})
	return out, nil
}

// Successor returns the smallest item greater than the given one.  It scans
// every item of the tree.
func (t *Tree[T]) Successor(item T) (succ T, found bool) {
	next := t.Preorder()
	for v, ok := next(); ok; v, ok = next() {
		if item < v && (!found || v < succ) {
			succ, found = v, true
		}
	}
	return
}

// Predecessor returns the greatest item less than the given one.  It scans
// every item of the tree.
func (t *Tree[T]) Predecessor(item T) (pred T, found bool) {
	next := t.Preorder()
	for v, ok := next(); ok; v, ok = next() {
		if v < item && (!found || pred < v) {
			pred, found = v, true
		}
	}
	return
}

// Rebalance rebuilds the tree into a minimum-height tree holding the same
// items.  A tree of n items has height ceil(log2(n+1))-1 afterwards.
func (t *Tree[T]) Rebalance() {
	items := t.Inorder()
	t.Clear()
	t.root = build(items)
	t.size = len(items)
}

// String returns a representation of the tree rotated 90 degrees
// counterclockwise, one item per line, indented by its depth.
func (t *Tree[T]) String() string {
	var b strings.Builder
	t.root.render(&b, 0, func(v T) string {
		return fmt.Sprint(v)
	})
	return b.String()
}
