// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package set

import (
	"cmp"
	"iter"
)

type (
	// AVLSet is a Set stored in an AVL tree. Balancing can be turned off at
	// construction, in which case the tree behaves like a plain binary search
	// tree and degenerates into a chain when elements arrive in sorted order.
	AVLSet[T cmp.Ordered] struct {
		root          *avlNode[T]
		count         int
		shouldBalance bool
	}

	avlNode[T cmp.Ordered] struct {
		value  T
		height int // leaf is 1
		left   *avlNode[T]
		right  *avlNode[T]
	}
)

// NewAVLSet returns an empty tree set, with or without balancing
func NewAVLSet[T cmp.Ordered](shouldBalance bool) *AVLSet[T] {

	return &AVLSet[T]{
		shouldBalance: shouldBalance,
	}
}

// Balanced reports whether the tree rebalances on insertion
func (t *AVLSet[T]) Balanced() bool {
	return t.shouldBalance
}

// Add adds an element to the tree.
//
// Complexity: O(log n) when balanced, O(height) otherwise
func (t *AVLSet[T]) Add(element T) {

	var added bool

	t.root, added = t.insert(t.root, element)

	if added {
		t.count++
	}
}

// Contains checks if the element is in the tree.
//
// Complexity: O(log n) when balanced, O(height) otherwise
func (t *AVLSet[T]) Contains(element T) bool {

	n := t.root

	for n != nil {
		switch {
		case element < n.value:
			n = n.left
		case element > n.value:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Size returns the number of elements in the tree
func (t *AVLSet[T]) Size() int {
	return t.count
}

// Height returns the height of the tree, -1 when empty and 0 for a single node
func (t *AVLSet[T]) Height() int {
	return height(t.root) - 1
}

// Preorder calls visit for every element, each node before its children
func (t *AVLSet[T]) Preorder(visit func(T)) {
	preorder(t.root, visit)
}

// Inorder calls visit for every element in ascending order
func (t *AVLSet[T]) Inorder(visit func(T)) {
	inorder(t.root, visit)
}

// Postorder calls visit for every element, each node after its children
func (t *AVLSet[T]) Postorder(visit func(T)) {
	postorder(t.root, visit)
}

// All returns the elements in ascending order. Iteration stops as soon as the
// consumer stops asking for elements.
func (t *AVLSet[T]) All() iter.Seq[T] {

	return func(yield func(T) bool) {
		all(t.root, yield)
	}
}

// Clear releases every node
func (t *AVLSet[T]) Clear() {
	t.root = nil
	t.count = 0
}

// Clone returns a deep copy of the tree, sharing no nodes with the original
func (t *AVLSet[T]) Clone() *AVLSet[T] {

	return &AVLSet[T]{
		root:          cloneNode(t.root),
		count:         t.count,
		shouldBalance: t.shouldBalance,
	}
}

// CopyFrom replaces the contents of the tree with a deep copy of s
func (t *AVLSet[T]) CopyFrom(s *AVLSet[T]) {

	if t == s {
		return
	}

	t.Clear()
	t.root = cloneNode(s.root)
	t.count = s.count
	t.shouldBalance = s.shouldBalance
}

// MoveFrom takes ownership of the nodes of s, leaving s empty
func (t *AVLSet[T]) MoveFrom(s *AVLSet[T]) {

	if t == s {
		return
	}

	t.Clear()
	t.root, s.root = s.root, nil
	t.count, s.count = s.count, 0
	t.shouldBalance = s.shouldBalance
}

func (t *AVLSet[T]) insert(n *avlNode[T], element T) (*avlNode[T], bool) {

	if n == nil {
		return &avlNode[T]{value: element, height: 1}, true
	}

	var added bool

	switch {
	case element < n.value:
		n.left, added = t.insert(n.left, element)
	case element > n.value:
		n.right, added = t.insert(n.right, element)
	default:
		return n, false // already contains element
	}

	if !added {
		return n, false
	}

	n.updateHeight()

	if !t.shouldBalance {
		return n, true
	}

	return rebalance(n, element), true
}

// rebalance restores the AVL invariant at n after element was added below it
func rebalance[T cmp.Ordered](n *avlNode[T], element T) *avlNode[T] {

	bf := height(n.left) - height(n.right)

	switch {
	case bf > 1 && element < n.left.value:
		return rotateRight(n)

	case bf > 1 && element > n.left.value:
		n.left = rotateLeft(n.left)
		return rotateRight(n)

	case bf < -1 && element < n.right.value:
		n.right = rotateRight(n.right)
		return rotateLeft(n)

	case bf < -1 && element > n.right.value:
		return rotateLeft(n)
	}

	return n
}

// rotateRight lifts the left child of n:
//
//	    n              l
//	   / \            / \
//	  l   c   -->    a   n
//	 / \                / \
//	a   b              b   c
func rotateRight[T cmp.Ordered](n *avlNode[T]) *avlNode[T] {

	l := n.left
	n.left = l.right
	l.right = n

	n.updateHeight()
	l.updateHeight()

	return l
}

// rotateLeft lifts the right child of n:
//
//	  n                  r
//	 / \                / \
//	a   r     -->      n   c
//	   / \            / \
//	  b   c          a   b
func rotateLeft[T cmp.Ordered](n *avlNode[T]) *avlNode[T] {

	r := n.right
	n.right = r.left
	r.left = n

	n.updateHeight()
	r.updateHeight()

	return r
}

func (n *avlNode[T]) updateHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func height[T cmp.Ordered](n *avlNode[T]) int {

	if n == nil {
		return 0
	}

	return n.height
}

func cloneNode[T cmp.Ordered](n *avlNode[T]) *avlNode[T] {

	if n == nil {
		return nil
	}

	return &avlNode[T]{
		value:  n.value,
		height: n.height,
		left:   cloneNode(n.left),
		right:  cloneNode(n.right),
	}
}

func preorder[T cmp.Ordered](n *avlNode[T], visit func(T)) {

	if n == nil {
		return
	}

	visit(n.value)
	preorder(n.left, visit)
	preorder(n.right, visit)
}

func inorder[T cmp.Ordered](n *avlNode[T], visit func(T)) {

	if n == nil {
		return
	}

	inorder(n.left, visit)
	visit(n.value)
	inorder(n.right, visit)
}

func postorder[T cmp.Ordered](n *avlNode[T], visit func(T)) {

	if n == nil {
		return
	}

	postorder(n.left, visit)
	postorder(n.right, visit)
	visit(n.value)
}

func all[T cmp.Ordered](n *avlNode[T], yield func(T) bool) bool {

	if n == nil {
		return true
	}

	return all(n.left, yield) && yield(n.value) && all(n.right, yield)
}
