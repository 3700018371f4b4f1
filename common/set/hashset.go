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

const (
	// DefaultCapacity is the number of buckets of a new HashSet
	DefaultCapacity = 10
	// MaxLoadFactor is the ratio of elements to buckets above which the table doubles
	MaxLoadFactor = 0.8
)

type (
	// HashFunction maps an element onto an unsigned hash value
	HashFunction[T any] func(element T) uint32

	// HashSet is a Set stored in a separately chained hash table. Whenever an
	// insertion pushes the load factor above MaxLoadFactor the table is
	// rebuilt at twice its capacity.
	HashSet[T comparable] struct {
		hashFunction    HashFunction[T]
		buckets         []*hashNode[T]
		count           int
		initialCapacity int
		rehashes        int
	}

	hashNode[T comparable] struct {
		value T
		next  *hashNode[T]
	}
)

// NewHashSet returns an empty set with DefaultCapacity buckets that uses
// hashFunction whenever it needs to hash an element
func NewHashSet[T comparable](hashFunction HashFunction[T]) *HashSet[T] {
	return NewHashSetWithCapacity(hashFunction, DefaultCapacity)
}

// NewHashSetWithCapacity is NewHashSet with an explicit starting capacity
func NewHashSetWithCapacity[T comparable](hashFunction HashFunction[T], capacity int) *HashSet[T] {

	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &HashSet[T]{
		hashFunction:    hashFunction,
		buckets:         make([]*hashNode[T], capacity),
		initialCapacity: capacity,
	}
}

// Add adds an element to the table, rehashing if the load factor goes above
// MaxLoadFactor.
//
// Complexity: O(1) amortized, O(n) when the insertion triggers a rehash
func (t *HashSet[T]) Add(element T) {

	if !t.insert(element) {
		return
	}

	if t.LoadFactor() > MaxLoadFactor {
		t.rehash()
	}
}

// Contains checks if the element is in the table.
//
// Complexity: O(chain length)
func (t *HashSet[T]) Contains(element T) bool {
	return t.IsElementAtIndex(element, t.index(element))
}

// Size returns the number of elements in the table
func (t *HashSet[T]) Size() int {
	return t.count
}

// Capacity returns the number of buckets
func (t *HashSet[T]) Capacity() int {
	return len(t.buckets)
}

// LoadFactor returns the ratio of elements to buckets
func (t *HashSet[T]) LoadFactor() float64 {
	return float64(t.count) / float64(len(t.buckets))
}

// Rehashes returns how many times the table has grown
func (t *HashSet[T]) Rehashes() int {
	return t.rehashes
}

// ElementsAtIndex returns the length of the chain at the given bucket, or 0
// if the index is out of range
func (t *HashSet[T]) ElementsAtIndex(index int) int {

	if index < 0 || index >= len(t.buckets) {
		return 0
	}

	n := 0
	for node := t.buckets[index]; node != nil; node = node.next {
		n++
	}

	return n
}

// IsElementAtIndex checks if the element is in the chain of the given bucket.
// An out of range index is reported as false.
func (t *HashSet[T]) IsElementAtIndex(element T, index int) bool {

	if index < 0 || index >= len(t.buckets) {
		return false
	}

	for node := t.buckets[index]; node != nil; node = node.next {
		if node.value == element {
			return true
		}
	}

	return false
}

// Clear releases every chain and shrinks the table back to its initial capacity
func (t *HashSet[T]) Clear() {
	t.buckets = make([]*hashNode[T], t.initialCapacity)
	t.count = 0
	t.rehashes = 0
}

// Clone returns a deep copy of the table with the same hash function
func (t *HashSet[T]) Clone() *HashSet[T] {

	return &HashSet[T]{
		hashFunction:    t.hashFunction,
		buckets:         cloneBuckets(t.buckets),
		count:           t.count,
		initialCapacity: t.initialCapacity,
		rehashes:        t.rehashes,
	}
}

// CopyFrom replaces the contents of the table, including its hash function,
// with a deep copy of s
func (t *HashSet[T]) CopyFrom(s *HashSet[T]) {

	if t == s {
		return
	}

	t.buckets = nil
	t.hashFunction = s.hashFunction
	t.buckets = cloneBuckets(s.buckets)
	t.count = s.count
	t.initialCapacity = s.initialCapacity
	t.rehashes = s.rehashes
}

// MoveFrom takes ownership of the chains of s. The hash function is copied,
// s keeps its own and is left empty at its initial capacity.
func (t *HashSet[T]) MoveFrom(s *HashSet[T]) {

	if t == s {
		return
	}

	t.hashFunction = s.hashFunction
	t.buckets = s.buckets
	t.count = s.count
	t.initialCapacity = s.initialCapacity
	t.rehashes = s.rehashes

	s.buckets = make([]*hashNode[T], s.initialCapacity)
	s.count = 0
	s.rehashes = 0
}

func (t *HashSet[T]) index(element T) int {
	return int(uint64(t.hashFunction(element)) % uint64(len(t.buckets)))
}

// insert appends element to the tail of its chain, it returns false when the
// element was already present
func (t *HashSet[T]) insert(element T) bool {

	i := t.index(element)

	node := t.buckets[i]
	if node == nil {
		t.buckets[i] = &hashNode[T]{value: element}
		t.count++
		return true
	}

	for {
		if node.value == element {
			return false
		}
		if node.next == nil {
			break
		}
		node = node.next
	}

	node.next = &hashNode[T]{value: element}
	t.count++
	return true
}

// rehash doubles the capacity and reinserts every element, bucket by bucket
// and head to tail. The doubled table ends up about half full, the transfer
// never grows it again.
func (t *HashSet[T]) rehash() {

	old := t.buckets

	t.buckets = make([]*hashNode[T], 2*len(old))
	t.count = 0

	for _, head := range old {
		for node := head; node != nil; node = node.next {
			t.insert(node.value)
		}
	}

	t.rehashes++
}

func cloneBuckets[T comparable](buckets []*hashNode[T]) []*hashNode[T] {

	c := make([]*hashNode[T], len(buckets))

	for i, head := range buckets {
		tail := &c[i]
		for node := head; node != nil; node = node.next {
			*tail = &hashNode[T]{value: node.value}
			tail = &(*tail).next
		}
	}

	return c
}
