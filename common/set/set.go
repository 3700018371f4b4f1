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
	"errors"
	"strings"
)

type Set[T any] interface {
	// Add adds an element to the set, it is a no-op if the element is already present
	Add(element T)
	// Contains checks if the element exists in the set
	Contains(element T) bool
	// Size returns the number of elements in the set
	Size() int
}

// Kind names a storage engine for a string set
type Kind string

const (
	// KindAVL is a self-balancing AVL tree
	KindAVL Kind = "avl"
	// KindBST is the AVL engine with balancing turned off
	KindBST Kind = "bst"
	// KindHash is a separately chained hash table
	KindHash Kind = "hash"
)

// ErrUnknownKind is returned when a set kind is not one of the known engines
var ErrUnknownKind = errors.New("set: unknown kind")

// ParseKind maps a case-insensitive name onto a Kind
func ParseKind(name string) (Kind, error) {

	switch k := Kind(strings.ToLower(strings.TrimSpace(name))); k {
	case KindAVL, KindBST, KindHash:
		return k, nil
	}

	return "", ErrUnknownKind
}

// NewStringSet returns an empty string set backed by the given engine. The
// capacity is only used by the hash engine; zero selects DefaultCapacity.
func NewStringSet(kind Kind, capacity int) (Set[string], error) {

	switch kind {
	case KindAVL:
		return NewAVLSet[string](true), nil
	case KindBST:
		return NewAVLSet[string](false), nil
	case KindHash:
		return NewHashSetWithCapacity(StringHash, capacity), nil
	}

	return nil, ErrUnknownKind
}
