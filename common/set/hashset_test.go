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
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(v int) uint32 {
	return uint32(v)
}

func constant(string) uint32 {
	return 7
}

func TestHashSetEmpty(t *testing.T) {

	s := NewHashSet[int](identity)

	assert.Equal(t, 0, s.Size())
	assert.Equal(t, DefaultCapacity, s.Capacity())
	assert.False(t, s.Contains(3))

	for i := 0; i < s.Capacity(); i++ {
		assert.Equal(t, 0, s.ElementsAtIndex(i))
	}
}

func TestHashSetRehashOnce(t *testing.T) {

	s := NewHashSet[int](identity)

	for i := 0; i < 8; i++ {
		s.Add(i)
	}
	// 8/10 is not above the threshold
	assert.Equal(t, 10, s.Capacity())
	assert.Equal(t, 0, s.Rehashes())

	s.Add(8)
	assert.Equal(t, 20, s.Capacity())
	assert.Equal(t, 1, s.Rehashes())
	assert.Equal(t, 9, s.Size())
	assert.InDelta(t, 0.45, s.LoadFactor(), 1e-9)

	for i := 0; i < 9; i++ {
		assert.True(t, s.Contains(i))
		assert.True(t, s.IsElementAtIndex(i, i))
		assert.Equal(t, 1, s.ElementsAtIndex(i))
	}
}

func TestHashSetRehashKeepsElements(t *testing.T) {

	s := NewHashSet[string](PolynomialHash)

	var inserted []string
	for i := 0; i < 2000; i++ {
		w := "w" + strconv.Itoa(i)
		s.Add(w)
		inserted = append(inserted, w)

		require.LessOrEqual(t, s.LoadFactor(), MaxLoadFactor)
		require.Equal(t, len(inserted), s.Size())
	}

	for _, w := range inserted {
		require.True(t, s.Contains(w), w)
	}

	total := 0
	for i := 0; i < s.Capacity(); i++ {
		total += s.ElementsAtIndex(i)
	}
	assert.Equal(t, 2000, total)
	assert.Equal(t, 10*(1<<s.Rehashes()), s.Capacity())
}

func TestHashSetChaining(t *testing.T) {

	s := NewHashSetWithCapacity[string](constant, 100)

	for _, w := range []string{"BAT", "CAT", "ARE", "AS", "CAT"} {
		s.Add(w)
	}

	assert.Equal(t, 4, s.Size())
	assert.Equal(t, 4, s.ElementsAtIndex(7))
	assert.Equal(t, 0, s.ElementsAtIndex(6))
	assert.True(t, s.IsElementAtIndex("AS", 7))
	assert.False(t, s.IsElementAtIndex("AS", 6))
	assert.False(t, s.IsElementAtIndex("DOG", 7))

	// chains are appended at the tail
	var chain []string
	for n := s.buckets[7]; n != nil; n = n.next {
		chain = append(chain, n.value)
	}
	assert.Equal(t, []string{"BAT", "CAT", "ARE", "AS"}, chain)
}

func TestHashSetOutOfRange(t *testing.T) {

	s := NewHashSet[int](identity)
	s.Add(1)

	for _, i := range []int{-1, DefaultCapacity, 1 << 20} {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			assert.Equal(t, 0, s.ElementsAtIndex(i))
			assert.False(t, s.IsElementAtIndex(1, i))
		})
	}
}

func TestHashSetCapacity(t *testing.T) {

	assert.Equal(t, DefaultCapacity, NewHashSetWithCapacity[int](identity, 0).Capacity())
	assert.Equal(t, DefaultCapacity, NewHashSetWithCapacity[int](identity, -5).Capacity())
	assert.Equal(t, 1000, NewHashSetWithCapacity[int](identity, 1000).Capacity())

	s := NewHashSetWithCapacity[int](identity, 1)
	s.Add(1)
	assert.Equal(t, 2, s.Capacity())
	s.Add(2)
	assert.Equal(t, 4, s.Capacity())

	s.Clear()
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, 1, s.Capacity())
	assert.Equal(t, 0, s.Rehashes())
}

func TestHashSetCopyAndMove(t *testing.T) {

	s := NewHashSet[string](constant)
	for _, w := range []string{"BAT", "CAT", "ARE"} {
		s.Add(w)
	}

	c := s.Clone()
	c.Add("DOG")

	assert.Equal(t, 3, s.Size())
	assert.False(t, s.Contains("DOG"))
	assert.Equal(t, 4, c.Size())
	// the clone hashes like the original
	assert.True(t, c.IsElementAtIndex("DOG", 7))

	a := NewHashSet[string](StringHash)
	a.Add("ZEBRA")
	a.CopyFrom(s)
	assert.False(t, a.Contains("ZEBRA"))
	assert.Equal(t, 3, a.ElementsAtIndex(7))
	a.Add("EEL")
	assert.True(t, a.IsElementAtIndex("EEL", 7))
	assert.False(t, s.Contains("EEL"))

	m := NewHashSet[string](StringHash)
	m.Add("ZEBRA")
	head := s.buckets[7]
	m.MoveFrom(s)

	assert.Same(t, head, m.buckets[7])
	assert.Equal(t, 3, m.Size())
	assert.False(t, m.Contains("ZEBRA"))
	assert.True(t, m.IsElementAtIndex("CAT", 7))

	assert.Equal(t, 0, s.Size())
	assert.Equal(t, DefaultCapacity, s.Capacity())
	assert.False(t, s.Contains("CAT"))
	s.Add("ANT")
	assert.True(t, s.IsElementAtIndex("ANT", 7))
	assert.False(t, m.Contains("ANT"))
}
