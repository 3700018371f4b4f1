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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {

	testCases := []struct {
		in   string
		kind Kind
		err  error
	}{
		{"avl", KindAVL, nil},
		{" AVL ", KindAVL, nil},
		{"bst", KindBST, nil},
		{"Hash", KindHash, nil},
		{"btree", "", ErrUnknownKind},
		{"", "", ErrUnknownKind},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			kind, err := ParseKind(tc.in)
			assert.Equal(t, tc.err, err)
			assert.Equal(t, tc.kind, kind)
		})
	}
}

func TestSet(t *testing.T) {

	for _, kind := range []Kind{KindAVL, KindBST, KindHash} {
		t.Run(string(kind), func(t *testing.T) {

			s, err := NewStringSet(kind, 0)
			require.NoError(t, err)

			assert.False(t, s.Contains("foo"))
			assert.Equal(t, 0, s.Size())

			s.Add("foo")
			assert.Equal(t, 1, s.Size())
			assert.True(t, s.Contains("foo"))

			s.Add("foo")
			assert.Equal(t, 1, s.Size())

			s.Add("bar")
			assert.Equal(t, 2, s.Size())
			assert.True(t, s.Contains("bar"))
			assert.False(t, s.Contains("baz"))

			words := []string{"BAT", "CAT", "ARE", "AS", "CATS", "AT", "CAR", "BAT", "AS"}
			for _, w := range words {
				s.Add(w)
			}
			assert.Equal(t, 9, s.Size())
			for _, w := range words {
				assert.True(t, s.Contains(w), w)
			}
		})
	}

	_, err := NewStringSet("trie", 0)
	assert.Equal(t, ErrUnknownKind, err)
}

func TestNewStringSetEngines(t *testing.T) {

	s, _ := NewStringSet(KindAVL, 0)
	assert.True(t, s.(*AVLSet[string]).Balanced())

	s, _ = NewStringSet(KindBST, 0)
	assert.False(t, s.(*AVLSet[string]).Balanced())

	s, _ = NewStringSet(KindHash, 0)
	assert.Equal(t, DefaultCapacity, s.(*HashSet[string]).Capacity())

	s, _ = NewStringSet(KindHash, 10000)
	assert.Equal(t, 10000, s.(*HashSet[string]).Capacity())
}

func TestStringHash(t *testing.T) {

	assert.Equal(t, StringHash("CAT"), StringHash("CAT"))
	assert.NotEqual(t, StringHash("CAT"), StringHash("TAC"))

	assert.Equal(t, uint32(0), PolynomialHash(""))
	assert.Equal(t, uint32('A'), PolynomialHash("A"))
	assert.Equal(t, uint32(31*'A'+'B'), PolynomialHash("AB"))
}
