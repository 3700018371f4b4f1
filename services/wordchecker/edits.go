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

package wordchecker

// forEachTransposition visits word with each pair of neighbouring characters swapped
func forEachTransposition(word string, visit func(string)) {

	b := []byte(word)

	for i := 0; i+1 < len(b); i++ {
		b[i], b[i+1] = b[i+1], b[i]
		visit(string(b))
		b[i], b[i+1] = b[i+1], b[i]
	}
}

// forEachInsertion visits word with every letter inserted at every position,
// both ends included
func forEachInsertion(word string, alphabet []byte, visit func(string)) {

	b := make([]byte, len(word)+1)

	for i := 0; i <= len(word); i++ {
		copy(b, word[:i])
		copy(b[i+1:], word[i:])
		for _, c := range alphabet {
			b[i] = c
			visit(string(b))
		}
	}
}

// forEachDeletion visits word with each character removed
func forEachDeletion(word string, visit func(string)) {

	for i := 0; i < len(word); i++ {
		visit(word[:i] + word[i+1:])
	}
}

// forEachSubstitution visits word with every character replaced by every
// other letter
func forEachSubstitution(word string, alphabet []byte, visit func(string)) {

	b := []byte(word)

	for i := range b {
		orig := b[i]
		for _, c := range alphabet {
			if c == orig {
				continue
			}
			b[i] = c
			visit(string(b))
		}
		b[i] = orig
	}
}

// forEachSplit visits word with a space inserted at every position
func forEachSplit(word string, visit func(string)) {

	for i := 0; i <= len(word); i++ {
		visit(word[:i] + " " + word[i:])
	}
}
