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

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/uber/wordset/common/set"
)

// ErrEmptyDictionary is returned when a word list holds no words
var ErrEmptyDictionary = errors.New("wordchecker: dictionary has no words")

// LoadWords adds every word read from r to words and returns how many lines
// held a word. Words are trimmed and upper-cased; blank lines and lines
// starting with '#' are skipped.
func LoadWords(r io.Reader, words set.Set[string]) (int, error) {

	n := 0
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if len(word) == 0 || strings.HasPrefix(word, "#") {
			continue
		}

		words.Add(strings.ToUpper(word))
		n++
	}

	if err := scanner.Err(); err != nil {
		return n, pkgerrors.Wrap(err, "failed to read word list")
	}

	if n == 0 {
		return 0, ErrEmptyDictionary
	}

	return n, nil
}

// LoadWordsFile is LoadWords over the file at path
func LoadWordsFile(path string, words set.Set[string]) (int, error) {

	f, err := os.Open(path)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "failed to open dictionary %s", path)
	}
	defer f.Close()

	n, err := LoadWords(f, words)
	if err != nil {
		return n, pkgerrors.Wrapf(err, "failed to load dictionary %s", path)
	}

	return n, nil
}
