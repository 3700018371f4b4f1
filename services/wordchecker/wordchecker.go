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
	"time"

	"github.com/jellydator/ttlcache/v3"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/uber-common/bark"
	"github.com/uber/wordset/common"
	"github.com/uber/wordset/common/metrics"
	"github.com/uber/wordset/common/set"
)

// DefaultAlphabet is the set of letters tried by insertions and substitutions
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type (
	// WordChecker answers whether words are spelled correctly and proposes
	// nearby words when they are not. It only relies on the Set contract, so
	// any storage engine can back it.
	WordChecker struct {
		words    set.Set[string]
		alphabet []byte
		logger   bark.Logger
		cache    *ttlcache.Cache[string, []string]

		lookups            gometrics.Meter
		lookupHits         gometrics.Meter
		suggestionRequests gometrics.Meter
		cacheHits          gometrics.Meter
		suggestions        gometrics.Histogram
	}

	// Option configures a WordChecker
	Option func(*WordChecker)
)

// WithAlphabet replaces DefaultAlphabet
func WithAlphabet(alphabet string) Option {
	return func(w *WordChecker) {
		if len(alphabet) > 0 {
			w.alphabet = []byte(alphabet)
		}
	}
}

// WithLogger sets the logger, the default one logs to stderr
func WithLogger(l bark.Logger) Option {
	return func(w *WordChecker) {
		w.logger = l
	}
}

// WithMetricsRegistry registers the word checker metrics in r instead of a
// private registry
func WithMetricsRegistry(r gometrics.Registry) Option {
	return func(w *WordChecker) {
		w.registerMetrics(r)
	}
}

// WithSuggestionCache memoises FindSuggestions results for ttl, keeping at
// most capacity words. Cached results are not invalidated when words are added
// to the set afterwards; they stay stale until they expire or
// ResetSuggestionCache is called.
func WithSuggestionCache(ttl time.Duration, capacity int) Option {
	return func(w *WordChecker) {
		w.cache = ttlcache.New(
			ttlcache.WithTTL[string, []string](ttl),
			ttlcache.WithCapacity[string, []string](uint64(capacity)),
		)
	}
}

// NewWordChecker returns a WordChecker over words
func NewWordChecker(words set.Set[string], opts ...Option) *WordChecker {

	w := &WordChecker{
		words:    words,
		alphabet: []byte(DefaultAlphabet),
	}

	w.registerMetrics(gometrics.NewRegistry())

	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		w.logger = common.GetDefaultLogger()
	}
	w.logger = w.logger.WithField(common.TagModule, `wordchecker`)

	return w
}

func (w *WordChecker) registerMetrics(r gometrics.Registry) {
	w.lookups = gometrics.GetOrRegisterMeter(metrics.WordCheckerLookups, r)
	w.lookupHits = gometrics.GetOrRegisterMeter(metrics.WordCheckerLookupHits, r)
	w.suggestionRequests = gometrics.GetOrRegisterMeter(metrics.WordCheckerSuggestionRequests, r)
	w.cacheHits = gometrics.GetOrRegisterMeter(metrics.WordCheckerSuggestionCacheHits, r)
	w.suggestions = r.GetOrRegister(metrics.WordCheckerSuggestions, metrics.NewHistogram).(gometrics.Histogram)
}

// WordExists checks if the word is in the word set
func (w *WordChecker) WordExists(word string) bool {

	w.lookups.Mark(1)

	if !w.words.Contains(word) {
		return false
	}

	w.lookupHits.Mark(1)
	return true
}

// FindSuggestions returns the words of the set that are one edit away from
// word, in the order they were first generated and without duplicates. The
// edits tried are, in order: swapping adjacent characters, inserting a letter,
// deleting a character, replacing a character with a different letter and
// splitting the word in two with a space. The word itself is returned when an
// edit reproduces it and it is in the set, e.g. swapping the two Ls of "ALL".
func (w *WordChecker) FindSuggestions(word string) []string {

	w.suggestionRequests.Mark(1)

	if w.cache != nil {
		if item := w.cache.Get(word); item != nil {
			w.cacheHits.Mark(1)
			return append([]string(nil), item.Value()...)
		}
	}

	found := w.findSuggestions(word)

	w.suggestions.Update(int64(len(found)))
	w.logger.WithFields(bark.Fields{
		`word`:        word,
		`suggestions`: len(found),
	}).Debug(`generated suggestions`)

	if w.cache != nil {
		w.cache.Set(word, append([]string(nil), found...), ttlcache.DefaultTTL)
	}

	return found
}

// ResetSuggestionCache drops every memoised suggestion list, it is a no-op
// without WithSuggestionCache
func (w *WordChecker) ResetSuggestionCache() {

	if w.cache != nil {
		w.cache.DeleteAll()
	}
}

func (w *WordChecker) findSuggestions(word string) []string {

	found := []string{}
	seen := map[string]struct{}{}

	visit := func(candidate string) {
		if _, ok := seen[candidate]; ok {
			return
		}
		seen[candidate] = struct{}{}

		if w.words.Contains(candidate) {
			found = append(found, candidate)
		}
	}

	forEachTransposition(word, visit)
	forEachInsertion(word, w.alphabet, visit)
	forEachDeletion(word, visit)
	forEachSubstitution(word, w.alphabet, visit)
	forEachSplit(word, visit)

	return found
}
