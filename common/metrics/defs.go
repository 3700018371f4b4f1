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

package metrics

// Names of the go-metrics registered by the word checker
const (
	// WordCheckerLookups counts WordExists calls
	WordCheckerLookups = "wordchecker.lookups"
	// WordCheckerLookupHits counts WordExists calls that found the word
	WordCheckerLookupHits = "wordchecker.lookup-hits"
	// WordCheckerSuggestionRequests counts FindSuggestions calls
	WordCheckerSuggestionRequests = "wordchecker.suggestion-requests"
	// WordCheckerSuggestionCacheHits counts FindSuggestions calls served from the cache
	WordCheckerSuggestionCacheHits = "wordchecker.suggestion-cache-hits"
	// WordCheckerSuggestions is the distribution of suggestions returned per request
	WordCheckerSuggestions = "wordchecker.suggestions"
	// WordCheckerDictionaryWords counts words read by the dictionary loader
	WordCheckerDictionaryWords = "wordchecker.dictionary-words"
)
