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

package configure

import (
	"io/ioutil"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	defaultBackend               = "avl"
	defaultSuggestionCacheTTL    = 10 * time.Minute
	defaultSuggestionCacheSize   = 1024
	defaultMetricsReportInterval = time.Minute
)

// WordCheckConfig holds the configuration for the word checker tool
type WordCheckConfig struct {
	// Dictionary is the path of a word list, one word per line
	Dictionary string `yaml:"dictionary"`
	// Backend is one of avl, bst or hash
	Backend string `yaml:"backend"`
	// Balanced turns AVL rebalancing off when set to false, making the avl
	// backend behave like bst. It is ignored by the other backends.
	Balanced *bool `yaml:"balanced"`
	// InitialCapacity is the starting bucket count of the hash backend
	InitialCapacity int `yaml:"initialCapacity"`
	// Alphabet overrides the letters used to build suggestions
	Alphabet string `yaml:"alphabet"`
	LogLevel string `yaml:"logLevel"`

	SuggestionCacheTTL    time.Duration `yaml:"suggestionCacheTTL"`
	SuggestionCacheSize   int           `yaml:"suggestionCacheSize"`
	MetricsReportInterval time.Duration `yaml:"metricsReportInterval"`
}

// NewWordCheckConfig returns a config with every default filled in
func NewWordCheckConfig() *WordCheckConfig {
	config := &WordCheckConfig{}
	config.setDefaults()
	return config
}

// LoadWordCheckConfig reads a YAML config file. Keys missing from the file
// keep their defaults.
func LoadWordCheckConfig(path string) (*WordCheckConfig, error) {

	contents, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read word check config file %s", path)
	}

	return ParseWordCheckConfig(contents)
}

// ParseWordCheckConfig parses YAML config contents
func ParseWordCheckConfig(contents []byte) (*WordCheckConfig, error) {

	config := &WordCheckConfig{}
	if err := yaml.Unmarshal(contents, config); err != nil {
		return nil, errors.Wrap(err, "failed to parse word check config")
	}

	config.setDefaults()
	return config, nil
}

// EffectiveBackend returns the backend to build, folding Balanced into it
func (r *WordCheckConfig) EffectiveBackend() string {

	if r.Balanced != nil && !*r.Balanced && strings.EqualFold(strings.TrimSpace(r.Backend), defaultBackend) {
		return "bst"
	}

	return r.Backend
}

func (r *WordCheckConfig) setDefaults() {

	if len(r.Backend) == 0 {
		r.Backend = defaultBackend
	}
	if r.SuggestionCacheTTL <= 0 {
		r.SuggestionCacheTTL = defaultSuggestionCacheTTL
	}
	if r.SuggestionCacheSize <= 0 {
		r.SuggestionCacheSize = defaultSuggestionCacheSize
	}
	if r.MetricsReportInterval <= 0 {
		r.MetricsReportInterval = defaultMetricsReportInterval
	}
}
