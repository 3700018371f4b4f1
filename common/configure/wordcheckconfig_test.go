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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordCheckConfigDefaults(t *testing.T) {

	config := NewWordCheckConfig()
	assert.Equal(t, "avl", config.Backend)
	assert.Equal(t, 0, config.InitialCapacity)
	assert.Equal(t, 10*time.Minute, config.SuggestionCacheTTL)
	assert.Equal(t, 1024, config.SuggestionCacheSize)
	assert.Equal(t, time.Minute, config.MetricsReportInterval)
	assert.Empty(t, config.Dictionary)
}

func TestLoadWordCheckConfig(t *testing.T) {

	dir, err := ioutil.TempDir("", "wordcheck")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "wordcheck.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte(`
dictionary: /usr/share/dict/words
backend: hash
initialCapacity: 10000
logLevel: debug
suggestionCacheTTL: 30s
`), 0644))

	config, err := LoadWordCheckConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/dict/words", config.Dictionary)
	assert.Equal(t, "hash", config.Backend)
	assert.Equal(t, 10000, config.InitialCapacity)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, 30*time.Second, config.SuggestionCacheTTL)
	assert.Equal(t, 1024, config.SuggestionCacheSize)

	_, err = LoadWordCheckConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseWordCheckConfig([]byte("backend: [avl"))
	assert.Error(t, err)
}

func TestWordCheckConfigBalanced(t *testing.T) {

	config, err := ParseWordCheckConfig([]byte("backend: avl\n"))
	require.NoError(t, err)
	assert.Nil(t, config.Balanced)
	assert.Equal(t, "avl", config.EffectiveBackend())

	config, err = ParseWordCheckConfig([]byte("balanced: false\n"))
	require.NoError(t, err)
	require.NotNil(t, config.Balanced)
	assert.False(t, *config.Balanced)
	assert.Equal(t, "bst", config.EffectiveBackend())

	config, err = ParseWordCheckConfig([]byte("backend: AVL\nbalanced: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "AVL", config.EffectiveBackend())

	config, err = ParseWordCheckConfig([]byte("backend: hash\nbalanced: false\n"))
	require.NoError(t, err)
	assert.Equal(t, "hash", config.EffectiveBackend())
}
