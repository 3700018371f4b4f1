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

package common

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/codegangsta/cli"
	pkgerrors "github.com/pkg/errors"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/uber-common/bark"
	"github.com/uber/wordset/common"
	"github.com/uber/wordset/common/configure"
	"github.com/uber/wordset/common/metrics"
	"github.com/uber/wordset/common/set"
	"github.com/uber/wordset/services/wordchecker"
)

const (
	strConfig     = `YAML config file, see common/configure.WordCheckConfig for the keys`
	strDictionary = `Word list to load, one word per line`
	strBackend    = `Set engine holding the dictionary: 'avl', 'bst' (unbalanced avl) or 'hash'`
)

var errNoDictionary = errors.New("no dictionary given, use --dictionary or the config file")

type session struct {
	config   *configure.WordCheckConfig
	logger   bark.Logger
	words    set.Set[string]
	registry gometrics.Registry
	checker  *wordchecker.WordChecker
}

// GetCommonFlags get the global flags of the wordcheck tool
func GetCommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:   "config, c",
			Usage:  strConfig,
			EnvVar: "WORDCHECK_CONFIG",
		},
		cli.StringFlag{
			Name:   "dictionary, d",
			Usage:  strDictionary,
			EnvVar: "WORDCHECK_DICTIONARY",
		},
		cli.StringFlag{
			Name:  "backend, b",
			Value: "avl",
			Usage: strBackend,
		},
		cli.IntFlag{
			Name:  "capacity",
			Usage: "Initial bucket count of the hash backend, 0 for the default",
		},
		cli.StringFlag{
			Name:  "log_level",
			Value: "info",
			Usage: "Log level: debug, info, warn or error",
		},
	}
}

// GetCommonCommands get the commands of the wordcheck tool
func GetCommonCommands() []cli.Command {
	return []cli.Command{
		{
			Name:    "check",
			Aliases: []string{"c"},
			Usage:   "check <word>... (prints suggestions for unknown words)",
			Action: func(c *cli.Context) {
				s := newSession(c)
				exitIfError(s.logger, Check(s.checker, c.Args(), c.App.Writer))
			},
		},
		{
			Name:    "stats",
			Aliases: []string{"s"},
			Usage:   "stats (prints the size and shape of the loaded dictionary)",
			Action: func(c *cli.Context) {
				s := newSession(c)
				exitIfError(s.logger, Stats(s.words, c.App.Writer))
			},
		},
		{
			Name:    "interactive",
			Aliases: []string{"i"},
			Usage:   "interactive (checks words read from stdin, one per line)",
			Action: func(c *cli.Context) {
				s := newSession(c)
				exitIfError(s.logger, s.interactive(os.Stdin, c.App.Writer))
			},
		},
	}
}

// ResolveConfig loads the config file named by --config, if any, and applies
// the flags that were set explicitly on top of it
func ResolveConfig(c *cli.Context) (*configure.WordCheckConfig, error) {

	config := configure.NewWordCheckConfig()

	if path := c.GlobalString("config"); len(path) > 0 {
		var err error
		if config, err = configure.LoadWordCheckConfig(path); err != nil {
			return nil, err
		}
	}

	if c.GlobalIsSet("dictionary") || len(config.Dictionary) == 0 {
		config.Dictionary = c.GlobalString("dictionary")
	}
	if c.GlobalIsSet("backend") {
		config.Backend = c.GlobalString("backend")
	}
	if c.GlobalIsSet("capacity") {
		config.InitialCapacity = c.GlobalInt("capacity")
	}
	if c.GlobalIsSet("log_level") || len(config.LogLevel) == 0 {
		config.LogLevel = c.GlobalString("log_level")
	}

	return config, nil
}

func newSession(c *cli.Context) *session {

	log := common.GetDefaultLogger()

	config, err := ResolveConfig(c)
	exitIfError(log, err)

	log, err = common.NewLogger(config.LogLevel)
	exitIfError(common.GetDefaultLogger(), err)

	s, err := openDictionary(config, log)
	exitIfError(log, err)

	return s
}

// openDictionary loads the configured dictionary into the configured engine
// and builds a word checker over it
func openDictionary(config *configure.WordCheckConfig, log bark.Logger) (*session, error) {

	if len(config.Dictionary) == 0 {
		return nil, errNoDictionary
	}

	backend := config.EffectiveBackend()

	kind, err := set.ParseKind(backend)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "backend %q", backend)
	}

	words, err := set.NewStringSet(kind, config.InitialCapacity)
	if err != nil {
		return nil, err
	}

	n, err := wordchecker.LoadWordsFile(config.Dictionary, words)
	if err != nil {
		return nil, err
	}

	registry := gometrics.NewRegistry()
	gometrics.GetOrRegisterCounter(metrics.WordCheckerDictionaryWords, registry).Inc(int64(n))

	log.WithFields(bark.Fields{
		`dictionary`: config.Dictionary,
		`backend`:    kind,
		`lines`:      n,
		`words`:      words.Size(),
	}).Info(`dictionary loaded`)

	return &session{
		config:   config,
		logger:   log,
		words:    words,
		registry: registry,
		checker: wordchecker.NewWordChecker(words,
			wordchecker.WithAlphabet(config.Alphabet),
			wordchecker.WithLogger(log),
			wordchecker.WithMetricsRegistry(registry),
			wordchecker.WithSuggestionCache(config.SuggestionCacheTTL, config.SuggestionCacheSize),
		),
	}, nil
}

// Check writes one line per word, either ok or the suggestions for it
func Check(checker *wordchecker.WordChecker, words []string, out io.Writer) error {

	for _, word := range words {
		if err := checkWord(checker, word, out); err != nil {
			return err
		}
	}

	return nil
}

// Interactive checks every non-blank line read from in
func Interactive(checker *wordchecker.WordChecker, in io.Reader, out io.Writer) error {

	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if len(word) == 0 {
			continue
		}
		if err := checkWord(checker, word, out); err != nil {
			return err
		}
	}

	return scanner.Err()
}

// interactive runs Interactive while the metrics exporter is running. The
// exporter is stopped, flushing a last report, before any error is returned.
func (s *session) interactive(in io.Reader, out io.Writer) error {

	exporter := metrics.NewLogExporter(s.registry, s.config.MetricsReportInterval, s.logger)
	exporter.Start()

	err := Interactive(s.checker, in, out)
	exporter.Stop()

	return err
}

func checkWord(checker *wordchecker.WordChecker, word string, out io.Writer) error {

	word = strings.ToUpper(word)

	if checker.WordExists(word) {
		_, err := fmt.Fprintf(out, "%s: ok\n", word)
		return err
	}

	suggestions := checker.FindSuggestions(word)
	if len(suggestions) == 0 {
		_, err := fmt.Fprintf(out, "%s: not found, no suggestions\n", word)
		return err
	}

	_, err := fmt.Fprintf(out, "%s: not found, suggestions: %s\n", word, strings.Join(suggestions, ", "))
	return err
}

// Stats writes the size of the set and details of its engine
func Stats(words set.Set[string], out io.Writer) error {

	var err error

	switch s := words.(type) {
	case *set.AVLSet[string]:
		_, err = fmt.Fprintf(out, "engine: avl\nbalanced: %v\nsize: %d\nheight: %d\n", s.Balanced(), s.Size(), s.Height())
	case *set.HashSet[string]:
		longest := 0
		for i := 0; i < s.Capacity(); i++ {
			longest = max(longest, s.ElementsAtIndex(i))
		}
		_, err = fmt.Fprintf(out, "engine: hash\nsize: %d\ncapacity: %d\nload factor: %.3f\nrehashes: %d\nlongest chain: %d\n",
			s.Size(), s.Capacity(), s.LoadFactor(), s.Rehashes(), longest)
	default:
		_, err = fmt.Fprintf(out, "size: %d\n", words.Size())
	}

	return err
}

func exitIfError(log bark.Logger, err error) {
	if err != nil {
		log.WithField(common.TagErr, err).Fatal(`wordcheck failed`)
	}
}
