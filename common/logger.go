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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/uber-common/bark"
)

// GetDefaultLogger returns a bark logger writing text lines to stderr at info level
func GetDefaultLogger() bark.Logger {
	return bark.NewLoggerFromLogrus(newLogrus(logrus.InfoLevel))
}

// NewLogger returns a bark logger at the given level. An empty level means
// info; an unknown one is an error.
func NewLogger(level string) (bark.Logger, error) {

	if level == "" {
		return GetDefaultLogger(), nil
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	return bark.NewLoggerFromLogrus(newLogrus(lvl)), nil
}

func newLogrus(level logrus.Level) *logrus.Logger {

	l := logrus.New()
	l.Out = os.Stderr
	l.Level = level
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}

	return l
}
