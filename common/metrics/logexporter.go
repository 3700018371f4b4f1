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

import (
	"fmt"
	"sync"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
	"github.com/uber-common/bark"
	"github.com/uber/wordset/common"
)

const histogramSampleSize = 1028

type (
	// LogExporter periodically writes a snapshot of every metric in a
	// go-metrics registry to a bark logger
	LogExporter struct {
		registry gometrics.Registry
		interval time.Duration
		l        bark.Logger

		startOnce sync.Once
		stopOnce  sync.Once
		closeCh   chan struct{}
		wg        sync.WaitGroup
	}
)

var _ common.Daemon = (*LogExporter)(nil)

// NewHistogram returns a histogram backed by an exponentially decaying sample
func NewHistogram() gometrics.Histogram {
	return gometrics.NewHistogram(gometrics.NewExpDecaySample(histogramSampleSize, 0.015))
}

// NewLogExporter returns an exporter for the registry, Start begins the export loop
func NewLogExporter(registry gometrics.Registry, interval time.Duration, l bark.Logger) *LogExporter {

	return &LogExporter{
		registry: registry,
		interval: interval,
		l:        l.WithField(common.TagModule, `metrics`),
		closeCh:  make(chan struct{}),
	}
}

// Start starts the export loop
func (r *LogExporter) Start() {
	r.startOnce.Do(func() {
		r.wg.Add(1)
		go r.run()
	})
}

// Stop stops the export loop after a final export
func (r *LogExporter) Stop() {
	r.stopOnce.Do(func() {
		close(r.closeCh)
		r.wg.Wait()
		r.Export()
	})
}

func (r *LogExporter) run() {
	defer r.wg.Done()

	t := time.NewTicker(r.interval)
	defer t.Stop()

exportLoop:
	for {
		select {
		case <-t.C:
			r.Export()
		case <-r.closeCh:
			break exportLoop
		}
	}
}

// Export logs one line per registered metric
func (r *LogExporter) Export() {
	r.registry.Each(func(name string, i interface{}) {
		switch metric := i.(type) {
		case gometrics.Histogram:
			s := metric.Snapshot()
			r.l.WithFields(bark.Fields{
				`count`: s.Count(),
				`max`:   s.Max(),
				`mean`:  s.Mean(),
				`min`:   s.Min(),
				`p99`:   s.Percentile(99),
				`p95`:   s.Percentile(95),
				`name`:  name,
			}).Info(`histogram metric`)
		case gometrics.Meter:
			s := metric.Snapshot()
			r.l.WithFields(bark.Fields{
				`avg1Min`: s.Rate1(),
				`count`:   s.Count(),
				`name`:    name,
			}).Info(`meter metric`)
		case gometrics.Counter:
			r.l.WithFields(bark.Fields{
				`count`: metric.Count(),
				`name`:  name,
			}).Info(`counter metric`)
		default:
			r.l.WithField(`type`, fmt.Sprintf("%T", i)).Error("unable to export metric")
		}
	})
}
