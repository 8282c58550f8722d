// Package bench collects latency measurements for the bench command using
// an HDR histogram, so percentiles stay accurate without retaining every
// sample.
package bench

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Recorder aggregates request latencies and outcome counters.
//
// Recorder is safe for concurrent use: the histogram is mutex protected.
// The bench command itself issues requests sequentially, matching the
// library's one-operation-per-call model.
type Recorder struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram

	requests int64
	failures int64
	started  time.Time
}

// Summary is a snapshot of the recorded measurements.
type Summary struct {
	Requests int64
	Failures int64
	Elapsed  time.Duration

	Min time.Duration
	P50 time.Duration
	P90 time.Duration
	P99 time.Duration
	Max time.Duration
}

// NewRecorder creates a recorder covering latencies from 1µs to 1 hour at
// three significant figures.
func NewRecorder() *Recorder {
	return &Recorder{
		hist:    hdrhistogram.New(1, time.Hour.Microseconds(), 3),
		started: time.Now(),
	}
}

// Record adds one request outcome. Failed requests count toward Failures
// and are excluded from the latency distribution.
func (r *Recorder) Record(latency time.Duration, failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests++
	if failed {
		r.failures++
		return
	}
	r.hist.RecordValue(latency.Microseconds())
}

// Summarize returns the current snapshot.
func (r *Recorder) Summarize() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Summary{
		Requests: r.requests,
		Failures: r.failures,
		Elapsed:  time.Since(r.started),
		Min:      time.Duration(r.hist.Min()) * time.Microsecond,
		P50:      time.Duration(r.hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:      time.Duration(r.hist.ValueAtQuantile(90)) * time.Microsecond,
		P99:      time.Duration(r.hist.ValueAtQuantile(99)) * time.Microsecond,
		Max:      time.Duration(r.hist.Max()) * time.Microsecond,
	}
}
