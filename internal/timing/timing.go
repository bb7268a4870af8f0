// Package timing accumulates wall-clock samples for the ndbench harness.
package timing

import (
	"math"
	"time"
)

// Summary holds the statistics of a set of durations.
type Summary struct {
	Count  int
	Mean   time.Duration
	StdDev time.Duration // population standard deviation
	Min    time.Duration
	Max    time.Duration
	Total  time.Duration
}

// Recorder accumulates durations incrementally with Welford's update, so the
// mean and variance stay stable for long runs. The zero value is ready to use.
type Recorder struct {
	n       int
	mean    float64
	m2      float64
	min     time.Duration
	max     time.Duration
	total   time.Duration
	hasData bool
}

// Add records one sample.
func (r *Recorder) Add(d time.Duration) {
	r.n++
	x := float64(d)

	delta := x - r.mean
	r.mean += delta / float64(r.n)
	r.m2 += delta * (x - r.mean)
	r.total += d

	if !r.hasData {
		r.min, r.max = d, d
		r.hasData = true
		return
	}
	r.min = min(r.min, d)
	r.max = max(r.max, d)
}

// Time runs fn, records its duration and returns fn's error.
func (r *Recorder) Time(fn func() error) error {
	start := time.Now()
	err := fn()
	r.Add(time.Since(start))
	return err
}

// Result returns the statistics of the recorded samples.
func (r *Recorder) Result() Summary {
	if r.n == 0 {
		return Summary{}
	}
	return Summary{
		Count:  r.n,
		Mean:   time.Duration(r.mean),
		StdDev: time.Duration(math.Sqrt(r.m2 / float64(r.n))),
		Min:    r.min,
		Max:    r.max,
		Total:  r.total,
	}
}

// Reset clears all samples.
func (r *Recorder) Reset() {
	*r = Recorder{}
}
