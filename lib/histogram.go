package lib

import "fmt"
import "math"
import "math/bits"
import "strings"
import "strconv"

// HistogramInt64 statistical histogram with power-of-2 bucketing,
// where bucket k counts samples in the range [2^(k-1), 2^k). Suits
// samples, like payload sizes, that span several orders of magnitude.
type HistogramInt64 struct {
	n       int64
	minval  int64
	maxval  int64
	sum     int64
	sumsq   float64
	init    bool
	buckets [65]int64
}

// NewhistogramInt64 return a new histogram object.
func NewhistogramInt64() *HistogramInt64 {
	return &HistogramInt64{}
}

// Add a sample to this histogram. Negative samples are counted
// against the zero bucket.
func (h *HistogramInt64) Add(sample int64) {
	h.n++
	h.sum += sample
	f := float64(sample)
	h.sumsq += f * f
	if h.init == false || sample < h.minval {
		h.minval, h.init = sample, true
	}
	if h.maxval < sample {
		h.maxval = sample
	}
	h.buckets[bucketof(sample)]++
}

// Min return minimum value of all samples.
func (h *HistogramInt64) Min() int64 {
	return h.minval
}

// Max return maximum value of all samples.
func (h *HistogramInt64) Max() int64 {
	return h.maxval
}

// Samples return total number of samples in the histogram.
func (h *HistogramInt64) Samples() int64 {
	return h.n
}

// Sum return the sum of all samples.
func (h *HistogramInt64) Sum() int64 {
	return h.sum
}

// Mean return the average value of all samples.
func (h *HistogramInt64) Mean() int64 {
	if h.n == 0 {
		return 0
	}
	return int64(float64(h.sum) / float64(h.n))
}

// Variance return the squared deviation of a random sample from
// its mean.
func (h *HistogramInt64) Variance() int64 {
	if h.n == 0 {
		return 0
	}
	nF, meanF := float64(h.n), float64(h.Mean())
	return int64((h.sumsq / nF) - (meanF * meanF))
}

// SD return by how much the samples differ from the mean value of
// samples.
func (h *HistogramInt64) SD() int64 {
	if h.n == 0 {
		return 0
	}
	return int64(math.Sqrt(float64(h.Variance())))
}

// Stats return a map of histogram bucket and its sample count, skipping
// empty buckets. Bucket is keyed by its lower bound.
func (h *HistogramInt64) Stats() map[string]int64 {
	m := make(map[string]int64)
	for k, count := range h.buckets {
		if count == 0 {
			continue
		}
		m[strconv.FormatInt(bucketfloor(k), 10)] = count
	}
	return m
}

// Fullstats includes mean,variance,stddeviance in the Stats().
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	m := make(map[string]interface{})
	for k, v := range h.Stats() {
		m[k] = v
	}
	m["samples"] = h.Samples()
	m["min"] = h.Min()
	m["max"] = h.Max()
	m["mean"] = h.Mean()
	m["variance"] = h.Variance()
	m["stddeviance"] = h.SD()
	return m
}

// Logstring return Fullstats as loggable string.
func (h *HistogramInt64) Logstring() string {
	stats := h.Fullstats()
	keys := []string{
		"samples", "min", "max", "mean", "variance", "stddeviance",
	}
	ss := []string{}
	for _, key := range keys {
		ss = append(ss, fmt.Sprintf(`"%v": %v`, key, stats[key]))
	}
	return "{" + strings.Join(ss, ", ") + "}"
}

// Clone copies the entire instance.
func (h *HistogramInt64) Clone() *HistogramInt64 {
	newh := *h
	return &newh
}

func bucketof(sample int64) int {
	if sample <= 0 {
		return 0
	}
	return bits.Len64(uint64(sample))
}

func bucketfloor(k int) int64 {
	if k == 0 {
		return 0
	}
	return int64(1) << uint(k-1)
}
