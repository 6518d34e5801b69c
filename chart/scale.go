package chart

import "math"

// ============================================================================
// SCALES — Linear (values), band (bars) and point (lines)
// ============================================================================
// Tick and nice computations follow the usual 1/2/5 decade steps so axes read
// the same across every chart kind.
// ============================================================================

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// linearScale maps a value domain onto a pixel range.
type linearScale struct {
	d0, d1 float64
	r0, r1 float64
}

func newLinear(d0, d1, r0, r1 float64) linearScale {
	return linearScale{d0: d0, d1: d1, r0: r0, r1: r1}
}

func (s linearScale) At(v float64) float64 {
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

// tickIncrement returns the tick step for the span. A negative result -k
// means a step of 1/k, which keeps small steps exact.
func tickIncrement(start, stop float64, count int) float64 {
	step := (stop - start) / math.Max(0, float64(count))
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return 0
	}
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}
	if power >= 0 {
		return factor * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / factor
}

// ticks returns about count round values covering [start, stop].
func ticks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	inc := tickIncrement(start, stop, count)
	if inc == 0 || math.IsInf(inc, 0) {
		return nil
	}

	var out []float64
	if inc > 0 {
		r0, r1 := math.Ceil(start/inc), math.Floor(stop/inc)
		for i := r0; i <= r1; i++ {
			out = append(out, i*inc)
		}
	} else {
		inc = -inc
		r0, r1 := math.Ceil(start*inc), math.Floor(stop*inc)
		for i := r0; i <= r1; i++ {
			out = append(out, i/inc)
		}
	}
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// nice extends [start, stop] outward to round tick values.
func nice(start, stop float64, count int) (float64, float64) {
	var prev float64
	for i := 0; i < 10; i++ {
		step := tickIncrement(start, stop, count)
		if step == prev {
			break
		}
		switch {
		case step > 0:
			start = math.Floor(start/step) * step
			stop = math.Ceil(stop/step) * step
		case step < 0:
			start = math.Ceil(start*step) / step
			stop = math.Floor(stop*step) / step
		default:
			return start, stop
		}
		prev = step
	}
	return start, stop
}

// valueDomain turns a data extent into a niced domain with its ticks.
// Bars pass withZero so every bar grows from a shared zero baseline.
func valueDomain(lo, hi float64, ok, withZero bool, count int) (float64, float64, []float64) {
	if !ok {
		lo, hi = 0, 1
	}
	if withZero {
		lo = math.Min(lo, 0)
		hi = math.Max(hi, 0)
	}
	if lo == hi {
		if lo == 0 {
			hi = 1
		} else {
			lo, hi = lo-0.5, hi+0.5
		}
	}
	lo, hi = nice(lo, hi, count)
	return lo, hi, ticks(lo, hi, count)
}

// ============================================================================
// BAND / POINT
// ============================================================================

// bandScale places n ordinal slots across a pixel range. Slots are addressed
// by index so duplicate labels are fine.
type bandScale struct {
	start     float64
	step      float64
	bandwidth float64
	n         int
}

func newBand(n int, r0, r1, paddingInner, paddingOuter float64) bandScale {
	if n <= 0 {
		return bandScale{start: r0, step: r1 - r0}
	}
	step := (r1 - r0) / math.Max(1, float64(n)-paddingInner+2*paddingOuter)
	bandwidth := step * (1 - paddingInner)
	// center the bands inside the range
	start := r0 + (r1-r0-step*(float64(n)-paddingInner))/2
	return bandScale{start: start, step: step, bandwidth: bandwidth, n: n}
}

// newPoint is a band scale with zero bandwidth and half-step outer padding.
func newPoint(n int, r0, r1 float64) bandScale {
	return newBand(n, r0, r1, 1, 0.5)
}

// At is the left edge of band i (for a point scale, the point itself).
func (b bandScale) At(i int) float64 {
	return b.start + float64(i)*b.step
}

// Center is the middle of band i.
func (b bandScale) Center(i int) float64 {
	return b.At(i) + b.bandwidth/2
}
