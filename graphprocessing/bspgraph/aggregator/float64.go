package aggregator

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// Float64Accumulator implements a concurrent-safe accumulator for float64
// values.
type Float64Accumulator struct {
	prevSum float64
	curSum  float64
}

// Type implements bspgraph.Aggregator.
func (a *Float64Accumulator) Type() string {
	return "Float64Accumulator"
}

// Get returns the current value of the accumulator.
func (a *Float64Accumulator) Get() interface{} {
	return loadFloat64(&a.curSum)
}

// Set the current value of the accumulator.
func (a *Float64Accumulator) Set(v interface{}) {
	v64 := v.(float64)
	storeFloat64(&a.prevSum, v64)
	storeFloat64(&a.curSum, v64)
}

// Aggregate adds a float64 value to the accumulator.
func (a *Float64Accumulator) Aggregate(v interface{}) {
	for v64 := v.(float64); ; {
		oldV := loadFloat64(&a.curSum)
		if casFloat64(&a.curSum, oldV, oldV+v64) {
			return
		}
	}
}

// Delta returns the delta change in the accumulator value since the last
// time Delta was invoked or the last time Set was invoked.
func (a *Float64Accumulator) Delta() interface{} {
	for {
		curSum := loadFloat64(&a.curSum)
		prevSum := loadFloat64(&a.prevSum)
		if casFloat64(&a.prevSum, prevSum, curSum) {
			return curSum - prevSum
		}
	}
}

// Float64MaxAggregator keeps track of the largest float64 value it has been
// fed with. It can be safely accessed by concurrent compute workers.
type Float64MaxAggregator struct {
	prevMax float64
	curMax  float64
}

// Type implements bspgraph.Aggregator.
func (a *Float64MaxAggregator) Type() string {
	return "Float64MaxAggregator"
}

// Get returns the current maximum.
func (a *Float64MaxAggregator) Get() interface{} {
	return loadFloat64(&a.curMax)
}

// Set the current maximum.
func (a *Float64MaxAggregator) Set(v interface{}) {
	v64 := v.(float64)
	storeFloat64(&a.prevMax, v64)
	storeFloat64(&a.curMax, v64)
}

// Aggregate replaces the current maximum with v if v is larger.
func (a *Float64MaxAggregator) Aggregate(v interface{}) {
	for v64 := v.(float64); ; {
		oldV := loadFloat64(&a.curMax)
		if v64 <= oldV || casFloat64(&a.curMax, oldV, v64) {
			return
		}
	}
}

// Delta returns the change of the maximum since the last time Delta or Set
// was invoked.
func (a *Float64MaxAggregator) Delta() interface{} {
	for {
		curMax := loadFloat64(&a.curMax)
		prevMax := loadFloat64(&a.prevMax)
		if casFloat64(&a.prevMax, prevMax, curMax) {
			return curMax - prevMax
		}
	}
}

func loadFloat64(f *float64) float64 {
	return math.Float64frombits(atomic.LoadUint64((*uint64)(unsafe.Pointer(f))))
}

func storeFloat64(f *float64, v float64) {
	atomic.StoreUint64((*uint64)(unsafe.Pointer(f)), math.Float64bits(v))
}

func casFloat64(f *float64, oldV, newV float64) bool {
	return atomic.CompareAndSwapUint64(
		(*uint64)(unsafe.Pointer(f)),
		math.Float64bits(oldV),
		math.Float64bits(newV),
	)
}
