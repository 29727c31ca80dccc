// File: internal/ring/policy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Growth policy: when to size the first store and how far to grow it.

package ring

import (
	"math"
	"unsafe"

	"golang.org/x/sys/cpu"
)

const (
	// MinCapacity is substituted for any requested capacity below it.
	MinCapacity = 1
	// DefaultCapacity is the store size used when none is requested.
	DefaultCapacity = 64
	// MinGrowthFactor keeps growth at least geometric (amortized O(1) pushes).
	MinGrowthFactor = 2
	// MaxGrowthFactor caps the multiplier; larger values are lowered to it.
	MaxGrowthFactor = 1 << 10
)

// cacheLine is the target CPU's cache line size in bytes.
var cacheLine = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// Policy controls initial sizing and reallocation of an Engine's store.
type Policy struct {
	InitialCapacity int  // slots reserved before the first growth
	GrowthFactor    int  // new capacity is at least size*GrowthFactor
	AlignCacheLine  bool // round store sizes up to whole cache lines
}

// DefaultPolicy returns the policy used by the zero-option constructors.
func DefaultPolicy() Policy {
	return Policy{
		InitialCapacity: DefaultCapacity,
		GrowthFactor:    MinGrowthFactor,
	}
}

// Normalize clamps out-of-range fields into their valid ranges.
func (p Policy) Normalize() Policy {
	if p.InitialCapacity < MinCapacity {
		p.InitialCapacity = MinCapacity
	}
	p.GrowthFactor = clampFactor(p.GrowthFactor)
	return p
}

func clampFactor(f int) int {
	switch {
	case f < MinGrowthFactor:
		return MinGrowthFactor
	case f > MaxGrowthFactor:
		return MaxGrowthFactor
	}
	return f
}

// Initial returns the capacity of a fresh store for elements of elemSize bytes.
func (p Policy) Initial(elemSize uintptr) int {
	n := p.InitialCapacity
	if n < MinCapacity {
		n = MinCapacity
	}
	return p.align(n, elemSize)
}

// Next returns the capacity to reallocate to when a store holding size
// elements is full. The product saturates at math.MaxInt.
func (p Policy) Next(size int, elemSize uintptr) int {
	f := clampFactor(p.GrowthFactor)
	n := math.MaxInt
	if size <= math.MaxInt/f {
		n = size * f
	}
	if n < MinCapacity {
		n = MinCapacity
	}
	return p.align(n, elemSize)
}

// align rounds n up so that n elements fill a whole number of cache lines.
// Zero-sized elements are left alone.
func (p Policy) align(n int, elemSize uintptr) int {
	if !p.AlignCacheLine || elemSize == 0 || cacheLine <= 0 {
		return n
	}
	es := int(elemSize)
	if n > (math.MaxInt-cacheLine)/es {
		return n
	}
	bytes := n * es
	if rem := bytes % cacheLine; rem != 0 {
		bytes += cacheLine - rem
	}
	return bytes / es
}

// CacheLineSize reports the cache line size used by AlignCacheLine.
func CacheLineSize() int { return cacheLine }
