// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flif

import "unsafe"

// History is a fixed-capacity ring of past membrane potentials, ordered
// newest-first for indexing and convolution.  Push is O(1): the newest slot
// moves backward through Vals instead of shifting all values.
type History struct {
	Vals []float32 `desc:"raw ring storage -- use At for newest-first access"`
	Head int       `desc:"index in Vals of the newest value"`
}

// Init allocates the ring for n values, all set to val.
// Any existing storage of the right size is reused.
func (hs *History) Init(n int, val float32) {
	if n < 0 {
		n = 0
	}
	if cap(hs.Vals) >= n {
		hs.Vals = hs.Vals[:n]
	} else {
		hs.Vals = make([]float32, n)
	}
	hs.Fill(val)
}

// Fill sets all values to val and resets the ring position.
func (hs *History) Fill(val float32) {
	for i := range hs.Vals {
		hs.Vals[i] = val
	}
	hs.Head = 0
}

// Len returns the capacity of the ring (MemLen)
func (hs *History) Len() int { return len(hs.Vals) }

// Push adds v as the newest value, evicting the oldest.
// No-op for a zero-length history.
func (hs *History) Push(v float32) {
	n := len(hs.Vals)
	if n == 0 {
		return
	}
	hs.Head--
	if hs.Head < 0 {
		hs.Head = n - 1
	}
	hs.Vals[hs.Head] = v
}

// At returns the k-th most recent value, k = 0 being the newest.
func (hs *History) At(k int) float32 {
	n := len(hs.Vals)
	i := hs.Head + k
	if i >= n {
		i -= n
	}
	return hs.Vals[i]
}

// Dot returns sum_k kern[k] * At(k) over the full history.
// kern must have the same length as the history.
func (hs *History) Dot(kern []float32) float32 {
	n := len(hs.Vals)
	if n == 0 {
		return 0
	}
	// newest-first order is Vals[Head:] followed by Vals[:Head]
	tail := hs.Vals[hs.Head:]
	wrap := hs.Vals[:hs.Head]
	sum := float32(0)
	for i, v := range tail {
		sum += kern[i] * v
	}
	off := len(tail)
	for i, v := range wrap {
		sum += kern[off+i] * v
	}
	return sum
}

// Bytes returns the memory used by the history values.
func (hs *History) Bytes() uint64 {
	return uint64(len(hs.Vals)) * uint64(unsafe.Sizeof(float32(0)))
}
