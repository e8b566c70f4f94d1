// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package antnet

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/flif/flif"
)

// SizeReport returns a string reporting the history length and memory of
// each neuron in the network, and the total memory footprint.
func (nt *Net) SizeReport() string {
	var b strings.Builder
	nneur := 0
	report := func(u flif.Unit) {
		nneur++
		hl := 0
		var hmem uint64
		if nrn, ok := u.(*flif.Neuron); ok {
			hl = nrn.Hist.Len()
			hmem = nrn.Hist.Bytes()
		}
		fmt.Fprintf(&b, "%20s:\t MemLen: %d\t HistMem: %v\n", u.Name(), hl, datasize.ByteSize(hmem).HumanReadable())
	}
	for ci := range nt.Ctx {
		report(nt.Ctx[ci])
		for _, u := range nt.Leaves[ci] {
			report(u)
		}
	}
	fmt.Fprintf(&b, "\n%20s:\t Neurons: %d\t HistMem: %v\n", "Total", nneur, datasize.ByteSize(nt.HistBytes()).HumanReadable())
	return b.String()
}
