// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package antnet

import (
	"errors"
	"strings"
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/flif/flif"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func testNet(t *testing.T) *Net {
	np := &Params{}
	np.Defaults()
	fp := &flif.FracParams{}
	fp.Defaults()
	fp.MemLen = 200
	nt, err := NewNet(np, fp, fp)
	if err != nil {
		t.Fatal(err)
	}
	return nt
}

// badUnit goes non-finite on its first update
type badUnit struct {
	vm float32
}

func (bu *badUnit) Name() string                { return "bad" }
func (bu *badUnit) Reset()                      { bu.vm = 0 }
func (bu *badUnit) Update(inp, dt float32) bool { bu.vm = math32.NaN(); return false }
func (bu *badUnit) Voltage() float32            { return bu.vm }
func (bu *badUnit) Unstable() bool              { return math32.IsNaN(bu.vm) }

func TestInitWts(t *testing.T) {
	nt := testNet(t)
	for ci := range nt.Wts {
		for ai, w := range nt.Wts[ci] {
			if w < 0.1 || w > 0.2 {
				t.Errorf("Wts[%v][%v] = %v out of init range", Contexts(ci), Actions(ai), w)
			}
		}
	}
	if len(nt.WtsFlat()) != int(ContextsN)*int(ActionsN) {
		t.Errorf("WtsFlat len = %d", len(nt.WtsFlat()))
	}
}

func TestWtsSnapshot(t *testing.T) {
	nt := testNet(t)
	nt.SetWts(NoFood, [ActionsN]float32{0.3, 0.4, 0.5})
	snap := nt.WtsSnapshot()
	snap[NoFood][0] = 99
	if nt.Wts[NoFood][0] != 0.3 {
		t.Errorf("snapshot aliases network weights")
	}
	wf := nt.WtsFlat()
	wf[3] = 99
	if nt.Wts[NoFood][0] != 0.3 {
		t.Errorf("WtsFlat aliases network weights")
	}
}

func TestObserve(t *testing.T) {
	nt := testNet(t)
	if nt.Observe(true) != FoodAhead || nt.Active != FoodAhead {
		t.Errorf("food ahead should select FoodAhead")
	}
	if nt.Observe(false) != NoFood || nt.Active != NoFood {
		t.Errorf("no food should select NoFood")
	}
}

func TestMicroStep(t *testing.T) {
	nt := testNet(t)
	nt.SetWts(FoodAhead, [ActionsN]float32{2, 2, 2})
	nctx := 0
	var nleaf [ActionsN]int
	for i := 0; i < 50; i++ {
		ms, err := nt.MicroStep(FoodAhead, 0.1)
		if err != nil {
			t.Fatal(err)
		}
		if ms.CtxSpike > 0 {
			nctx++
		}
		for ai := range ms.LeafVm {
			if ms.LeafVm[ai] != nt.Leaves[FoodAhead][ai].Voltage() {
				t.Errorf("LeafVm[%d] = %v, neuron Vm = %v", ai, ms.LeafVm[ai], nt.Leaves[FoodAhead][ai].Voltage())
			}
			if ms.LeafSpikes[ai] > 0 {
				nleaf[ai]++
			}
		}
	}
	if nctx == 0 {
		t.Errorf("active context neuron never spiked")
	}
	if nleaf[0] == 0 {
		t.Errorf("leaves never spiked with strong weights")
	}
	// the other group is left untouched
	for _, lu := range nt.Leaves[NoFood] {
		if lu.Voltage() != 0 {
			t.Errorf("inactive leaf %s was updated: Vm = %v", lu.Name(), lu.Voltage())
		}
	}
	nt.Reset()
	for _, lu := range nt.Leaves[FoodAhead] {
		if lu.Voltage() != 0 {
			t.Errorf("Reset: leaf %s Vm = %v", lu.Name(), lu.Voltage())
		}
	}
}

func TestMicroStepNoCtxSpike(t *testing.T) {
	// with no context spike the leaves only see their bias
	sp := &flif.StdParams{}
	sp.Defaults()
	np := &Params{}
	np.Defaults()
	np.ActiveInput = 0
	ctx := make([]flif.Unit, ContextsN)
	leaves := make([][]flif.Unit, ContextsN)
	for ci := range ctx {
		ctx[ci], _ = flif.NewStdNeuron("c", sp)
		leaves[ci] = make([]flif.Unit, ActionsN)
		for ai := range leaves[ci] {
			leaves[ci][ai], _ = flif.NewStdNeuron("l", sp)
		}
	}
	nt, err := NewNetFromUnits(np, ctx, leaves)
	if err != nil {
		t.Fatal(err)
	}
	nt.SetWts(NoFood, [ActionsN]float32{10, 10, 10})
	ms, err := nt.MicroStep(NoFood, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	cor := float32(0.1) * sp.Bias
	for ai, vm := range ms.LeafVm {
		if dif := math32.Abs(vm - cor); dif > difTol {
			t.Errorf("leaf %d Vm = %v, want %v", ai, vm, cor)
		}
	}
}

func TestNewNetFromUnitsErrs(t *testing.T) {
	np := &Params{}
	np.Defaults()
	sp := &flif.StdParams{}
	sp.Defaults()
	mk := func() flif.Unit { u, _ := flif.NewStdNeuron("u", sp); return u }
	ctx := []flif.Unit{mk(), mk()}
	short := [][]flif.Unit{{mk(), mk(), mk()}, {mk(), mk()}}
	if _, err := NewNetFromUnits(np, ctx, short); !errors.Is(err, flif.ErrConfig) {
		t.Errorf("short leaf group: expected ErrConfig, got: %v", err)
	}
	full := [][]flif.Unit{{mk(), mk(), mk()}, {mk(), mk(), mk()}}
	if _, err := NewNetFromUnits(np, ctx[:1], full); !errors.Is(err, flif.ErrConfig) {
		t.Errorf("one context: expected ErrConfig, got: %v", err)
	}
	if _, err := NewNetFromUnits(np, ctx, full[:1]); !errors.Is(err, flif.ErrConfig) {
		t.Errorf("one leaf group: expected ErrConfig, got: %v", err)
	}
	bad := *np
	bad.WtInit.Set(1, 0)
	if _, err := NewNetFromUnits(&bad, ctx, full); !errors.Is(err, flif.ErrConfig) {
		t.Errorf("inverted WtInit: expected ErrConfig, got: %v", err)
	}
	fp := &flif.FracParams{}
	fp.Defaults()
	fp.MemLen = -1
	if _, err := NewNet(np, fp, fp); !errors.Is(err, flif.ErrConfig) {
		t.Errorf("negative MemLen: expected ErrConfig, got: %v", err)
	}
}

func TestMicroStepUnstable(t *testing.T) {
	np := &Params{}
	np.Defaults()
	sp := &flif.StdParams{}
	sp.Defaults()
	mk := func() flif.Unit { u, _ := flif.NewStdNeuron("u", sp); return u }
	ctx := []flif.Unit{mk(), mk()}
	leaves := [][]flif.Unit{{mk(), &badUnit{}, mk()}, {mk(), mk(), mk()}}
	nt, err := NewNetFromUnits(np, ctx, leaves)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := nt.MicroStep(NoFood, 0.1); err != nil {
		t.Errorf("NoFood group is stable: %v", err)
	}
	if _, err := nt.MicroStep(FoodAhead, 0.1); !errors.Is(err, flif.ErrUnstable) {
		t.Errorf("expected ErrUnstable, got: %v", err)
	}
}

func TestHistBytes(t *testing.T) {
	nt := testNet(t)
	cor := uint64(int(ContextsN)+int(ContextsN)*int(ActionsN)) * 200 * 4
	if nt.HistBytes() != cor {
		t.Errorf("HistBytes = %d, want %d", nt.HistBytes(), cor)
	}
}

func TestActionDistUniform(t *testing.T) {
	for _, temp := range []float32{0.1, 1, 10} {
		ps := ActionDist([ActionsN]int{0, 0, 0}, temp)
		for ai, p := range ps {
			if p != float32(1.0/3.0) {
				t.Errorf("temp %v: p[%d] = %v, want exactly 1/3", temp, ai, p)
			}
		}
	}
}

func TestActionDist(t *testing.T) {
	ps := ActionDist([ActionsN]int{3, 5, 1}, 1)
	e3, e5, e1 := math32.Exp(-2), float32(1), math32.Exp(-4)
	sum := e3 + e5 + e1
	cor := [ActionsN]float32{e3 / sum, e5 / sum, e1 / sum}
	tot := float32(0)
	for ai := range ps {
		if dif := math32.Abs(ps[ai] - cor[ai]); dif > difTol {
			t.Errorf("p[%d] = %v, want %v", ai, ps[ai], cor[ai])
		}
		tot += ps[ai]
	}
	if dif := math32.Abs(tot - 1); dif > difTol {
		t.Errorf("sum = %v", tot)
	}
	// temperature scales counts
	a := ActionDist([ActionsN]int{4, 2, 0}, 2)
	b := ActionDist([ActionsN]int{2, 1, 0}, 1)
	for ai := range a {
		if dif := math32.Abs(a[ai] - b[ai]); dif > difTol {
			t.Errorf("temp scaling: %v != %v", a, b)
		}
	}
}

func TestActionDistLarge(t *testing.T) {
	ps := ActionDist([ActionsN]int{5000, 0, 4999}, 0.5)
	for ai, p := range ps {
		if math32.IsNaN(p) || math32.IsInf(p, 0) {
			t.Fatalf("p[%d] = %v", ai, p)
		}
	}
	if ps[0] <= ps[2] || ps[1] != 0 {
		t.Errorf("bad large-count dist: %v", ps)
	}
	// tiny temperature: counts / temp overflow float32 unless the max
	// count is subtracted first
	ps = ActionDist([ActionsN]int{50, 10, 50}, 1e-38)
	if ps != [ActionsN]float32{0.5, 0, 0.5} {
		t.Errorf("tiny temp dist: %v", ps)
	}
	ps = ActionDist([ActionsN]int{0, 7, 3}, 1e-38)
	if ps != [ActionsN]float32{0, 1, 0} {
		t.Errorf("tiny temp dist: %v", ps)
	}
}

func TestLeafThr(t *testing.T) {
	nt := testNet(t)
	if thr := nt.LeafThr(); thr != nt.Leaves[NoFood][0].(*flif.Neuron).Params.Thr {
		t.Errorf("LeafThr = %v", thr)
	}
	np := &Params{}
	np.Defaults()
	ctx := []flif.Unit{&badUnit{}, &badUnit{}}
	leaves := [][]flif.Unit{{&badUnit{}, &badUnit{}, &badUnit{}}, {&badUnit{}, &badUnit{}, &badUnit{}}}
	nb, err := NewNetFromUnits(np, ctx, leaves)
	if err != nil {
		t.Fatal(err)
	}
	if nb.LeafThr() != 0 {
		t.Errorf("units without a threshold should give 0")
	}
}

func TestSizeReport(t *testing.T) {
	nt := testNet(t)
	rep := nt.SizeReport()
	if !strings.Contains(rep, "FoodAhead_MoveForward") || !strings.Contains(rep, "Neurons: 8") {
		t.Errorf("bad size report:\n%s", rep)
	}
}
