// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package episode

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/flif/antnet"
	"github.com/emer/flif/flif"
	"github.com/emer/flif/trail"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func testNet(t *testing.T) *antnet.Net {
	np := &antnet.Params{}
	np.Defaults()
	fp := &flif.FracParams{}
	fp.Defaults()
	fp.MemLen = 50
	nt, err := antnet.NewNet(np, fp, fp)
	if err != nil {
		t.Fatal(err)
	}
	return nt
}

func testEnv(t *testing.T, rows []string) *trail.Env {
	grid, err := trail.FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	ep := &trail.EnvParams{}
	ep.Defaults()
	ev, err := trail.NewEnv("test", grid, ep)
	if err != nil {
		t.Fatal(err)
	}
	return ev
}

func testRunner(t *testing.T, rows []string, smp Sampler) *Runner {
	rp := &RunParams{}
	rp.Defaults()
	rn, err := NewRunner(rp, testNet(t), testEnv(t, rows), smp)
	if err != nil {
		t.Fatal(err)
	}
	return rn
}

func TestRunParams(t *testing.T) {
	rp := &RunParams{}
	rp.Defaults()
	if rp.MicroSteps != 50 {
		t.Errorf("MicroSteps = %d, want 50", rp.MicroSteps)
	}
	bad := []func(rp *RunParams){
		func(rp *RunParams) { rp.DT = 0 },
		func(rp *RunParams) { rp.MaxSteps = 0 },
		func(rp *RunParams) { rp.Temp = 0 },
		func(rp *RunParams) { rp.MicroSteps = -1 },
	}
	for i, mod := range bad {
		rp := &RunParams{}
		rp.Defaults()
		mod(rp)
		if _, err := NewRunner(rp, testNet(t), testEnv(t, []string{".#"}), nil); !errors.Is(err, flif.ErrConfig) {
			t.Errorf("case %d: expected ErrConfig, got: %v", i, err)
		}
	}
	rp.Defaults()
	if _, err := NewRunner(rp, nil, testEnv(t, []string{".#"}), nil); !errors.Is(err, flif.ErrConfig) {
		t.Errorf("nil net: expected ErrConfig, got: %v", err)
	}
}

func TestSeqSampler(t *testing.T) {
	ss := &SeqSampler{Seq: []int{2, 0, 1}}
	cor := []int{2, 0, 1, 2, 0}
	for i, c := range cor {
		if a := ss.Sample(nil); a != c {
			t.Errorf("sample %d = %d, want %d", i, a, c)
		}
	}
	if (&SeqSampler{}).Sample(nil) != 0 {
		t.Errorf("empty SeqSampler should return 0")
	}
}

func TestPChoose(t *testing.T) {
	rand.Seed(1)
	ps := []float32{0.2, 0.5, 0.3}
	var n [3]int
	for i := 0; i < 10000; i++ {
		a := PChoose{}.Sample(ps)
		if a < 0 || a > 2 {
			t.Fatalf("sample out of range: %d", a)
		}
		n[a]++
	}
	for i := range n {
		fr := float32(n[i]) / 10000
		if math32.Abs(fr-ps[i]) > 0.03 {
			t.Errorf("action %d frequency %v, want about %v", i, fr, ps[i])
		}
	}
	// never argmax: a zero-probability action is never chosen
	for i := 0; i < 1000; i++ {
		if (PChoose{}).Sample([]float32{0.5, 0, 0.5}) == 1 {
			t.Fatalf("sampled a zero-probability action")
		}
	}
}

// TestOnePellet runs one episode on a trail with a single reachable
// pellet, with a fixed action sequence.
func TestOnePellet(t *testing.T) {
	seq := []int{int(antnet.TurnLeft), int(antnet.TurnRight), int(antnet.MoveForward), int(antnet.MoveForward), int(antnet.MoveForward)}
	rn := testRunner(t, []string{"...#", "...."}, &SeqSampler{Seq: seq})
	traj, st, err := rn.Run()
	if err != nil {
		t.Fatal(err)
	}
	if st.Food != 1 || !st.Done || rn.Env.Eaten() != 1 {
		t.Errorf("food eaten = %d, done = %v", st.Food, st.Done)
	}
	if traj.Len() != len(seq) || st.Steps != len(seq) {
		t.Fatalf("steps = %d, want %d", traj.Len(), len(seq))
	}
	nfood := 0
	for i, r := range traj.Rewards() {
		switch r {
		case 1:
			nfood++
		case rn.Env.Params.StepCost:
		default:
			t.Errorf("step %d: unexpected reward %v", i, r)
		}
	}
	if nfood != 1 || traj.Steps[len(seq)-1].Reward != 1 {
		t.Errorf("expected exactly one food reward at the end: %v", traj.Rewards())
	}
	cor := 1 + 4*rn.Env.Params.StepCost
	if dif := math32.Abs(traj.TotalReward() - cor); dif > difTol {
		t.Errorf("TotalReward = %v, want %v", traj.TotalReward(), cor)
	}
	if dif := math32.Abs(st.Reward - cor); dif > difTol {
		t.Errorf("Stats.Reward = %v, want %v", st.Reward, cor)
	}
	// the last move has food ahead
	if traj.Steps[len(seq)-1].Ctx != antnet.FoodAhead || traj.Steps[0].Ctx != antnet.NoFood {
		t.Errorf("bad contexts: first %v last %v", traj.Steps[0].Ctx, traj.Steps[len(seq)-1].Ctx)
	}
}

func TestTrajectoryRecords(t *testing.T) {
	rn := testRunner(t, []string{".#..", "...."}, &SeqSampler{Seq: []int{int(antnet.TurnRight)}})
	rn.Params.MaxSteps = 6
	traj, st, err := rn.Run()
	if err != nil {
		t.Fatal(err)
	}
	if traj.Len() != 6 || st.Done || st.Food != 0 {
		t.Errorf("should run to MaxSteps without eating: len %d, done %v", traj.Len(), st.Done)
	}
	if traj.Temp != rn.Params.Temp {
		t.Errorf("trajectory Temp = %v", traj.Temp)
	}
	if traj.LeafThr != rn.Net.LeafThr() || traj.LeafThr == 0 {
		t.Errorf("trajectory LeafThr = %v", traj.LeafThr)
	}
	totSteps := 0
	for ci := range st.CtxSteps {
		totSteps += st.CtxSteps[ci]
	}
	if totSteps != 6 {
		t.Errorf("context steps sum to %d", totSteps)
	}
	for i, stp := range traj.Steps {
		if len(stp.CtxSpikes) != rn.Params.MicroSteps {
			t.Errorf("step %d: %d context spikes", i, len(stp.CtxSpikes))
		}
		nctx := 0
		for _, s := range stp.CtxSpikes {
			if s != 0 && s != 1 {
				t.Errorf("step %d: spike value %v", i, s)
			}
			if s > 0 {
				nctx++
			}
		}
		if nctx == 0 {
			t.Errorf("step %d: active context never spiked", i)
		}
		psum := float32(0)
		for ai := range stp.LeafVm {
			if len(stp.LeafVm[ai]) != rn.Params.MicroSteps {
				t.Errorf("step %d: leaf %d trace length %d", i, ai, len(stp.LeafVm[ai]))
			}
			if stp.Counts[ai] < 0 || stp.Counts[ai] > rn.Params.MicroSteps {
				t.Errorf("step %d: bad count %d", i, stp.Counts[ai])
			}
			psum += stp.Probs[ai]
		}
		if dif := math32.Abs(psum - 1); dif > difTol {
			t.Errorf("step %d: probs sum to %v", i, psum)
		}
		if stp.Action != antnet.TurnRight {
			t.Errorf("step %d: action %v", i, stp.Action)
		}
	}
	// first step faces the food
	if traj.Steps[0].Ctx != antnet.FoodAhead {
		t.Errorf("first context = %v", traj.Steps[0].Ctx)
	}
	for ci := range st.SpikeRates {
		for ai, r := range st.SpikeRates[ci] {
			if r < 0 || r > 1 {
				t.Errorf("spike rate [%d][%d] = %v", ci, ai, r)
			}
		}
	}
	// runs are independent: a second run starts from the same state
	traj2, _, err := rn.Run()
	if err != nil {
		t.Fatal(err)
	}
	if traj2.Steps[0].Ctx != antnet.FoodAhead || traj2.Len() != 6 {
		t.Errorf("second run did not reset the environment")
	}
}

// nanUnit goes non-finite on its first update
type nanUnit struct {
	vm float32
}

func (nu *nanUnit) Name() string                { return "nan" }
func (nu *nanUnit) Reset()                      { nu.vm = 0 }
func (nu *nanUnit) Update(inp, dt float32) bool { nu.vm = math32.NaN(); return false }
func (nu *nanUnit) Voltage() float32            { return nu.vm }
func (nu *nanUnit) Unstable() bool              { return math32.IsNaN(nu.vm) }

func TestUnstable(t *testing.T) {
	np := &antnet.Params{}
	np.Defaults()
	sp := &flif.StdParams{}
	sp.Defaults()
	mk := func() flif.Unit { u, _ := flif.NewStdNeuron("u", sp); return u }
	ctx := []flif.Unit{mk(), &nanUnit{}}
	leaves := [][]flif.Unit{{mk(), mk(), mk()}, {mk(), mk(), mk()}}
	nt, err := antnet.NewNetFromUnits(np, ctx, leaves)
	if err != nil {
		t.Fatal(err)
	}
	rp := &RunParams{}
	rp.Defaults()
	rn, err := NewRunner(rp, nt, testEnv(t, []string{".#"}), nil)
	if err != nil {
		t.Fatal(err)
	}
	traj, _, err := rn.Run()
	if !errors.Is(err, flif.ErrUnstable) {
		t.Errorf("expected ErrUnstable, got: %v", err)
	}
	if traj == nil || traj.Len() != 0 {
		t.Errorf("expected empty partial trajectory")
	}
}
