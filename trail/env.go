// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trail

import (
	"fmt"
	"image"

	"github.com/emer/emergent/env"
	"github.com/emer/etable/etensor"
	"github.com/emer/flif/antnet"
	"github.com/emer/flif/flif"
)

// EnvParams are the trail environment parameters
type EnvParams struct {
	Start     image.Point `desc:"starting X,Y position of the agent"`
	StartHead Headings    `desc:"starting heading of the agent"`
	StepCost  float32     `def:"-0.01" desc:"reward for every action that does not eat food: turns, wall bumps, and moves onto empty cells"`
	FoodRew   float32     `def:"1" desc:"reward for moving onto a food cell"`
	TotalFood int         `def:"0" min:"0" desc:"number of food pellets eaten that ends the episode -- 0 = all the food in the grid"`
}

func (ep *EnvParams) Defaults() {
	ep.Start = image.Point{}
	ep.StartHead = East
	ep.StepCost = -0.01
	ep.FoodRew = 1
	ep.TotalFood = 0
}

func (ep *EnvParams) Update() {
}

// Outcome is the result of one action
type Outcome struct {
	Pos    image.Point `desc:"position after the action"`
	Head   Headings    `desc:"heading after the action"`
	Reward float32     `desc:"reward for the action"`
	Done   bool        `desc:"true if this action ate the last pellet"`
	Ate    bool        `desc:"true if this action ate a pellet"`
}

// Env is the food trail environment.  The food layout in Orig is fixed,
// and copied into Food at the start of each episode by Reset.
type Env struct {
	Nm      string         `desc:"name of this environment"`
	Dsc     string         `desc:"description of this environment"`
	Params  EnvParams      `view:"inline" desc:"environment parameters"`
	Size    image.Point    `inactive:"+" desc:"grid size: X = width, Y = height"`
	NFood   int            `inactive:"+" desc:"number of pellets that ends the episode"`
	Orig    etensor.Int    `view:"no-inline" desc:"original food layout, Y x X, 1 = food"`
	Food    etensor.Int    `view:"no-inline" desc:"current food layout, Y x X, 1 = food"`
	Loc     image.Point    `inactive:"+" desc:"current X,Y position of the agent"`
	Head    env.CurPrvInt  `inactive:"+" desc:"current and previous heading, as Headings"`
	NEaten  int            `inactive:"+" desc:"pellets eaten this episode"`
	Last    Outcome        `inactive:"+" desc:"outcome of the last action"`
	PendAct antnet.Actions `inactive:"+" desc:"action set by Action, performed on next Step"`
	PosTsr  etensor.Int    `view:"-" desc:"position as X,Y for State"`
	FAhead  etensor.Int    `view:"-" desc:"1 if food ahead, for State"`
	Run     env.Ctr        `view:"inline" desc:"current run of model as provided during Init"`
	Epoch   env.Ctr        `view:"inline" desc:"episode counter, incremented on each Reset"`
	Trial   env.Ctr        `view:"inline" desc:"actions taken within the current episode"`
}

// NewEnv returns a new environment for the given food grid, indexed [y][x]
// with non-zero = food.  The grid is copied.
func NewEnv(name string, grid [][]int, pars *EnvParams) (*Env, error) {
	ev := &Env{Nm: name, Params: *pars}
	if err := ev.Config(grid); err != nil {
		return nil, err
	}
	ev.Init(0)
	return ev, nil
}

func (ev *Env) Name() string { return ev.Nm }
func (ev *Env) Desc() string { return ev.Dsc }

// Config sets the food layout from the grid, and the total food
// needed to end an episode.
func (ev *Env) Config(grid [][]int) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return fmt.Errorf("%w: trail.Env %v: empty grid", flif.ErrConfig, ev.Nm)
	}
	ev.Size = image.Point{len(grid[0]), len(grid)}
	ev.Orig.SetShape([]int{ev.Size.Y, ev.Size.X}, nil, []string{"Y", "X"})
	for y, row := range grid {
		if len(row) != ev.Size.X {
			return fmt.Errorf("%w: trail.Env %v: row %d has length %d, not %d", flif.ErrConfig, ev.Nm, y, len(row), ev.Size.X)
		}
		for x, c := range row {
			if c != 0 {
				c = 1
			}
			ev.Orig.Set([]int{y, x}, c)
		}
	}
	ev.Food.SetShape([]int{ev.Size.Y, ev.Size.X}, nil, []string{"Y", "X"})
	ev.PosTsr.SetShape([]int{2}, nil, []string{"XY"})
	ev.FAhead.SetShape([]int{1}, nil, nil)
	return ev.Validate()
}

func (ev *Env) Validate() error {
	if ev.Size.X == 0 || ev.Size.Y == 0 {
		return fmt.Errorf("%w: trail.Env %v: has no grid -- need to Config", flif.ErrConfig, ev.Nm)
	}
	if !ev.InBounds(ev.Params.Start) {
		return fmt.Errorf("%w: trail.Env %v: start %v outside of grid size %v", flif.ErrConfig, ev.Nm, ev.Params.Start, ev.Size)
	}
	if ev.Params.StartHead < 0 || ev.Params.StartHead >= HeadingsN {
		return fmt.Errorf("%w: trail.Env %v: invalid start heading %d", flif.ErrConfig, ev.Nm, ev.Params.StartHead)
	}
	nf := 0
	for _, c := range ev.Orig.Values {
		nf += c
	}
	switch {
	case nf == 0:
		return fmt.Errorf("%w: trail.Env %v: grid has no food", flif.ErrConfig, ev.Nm)
	case ev.Params.TotalFood < 0 || ev.Params.TotalFood > nf:
		return fmt.Errorf("%w: trail.Env %v: TotalFood = %d, grid has %d", flif.ErrConfig, ev.Nm, ev.Params.TotalFood, nf)
	case ev.Params.TotalFood == 0:
		ev.NFood = nf
	default:
		ev.NFood = ev.Params.TotalFood
	}
	return nil
}

// Init is called to restart environment for a new run
func (ev *Env) Init(run int) {
	ev.Run.Scale = env.Run
	ev.Epoch.Scale = env.Epoch
	ev.Trial.Scale = env.Trial
	ev.Run.Init()
	ev.Epoch.Init()
	ev.Trial.Init()
	ev.Run.Cur = run
	ev.Epoch.Cur = -1 // first Reset = episode 0
	ev.Reset()
}

// Reset restores the food layout and the agent to the start, for a new
// episode.  The food grid is reused, not reallocated.
func (ev *Env) Reset() {
	copy(ev.Food.Values, ev.Orig.Values)
	ev.Loc = ev.Params.Start
	ev.Head.Cur = int(ev.Params.StartHead)
	ev.Head.Prv = ev.Head.Cur
	ev.NEaten = 0
	ev.Last = Outcome{Pos: ev.Loc, Head: ev.Params.StartHead}
	ev.Epoch.Incr()
	ev.Trial.Init()
}

// InBounds returns true if the point is on the grid
func (ev *Env) InBounds(pt image.Point) bool {
	return pt.In(image.Rectangle{Max: ev.Size})
}

// HasFood returns true if the point is on the grid and holds food
func (ev *Env) HasFood(pt image.Point) bool {
	return ev.InBounds(pt) && ev.Food.Value([]int{pt.Y, pt.X}) != 0
}

// Ahead returns the cell in front of the agent, which may be off the grid
func (ev *Env) Ahead() image.Point {
	return ev.Loc.Add(ev.Heading().Delta())
}

// FoodAhead returns true if the cell in front of the agent holds food.
// Off the grid is never food.
func (ev *Env) FoodAhead() bool {
	return ev.HasFood(ev.Ahead())
}

func (ev *Env) Pos() image.Point  { return ev.Loc }
func (ev *Env) Heading() Headings { return Headings(ev.Head.Cur) }
func (ev *Env) Eaten() int        { return ev.NEaten }
func (ev *Env) TotalFood() int    { return ev.NFood }
func (ev *Env) Remaining() int    { return ev.NFood - ev.NEaten }
func (ev *Env) Done() bool        { return ev.NEaten >= ev.NFood }

// Act performs the action and returns the outcome.
// Every action other than eating food gets Params.StepCost.
func (ev *Env) Act(act antnet.Actions) Outcome {
	oc := Outcome{Reward: ev.Params.StepCost}
	switch act {
	case antnet.TurnLeft:
		ev.Head.Set(int(ev.Heading().Left()))
	case antnet.TurnRight:
		ev.Head.Set(int(ev.Heading().Right()))
	case antnet.MoveForward:
		nxt := ev.Ahead()
		if !ev.InBounds(nxt) {
			break // bump: stay in place
		}
		ev.Loc = nxt
		if ev.HasFood(nxt) {
			ev.Food.Set([]int{nxt.Y, nxt.X}, 0)
			ev.NEaten++
			oc.Reward = ev.Params.FoodRew
			oc.Ate = true
			oc.Done = ev.NEaten == ev.NFood
		}
	}
	oc.Pos = ev.Loc
	oc.Head = ev.Heading()
	ev.Last = oc
	ev.Trial.Incr()
	return oc
}

func (ev *Env) State(element string) etensor.Tensor {
	switch element {
	case "Food":
		return &ev.Food
	case "Pos":
		ev.PosTsr.Values[0] = ev.Loc.X
		ev.PosTsr.Values[1] = ev.Loc.Y
		return &ev.PosTsr
	case "FoodAhead":
		ev.FAhead.Values[0] = 0
		if ev.FoodAhead() {
			ev.FAhead.Values[0] = 1
		}
		return &ev.FAhead
	}
	return nil
}

// String returns the current state as a string
func (ev *Env) String() string {
	return fmt.Sprintf("Pos_%d_%d_%v_Eaten_%d", ev.Loc.X, ev.Loc.Y, ev.Heading(), ev.NEaten)
}

// Action sets the action to perform on the next Step, as an index
// into antnet.Actions in the first value of the input.
func (ev *Env) Action(element string, input etensor.Tensor) {
	switch element {
	case "Action":
		ev.PendAct = antnet.Actions(int(input.FloatVal1D(0)))
	}
}

// Step performs the pending action, returning false once the episode is done.
func (ev *Env) Step() bool {
	ev.Epoch.Same()
	if ev.Done() {
		return false
	}
	return !ev.Act(ev.PendAct).Done
}

func (ev *Env) Counter(scale env.TimeScales) (cur, prv int, chg bool) {
	switch scale {
	case env.Run:
		return ev.Run.Query()
	case env.Epoch:
		return ev.Epoch.Query()
	case env.Trial:
		return ev.Trial.Query()
	}
	return -1, -1, false
}
