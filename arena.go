package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/padcmd/common"
	"github.com/milk9111/padcmd/input"
	"golang.org/x/image/colornames"
)

const (
	arenaStep      = 1.0 / 60.0
	arenaBoxSize   = 40.0
	arenaSpeed     = 320.0
	arenaAccel     = 0.25
	arenaDash      = 600.0
	arenaBrake     = 0.8
	arenaWallWidth = 4.0
)

var arenaColors = [2]color.Color{colornames.Tomato, colornames.Steelblue}

// Arena is a top-down chipmunk space where each player's commands steer a
// box: directions move, BUTTON1 dashes and BUTTON2 brakes.
type Arena struct {
	space  *cp.Space
	bodies [2]*cp.Body
	last   [2]input.Cmd
}

func NewArena() *Arena {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	space.SetDamping(0.1)

	w, h := float64(common.BaseWidth), float64(common.BaseHeight)
	walls := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: w, Y: 0}},
		{a: cp.Vector{X: 0, Y: h}, b: cp.Vector{X: w, Y: h}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: h}},
		{a: cp.Vector{X: w, Y: 0}, b: cp.Vector{X: w, Y: h}},
	}
	for _, wall := range walls {
		shape := cp.NewSegment(space.StaticBody, wall.a, wall.b, arenaWallWidth)
		shape.SetFriction(0)
		shape.SetElasticity(0.5)
		space.AddShape(shape)
	}

	a := &Arena{space: space}
	for i := range a.bodies {
		body := cp.NewBody(1, cp.INFINITY)
		body.SetPosition(cp.Vector{X: w * float64(i+1) / 3, Y: h / 2})
		shape := cp.NewBox(body, arenaBoxSize, arenaBoxSize, 0)
		shape.SetFriction(0)
		shape.SetElasticity(0.5)
		space.AddBody(body)
		space.AddShape(shape)
		a.bodies[i] = body
	}
	return a
}

func direction(cmd input.Cmd) cp.Vector {
	var d cp.Vector
	switch {
	case cmd.Has(input.CmdLeft):
		d.X = -1
	case cmd.Has(input.CmdRight):
		d.X = 1
	}
	switch {
	case cmd.Has(input.CmdUp):
		d.Y = -1
	case cmd.Has(input.CmdDown):
		d.Y = 1
	}
	if d.X != 0 || d.Y != 0 {
		d = d.Normalize()
	}
	return d
}

// Update advances the space one frame using held and pressed commands.
func (a *Arena) Update(held, pressed [2]input.Cmd) {
	for i, body := range a.bodies {
		dir := direction(held[i])
		vel := body.Velocity()
		if dir.X != 0 || dir.Y != 0 {
			vel = vel.Lerp(dir.Mult(arenaSpeed), arenaAccel)
		}
		if held[i].Has(input.CmdButton2) {
			vel = vel.Mult(arenaBrake)
		}
		body.SetVelocityVector(vel)

		if pressed[i].Has(input.CmdButton1) {
			if dir.X == 0 && dir.Y == 0 {
				dir = cp.Vector{X: 1}
			}
			body.ApplyImpulseAtLocalPoint(dir.Mult(arenaDash), cp.Vector{})
		}
		a.last[i] = held[i]
	}
	a.space.Step(arenaStep)
}

func (a *Arena) Position(player int) cp.Vector {
	return a.bodies[player].Position()
}

func (a *Arena) Velocity(player int) cp.Vector {
	return a.bodies[player].Velocity()
}

func (a *Arena) Draw(screen *ebiten.Image) {
	for i, body := range a.bodies {
		p := body.Position()
		half := arenaBoxSize / 2
		vector.FillRect(screen, float32(p.X-half), float32(p.Y-half), arenaBoxSize, arenaBoxSize, arenaColors[i], false)
		if a.last[i] != 0 {
			vector.StrokeRect(screen, float32(p.X-half), float32(p.Y-half), arenaBoxSize, arenaBoxSize, 2, colornames.White, false)
		}
	}
}
