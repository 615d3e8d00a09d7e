// Package view maps the airspace's world coordinates onto the radar screen.
package view

import (
	"math"

	"airport-control/pkg/types"
)

const (
	MinZoom  = 0.5
	MaxZoom  = 3.0
	zoomStep = 1.1
)

// Camera is the top-left world point shown on screen and the zoom factor.
type Camera struct {
	Origin types.Vec2
	Scale  float64

	grab types.Vec2
}

func NewCamera() *Camera {
	return &Camera{Scale: 1}
}

func (c *Camera) ScreenToWorld(screen types.Vec2) types.Vec2 {
	return types.NewVec2(screen.X/c.Scale+c.Origin.X, screen.Y/c.Scale+c.Origin.Y)
}

func (c *Camera) WorldToScreen(world types.Vec2) types.Vec2 {
	return types.NewVec2((world.X-c.Origin.X)*c.Scale, (world.Y-c.Origin.Y)*c.Scale)
}

// Zoom steps the scale in (wheel > 0) or out (wheel < 0), keeping the world
// point under cursor fixed on screen.
func (c *Camera) Zoom(cursor types.Vec2, wheel float64) {
	if wheel == 0 {
		return
	}
	anchor := c.ScreenToWorld(cursor)

	scale := c.Scale
	if wheel > 0 {
		scale *= zoomStep
	} else {
		scale /= zoomStep
	}
	c.Scale = math.Max(MinZoom, math.Min(MaxZoom, scale))

	c.Origin = types.NewVec2(anchor.X-cursor.X/c.Scale, anchor.Y-cursor.Y/c.Scale)
}

// Grab starts a drag at the given screen point.
func (c *Camera) Grab(screen types.Vec2) {
	c.grab = screen
}

// Drag moves the view so the world follows the cursor since the last Grab or Drag.
func (c *Camera) Drag(screen types.Vec2) {
	c.Origin.X -= (screen.X - c.grab.X) / c.Scale
	c.Origin.Y -= (screen.Y - c.grab.Y) / c.Scale
	c.grab = screen
}
