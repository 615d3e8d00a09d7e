package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"airport-control/pkg/types"
)

func TestScreenWorldRoundTrip(t *testing.T) {
	c := &Camera{Origin: types.NewVec2(100, -40), Scale: 2}

	world := c.ScreenToWorld(types.NewVec2(300, 200))
	require.Equal(t, types.NewVec2(250, 60), world)
	require.Equal(t, types.NewVec2(300, 200), c.WorldToScreen(world))
}

func TestZoomKeepsCursorAnchored(t *testing.T) {
	c := NewCamera()
	cursor := types.NewVec2(512, 384)
	before := c.ScreenToWorld(cursor)

	c.Zoom(cursor, 1)
	require.InDelta(t, 1.1, c.Scale, 1e-9)
	after := c.ScreenToWorld(cursor)
	require.InDelta(t, before.X, after.X, 1e-9)
	require.InDelta(t, before.Y, after.Y, 1e-9)

	c.Zoom(cursor, -1)
	require.InDelta(t, 1.0, c.Scale, 1e-9)

	c.Zoom(cursor, 0)
	require.InDelta(t, 1.0, c.Scale, 1e-9)
}

func TestZoomIsClamped(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 50; i++ {
		c.Zoom(types.Vec2{}, 1)
	}
	require.Equal(t, MaxZoom, c.Scale)

	for i := 0; i < 50; i++ {
		c.Zoom(types.Vec2{}, -1)
	}
	require.Equal(t, MinZoom, c.Scale)
}

func TestDrag(t *testing.T) {
	c := &Camera{Scale: 2}
	c.Grab(types.NewVec2(100, 100))
	c.Drag(types.NewVec2(140, 80))
	require.Equal(t, types.NewVec2(-20, 10), c.Origin)

	// A second drag is measured from the previous cursor, not the grab point.
	c.Drag(types.NewVec2(140, 80))
	require.Equal(t, types.NewVec2(-20, 10), c.Origin)
}
