package types

type AircraftID string

type AirportID string

type Vec2 struct {
	X float64
	Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Contains reports whether p lies inside the axis-aligned box anchored at v.
func (v Vec2) Contains(p Vec2, width, height float64) bool {
	return p.X >= v.X && p.X <= v.X+width &&
		p.Y >= v.Y && p.Y <= v.Y+height
}
