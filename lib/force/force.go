package force

import (
	"fmt"
	"math"
	"strings"

	"github.com/colinrgodsey/cartesius/f64"
)

// Point is a 2D coordinate. The origin is also a Point.
type Point = f64.Vec2

// Result is the resultant of the unit pulls acting on an origin.
type Result struct {
	X, Y float64

	// Magnitude is the L2 norm of (X, Y).
	Magnitude float64

	// Angle is the direction of (X, Y) in degrees, counterclockwise
	// from the positive x-axis, within [0, 360).
	Angle float64
}

// Resultant sums one unit vector per point, each directed from origin
// toward that point. Distance only picks the direction, it never weights
// the pull. Points that coincide with origin contribute nothing.
func Resultant(points []Point, origin Point) (res Result) {
	for _, p := range points {
		delta := Point{p[0] - origin[0], p[1] - origin[1]}
		if dist := delta.Mag(); dist > 0 {
			unit := delta.Div(dist)
			res.X += unit[0]
			res.Y += unit[1]
		}
	}

	res.Magnitude = math.Sqrt(res.X*res.X + res.Y*res.Y)
	res.Angle = degrees(math.Atan2(res.Y, res.X))
	return
}

// degrees converts rad to degrees normalized into [0, 360).
func degrees(rad float64) float64 {
	d := math.Mod(rad*180/math.Pi, 360)
	if d < 0 {
		d += 360
	}
	if d == 0 || d >= 360 {
		return 0 // also clears -0
	}
	return d
}

// Vec2 returns the resultant as a vector.
func (r Result) Vec2() f64.Vec2 {
	return f64.Vec2{r.X, r.Y}
}

func (r Result) String() string {
	lines := []string{
		"Restaurant Force Resultant:",
		fmt.Sprintf("X-component: %.4f", r.X),
		fmt.Sprintf("Y-component: %.4f", r.Y),
		fmt.Sprintf("Magnitude: %.4f", r.Magnitude),
		fmt.Sprintf("Angle with positive x-axis: %.2f°", r.Angle),
	}
	return strings.Join(lines, "\n")
}
