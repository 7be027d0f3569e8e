package common

import (
	"fmt"
	"math"
	"math/rand"
)

// Vec represents a point or vector in the 2D simulation plane.
type Vec struct {
	X, Y float64
}

// NewVec creates a vector from its components.
func NewVec(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// NewRandomVec creates a vector with random coordinates in [0, width) x [0, height).
func NewRandomVec(rng *rand.Rand, width, height float64) Vec {
	return Vec{
		X: rng.Float64() * width,
		Y: rng.Float64() * height,
	}
}

// Add returns the component-wise sum of two vectors.
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies the vector by a scalar value.
func (v Vec) Scale(scalar float64) Vec {
	return Vec{X: v.X * scalar, Y: v.Y * scalar}
}

// Norm calculates the Euclidean norm (magnitude) of the vector.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

// NormSq calculates the squared Euclidean norm of the vector.
func (v Vec) NormSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance calculates the Euclidean distance between two vectors.
func (v Vec) Distance(other Vec) float64 {
	return v.Sub(other).Norm()
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to the zero vector.
func (v Vec) Normalize() Vec {
	n := v.Norm()
	if n == 0 {
		return Vec{}
	}
	return v.Scale(1 / n)
}

// Limit clamps the magnitude of the vector to max, preserving direction.
func (v Vec) Limit(max float64) Vec {
	nsq := v.NormSq()
	if nsq <= max*max {
		return v
	}
	return v.Scale(max / math.Sqrt(nsq))
}

// Heading returns the angle of the vector in radians, measured from the
// positive X axis. The zero vector has heading 0.
func (v Vec) Heading() float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// String returns a string representation of the vector.
func (v Vec) String() string {
	return fmt.Sprintf("[%.3f, %.3f]", v.X, v.Y)
}

// MapRange linearly maps value from the range [from[0], from[1]] onto
// [to[0], to[1]]. The output range may be decreasing, in which case the
// mapping is inverted. The input range must be nondegenerate.
func MapRange(value float64, from, to [2]float64) float64 {
	return to[0] + (to[1]-to[0])*(value-from[0])/(from[1]-from[0])
}

// RandomInRange returns a uniformly distributed value in [r[0], r[1]).
func RandomInRange(rng *rand.Rand, r [2]float64) float64 {
	return r[0] + rng.Float64()*(r[1]-r[0])
}
