package glottie

import "math"

// Point is a 2D point or vector used throughout the shape and transform
// model. Its Add/Sub/Lerp methods follow gogpu/gg's Point without
// importing that package, whose own dependency graph belongs to
// the rendering layer this parser deliberately stays out of.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns the vector sum of p and q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Lerp linearly interpolates between p (t=0) and q (t=1).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Matrix is a 2D affine transform in row-major 2x3 form:
//
//	| a  b  c |
//	| d  e  f |
//
// representing x' = a*x + b*y + c, y' = d*x + e*y + f.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 0, E: 1, F: 0}
}

// Translate returns a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, B: 0, C: x, D: 0, E: 1, F: y}
}

// ScaleMatrix returns a scaling matrix from plain factors (1.0 == no
// scaling). Lottie's percentage scale (100 == 1.0) is divided by 100 by
// the caller before it reaches here.
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{A: sx, B: 0, C: 0, D: 0, E: sy, F: 0}
}

// RotateMatrix returns a rotation matrix for angle in radians.
func RotateMatrix(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, C: 0, D: sin, E: cos, F: 0}
}

// ShearMatrix returns a skew matrix; angle is in radians, axis in
// radians, matching After Effects' skew/skew-axis pair.
func ShearMatrix(angle, axis float64) Matrix {
	tanSkew := math.Tan(angle)
	sinAxis, cosAxis := math.Sincos(axis)
	// Shear along axis: rotate into axis frame, shear, rotate back.
	m := Matrix{A: 1, B: 0, C: 0, D: tanSkew, E: 1, F: 0}
	toAxis := Matrix{A: cosAxis, B: -sinAxis, C: 0, D: sinAxis, E: cosAxis, F: 0}
	fromAxis := toAxis.Invert()
	return fromAxis.Multiply(m).Multiply(toAxis)
}

// Multiply returns m composed with other (m applied after other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transform to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{X: m.A*p.X + m.B*p.Y + m.C, Y: m.D*p.X + m.E*p.Y + m.F}
}

// Invert returns the inverse of m, or the identity matrix if m is
// singular.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-12 {
		return IdentityMatrix()
	}
	inv := 1.0 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == IdentityMatrix()
}

// RGBA is a color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// hexColor decodes a Lottie "#RRGGBB" solid-layer color string into an
// opaque RGBA (spec §4.3 "Color decoding"). Malformed input yields
// transparent black rather than a parse error, consistent with the
// parser's overall preference for partial success.
func hexColor(s string) RGBA {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGBA{}
	}
	r, okR := hexByte(s[0:2])
	g, okG := hexByte(s[2:4])
	b, okB := hexByte(s[4:6])
	if !okR || !okG || !okB {
		return RGBA{}
	}
	return RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

func hexByte(s string) (uint8, bool) {
	hi, ok1 := hexNibble(s[0])
	lo, ok2 := hexNibble(s[1])
	if !ok1 || !ok2 {
		return 0, false
	}
	return hi<<4 | lo, true
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// arrayColor builds an RGBA from an animated color property's component
// array. Only the first three components are ever read; a fourth
// component, when present, is discarded rather than treated as alpha —
// matching the source parser's own array-to-color conversion, which
// reads up to four doubles but only ever assigns r/g/b. Alpha is always
// fully opaque.
func arrayColor(comps []float64) RGBA {
	c := RGBA{A: 1}
	if len(comps) > 0 {
		c.R = comps[0]
	}
	if len(comps) > 1 {
		c.G = comps[1]
	}
	if len(comps) > 2 {
		c.B = comps[2]
	}
	return c
}
