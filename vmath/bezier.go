package vmath

// CubicBezier evaluates the cubic Bézier defined by p0..p3 at t
// Bernstein form keeps both endpoints exact: t=0 yields p0, t=1 yields p3
// Defined for any t; callers clamp to [0, 1] for points on the curve
func CubicBezier(p0, p1, p2, p3 Vec3F, t float64) Vec3F {
	u := 1 - t
	t2 := t * t
	u2 := u * u
	u3 := u2 * u
	t3 := t2 * t

	b1 := 3 * u2 * t
	b2 := 3 * u * t2

	return Vec3F{
		X: u3*p0.X + b1*p1.X + b2*p2.X + t3*p3.X,
		Y: u3*p0.Y + b1*p1.Y + b2*p2.Y + t3*p3.Y,
		Z: u3*p0.Z + b1*p1.Z + b2*p2.Z + t3*p3.Z,
	}
}
