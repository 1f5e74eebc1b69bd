package heart

// Field evaluates the implicit heart polynomial. Values <= 0 lie inside.
func Field(x, y, z float64) float64 {
	x2, y2, z2 := x*x, y*y, z*z
	z3 := z2 * z
	a := x2 + 2.25*y2 + z2 - 1
	return a*a*a - x2*z3 - 0.1125*y2*z3
}

// Inside reports whether (x, y, z) lies in the heart volume.
func Inside(x, y, z float64) bool {
	return Field(x, y, z) <= 0
}
