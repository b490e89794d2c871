package point

// Directions configures the optimization direction of each dimension:
// true means the dimension is minimized, false means it is maximized.
//
// A nil Directions value is valid everywhere it is accepted and means
// minimize-all, matching the default of the dominance algebra.
type Directions []bool

// MinimizeAll returns a directions vector minimizing every dimension.
func MinimizeAll(dimensions int) Directions {
	d := make(Directions, dimensions)
	for i := range d {
		d[i] = true
	}
	return d
}

// MaximizeAll returns a directions vector maximizing every dimension.
func MaximizeAll(dimensions int) Directions {
	return make(Directions, dimensions)
}

// Minimizes reports whether dimension i is minimized. Nil directions
// minimize every dimension.
func (d Directions) Minimizes(i int) bool {
	return d == nil || d[i]
}

// Valid reports whether the directions vector is usable for points of the
// given dimensionality. Nil is valid for any dimensionality.
func (d Directions) Valid(dimensions int) bool {
	return d == nil || len(d) == dimensions
}
