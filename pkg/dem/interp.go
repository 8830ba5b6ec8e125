package dem

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// Method selects one of the three interpolation strategies of §4.6.
type Method int

const (
	// MethodIDW is the default per §4.6: a mask-aware 3x3 inverse-distance
	// weighted interpolation.
	MethodIDW Method = iota
	MethodBilinear
	MethodBicubicSpline
)

// idwMinUnmaskedFraction is the 25% threshold of §4.6: fewer unmasked cells
// in the 3x3 window than this fraction triggers "no value".
const idwMinUnmaskedFraction = 0.25

// Interpolate samples t at fractional pixel coordinates (x, y) using
// method, returning ErrInterpolationUnavailable (non-fatal, per §4.7's
// "IDW below threshold" edge case) when too few cells are usable or the
// fitted value is not finite.
func (t *Tile) Interpolate(x, y float64, method Method) (float64, error) {
	switch method {
	case MethodBilinear:
		return t.interpolateBilinear(x, y)
	case MethodBicubicSpline:
		return t.interpolateBicubic(x, y)
	default:
		return t.interpolateIDW(x, y)
	}
}

// interpolateBilinear implements §4.6's bilinear method: a 2x2 window
// anchored at floor(x), floor(y).
func (t *Tile) interpolateBilinear(x, y float64) (float64, error) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	dx := x - float64(x0)
	dy := y - float64(y0)

	v00, m00, ok00 := t.At(x0, y0)
	v10, m10, ok10 := t.At(x0+1, y0)
	v01, m01, ok01 := t.At(x0, y0+1)
	v11, m11, ok11 := t.At(x0+1, y0+1)
	if !ok00 || !ok10 || !ok01 || !ok11 || m00 || m10 || m01 || m11 {
		return 0, ErrInterpolationUnavailable
	}

	top := float64(v00)*(1-dx) + float64(v10)*dx
	bottom := float64(v01)*(1-dx) + float64(v11)*dx
	value := top*(1-dy) + bottom*dy
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInterpolationUnavailable
	}
	return value, nil
}

// interpolateBicubic implements §4.6's bicubic-spline method over a 3x3
// window as a separable fit built from two passes of gonum's natural cubic
// spline (interp.NaturalCubic: rows, then the column of row-results),
// evaluated at (dx, dy). Each pass is a natural cubic spline through 3
// points; the spline degree is not reduced to min(n-1, 3) for the window.
func (t *Tile) interpolateBicubic(x, y float64) (float64, error) {
	x0 := int(math.Floor(x)) - 1
	y0 := int(math.Floor(y)) - 1
	dx := x - float64(int(math.Floor(x)))
	dy := y - float64(int(math.Floor(y)))

	var window [3][3]float64
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			v, masked, ok := t.At(x0+i, y0+j)
			if !ok || masked {
				return 0, ErrInterpolationUnavailable
			}
			window[j][i] = float64(v)
		}
	}

	xs := []float64{0, 1, 2}
	rowValues := make([]float64, 3)
	for j := 0; j < 3; j++ {
		var fit interp.NaturalCubic
		if err := fit.Fit(xs, window[j][:]); err != nil {
			return 0, ErrInterpolationUnavailable
		}
		rowValues[j] = fit.Predict(1 + dx)
	}

	var colFit interp.NaturalCubic
	if err := colFit.Fit(xs, rowValues); err != nil {
		return 0, ErrInterpolationUnavailable
	}
	value := colFit.Predict(1 + dy)
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInterpolationUnavailable
	}
	return value, nil
}

// interpolateIDW implements §4.6's default method: a mask-aware 3x3 window,
// rejecting if fewer than 25% of the 9 cells are unmasked (edge case 6 in
// §4.7: 7 masked of 9 -> 22% unmasked -> rejected).
func (t *Tile) interpolateIDW(x, y float64) (float64, error) {
	x0 := int(math.Round(x)) - 1
	y0 := int(math.Round(y)) - 1

	type cell struct {
		dist, value float64
	}
	cells := make([]cell, 0, 9)
	unmasked := 0
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			px, py := x0+i, y0+j
			v, masked, ok := t.At(px, py)
			if !ok || masked {
				continue
			}
			unmasked++
			d := math.Hypot(x-float64(px), y-float64(py))
			cells = append(cells, cell{d, float64(v)})
		}
	}

	if float64(unmasked) < idwMinUnmaskedFraction*9 {
		return 0, ErrInterpolationUnavailable
	}

	var weightSum, valueSum float64
	for _, c := range cells {
		if c.dist == 0 {
			return c.value, nil
		}
		w := 1 / c.dist
		weightSum += w
		valueSum += w * c.value
	}
	if weightSum == 0 {
		return 0, ErrInterpolationUnavailable
	}
	value := valueSum / weightSum
	if math.IsNaN(value) {
		return 0, ErrInterpolationUnavailable
	}
	return value, nil
}

// Incline implements §4.6's "Incline per edge": interpolate elevation at the
// first and last coordinates of a polyline and derive the grade over its
// length. Returns ok=false (absent incline) if either endpoint has no value.
func Incline(t *Tile, firstLon, firstLat, lastLon, lastLat, length float64, method Method) (incline float64, ok bool) {
	fx, fy := t.GeoToPixel(firstLon, firstLat)
	lx, ly := t.GeoToPixel(lastLon, lastLat)

	first, err := t.Interpolate(fx, fy, method)
	if err != nil {
		return 0, false
	}
	last, err := t.Interpolate(lx, ly, method)
	if err != nil {
		return 0, false
	}
	if length <= 0 {
		return 0, false
	}
	grade := (last - first) / length
	return math.Round(grade*1000) / 1000, true
}
