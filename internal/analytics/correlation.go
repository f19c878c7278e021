package analytics

import (
	"math"

	"wellness/internal/domain"
)

// Matrix is a square Pearson correlation matrix over Fields. Values[i][j] is
// the coefficient between Fields[i] and Fields[j].
type Matrix struct {
	Fields []domain.Field `json:"fields"`
	Values [][]float64    `json:"values"`
}

// Empty reports whether the matrix holds no coefficients.
func (m Matrix) Empty() bool { return len(m.Values) == 0 }

// At returns the coefficient between a and b.
func (m Matrix) At(a, b domain.Field) (float64, bool) {
	i, j := -1, -1
	for k, f := range m.Fields {
		if f == a {
			i = k
		}
		if f == b {
			j = k
		}
	}
	if i < 0 || j < 0 || m.Empty() {
		return 0, false
	}
	return m.Values[i][j], true
}

// Correlations computes pairwise Pearson coefficients. Each pair uses every
// row where both of its fields are valid, so a bad cell only drops that row
// from the pairs involving its field. The result is empty when any pair has
// fewer than two such rows or a zero-variance side.
func Correlations(entries []domain.Entry) Matrix {
	n := len(domain.MeasuredFields)
	vals := make([][]float64, n)
	valid := make([][]bool, n)
	for k, f := range domain.MeasuredFields {
		vals[k] = make([]float64, len(entries))
		valid[k] = make([]bool, len(entries))
		for r, e := range entries {
			vals[k][r], valid[k][r] = e.Value(f)
		}
	}

	empty := Matrix{Fields: domain.MeasuredFields}
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var xs, ys []float64
			for r := range entries {
				if valid[i][r] && valid[j][r] {
					xs = append(xs, vals[i][r])
					ys = append(ys, vals[j][r])
				}
			}
			c, ok := pearson(xs, ys)
			if !ok {
				return empty
			}
			values[i][j], values[j][i] = c, c
		}
	}
	return Matrix{Fields: domain.MeasuredFields, Values: values}
}

// pearson reports false for fewer than two pairs or a constant series.
func pearson(xs, ys []float64) (float64, bool) {
	if len(xs) < 2 {
		return 0, false
	}
	mx, my := mean(xs), mean(ys)
	var cross, ssx, ssy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		cross += dx * dy
		ssx += dx * dx
		ssy += dy * dy
	}
	if ssx == 0 || ssy == 0 {
		return 0, false
	}
	return cross / math.Sqrt(ssx*ssy), true
}

func mean(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s / float64(len(xs))
}
