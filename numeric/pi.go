package numeric

import "github.com/tychoish/lazy"

func leibnizStep(n int) int {
	if n > 0 {
		return -(n + 2)
	}
	return -(n - 2)
}

// Leibniz returns the infinite sequence of signed odd denominators
// of the Leibniz series for pi: 1, -3, 5, -7, 9, ...
func Leibniz() lazy.Sequence[int] { return lazy.Generate(leibnizStep)(1) }

// PiApproximation approximates pi by summing the first terms of the
// Leibniz series (1/1 - 1/3 + 1/5 - ...) and multiplying by four. The
// error shrinks as the number of terms grows. When terms is zero or
// negative, PiApproximation returns zero.
func PiApproximation(terms int) float64 {
	reciprocals := lazy.Map(func(in int) float64 { return 1 / float64(in) }, Leibniz())
	return 4 * Sum(lazy.Take(terms, reciprocals))
}
