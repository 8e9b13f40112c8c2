package numeric

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tychoish/lazy"
)

func naturals() lazy.Sequence[int] { return lazy.Generate(func(in int) int { return in + 1 })(1) }

func TestAggregations(t *testing.T) {
	t.Run("Length", func(t *testing.T) {
		assert.Equal(t, 100, Length(lazy.Take(100, naturals())))
		assert.Equal(t, 100, Length(lazy.Take(100, Leibniz())))
		assert.Equal(t, 2, Length(lazy.Items("a", "b")))
		assert.Equal(t, 0, Length(lazy.End[string]()))
	})
	t.Run("Sum", func(t *testing.T) {
		assert.Equal(t, 5050, Sum(lazy.Take(100, naturals())))
		assert.Equal(t, uint8(0), Sum(lazy.End[uint8]()))
		assert.InDelta(t, 0.6, Sum(lazy.Items(0.1, 0.2, 0.3)), 1e-9)
	})
	t.Run("MaxNumber", func(t *testing.T) {
		values := []float64{3.5, -2, 17.25, 0, 17, -100}
		assert.Equal(t, slices.Max(values), MaxNumber(lazy.Items(values...)))
		assert.Equal(t, float32(-1), MaxNumber(lazy.Items[float32](-3, -1, -2)))
		assert.True(t, math.IsInf(MaxNumber(lazy.End[float64]()), -1))

		seq := lazy.Map(func(in int) float64 { return math.Sin(float64(in)) }, lazy.Take(1000, naturals()))
		assert.Equal(t, slices.Max(lazy.Collect(seq)), MaxNumber(seq))
	})
	t.Run("Max", func(t *testing.T) {
		val, ok := Max(lazy.Items(4, 9, -3, 9, 2))
		require.True(t, ok)
		assert.Equal(t, 9, val)

		word, ok := Max(lazy.Items("kip", "merlin", "buddy"))
		require.True(t, ok)
		assert.Equal(t, "merlin", word)

		val, ok = Max(lazy.End[int]())
		assert.False(t, ok)
		assert.Zero(t, val)

		val, ok = Max(lazy.Items(-7))
		assert.True(t, ok)
		assert.Equal(t, -7, val)
	})
}

func TestPi(t *testing.T) {
	t.Run("Leibniz", func(t *testing.T) {
		assert.Equal(t, []int{1, -3, 5, -7, 9, -11}, lazy.Collect(lazy.Take(6, Leibniz())))
	})
	t.Run("Approximation", func(t *testing.T) {
		assert.InDelta(t, 3.14159, PiApproximation(100), 0.05)
		assert.InDelta(t, math.Pi, PiApproximation(10000), 0.001)
		assert.InDelta(t, 4.0, PiApproximation(1), 1e-12)
		assert.InDelta(t, 4.0-4.0/3, PiApproximation(2), 1e-12)
	})
	t.Run("Converges", func(t *testing.T) {
		prev := math.Inf(1)
		for _, terms := range []int{1, 10, 100, 1000, 10000, 100000} {
			diff := math.Abs(math.Pi - PiApproximation(terms))
			assert.Less(t, diff, prev, "terms=%d", terms)
			prev = diff
		}
	})
	t.Run("NoTerms", func(t *testing.T) {
		assert.Zero(t, PiApproximation(0))
		assert.Zero(t, PiApproximation(-5))
	})
}
