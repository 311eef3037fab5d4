package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Run("componentwise", func(t *testing.T) {
		sum, err := Of(1, 2, 3).Add(Of(4, 5, 6))
		require.NoError(t, err)
		assert.True(t, sum.Equal(Of(5, 7, 9)))
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := Of(1, 2).Add(Of(1, 2, 3))
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("operands unchanged", func(t *testing.T) {
		a := Of(1, 2)
		b := Of(3, 4)
		_, err := a.Add(b)
		require.NoError(t, err)
		assert.True(t, a.Equal(Of(1, 2)))
		assert.True(t, b.Equal(Of(3, 4)))
	})
}

func TestSub(t *testing.T) {
	diff, err := Of(5, 7, 9).Sub(Of(4, 5, 6))
	require.NoError(t, err)
	assert.True(t, diff.Equal(Of(1, 2, 3)))

	_, err = Of(1).Sub(Of(1, 2))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestScaleDiv(t *testing.T) {
	t.Run("scale", func(t *testing.T) {
		assert.True(t, Of(1, 2, 3).Scale(2.5).Equal(Of(2.5, 5, 7.5)))
	})

	t.Run("divide", func(t *testing.T) {
		q, err := Of(4, 6, 8).Div(2)
		require.NoError(t, err)
		assert.True(t, q.Equal(Of(2, 3, 4)))
	})

	t.Run("divide by zero", func(t *testing.T) {
		_, err := Of(1, 2, 3).Div(0)
		assert.ErrorIs(t, err, ErrDivideByZero)
	})
}

func TestNeg(t *testing.T) {
	assert.True(t, Of(1, -2, 3).Neg().Equal(Of(-1, 2, -3)))
}

func TestDot(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		dot, err := Of(1, 2, 3).Dot(Of(4, 5, 6))
		require.NoError(t, err)
		assert.Equal(t, 32.0, dot)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := Of(1, 2).Dot(Of(1, 2, 3))
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("zero-dimensional", func(t *testing.T) {
		dot, err := Of().Dot(Of())
		require.NoError(t, err)
		assert.Zero(t, dot)
	})
}

func TestCross(t *testing.T) {
	t.Run("standard basis", func(t *testing.T) {
		c, err := Of(1, 0, 0).Cross(Of(0, 1, 0))
		require.NoError(t, err)
		assert.True(t, c.Equal(Of(0, 0, 1)))
	})

	t.Run("anticommutes", func(t *testing.T) {
		a := Of(1, 2, 3)
		b := Of(-2, 0.5, 4)
		ab, err := a.Cross(b)
		require.NoError(t, err)
		ba, err := b.Cross(a)
		require.NoError(t, err)
		assert.True(t, ab.Equal(ba.Neg()))
	})

	t.Run("non-3D rejected", func(t *testing.T) {
		_, err := Of(1, 2).Cross(Of(3, 4))
		assert.ErrorIs(t, err, ErrInvalidDimension)
		_, err = Of(1, 2, 3).Cross(Of(1, 2, 3, 4))
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}

func TestMagnitude(t *testing.T) {
	t.Run("3-4-5 triangle", func(t *testing.T) {
		assert.Equal(t, 5.0, Of(3, 4, 0).Magnitude())
	})

	t.Run("squared", func(t *testing.T) {
		assert.Equal(t, 25.0, Of(3, 4, 0).MagnitudeSquared())
		assert.Zero(t, Of().MagnitudeSquared())
	})

	t.Run("zero iff all components zero", func(t *testing.T) {
		assert.Zero(t, Of(0, 0, 0).Magnitude())
		assert.Positive(t, Of(0, 1e-30, 0).Magnitude())
	})
}

func TestNormalize(t *testing.T) {
	t.Run("unit length", func(t *testing.T) {
		n, err := Of(3, 4, 12).Normalize()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, n.Magnitude(), 1e-12)
	})

	t.Run("zero vector", func(t *testing.T) {
		_, err := Of(0, 0, 0).Normalize()
		assert.ErrorIs(t, err, ErrZeroVector)
	})

	t.Run("input unchanged", func(t *testing.T) {
		v := Of(3, 4)
		_, err := v.Normalize()
		require.NoError(t, err)
		assert.True(t, v.Equal(Of(3, 4)))
	})
}

func TestDistance(t *testing.T) {
	d, err := Of(0, 0).Distance(Of(3, 4))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)

	d2, err := Of(0, 0).DistanceSquared(Of(3, 4))
	require.NoError(t, err)
	assert.InDelta(t, 25.0, d2, 1e-12)

	_, err = Of(1).Distance(Of(1, 2))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = Of(1).DistanceSquared(Of(1, 2))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

// Algebraic properties over pseudo-random vectors.
func TestAlgebraicProperties(t *testing.T) {
	dims := []int{1, 2, 3, 7, 64}

	t.Run("(v+w)-w == v", func(t *testing.T) {
		for _, dim := range dims {
			v, err := Random(dim, -10, 10)
			require.NoError(t, err)
			w, err := Random(dim, -10, 10)
			require.NoError(t, err)

			sum, err := v.Add(w)
			require.NoError(t, err)
			back, err := sum.Sub(w)
			require.NoError(t, err)
			assert.True(t, back.Equal(v), "dim %d", dim)
		}
	})

	t.Run("(v*s)/s == v", func(t *testing.T) {
		v, err := Random(5, -10, 10)
		require.NoError(t, err)
		for _, s := range []float64{2, -3.5, 1e6, 1e-6} {
			back, err := v.Scale(s).Div(s)
			require.NoError(t, err)
			assert.True(t, back.Equal(v), "s=%v", s)
		}
	})

	t.Run("triangle inequality", func(t *testing.T) {
		for _, dim := range dims {
			v, err := Random(dim, -100, 100)
			require.NoError(t, err)
			w, err := Random(dim, -100, 100)
			require.NoError(t, err)
			sum, err := v.Add(w)
			require.NoError(t, err)
			assert.LessOrEqual(t, sum.Magnitude(), v.Magnitude()+w.Magnitude()+1e-9)
		}
	})

	t.Run("norm homogeneity |c*v| == |c|*|v|", func(t *testing.T) {
		v, err := Random(6, -5, 5)
		require.NoError(t, err)
		for _, c := range []float64{0, 2, -7.5} {
			assert.InDelta(t, math.Abs(c)*v.Magnitude(), v.Scale(c).Magnitude(), 1e-9)
		}
	})

	t.Run("dot consistency with magnitude", func(t *testing.T) {
		v, err := Random(4, -5, 5)
		require.NoError(t, err)
		dot, err := v.Dot(v)
		require.NoError(t, err)
		assert.InDelta(t, v.MagnitudeSquared(), dot, 1e-9)
	})
}
