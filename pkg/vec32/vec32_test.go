package vec32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("known value", func(t *testing.T) {
		a := []float32{1, 2, 3}
		b := []float32{4, 5, 6}
		assert.InDelta(t, 0.9746318461970762, CosineSimilarity(a, b), 1e-9)
	})

	t.Run("identical direction", func(t *testing.T) {
		a := []float32{2, 0, 0}
		b := []float32{5, 0, 0}
		assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-9)
	})

	t.Run("degenerate inputs yield zero", func(t *testing.T) {
		assert.Zero(t, CosineSimilarity(nil, nil))
		assert.Zero(t, CosineSimilarity([]float32{1}, []float32{1, 2}))
		assert.Zero(t, CosineSimilarity([]float32{0, 0}, []float32{1, 2}))
	})

	t.Run("float32 variant agrees", func(t *testing.T) {
		a := []float32{1, 2, 3}
		b := []float32{4, 5, 6}
		assert.InDelta(t, CosineSimilarity(a, b), float64(CosineSimilarity32(a, b)), 1e-6)
	})
}

func TestDotNormDistance(t *testing.T) {
	assert.InDelta(t, 32, Dot([]float32{1, 2, 3}, []float32{4, 5, 6}), 1e-5)
	assert.Zero(t, Dot([]float32{1}, []float32{1, 2}))
	assert.InDelta(t, 5, Norm([]float32{3, 4}), 1e-6)
	assert.Zero(t, Norm(nil))
	assert.InDelta(t, 5, Distance([]float32{0, 0}, []float32{3, 4}), 1e-6)
}

func TestNormalize(t *testing.T) {
	t.Run("copy", func(t *testing.T) {
		v := []float32{3, 4}
		n := Normalize(v)
		assert.InDelta(t, 0.6, n[0], 1e-6)
		assert.InDelta(t, 0.8, n[1], 1e-6)
		assert.Equal(t, []float32{3, 4}, v, "input must not be modified")
	})

	t.Run("zero vector", func(t *testing.T) {
		n := Normalize([]float32{0, 0, 0})
		assert.Equal(t, []float32{0, 0, 0}, n)
	})

	t.Run("in place", func(t *testing.T) {
		v := []float32{3, 4}
		NormalizeInPlace(v)
		assert.InDelta(t, 1.0, Norm(v), 1e-6)

		z := []float32{0, 0}
		NormalizeInPlace(z)
		assert.Equal(t, []float32{0, 0}, z)
	})
}

func TestFloat64Bridge(t *testing.T) {
	v := []float32{1.5, -2.25, 0}
	wide := ToFloat64(v)
	require.Len(t, wide, 3)
	assert.Equal(t, []float64{1.5, -2.25, 0}, wide)

	back := FromFloat64(wide)
	assert.Equal(t, v, back)
}
