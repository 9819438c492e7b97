package mct

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateNorms(t *testing.T) {
	tests := []struct {
		name   string
		matrix []float32
		want   []float64
	}{
		{"columns 3 and 4", []float32{3, 4, 0, 0}, []float64{3, 4}},
		{"identity", identityMatrix(3), []float64{1, 1, 1}},
		{"pythagorean columns", []float32{3, 0, 4, 5}, []float64{5, 5}},
		{"single", []float32{-2}, []float64{2}},
		{"empty", nil, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]float64, len(tt.want))
			orig := append([]float32(nil), tt.matrix...)
			CalculateNorms(out, tt.matrix)
			assert.InDeltaSlice(t, tt.want, out, 1e-12)
			assert.Equal(t, orig, append([]float32(nil), tt.matrix...), "matrix must not change")
		})
	}
}

func TestFixedNorms(t *testing.T) {
	assert.Equal(t, [3]float64{1.732, .8292, .8292}, ReversibleNorms())
	assert.Equal(t, [3]float64{1.732, 1.805, 1.573}, IrreversibleNorms())
	assert.Equal(t, .8292, ReversibleNorm(2))
	assert.Equal(t, 1.805, IrreversibleNorm(1))

	n := ReversibleNorms()
	n[0] = 0
	assert.Equal(t, 1.732, ReversibleNorm(0), "tables are returned by value")
}
