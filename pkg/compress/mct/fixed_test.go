package mct

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixMul(t *testing.T) {
	tests := []struct {
		name string
		a, b int32
		want int32
	}{
		{"identity", 8192, 37, 37},
		{"identity negative", 8192, -5, -5},
		{"zero", 0, -5, 0},
		{"half rounds up", 4096, 1, 1},
		{"negative half rounds up", 4096, -1, 0},
		{"luma red", 100, 2449, 30},
		{"overflow free product", 1 << 30, 8192, 1 << 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FixMul(tt.a, tt.b))
		})
	}
}

func TestFixFromFloat(t *testing.T) {
	assert.Equal(t, int32(8192), FixFromFloat(1))
	assert.Equal(t, int32(2449), FixFromFloat(0.299))
	assert.Equal(t, int32(-1382), FixFromFloat(-0.16875))
	assert.Equal(t, int32(-3430), FixFromFloat(-0.41869))
	assert.Equal(t, int32(0), FixFromFloat(0))
}
