package mct

import (
	"encoding/binary"
	"math"
)

// MatrixBytes serializes a row-major coefficient matrix into the descriptor
// blob consumed by the custom transforms: little-endian IEEE-754 float32.
func MatrixBytes(m []float32) []byte {
	buf := make([]byte, 4*len(m))
	for i, v := range m {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// DecodeMatrix reads count float32 coefficients from a descriptor blob.
// The blob must hold at least 4*count bytes.
func DecodeMatrix(data []byte, count int) []float32 {
	m := make([]float32, count)
	decodeMatrixInto(m, data)
	return m
}

func decodeMatrixInto(dst []float32, data []byte) {
	if len(dst) == 0 {
		return
	}
	_ = data[4*len(dst)-1]
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:]))
	}
}

func fixMatrixInto(dst []int32, data []byte) {
	if len(dst) == 0 {
		return
	}
	_ = data[4*len(dst)-1]
	for i := range dst {
		dst[i] = FixFromFloat(math.Float32frombits(binary.LittleEndian.Uint32(data[4*i:])))
	}
}
