// Package planar reads and writes component planes as raw little-endian
// sample files: every plane stored back to back, 4 bytes per sample.
package planar

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Common errors
var (
	ErrInvalidFormat  = errors.New("invalid planar data")
	ErrComponentCount = errors.New("component count must be positive")
)

// Sample is the element type of a plane file.
type Sample interface {
	int32 | float32
}

// Read splits the whole of r into comps equally sized planes.
func Read[T Sample](r io.Reader, comps int) ([][]T, error) {
	if comps <= 0 {
		return nil, ErrComponentCount
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read planes: %w", err)
	}
	if len(raw)%(4*comps) != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %d-component samples",
			ErrInvalidFormat, len(raw), comps)
	}
	n := len(raw) / (4 * comps)
	planes := make([][]T, comps)
	pos := 0
	for c := range planes {
		planes[c] = make([]T, n)
		for i := range planes[c] {
			planes[c][i] = fromBits[T](binary.LittleEndian.Uint32(raw[pos:]))
			pos += 4
		}
	}
	return planes, nil
}

// Write stores planes back to back.
func Write[T Sample](w io.Writer, planes [][]T) error {
	bw := bufio.NewWriter(w)
	var buf [4]byte
	for _, p := range planes {
		for _, v := range p {
			binary.LittleEndian.PutUint32(buf[:], toBits(v))
			if _, err := bw.Write(buf[:]); err != nil {
				return fmt.Errorf("write planes: %w", err)
			}
		}
	}
	return bw.Flush()
}

// ReadMatrix reads a square row-major float32 coefficient matrix and returns
// the raw blob together with its dimension.
func ReadMatrix(r io.Reader) ([]byte, int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("read matrix: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, 0, fmt.Errorf("%w: matrix of %d bytes", ErrInvalidFormat, len(raw))
	}
	count := len(raw) / 4
	n := int(math.Sqrt(float64(count)))
	if n*n != count {
		return nil, 0, fmt.Errorf("%w: %d coefficients is not a square matrix", ErrInvalidFormat, count)
	}
	return raw, n, nil
}

// ToFloat32 widens integer planes for the floating point inverse transforms.
func ToFloat32(planes [][]int32) [][]float32 {
	out := make([][]float32, len(planes))
	for c, p := range planes {
		out[c] = make([]float32, len(p))
		for i, v := range p {
			out[c][i] = float32(v)
		}
	}
	return out
}

func fromBits[T Sample](u uint32) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math.Float32frombits(u))
	default:
		return T(int32(u))
	}
}

func toBits[T Sample](v T) uint32 {
	switch x := any(v).(type) {
	case float32:
		return math.Float32bits(x)
	case int32:
		return uint32(x)
	}
	return 0
}
