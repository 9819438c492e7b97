package mct

import "fmt"

// Custom applies an N x N coefficient matrix across N component planes.
// The zero value uses DefaultAllocator.
type Custom struct {
	Allocator Allocator
}

func (c *Custom) allocator() Allocator {
	if c == nil || c.Allocator == nil {
		return DefaultAllocator
	}
	return c.Allocator
}

// EncodeCustom runs Custom.Encode with the default allocator.
func EncodeCustom(matrix []byte, n int, planes [][]int32, signed bool) error {
	return (*Custom)(nil).Encode(matrix, n, planes, signed)
}

// DecodeCustom runs Custom.Decode with the default allocator.
func DecodeCustom(matrix []byte, n int, planes [][]float32, signed bool) error {
	return (*Custom)(nil).Decode(matrix, n, planes, signed)
}

// Encode rescales the coefficients to 13-bit fixed point and replaces the
// first n samples of every plane with the matrix product of that sample's
// component vector. len(planes) is the component count and matrix must hold
// len(planes)^2 little-endian float32 values.
//
// signed is accepted for codestream compatibility and does not change the
// arithmetic.
func (c *Custom) Encode(matrix []byte, n int, planes [][]int32, signed bool) error {
	nc := len(planes)
	if nc == 0 || n == 0 {
		return nil
	}
	alloc := c.allocator()
	scratch, err := alloc.AllocInt32(nc + nc*nc)
	if err != nil {
		return fmt.Errorf("custom encode of %d components: %w: %v", nc, ErrScratchAlloc, err)
	}
	defer alloc.FreeInt32(scratch)

	current, fixed := scratch[:nc], scratch[nc:]
	fixMatrixInto(fixed, matrix)

	for i := 0; i < n; i++ {
		for k, p := range planes {
			current[k] = p[i]
		}
		row := fixed
		for _, p := range planes {
			var acc int32
			for k := range nc {
				acc += FixMul(row[k], current[k])
			}
			p[i] = acc
			row = row[nc:]
		}
	}
	return nil
}

// Decode replaces the first n samples of every plane with the floating
// point matrix product of that sample's component vector.
//
// signed is accepted for codestream compatibility and does not change the
// arithmetic.
func (c *Custom) Decode(matrix []byte, n int, planes [][]float32, signed bool) error {
	nc := len(planes)
	if nc == 0 || n == 0 {
		return nil
	}
	alloc := c.allocator()
	scratch, err := alloc.AllocFloat32(2*nc + nc*nc)
	if err != nil {
		return fmt.Errorf("custom decode of %d components: %w: %v", nc, ErrScratchAlloc, err)
	}
	defer alloc.FreeFloat32(scratch)

	current, result, coeffs := scratch[:nc], scratch[nc:2*nc], scratch[2*nc:]
	decodeMatrixInto(coeffs, matrix)

	for i := 0; i < n; i++ {
		for k, p := range planes {
			current[k] = p[i]
		}
		row := coeffs
		for j := range result {
			var acc float32
			for k := range nc {
				acc += float32(row[k] * current[k])
			}
			result[j] = acc
			row = row[nc:]
		}
		for j, p := range planes {
			p[i] = result[j]
		}
	}
	return nil
}
