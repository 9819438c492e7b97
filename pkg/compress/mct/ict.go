package mct

// ICT fixed point coefficients (13 fractional bits) approximating the
// BT.601 RGB -> YCbCr matrix.
const (
	ictYR, ictYG, ictYB = 2449, 4809, 934  // 0.299, 0.587, 0.114
	ictUR, ictUG, ictUB = 1382, 2714, 4096 // 0.169, 0.331, 0.500 (R, G negated)
	ictVR, ictVG, ictVB = 4096, 3430, 666  // 0.500, 0.419, 0.081 (G, B negated)
)

// Inverse ICT coefficients.
const (
	ictVToR float32 = 1.402
	ictUToG float32 = 0.34413
	ictVToG float32 = 0.71414
	ictUToB float32 = 1.772
)

// EncodeICT applies the forward irreversible transform in fixed point.
// c0, c1, c2 hold R, G, B on input and Y, U, V on output.
func EncodeICT(c0, c1, c2 []int32) {
	kernels.encodeICT(c0, c1, c2)
}

// DecodeICT applies the inverse irreversible transform in floating point.
// c0, c1, c2 hold Y, U, V on input and R, G, B on output. It is an
// approximate inverse of EncodeICT, not an exact one.
func DecodeICT(c0, c1, c2 []float32) {
	kernels.decodeICT(c0, c1, c2)
}

func ictForward(r, g, b int32) (y, u, v int32) {
	y = FixMul(r, ictYR) + FixMul(g, ictYG) + FixMul(b, ictYB)
	u = -FixMul(r, ictUR) - FixMul(g, ictUG) + FixMul(b, ictUB)
	v = FixMul(r, ictVR) - FixMul(g, ictVG) - FixMul(b, ictVB)
	return y, u, v
}

// ictInverse rounds every product to float32 before summing so the
// compiler cannot fuse it into a multiply-add; both kernels must agree.
func ictInverse(y, u, v float32) (r, g, b float32) {
	r = y + float32(v*ictVToR)
	g = y - float32(u*ictUToG) - float32(v*ictVToG)
	b = y + float32(u*ictUToB)
	return r, g, b
}

func encodeICTPortable(c0, c1, c2 []int32) {
	for i := range c0 {
		c0[i], c1[i], c2[i] = ictForward(c0[i], c1[i], c2[i])
	}
}

func decodeICTPortable(c0, c1, c2 []float32) {
	for i := range c0 {
		c0[i], c1[i], c2[i] = ictInverse(c0[i], c1[i], c2[i])
	}
}
