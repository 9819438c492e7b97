package mct

// RCT implements the Reversible Component Transform for JPEG 2000
// as specified in ITU-T T.800 Annex G. The planes are rewritten in place.

// EncodeRCT applies the forward reversible transform (RGB -> YUV).
// Input: c0, c1, c2 hold R, G, B (same length)
// Output: c0, c1, c2 hold Y, U, V
func EncodeRCT(c0, c1, c2 []int32) {
	kernels.encodeRCT(c0, c1, c2)
}

// DecodeRCT applies the inverse reversible transform (YUV -> RGB).
// Input: c0, c1, c2 hold Y, U, V
// Output: c0, c1, c2 hold R, G, B
func DecodeRCT(c0, c1, c2 []int32) {
	kernels.decodeRCT(c0, c1, c2)
}

func encodeRCTPortable(c0, c1, c2 []int32) {
	for i := range c0 {
		r, g, b := c0[i], c1[i], c2[i]
		c0[i] = (r + 2*g + b) >> 2 // floor((R + 2G + B) / 4)
		c1[i] = b - g
		c2[i] = r - g
	}
}

func decodeRCTPortable(c0, c1, c2 []int32) {
	for i := range c0 {
		y, u, v := c0[i], c1[i], c2[i]
		g := y - ((u + v) >> 2) // Y - floor((U + V) / 4)
		c0[i] = v + g
		c1[i] = g
		c2[i] = u + g
	}
}
