package mct

import "github.com/ajroetker/go-highway/hwy"

// Highway kernels run the fixed transforms on hwy vectors, one full vector
// per step, and hand the tail to the portable kernel. Results match the
// portable kernels bit for bit.

func encodeRCTHwy(c0, c1, c2 []int32) {
	n := len(c0)
	lanes := hwy.MaxLanes[int32]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		r := hwy.Load(c0[i:])
		g := hwy.Load(c1[i:])
		b := hwy.Load(c2[i:])

		y := hwy.ShiftRight(hwy.Add(hwy.Add(r, hwy.Add(g, g)), b), 2)
		hwy.Store(y, c0[i:])
		hwy.Store(hwy.Sub(b, g), c1[i:])
		hwy.Store(hwy.Sub(r, g), c2[i:])
	}
	if i < n {
		encodeRCTPortable(c0[i:], c1[i:], c2[i:])
	}
}

func decodeRCTHwy(c0, c1, c2 []int32) {
	n := len(c0)
	lanes := hwy.MaxLanes[int32]()
	i := 0
	for ; i+lanes <= n; i += lanes {
		y := hwy.Load(c0[i:])
		u := hwy.Load(c1[i:])
		v := hwy.Load(c2[i:])

		g := hwy.Sub(y, hwy.ShiftRight(hwy.Add(u, v), 2))
		hwy.Store(hwy.Add(v, g), c0[i:])
		hwy.Store(g, c1[i:])
		hwy.Store(hwy.Add(u, g), c2[i:])
	}
	if i < n {
		decodeRCTPortable(c0[i:], c1[i:], c2[i:])
	}
}

// encodeICTHwy widens each block to int64 lanes so the 13-bit products keep
// their full precision, then narrows the sums back. Narrowing commutes with
// the int32 wrap-around of the portable sums.
func encodeICTHwy(c0, c1, c2 []int32) {
	n := len(c0)
	lanes := hwy.MaxLanes[int64]()
	if n < lanes {
		encodeICTPortable(c0, c1, c2)
		return
	}

	half := hwy.Set(int64(fixHalf))
	fix := func(v hwy.Vec[int64], coeff int64) hwy.Vec[int64] {
		return hwy.ShiftRight(hwy.Add(hwy.Mul(v, hwy.Set(coeff)), half), FixShift)
	}
	buf := make([]int64, 3*lanes)
	rb, gb, bb := buf[:lanes], buf[lanes:2*lanes], buf[2*lanes:]

	i := 0
	for ; i+lanes <= n; i += lanes {
		for l := range lanes {
			rb[l], gb[l], bb[l] = int64(c0[i+l]), int64(c1[i+l]), int64(c2[i+l])
		}
		r, g, b := hwy.Load(rb), hwy.Load(gb), hwy.Load(bb)

		y := hwy.Add(hwy.Add(fix(r, ictYR), fix(g, ictYG)), fix(b, ictYB))
		u := hwy.Add(hwy.Sub(hwy.Neg(fix(r, ictUR)), fix(g, ictUG)), fix(b, ictUB))
		v := hwy.Sub(hwy.Sub(fix(r, ictVR), fix(g, ictVG)), fix(b, ictVB))
		hwy.Store(y, rb)
		hwy.Store(u, gb)
		hwy.Store(v, bb)

		for l := range lanes {
			c0[i+l], c1[i+l], c2[i+l] = int32(rb[l]), int32(gb[l]), int32(bb[l])
		}
	}
	if i < n {
		encodeICTPortable(c0[i:], c1[i:], c2[i:])
	}
}

// decodeICTHwy keeps every product a separate rounded float32 step, the same
// order the portable kernel evaluates.
func decodeICTHwy(c0, c1, c2 []float32) {
	n := len(c0)
	lanes := hwy.MaxLanes[float32]()
	vToR := hwy.Set(ictVToR)
	uToG := hwy.Set(ictUToG)
	vToG := hwy.Set(ictVToG)
	uToB := hwy.Set(ictUToB)
	i := 0
	for ; i+lanes <= n; i += lanes {
		y := hwy.Load(c0[i:])
		u := hwy.Load(c1[i:])
		v := hwy.Load(c2[i:])

		hwy.Store(hwy.Add(y, hwy.Mul(v, vToR)), c0[i:])
		hwy.Store(hwy.Sub(hwy.Sub(y, hwy.Mul(u, uToG)), hwy.Mul(v, vToG)), c1[i:])
		hwy.Store(hwy.Add(y, hwy.Mul(u, uToB)), c2[i:])
	}
	if i < n {
		decodeICTPortable(c0[i:], c1[i:], c2[i:])
	}
}
