package mct

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
)

// ErrKernelMismatch reports that the highway kernels disagree with the
// portable ones.
var ErrKernelMismatch = errors.New("accelerated kernel differs from portable kernel")

// CheckKernels runs the portable and highway kernels of every fixed transform
// on the same pseudo-random planes of the given length and reports the
// first transform whose outputs differ.
func CheckKernels(samples int, seed uint64) error {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	ints := func() [3][]int32 {
		var p [3][]int32
		for c := range p {
			p[c] = make([]int32, samples)
			for i := range p[c] {
				p[c][i] = rng.Int32N(1<<17) - 1<<16
			}
		}
		return p
	}
	floats := func() [3][]float32 {
		var p [3][]float32
		for c := range p {
			p[c] = make([]float32, samples)
			for i := range p[c] {
				p[c][i] = float32(rng.NormFloat64() * 512)
			}
		}
		return p
	}

	intChecks := []struct {
		name            string
		portable, highway func(c0, c1, c2 []int32)
	}{
		{"rct encode", portableKernels.encodeRCT, highwayKernels.encodeRCT},
		{"rct decode", portableKernels.decodeRCT, highwayKernels.decodeRCT},
		{"ict encode", portableKernels.encodeICT, highwayKernels.encodeICT},
	}
	for _, chk := range intChecks {
		a := ints()
		b := [3][]int32{slices.Clone(a[0]), slices.Clone(a[1]), slices.Clone(a[2])}
		chk.portable(a[0], a[1], a[2])
		chk.highway(b[0], b[1], b[2])
		if err := comparePlanes(chk.name, a, b); err != nil {
			return err
		}
	}

	a := floats()
	b := [3][]float32{slices.Clone(a[0]), slices.Clone(a[1]), slices.Clone(a[2])}
	portableKernels.decodeICT(a[0], a[1], a[2])
	highwayKernels.decodeICT(b[0], b[1], b[2])
	return comparePlanes("ict decode", a, b)
}

func comparePlanes[T int32 | float32](name string, a, b [3][]T) error {
	for c := range a {
		if i := mismatch(a[c], b[c]); i >= 0 {
			return fmt.Errorf("%w: %s component %d sample %d: %v != %v",
				ErrKernelMismatch, name, c, i, a[c][i], b[c][i])
		}
	}
	return nil
}

func mismatch[T int32 | float32](a, b []T) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
