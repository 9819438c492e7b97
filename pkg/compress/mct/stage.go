package mct

import (
	"fmt"
	"log/slog"
)

// Params carries the transform selection for one tile as read from the
// codestream. Matrix and Signed are only used by KindCustom.
type Params struct {
	Kind      Kind
	Matrix    []byte
	Signed    bool
	Allocator Allocator // nil uses DefaultAllocator
}

// Encode applies the forward transform to the tile's integer planes.
func (p Params) Encode(planes [][]int32) error {
	n, err := planeLen(planes)
	if err != nil {
		return err
	}
	slog.Debug("forward component transform",
		slog.String("kind", p.Kind.String()),
		slog.Int("components", len(planes)),
		slog.Int("samples", n))

	switch p.Kind {
	case KindNone:
		return nil
	case KindReversible:
		if err := p.requireFixed(len(planes)); err != nil {
			return err
		}
		EncodeRCT(planes[0], planes[1], planes[2])
		return nil
	case KindIrreversible:
		if err := p.requireFixed(len(planes)); err != nil {
			return err
		}
		EncodeICT(planes[0], planes[1], planes[2])
		return nil
	case KindCustom:
		if err := p.requireMatrix(len(planes)); err != nil {
			return err
		}
		c := Custom{Allocator: p.Allocator}
		return c.Encode(p.Matrix, n, planes, p.Signed)
	}
	return fmt.Errorf("%w: %v", ErrUnknownKind, p.Kind)
}

// DecodeInt applies the inverse transform to integer planes. Only the
// reversible transform (and no transform) reconstructs integers.
func (p Params) DecodeInt(planes [][]int32) error {
	n, err := planeLen(planes)
	if err != nil {
		return err
	}
	slog.Debug("inverse component transform",
		slog.String("kind", p.Kind.String()),
		slog.Int("components", len(planes)),
		slog.Int("samples", n),
		slog.Bool("integer", true))
	switch p.Kind {
	case KindNone:
		return nil
	case KindReversible:
		if err := p.requireFixed(len(planes)); err != nil {
			return err
		}
		DecodeRCT(planes[0], planes[1], planes[2])
		return nil
	case KindIrreversible, KindCustom:
		return fmt.Errorf("%w: %v decodes float32 samples", ErrSampleType, p.Kind)
	}
	return fmt.Errorf("%w: %v", ErrUnknownKind, p.Kind)
}

// DecodeReal applies the inverse transform to floating point planes.
func (p Params) DecodeReal(planes [][]float32) error {
	n, err := planeLen(planes)
	if err != nil {
		return err
	}
	slog.Debug("inverse component transform",
		slog.String("kind", p.Kind.String()),
		slog.Int("components", len(planes)),
		slog.Int("samples", n))

	switch p.Kind {
	case KindNone:
		return nil
	case KindIrreversible:
		if err := p.requireFixed(len(planes)); err != nil {
			return err
		}
		DecodeICT(planes[0], planes[1], planes[2])
		return nil
	case KindCustom:
		if err := p.requireMatrix(len(planes)); err != nil {
			return err
		}
		c := Custom{Allocator: p.Allocator}
		return c.Decode(p.Matrix, n, planes, p.Signed)
	case KindReversible:
		return fmt.Errorf("%w: %v decodes int32 samples", ErrSampleType, p.Kind)
	}
	return fmt.Errorf("%w: %v", ErrUnknownKind, p.Kind)
}

// Norms returns the basis norm of each of numComps components. Components
// the transform leaves untouched get 1.
func (p Params) Norms(numComps int) ([]float64, error) {
	if numComps < 0 {
		return nil, fmt.Errorf("%w: negative component count %d", ErrComponentCount, numComps)
	}
	norms := make([]float64, numComps)
	for i := range norms {
		norms[i] = 1
	}
	switch p.Kind {
	case KindNone:
	case KindReversible, KindIrreversible:
		if err := p.requireFixed(numComps); err != nil {
			return nil, err
		}
		table := reversibleNorms
		if p.Kind == KindIrreversible {
			table = irreversibleNorms
		}
		copy(norms, table[:])
	case KindCustom:
		if err := p.requireMatrix(numComps); err != nil {
			return nil, err
		}
		CalculateNorms(norms, DecodeMatrix(p.Matrix, numComps*numComps))
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, p.Kind)
	}
	return norms, nil
}

func (p Params) requireFixed(numComps int) error {
	if numComps < 3 {
		return fmt.Errorf("%w: %v needs 3 components, have %d", ErrComponentCount, p.Kind, numComps)
	}
	return nil
}

func (p Params) requireMatrix(numComps int) error {
	if want := 4 * numComps * numComps; len(p.Matrix) != want {
		return fmt.Errorf("%w: %d bytes for %d components, want %d",
			ErrMatrixSize, len(p.Matrix), numComps, want)
	}
	return nil
}

func planeLen[T int32 | float32](planes [][]T) (int, error) {
	if len(planes) == 0 {
		return 0, nil
	}
	n := len(planes[0])
	for i, pl := range planes[1:] {
		if len(pl) != n {
			return 0, fmt.Errorf("%w: plane %d has %d samples, plane 0 has %d",
				ErrPlaneLength, i+1, len(pl), n)
		}
	}
	return n, nil
}
