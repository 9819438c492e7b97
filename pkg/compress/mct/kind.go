package mct

import (
	"fmt"
	"strings"
)

// Kind selects the component transform signalled for a tile.
type Kind int

const (
	KindNone Kind = iota
	KindReversible
	KindIrreversible
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindReversible:
		return "reversible"
	case KindIrreversible:
		return "irreversible"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a transform name onto a Kind. Accepts the long names and
// the rct/ict abbreviations, case insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return KindNone, nil
	case "reversible", "rct":
		return KindReversible, nil
	case "irreversible", "ict":
		return KindIrreversible, nil
	case "custom", "matrix":
		return KindCustom, nil
	}
	return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// KindFromCOD derives the transform from the COD multiple component
// transformation byte and the wavelet filter of the tile: 0 is no
// transform, 1 is the RCT with the 5/3 filter or the ICT with the 9/7
// filter, 2 is a Part 2 array based (custom) transform.
func KindFromCOD(mct uint8, reversible bool) (Kind, error) {
	switch mct {
	case 0:
		return KindNone, nil
	case 1:
		if reversible {
			return KindReversible, nil
		}
		return KindIrreversible, nil
	case 2:
		return KindCustom, nil
	}
	return KindNone, fmt.Errorf("%w: COD transform byte %d", ErrUnknownKind, mct)
}
