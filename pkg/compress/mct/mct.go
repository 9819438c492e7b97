// Package mct implements the JPEG 2000 multiple component transforms as
// specified in ITU-T Rec. T.800 Annex G and T.801 (Part 2) multi-component
// coding:
//   - the reversible component transform (RCT), bit exact in integers
//   - the irreversible component transform (ICT), fixed point forward and
//     floating point inverse
//   - custom N x N matrix transforms with externally supplied coefficients
//   - the basis norms the quantizer uses to weight per-component distortion
//
// All transforms rewrite caller owned sample planes in place and keep no
// state between calls, so disjoint tiles can be processed concurrently.
package mct

import "errors"

// Common errors
var (
	ErrScratchAlloc   = errors.New("scratch allocation failed")
	ErrUnknownKind    = errors.New("unknown component transform")
	ErrComponentCount = errors.New("component count not supported by transform")
	ErrSampleType     = errors.New("sample type does not match transform")
	ErrMatrixSize     = errors.New("matrix size does not match component count")
	ErrPlaneLength    = errors.New("component planes differ in length")
)
