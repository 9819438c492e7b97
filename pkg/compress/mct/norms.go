package mct

import "math"

// Norms of the basis functions of the fixed transforms, per output component.
var (
	reversibleNorms   = [3]float64{1.732, .8292, .8292}
	irreversibleNorms = [3]float64{1.732, 1.805, 1.573}
)

// ReversibleNorms returns the basis norms of the RCT.
func ReversibleNorms() [3]float64 { return reversibleNorms }

// IrreversibleNorms returns the basis norms of the ICT.
func IrreversibleNorms() [3]float64 { return irreversibleNorms }

// ReversibleNorm returns the RCT basis norm of component comp (0..2).
func ReversibleNorm(comp int) float64 { return reversibleNorms[comp] }

// IrreversibleNorm returns the ICT basis norm of component comp (0..2).
func IrreversibleNorm(comp int) float64 { return irreversibleNorms[comp] }

// CalculateNorms writes the L2 norm of every column of the len(out) x len(out)
// row-major matrix into out. Squares are summed in double precision.
func CalculateNorms(out []float64, matrix []float32) {
	nc := len(out)
	for i := range out {
		var sum float64
		for idx := i; idx < nc*nc; idx += nc {
			v := float64(matrix[idx])
			sum += v * v
		}
		out[i] = math.Sqrt(sum)
	}
}
