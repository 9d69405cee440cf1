package hymnal

import "math"

// Cosine returns the cosine similarity of two vectors in [-1, 1]. Vectors of
// different lengths or zero magnitude score 0 rather than erroring; a hymn
// without an embedding simply cannot outrank one with a real score.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
