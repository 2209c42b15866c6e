package textutil

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	// iterate the smaller map
	if len(b.tokens) < len(a.tokens) {
		a, b = b, a
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	sim := dot / (a.norm * b.norm)
	if sim > 1 {
		sim = 1
	}
	return sim
}

// ConsecutiveSimilarity returns the similarity of each fingerprint to the one
// before it. The result has len(fps)-1 entries.
func ConsecutiveSimilarity(fps []*Fingerprint) []float64 {
	if len(fps) < 2 {
		return nil
	}
	out := make([]float64, len(fps)-1)
	for i := 1; i < len(fps); i++ {
		out[i-1] = CosineSimilarity(fps[i-1], fps[i])
	}
	return out
}
