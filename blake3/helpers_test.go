package blake3

// patternBytes returns n bytes where byte i = i mod 251, the standard
// BLAKE3 test-vector input pattern (spec.md §8).
func patternBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i % 251)
	}
	return out
}
