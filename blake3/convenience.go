package blake3

// Sum256 returns the 32-byte BLAKE3 hash of data.
func Sum256(data []byte) [OutLen]byte {
	h := New()
	_, _ = h.Write(data)
	return h.Sum256()
}

// Sum writes an extended-length BLAKE3 hash of data into out.
func Sum(data []byte, out []byte) {
	h := New()
	_, _ = h.Write(data)
	h.Finalize(out)
}

// SumKeyed returns the 32-byte keyed BLAKE3 hash of data. It fails with
// ErrInvalidKeyLength if key is not exactly KeyLen bytes.
func SumKeyed(key []byte, data []byte) ([OutLen]byte, error) {
	h, err := NewKeyed(key)
	if err != nil {
		return [OutLen]byte{}, err
	}
	_, _ = h.Write(data)
	return h.Sum256(), nil
}

// DeriveKey returns a derived key of length len(out) using the given
// context string.
func DeriveKey(context string, out []byte) {
	h := NewDeriveKey(context)
	h.Finalize(out)
}
