package blake3

import "encoding/binary"

// loadWords decodes a 64-byte little-endian block into 16 words. Callers
// guarantee len(b) >= BlockLen; a short final block is zero-padded by the
// caller before reaching here.
func loadWords(dst *[16]uint32, b []byte) {
	_ = b[BlockLen-1]
	for i := 0; i < 16; i++ {
		dst[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
}

// keyWordsFromBytes decodes a 32-byte little-endian key into 8 words.
func keyWordsFromBytes(key []byte) [8]uint32 {
	_ = key[KeyLen-1]
	var words [8]uint32
	for i := 0; i < 8; i++ {
		words[i] = binary.LittleEndian.Uint32(key[i*4:])
	}
	return words
}

// storeWords encodes n bytes (n <= 64) of the 16-word state into dst,
// little-endian, stopping as soon as dst is exhausted.
func storeWords(dst []byte, words [16]uint32) {
	for i := 0; i < 16 && len(dst) > 0; i++ {
		if len(dst) >= 4 {
			binary.LittleEndian.PutUint32(dst, words[i])
			dst = dst[4:]
			continue
		}
		var tmp [4]byte
		binary.LittleEndian.PutUint32(tmp[:], words[i])
		copy(dst, tmp[:len(dst)])
		return
	}
}
