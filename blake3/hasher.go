package blake3

import "hash"

// Hasher is a streaming BLAKE3 hasher with extendable output, supporting
// the three BLAKE3 modes: plain hash, keyed MAC, and key derivation.
//
// Finalize and FinalizeXOF are read-only: they do not mutate the Hasher's
// state, so further Write calls after a Finalize are a fully supported
// way of taking incremental digests of a growing input, not an accident
// of the implementation (spec.md §3, §9).
type Hasher struct {
	chunkState chunkState
	keyWords   [8]uint32
	acc        accumulator
	flags      uint32
}

var _ hash.Hash = (*Hasher)(nil)

func newHasher(keyWords [8]uint32, flags uint32) *Hasher {
	return &Hasher{
		chunkState: newChunkState(keyWords, 0, flags),
		keyWords:   keyWords,
		acc:        newAccumulator(keyWords, flags),
		flags:      flags,
	}
}

// New constructs a Hasher for the standard BLAKE3 hash function.
func New() *Hasher {
	return newHasher(iv, 0)
}

// NewKeyed constructs a Hasher for the keyed BLAKE3 hash function. It
// fails with ErrInvalidKeyLength if key is not exactly KeyLen bytes.
func NewKeyed(key []byte) (*Hasher, error) {
	if len(key) != KeyLen {
		return nil, ErrInvalidKeyLength
	}
	return newHasher(keyWordsFromBytes(key), keyedHash), nil
}

// NewDeriveKey constructs a Hasher for the key-derivation function, given
// an arbitrary context string. The context is hashed with a dedicated
// DERIVE_KEY_CONTEXT-flagged Hasher; the resulting 32 bytes become the key
// words of the returned DERIVE_KEY_MATERIAL-flagged Hasher.
func NewDeriveKey(context string) *Hasher {
	contextHasher := newHasher(iv, deriveKeyContext)
	_, _ = contextHasher.Write([]byte(context))
	var contextKey [KeyLen]byte
	contextHasher.Finalize(contextKey[:])
	return newHasher(keyWordsFromBytes(contextKey[:]), deriveKeyMaterial)
}

// Write adds input to the hash state. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if h.chunkState.Len() == 0 && len(p) > ChunkLen {
			// At least one full chunk beyond the one we must leave open
			// (finalize needs a non-empty last chunk to apply ROOT to).
			fullChunks := (len(p) - 1) / ChunkLen
			if fullChunks > 0 {
				consumed, nextCounter := consumeFullChunks(p[:fullChunks*ChunkLen], h.keyWords, h.flags, h.chunkState.chunkCounter, &h.acc)
				p = p[consumed*ChunkLen:]
				h.chunkState = newChunkState(h.keyWords, nextCounter, h.flags)
				continue
			}
		}

		if h.chunkState.Len() == ChunkLen {
			chunkCV := h.chunkState.output().chainingValue()
			totalChunks := h.chunkState.chunkCounter + 1
			h.acc.add(chunkCV, totalChunks)
			h.chunkState = newChunkState(h.keyWords, totalChunks, h.flags)
		}

		want := ChunkLen - h.chunkState.Len()
		if want > len(p) {
			want = len(p)
		}
		h.chunkState.Update(p[:want])
		p = p[want:]
	}
	return n, nil
}

// Sum appends the OutLen-byte digest to b and returns the resulting slice,
// satisfying hash.Hash.
func (h *Hasher) Sum(b []byte) []byte {
	var out [OutLen]byte
	h.Finalize(out[:])
	return append(b, out[:]...)
}

// Reset clears the hash state, keeping the same key/flags configuration.
func (h *Hasher) Reset() {
	h.chunkState = newChunkState(h.keyWords, 0, h.flags)
	h.acc.reset()
}

// Size returns the default output size of BLAKE3.
func (h *Hasher) Size() int { return OutLen }

// BlockSize returns the block size of the underlying compression function.
func (h *Hasher) BlockSize() int { return BlockLen }

// rootSeed folds the open chunk state against the accumulator and returns
// the seed for the root compression, with ROOT not yet applied.
func (h *Hasher) rootSeed() output {
	return h.acc.finalizeOutput(h.chunkState.output())
}

// Finalize writes exactly len(out) output bytes derived from all Write
// calls so far. It never fails and does not mutate the Hasher.
func (h *Hasher) Finalize(out []byte) {
	reader := newOutputReader(h.rootSeed())
	_, _ = reader.Read(out)
}

// FinalizeTo writes exactly outLen output bytes into dst[:outLen]. It
// fails with ErrOutputBufferTooSmall if len(dst) < outLen.
func (h *Hasher) FinalizeTo(dst []byte, outLen int) error {
	if len(dst) < outLen {
		return ErrOutputBufferTooSmall
	}
	h.Finalize(dst[:outLen])
	return nil
}

// FinalizeXOF returns an OutputReader that streams the extendable output
// for all Write calls so far. Independent readers obtained from the same
// Hasher state produce the same stream (spec.md §8 invariant 3).
func (h *Hasher) FinalizeXOF() *OutputReader {
	return newOutputReader(h.rootSeed())
}

// Sum256 returns the 32-byte BLAKE3 hash of the current state.
func (h *Hasher) Sum256() [OutLen]byte {
	var out [OutLen]byte
	h.Finalize(out[:])
	return out
}
