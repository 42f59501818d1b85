package blake3

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewKeyedRejectsWrongLength(t *testing.T) {
	_, err := NewKeyed(make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidKeyLength)

	_, err = NewKeyed(make([]byte, 33))
	require.ErrorIs(t, err, ErrInvalidKeyLength)

	h, err := NewKeyed(make([]byte, KeyLen))
	require.NoError(t, err)
	require.NotNil(t, h)
}

func TestFinalizeToRejectsShortBuffer(t *testing.T) {
	h := New()
	_, _ = h.Write([]byte("hello"))
	err := h.FinalizeTo(make([]byte, 16), 32)
	require.ErrorIs(t, err, ErrOutputBufferTooSmall)

	dst := make([]byte, 32)
	require.NoError(t, h.FinalizeTo(dst, 32))
}

// TestWriteSplitIsAssociative is invariant 2 from spec.md §8: the digest is
// independent of how input bytes are grouped across Write calls.
func TestWriteSplitIsAssociative(t *testing.T) {
	data := patternBytes(10000)

	whole := New()
	_, _ = whole.Write(data)
	var wholeDigest [OutLen]byte
	whole.Finalize(wholeDigest[:])

	splits := [][]int{
		{1, 1, 9998},
		{4096, 4096, 1808},
		{1023, 1, 1024, 7952},
		{10000},
	}

	for _, plan := range splits {
		h := New()
		offset := 0
		for _, step := range plan {
			_, _ = h.Write(data[offset : offset+step])
			offset += step
		}
		require.Equal(t, offset, len(data))

		var digest [OutLen]byte
		h.Finalize(digest[:])
		require.Equal(t, wholeDigest, digest, "plan %v diverged", plan)
	}
}

// TestFinalizeDoesNotMutateState exercises the documented contract that
// Write calls after Finalize keep accumulating into the same hash.
func TestFinalizeDoesNotMutateState(t *testing.T) {
	data := patternBytes(2048)

	h := New()
	_, _ = h.Write(data[:1024])
	var first [OutLen]byte
	h.Finalize(first[:])

	_, _ = h.Write(data[1024:])
	var second [OutLen]byte
	h.Finalize(second[:])

	reference := New()
	_, _ = reference.Write(data)
	var want [OutLen]byte
	reference.Finalize(want[:])

	require.Equal(t, want, second)
	require.NotEqual(t, first, second)
}

func TestResetReturnsToEmptyState(t *testing.T) {
	h := New()
	_, _ = h.Write(patternBytes(5000))
	h.Reset()

	var got [OutLen]byte
	h.Finalize(got[:])

	empty := New()
	var want [OutLen]byte
	empty.Finalize(want[:])

	require.Equal(t, want, got)
}

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// TestKnownAnswerVectors reproduces the concrete known-answer digests from
// spec.md §8's scenario table.
func TestKnownAnswerVectors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		got := Sum256(nil)
		want := mustDecodeHex(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262")
		require.Equal(t, want, got[:])
	})

	t.Run("one byte", func(t *testing.T) {
		got := Sum256([]byte{0x00})
		want := mustDecodeHex(t, "2d3adedff11b61f14c886e35afa036736dcd87a74d27b5c1510225d0f592e213")
		require.Equal(t, want, got[:])
	})

	t.Run("1024 byte pattern, hash", func(t *testing.T) {
		got := Sum256(patternBytes(1024))
		want := mustDecodeHex(t, "42214739f095a406f3fc83deb889744ac00df831c10daa55189b5d121c855af7")
		require.Equal(t, want, got[:])
	})

	t.Run("1024 byte pattern, keyed", func(t *testing.T) {
		key := []byte("whats the Elvish word for friend")[:KeyLen]
		got, err := SumKeyed(key, patternBytes(1024))
		require.NoError(t, err)
		want := mustDecodeHex(t, "9bc2e5efdaddd7fc3145e3340adf7ae89d65f71b7113e7ae45ff2ee5fb65f44b")
		require.Equal(t, want, got[:])
	})

	t.Run("1024 byte pattern, derive_key", func(t *testing.T) {
		h := NewDeriveKey("BLAKE3 2019-12-27 16:29:52 test vectors context")
		_, _ = h.Write(patternBytes(1024))
		got := h.Sum256()
		want := mustDecodeHex(t, "e4b3fdedf3b67c4c3388a39e88dfb97a5e63b72ed9a55bb5e8a2f9c52b25a9ca")
		require.Equal(t, want, got[:])
	})

	t.Run("8192 byte pattern, XOF first 32 bytes", func(t *testing.T) {
		h := New()
		_, _ = h.Write(patternBytes(8192))
		out := make([]byte, 131)
		reader := h.FinalizeXOF()
		n, err := reader.Read(out)
		require.NoError(t, err)
		require.Equal(t, 131, n)
		want := mustDecodeHex(t, "683aaa40c8e9affa3f2b5abe0b12e30e34bca6f1b45c95a37f50d17cc5d1b5f7")
		require.Equal(t, want, out[:32])
	})
}
