package blake3

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPowerOfTwoBoundaries exercises every Merkle-stack depth from 2^0 to
// 2^20 bytes: at each boundary, writing byte-by-byte must match writing the
// whole buffer in one call.
func TestPowerOfTwoBoundaries(t *testing.T) {
	for shift := 0; shift <= 20; shift++ {
		n := 1 << shift
		t.Run(fmt.Sprintf("2^%d", shift), func(t *testing.T) {
			data := patternBytes(n)

			whole := New()
			_, _ = whole.Write(data)
			var wholeDigest [OutLen]byte
			whole.Finalize(wholeDigest[:])

			bytewise := New()
			for _, b := range data {
				_, _ = bytewise.Write([]byte{b})
			}
			var byteDigest [OutLen]byte
			bytewise.Finalize(byteDigest[:])

			require.Equal(t, wholeDigest, byteDigest)
		})
	}
}

// TestOfficialVectorLengthsAreSelfConsistent checks, for every length named
// by the official BLAKE3 test vector suite (spec.md §8), that splitting the
// write at an arbitrary interior point never changes the digest. This does
// not substitute for checking against the published digests (see
// TestKnownAnswerVectors for the lengths with digests reproduced directly),
// but it catches any boundary-condition regression across the whole length
// set cheaply.
func TestOfficialVectorLengthsAreSelfConsistent(t *testing.T) {
	lengths := []int{
		0, 1, 2, 3, 4, 5, 6, 7, 8,
		63, 64, 65,
		127, 128, 129,
		1023, 1024, 1025,
		2048, 2049,
		3072, 3073,
		4096, 4097,
		5120, 5121,
		6144, 6145,
		7168, 7169,
		8192, 8193,
		16384, 31744, 102400,
	}

	for _, n := range lengths {
		n := n
		t.Run(fmt.Sprintf("len=%d", n), func(t *testing.T) {
			data := patternBytes(n)

			whole := New()
			_, _ = whole.Write(data)
			var want [OutLen]byte
			whole.Finalize(want[:])

			split := n / 2
			h := New()
			_, _ = h.Write(data[:split])
			_, _ = h.Write(data[split:])
			var got [OutLen]byte
			h.Finalize(got[:])

			require.Equal(t, want, got)
		})
	}
}
