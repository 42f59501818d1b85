package blake3

// Output and key sizes, in bytes.
const (
	OutLen   = 32
	KeyLen   = 32
	BlockLen = 64
	ChunkLen = 1024

	blocksPerChunk = ChunkLen / BlockLen
	maxStackDepth  = 54 // log2(2^54 chunks = 2^64 bytes), a physical bound, not configurable.
)

// Domain-separation flag bits, per the BLAKE3 specification.
const (
	chunkStart        uint32 = 1 << 0
	chunkEnd          uint32 = 1 << 1
	parent            uint32 = 1 << 2
	root              uint32 = 1 << 3
	keyedHash         uint32 = 1 << 4
	deriveKeyContext  uint32 = 1 << 5
	deriveKeyMaterial uint32 = 1 << 6
)

// iv is the BLAKE3 initialization vector (the SHA-256 IV).
var iv = [8]uint32{
	0x6A09E667, 0xBB67AE85, 0x3C6EF372, 0xA54FF53A,
	0x510E527F, 0x9B05688C, 0x1F83D9AB, 0x5BE0CD19,
}

// msgPermutation is applied to the message words between rounds.
var msgPermutation = [16]uint8{2, 6, 3, 10, 7, 0, 4, 13, 1, 11, 12, 5, 9, 14, 15, 8}
