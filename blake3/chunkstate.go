package blake3

// output captures the five inputs a final compression needs: the input
// chaining value, the (possibly zero-padded) block words, the counter, the
// true block length, and the flags. It is the "output seed" described in
// spec.md §4.5 — everything needed to later apply ROOT and compress.
type output struct {
	inputChainingValue [8]uint32
	blockWords         [16]uint32
	counter            uint64
	blockLen           uint32
	flags              uint32
}

// chainingValue compresses the seed without ROOT and returns the 8-word CV.
func (o output) chainingValue() [8]uint32 {
	return firstEightWords(compress(&o.inputChainingValue, &o.blockWords, o.counter, o.blockLen, o.flags))
}

// chunkState accumulates up to ChunkLen bytes into a chunk, compressing
// each 64-byte block as the buffer fills.
type chunkState struct {
	chainingValue    [8]uint32
	chunkCounter     uint64
	block            [BlockLen]byte
	blockLen         uint8
	blocksCompressed uint8
	flags            uint32
}

// newChunkState initializes a chunk's chaining value to the hasher's key
// words.
func newChunkState(keyWords [8]uint32, chunkCounter uint64, flags uint32) chunkState {
	return chunkState{
		chainingValue: keyWords,
		chunkCounter:  chunkCounter,
		flags:         flags,
	}
}

// Len reports the total number of bytes ingested into this chunk so far,
// 0..ChunkLen.
func (c *chunkState) Len() int {
	return BlockLen*int(c.blocksCompressed) + int(c.blockLen)
}

func (c *chunkState) startFlag() uint32 {
	if c.blocksCompressed == 0 {
		return chunkStart
	}
	return 0
}

// Update appends input to the chunk, compressing the buffer in place each
// time it fills. Callers must not let input cross a ChunkLen boundary in a
// single call; the Hasher splits at chunk boundaries before calling this.
func (c *chunkState) Update(input []byte) {
	for len(input) > 0 {
		if c.blockLen == BlockLen {
			var blockWords [16]uint32
			loadWords(&blockWords, c.block[:])
			c.chainingValue = firstEightWords(compress(
				&c.chainingValue,
				&blockWords,
				c.chunkCounter,
				BlockLen,
				c.flags|c.startFlag(),
			))
			c.blocksCompressed++
			c.block = [BlockLen]byte{}
			c.blockLen = 0
		}

		want := BlockLen - int(c.blockLen)
		if want > len(input) {
			want = len(input)
		}
		copy(c.block[int(c.blockLen):], input[:want])
		c.blockLen += uint8(want)
		input = input[want:]
	}
}

// output returns the final-block seed for this chunk: flags include
// CHUNK_END (and CHUNK_START, if this chunk never reached a second block).
// The caller applies ROOT on top when this chunk turns out to be the whole
// input.
func (c *chunkState) output() output {
	var blockWords [16]uint32
	loadWords(&blockWords, c.block[:])
	return output{
		inputChainingValue: c.chainingValue,
		blockWords:         blockWords,
		counter:            c.chunkCounter,
		blockLen:           uint32(c.blockLen),
		flags:              c.flags | c.startFlag() | chunkEnd,
	}
}

// parentOutput builds the seed for a parent-node compression from two
// child chaining values.
func parentOutput(leftChildCV, rightChildCV, keyWords [8]uint32, flags uint32) output {
	var blockWords [16]uint32
	copy(blockWords[:8], leftChildCV[:])
	copy(blockWords[8:], rightChildCV[:])
	return output{
		inputChainingValue: keyWords,
		blockWords:         blockWords,
		counter:            0,
		blockLen:           BlockLen,
		flags:              parent | flags,
	}
}

func parentCV(leftChildCV, rightChildCV, keyWords [8]uint32, flags uint32) [8]uint32 {
	return parentOutput(leftChildCV, rightChildCV, keyWords, flags).chainingValue()
}

// chunkCVFull compresses a full ChunkLen-byte chunk, block by block, and
// returns its chaining value. Used by the scalar dispatch path.
func chunkCVFull(input []byte, keyWords [8]uint32, chunkCounter uint64, flags uint32) [8]uint32 {
	cv := keyWords
	var blockWords [16]uint32
	for block := 0; block < blocksPerChunk; block++ {
		loadWords(&blockWords, input[block*BlockLen:])
		blockFlags := flags
		if block == 0 {
			blockFlags |= chunkStart
		}
		if block == blocksPerChunk-1 {
			blockFlags |= chunkEnd
		}
		cv = firstEightWords(compress(&cv, &blockWords, chunkCounter, BlockLen, blockFlags))
	}
	return cv
}
