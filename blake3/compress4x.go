package blake3

import "math/bits"

// lanes4 holds one 32-bit state word across four independent compressions,
// lane k belonging to tuple k. This is the pure-Go substitute for a
// 128-bit SIMD register packing 4x32-bit lanes (see SPEC_FULL.md §4.2 for
// why no actual SIMD intrinsics or assembly is used).
type lanes4 [4]uint32

func (l lanes4) add(r lanes4) lanes4 {
	var out lanes4
	for i := range out {
		out[i] = l[i] + r[i]
	}
	return out
}

func (l lanes4) xor(r lanes4) lanes4 {
	var out lanes4
	for i := range out {
		out[i] = l[i] ^ r[i]
	}
	return out
}

func (l lanes4) rotr(n int) lanes4 {
	var out lanes4
	for i := range out {
		out[i] = bits.RotateLeft32(l[i], -n)
	}
	return out
}

// g4 is the lane-wise quarter round: the same arithmetic as g, applied to
// all four lanes simultaneously.
func g4(state *[16]lanes4, a, b, c, d int, mx, my lanes4) {
	state[a] = state[a].add(state[b]).add(mx)
	state[d] = state[d].xor(state[a]).rotr(16)
	state[c] = state[c].add(state[d])
	state[b] = state[b].xor(state[c]).rotr(12)
	state[a] = state[a].add(state[b]).add(my)
	state[d] = state[d].xor(state[a]).rotr(8)
	state[c] = state[c].add(state[d])
	state[b] = state[b].xor(state[c]).rotr(7)
}

func round4(state *[16]lanes4, m *[16]lanes4) {
	g4(state, 0, 4, 8, 12, m[0], m[1])
	g4(state, 1, 5, 9, 13, m[2], m[3])
	g4(state, 2, 6, 10, 14, m[4], m[5])
	g4(state, 3, 7, 11, 15, m[6], m[7])

	g4(state, 0, 5, 10, 15, m[8], m[9])
	g4(state, 1, 6, 11, 12, m[10], m[11])
	g4(state, 2, 7, 8, 13, m[12], m[13])
	g4(state, 3, 4, 9, 14, m[14], m[15])
}

func permute4(m *[16]lanes4) {
	var permuted [16]lanes4
	for i := 0; i < 16; i++ {
		permuted[i] = m[msgPermutation[i]]
	}
	*m = permuted
}

// compress4x runs the same 7-round compression as compress on four
// independent tuples at once, one tuple per lane. It is bit-exact with
// four sequential calls to compress by construction: every lane performs
// identical scalar arithmetic, merely interleaved.
func compress4x(
	cvs *[4][8]uint32,
	blocks *[4][16]uint32,
	counters [4]uint64,
	blockLens [4]uint32,
	flagsPerLane [4]uint32,
) [4][16]uint32 {
	var state [16]lanes4
	for w := 0; w < 8; w++ {
		for lane := 0; lane < 4; lane++ {
			state[w][lane] = cvs[lane][w]
		}
	}
	for lane := 0; lane < 4; lane++ {
		state[8][lane] = iv[0]
		state[9][lane] = iv[1]
		state[10][lane] = iv[2]
		state[11][lane] = iv[3]
		state[12][lane] = uint32(counters[lane])
		state[13][lane] = uint32(counters[lane] >> 32)
		state[14][lane] = blockLens[lane]
		state[15][lane] = flagsPerLane[lane]
	}

	var m [16]lanes4
	for w := 0; w < 16; w++ {
		for lane := 0; lane < 4; lane++ {
			m[w][lane] = blocks[lane][w]
		}
	}

	round4(&state, &m) // 1
	permute4(&m)
	round4(&state, &m) // 2
	permute4(&m)
	round4(&state, &m) // 3
	permute4(&m)
	round4(&state, &m) // 4
	permute4(&m)
	round4(&state, &m) // 5
	permute4(&m)
	round4(&state, &m) // 6
	permute4(&m)
	round4(&state, &m) // 7

	var out [4][16]uint32
	for lane := 0; lane < 4; lane++ {
		for i := 0; i < 8; i++ {
			out[lane][i] = state[i][lane] ^ state[i+8][lane]
			out[lane][i+8] = state[i+8][lane] ^ cvs[lane][i]
		}
	}
	return out
}

// chunkCVs4x compresses 4 full, independent chunks in parallel
// lanes and returns their chaining values. All 4 chunks share keyWords and
// flags; only the chunk counter differs across lanes.
func chunkCVs4x(chunks [4][]byte, keyWords [8]uint32, baseCounter uint64, flags uint32) [4][8]uint32 {
	cvs := [4][8]uint32{keyWords, keyWords, keyWords, keyWords}
	var counters [4]uint64
	for lane := 0; lane < 4; lane++ {
		counters[lane] = baseCounter + uint64(lane)
	}

	for block := 0; block < blocksPerChunk; block++ {
		var blocks [4][16]uint32
		var flagsPerLane [4]uint32
		for lane := 0; lane < 4; lane++ {
			loadWords(&blocks[lane], chunks[lane][block*BlockLen:])
			blockFlags := flags
			if block == 0 {
				blockFlags |= chunkStart
			}
			if block == blocksPerChunk-1 {
				blockFlags |= chunkEnd
			}
			flagsPerLane[lane] = blockFlags
		}
		outs := compress4x(&cvs, &blocks, counters, [4]uint32{BlockLen, BlockLen, BlockLen, BlockLen}, flagsPerLane)
		for lane := 0; lane < 4; lane++ {
			cvs[lane] = firstEightWords(outs[lane])
		}
	}
	return cvs
}
