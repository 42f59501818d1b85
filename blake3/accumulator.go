package blake3

// accumulator is the online Merkle-tree CV stack described in spec.md §3/
// §4.4. Pushing the Nth chunk's chaining value merges completed subtrees
// on every trailing zero bit of N, leaving a stack whose depth always
// equals popcount(N).
type accumulator struct {
	stack    [maxStackDepth][8]uint32
	depth    uint8
	keyWords [8]uint32
	flags    uint32
}

func newAccumulator(keyWords [8]uint32, flags uint32) accumulator {
	return accumulator{keyWords: keyWords, flags: flags}
}

func (a *accumulator) push(cv [8]uint32) {
	a.stack[a.depth] = cv
	a.depth++
}

func (a *accumulator) pop() [8]uint32 {
	a.depth--
	return a.stack[a.depth]
}

// Depth reports the current stack depth. After N pushes through add, this
// equals bits.OnesCount64(N) (spec.md §8 invariant 4).
func (a *accumulator) Depth() int {
	return int(a.depth)
}

// add pushes a newly completed chunk's chaining value, merging with
// pending subtrees as dictated by the trailing zeros of totalChunks (the
// 1-indexed count of chunks pushed so far, including this one).
func (a *accumulator) add(newCV [8]uint32, totalChunks uint64) {
	for totalChunks&1 == 0 {
		newCV = parentCV(a.pop(), newCV, a.keyWords, a.flags)
		totalChunks >>= 1
	}
	a.push(newCV)
}

// reset clears the accumulator, keeping its key words and flags.
func (a *accumulator) reset() {
	a.depth = 0
}

// finalizeOutput folds chunkOutput (the seed for the chunk still open in
// the Hasher) against every pending subtree on the stack, top to bottom,
// and returns the seed for the root compression. The caller applies ROOT
// before compressing.
func (a *accumulator) finalizeOutput(chunkOutput output) output {
	out := chunkOutput
	for i := int(a.depth) - 1; i >= 0; i-- {
		out = parentOutput(a.stack[i], out.chainingValue(), a.keyWords, a.flags)
	}
	return out
}
