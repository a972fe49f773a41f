// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

// symbol is the constraint on text symbol types handled by the core.
// The public entry points instantiate it at uint8, uint16, and int32;
// every recursion level below the top runs on int64 substring names.
type symbol interface {
	~uint8 | ~uint16 | ~int32 | ~int64
}

// computeSA runs the SA-IS pipeline over text, whose symbols must all lie in
// [0, numSyms). sa must be a zeroed buffer of exactly len(text) entries; on
// return it holds the suffix array. tmp must have at least numSyms entries;
// given 2*numSyms or more, symbol counts are cached across scans instead of
// recomputed.
//
// Each phase below makes one scan through sa. The sentinel is implicit: the
// suffix order is defined as if a symbol smaller than all others terminated
// the text, but no such symbol is materialized and sa indexes only the
// len(text) real suffixes.
func computeSA[S symbol](text []S, numSyms int, sa, tmp []int64) {
	// Sorting zero or one suffixes is easy.
	if len(text) == 0 {
		return
	}
	if len(text) == 1 {
		sa[0] = 0
		return
	}

	freq, bucket := carveCounts(tmp, numSyms)

	numLMS := placeLMS(text, sa, freq, bucket)
	if numLMS > 1 {
		induceSubL(text, sa, freq, bucket)
		induceSubS(text, sa, freq, bucket)
		lmsLengths(text, sa)
		maxID := assignIDs(text, sa, numLMS)
		if maxID < numLMS {
			// Some LMS substrings collide; the coarse order cannot
			// resolve their suffixes. Rename them into a reduced text
			// and solve that first.
			mapSubstrings(sa)
			recurse(sa, tmp, numLMS, maxID)
			unmapSubproblem(text, sa, numLMS)
		} else {
			// Every LMS substring is distinct, so the relative order of
			// two LMS suffixes is already decided by their leading
			// substrings. The substring order is the suffix order.
			copy(sa, sa[len(sa)-numLMS:])
		}
		expandLMS(text, sa, freq, bucket, numLMS)
	}
	induceL(text, sa, freq, bucket)
	induceS(text, sa, freq, bucket)

	// The scans above clobbered tmp; invalidate any cached counts so an
	// enclosing recursion level recomputes its own.
	tmp[0] = -1
}

// carveCounts splits tmp into the count cache and bucket cursor areas.
// With fewer than 2*numSyms entries there is no room for a cache and the
// counts are rebuilt from the text whenever a scan needs them.
func carveCounts(tmp []int64, numSyms int) (freq, bucket []int64) {
	if len(tmp) >= 2*numSyms {
		freq, bucket = tmp[:numSyms], tmp[numSyms:2*numSyms]
		freq[0] = -1 // not yet counted
	} else {
		freq, bucket = nil, tmp[:numSyms]
	}
	return freq, bucket
}

// recurse solves the reduced text packed into the top of sa by running the
// same pipeline on it, then leaves its suffix array in sa[:numLMS] for
// unmapSubproblem. Reduction can repeat many times over (each level is at
// most half its parent), and on adversarial inputs the level count grows
// with log of the input length, so the levels are managed on an explicit
// frame stack rather than the goroutine call stack.
func recurse(topSA, topTmp []int64, numLMS, maxID int) {
	type frame struct {
		text, sa, tmp []int64
		numSyms       int
		numLMS        int
	}
	var stack []frame

	text, sa, tmp := carveSub(topSA, topTmp, numLMS, maxID)
	numSyms := maxID

	for {
		// Forward half of the pipeline for the current level. Mirrors
		// computeSA except that hitting a further reduction suspends
		// this level on the stack instead of recursing.
		descend := false
		if len(text) == 1 {
			sa[0] = 0
		} else if len(text) > 1 {
			freq, bucket := carveCounts(tmp, numSyms)
			numLMS := placeLMS(text, sa, freq, bucket)
			if numLMS > 1 {
				induceSubL(text, sa, freq, bucket)
				induceSubS(text, sa, freq, bucket)
				lmsLengths(text, sa)
				maxID := assignIDs(text, sa, numLMS)
				if maxID < numLMS {
					mapSubstrings(sa)
					stack = append(stack, frame{text, sa, tmp, numSyms, numLMS})
					text, sa, tmp = carveSub(sa, tmp, numLMS, maxID)
					numSyms = maxID
					descend = true
				} else {
					copy(sa, sa[len(sa)-numLMS:])
					expandLMS(text, sa, freq, bucket, numLMS)
					induceL(text, sa, freq, bucket)
					induceS(text, sa, freq, bucket)
					tmp[0] = -1
				}
			} else {
				induceL(text, sa, freq, bucket)
				induceS(text, sa, freq, bucket)
				tmp[0] = -1
			}
		}
		if descend {
			continue
		}

		// The current level is solved. Its result completes the
		// suspended parent, whose completion completes the grandparent,
		// and so on back up to the caller.
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			text, sa, tmp, numSyms = f.text, f.sa, f.tmp, f.numSyms

			freq, bucket := carveCounts(tmp, numSyms)
			unmapSubproblem(text, sa, f.numLMS)
			expandLMS(text, sa, freq, bucket, f.numLMS)
			induceL(text, sa, freq, bucket)
			induceS(text, sa, freq, bucket)
			tmp[0] = -1
		}
		return
	}
}

// carveSub carves a reduction's working areas out of its parent's suffix
// array: the reduced text sits packed at the top, its suffix array goes at
// the bottom, and the middle is a scratch candidate. The reduced length is
// at most half the parent's, so top and bottom never overlap.
//
// Scratch selection prefers the larger of the inherited buffer and the
// middle region. On typical text the reduction is well under a third of the
// parent, leaving a middle large enough that no level ever allocates; only
// adversarial near-alternating inputs reach the allocation fallback, and the
// size chosen there, max(maxID, numLMS/2), is enough for every deeper level
// as well, so the fallback runs at most once per construction.
func carveSub(sa, oldTmp []int64, numLMS, maxID int) (text, dst, tmp []int64) {
	dst, mid, text := sa[:numLMS], sa[numLMS:len(sa)-numLMS], sa[len(sa)-numLMS:]

	tmp = oldTmp
	if len(tmp) < len(mid) {
		tmp = mid
	}
	if len(tmp) < numLMS {
		n := maxID
		if n < numLMS/2 {
			n = numLMS / 2
		}
		tmp = make([]int64, n)
	}

	// The pipeline needs its output area zeroed, and dst is mid-recursion
	// garbage rather than a fresh buffer.
	clear(dst)
	return text, dst, tmp
}
