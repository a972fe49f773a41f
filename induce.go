// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

// Suffix classification follows the usual SA-IS definition:
//
//	- position len(text), the implicit sentinel, is S-type;
//	- position i is S-type if text[i] < text[i+1], or if
//	  text[i] == text[i+1] and i+1 is S-type;
//	- position i is L-type otherwise.
//
// An LMS (leftmost-S) position is an S-type position whose left neighbor is
// L-type. No scan below materializes the classification: each one walks the
// text backward keeping the type of the position to its right in a single
// boolean, which the next comparison either flips or confirms. This
// recomputed-on-the-fly form of the backward classification pass appears in
// several functions; the loop shape is kept identical in all of them.

// placeLMS drops the index of every LMS position into the tail of its
// symbol's bucket, scanning the text backward. This leaves the LMS substring
// end markers coarsely ordered, grouped by leading symbol only, ready for
// refinement by induceSubL and induceSubS. Returns the number of LMS
// positions.
//
// The final LMS substring ends at the sentinel, which has no bucket; callers
// treat the missing entry as an implicit sa[-1] == len(text). Since every
// LMS index is >= 1, a zero slot in sa reliably means "empty" through the
// refinement scans.
func placeLMS[S symbol](text []S, sa []int64, freq, bucket []int64) int {
	bucketTails(text, freq, bucket)

	numLMS := 0
	lastB := int64(-1)

	// Backward classification scan; c0, c1 hold text[i], text[i+1].
	// The sentinel position is S-type by definition but has no bucket
	// slot, so the scan starts as if it were L-type.
	c0, c1, isTypeS := S(0), S(0), false
	for i := len(text) - 1; i >= 0; i-- {
		c0, c1 = text[i], c0
		if c0 < c1 {
			isTypeS = true
		} else if c0 > c1 && isTypeS {
			isTypeS = false

			// i+1 is an LMS position; bucket it.
			b := bucket[c1] - 1
			bucket[c1] = b
			sa[b] = int64(i + 1)
			lastB = b
			numLMS++
		}
	}

	// The refinement scans want each entry to mark the end of the previous
	// LMS substring. Starts and ends coincide except at the edges: the
	// sentinel end has no slot (handled by the implicit entry above), and
	// the leftmost start ends nothing, so it is cleared. With numLMS <= 1
	// the refinement is skipped entirely and the entry must stay.
	if numLMS > 1 {
		sa[lastB] = 0
	}
	return numLMS
}

// induceSubL inserts the L-type positions of every LMS substring into sa,
// given the coarse placement from placeLMS. Scanning left to right, each
// nonempty sa[i] = j is correctly ordered relative to the other entries
// seen so far, and j-1 is known L-type, so placing j-1 at its bucket head
// keeps the order; the placement always lands ahead of the scan. A j-1
// whose own predecessor is S-type is recorded negated for induceSubS
// instead of processed. Processed slots are cleared, so on return sa holds
// exactly the leftmost L-type position of each LMS substring.
//
// The array thus serves simultaneously as input, output, and work queue.
func induceSubL[S symbol](text []S, sa []int64, freq, bucket []int64) {
	bucketHeads(text, freq, bucket)

	// Seed the implicit entry sa[-1] == len(text) left out by placeLMS;
	// its predecessor len(text)-1 is L-type (it precedes the sentinel).
	k := len(text) - 1
	c0, c1 := text[k-1], text[k]
	if c0 < c1 {
		k = -k
	}

	// b caches the cursor of the bucket most recently written, written
	// back only when the bucket changes. Suffixes arrive nearly grouped
	// by symbol, so the cache is effective.
	cB := c1
	b := bucket[cB]
	sa[b] = int64(k)
	b++

	for i := 0; i < len(sa); i++ {
		j := int(sa[i])
		if j == 0 {
			// Skip empty entry.
			continue
		}
		if j < 0 {
			// Leave discovered S-type predecessor for induceSubS.
			sa[i] = int64(-j)
			continue
		}
		sa[i] = 0

		// j-1 is L-type; place it. Negate if j-2 is S-type, marking it
		// as the leftmost L of its substring.
		k := j - 1
		c0, c1 := text[k-1], text[k]
		if c0 < c1 {
			k = -k
		}

		if cB != c1 {
			bucket[cB] = b
			cB = c1
			b = bucket[cB]
		}
		sa[b] = int64(k)
		b++
	}
}

// induceSubS mirrors induceSubL right to left for the S-type positions.
// On entry sa holds the leftmost L-type position of each LMS substring; on
// return the top numLMS slots of sa hold the LMS positions themselves,
// sorted by their LMS substring, and everything below is zero. Discovered
// LMS positions (entries whose predecessor is L-type) are compacted into the
// top as the scan passes them.
func induceSubS[S symbol](text []S, sa []int64, freq, bucket []int64) {
	bucketTails(text, freq, bucket)

	cB := S(0)
	b := bucket[cB]

	top := len(sa)
	for i := len(sa) - 1; i >= 0; i-- {
		j := int(sa[i])
		if j == 0 {
			// Skip empty entry.
			continue
		}
		sa[i] = 0
		if j < 0 {
			// An LMS position; compact it into the top of sa.
			top--
			sa[top] = int64(-j)
			continue
		}

		// j-1 is S-type; place it. Negate if j-2 is L-type, making j-1
		// itself an LMS position.
		k := j - 1
		c1 := text[k]
		c0 := text[k-1]
		if c0 > c1 {
			k = -k
		}

		if cB != c1 {
			bucket[cB] = b
			cB = c1
			b = bucket[cB]
		}
		b--
		sa[b] = int64(k)
	}
}

// expandLMS spreads the exactly sorted LMS positions in sa[:numLMS] into the
// tails of their buckets, zeroing every other slot. This seeds the final
// induction with exact LMS placement, unlike the coarse seeding of placeLMS.
func expandLMS[S symbol](text []S, sa []int64, freq, bucket []int64, numLMS int) {
	bucketTails(text, freq, bucket)

	// Walk sa backward tracking the destination of the next (rightmost
	// unplaced) LMS entry; slots in between hold dead values and are
	// zeroed. Destinations descend, so one backward pass suffices.
	x := numLMS - 1
	saX := sa[x]
	c := text[saX]
	b := bucket[c] - 1
	bucket[c] = b

	for i := len(sa) - 1; i >= 0; i-- {
		if int64(i) != b {
			sa[i] = 0
			continue
		}
		sa[i] = saX

		if x > 0 {
			x--
			saX = sa[x]
			c = text[saX]
			b = bucket[c] - 1
			bucket[c] = b
		}
	}
}

// induceL is the first of the two final induction passes. Scanning left to
// right, the rank of every L-type suffix is derived from its already placed
// right-neighbor suffix, exactly as in induceSubL, except that nothing is
// cleared: every entry is final. Leftmost-L entries are left negated to
// queue them for induceS.
//
// From here on a zero in sa may be the real suffix 0, not an empty slot;
// the k > 0 guards below keep suffix 0 from being "extended" leftward.
func induceL[S symbol](text []S, sa []int64, freq, bucket []int64) {
	bucketHeads(text, freq, bucket)

	// Implicit entry sa[-1] == len(text), as in induceSubL.
	k := len(text) - 1
	c0, c1 := text[k-1], text[k]
	if c0 < c1 {
		k = -k
	}

	cB := c1
	b := bucket[cB]
	sa[b] = int64(k)
	b++

	for i := 0; i < len(sa); i++ {
		j := int(sa[i])
		if j <= 0 {
			// Skip empty or queued-for-induceS entry.
			continue
		}

		k := j - 1
		c1 := text[k]
		if k > 0 {
			if c0 := text[k-1]; c0 < c1 {
				k = -k
			}
		}

		if cB != c1 {
			bucket[cB] = b
			cB = c1
			b = bucket[cB]
		}
		sa[b] = int64(k)
		b++
	}
}

// induceS completes the suffix array: scanning right to left, it consumes
// the entries induceL queued (negated), restores them, and places every
// S-type suffix from its already placed right neighbor.
func induceS[S symbol](text []S, sa []int64, freq, bucket []int64) {
	bucketTails(text, freq, bucket)

	cB := S(0)
	b := bucket[cB]

	for i := len(sa) - 1; i >= 0; i-- {
		j := int(sa[i])
		if j >= 0 {
			// Skip non-queued entry; every slot is occupied by now, and
			// a zero is the real suffix 0.
			continue
		}
		j = -j
		sa[i] = int64(j)

		k := j - 1
		c1 := text[k]
		if k > 0 {
			if c0 := text[k-1]; c0 <= c1 {
				k = -k
			}
		}

		if cB != c1 {
			bucket[cB] = b
			cB = c1
			b = bucket[cB]
		}
		b--
		sa[b] = int64(k)
	}
}
