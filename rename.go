// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

// The renaming phase turns LMS substrings into single integer names so that
// the unresolved part of the problem, ordering equal LMS substrings by what
// follows them, becomes an ordinary suffix array problem over a text of at
// most half the length.
//
// Two LMS substrings are equal iff they have the same length and the same
// symbols. The S/L labels at interior positions need no comparison of their
// own: equal symbol content between matching LMS boundaries forces equal
// labels.

// lmsLengths records the length of the LMS substring starting at position j
// in sa[j/2]. The slot never collides with another substring's, because j-1
// is L-type and therefore not an LMS position. The lower half of sa is free
// for this because induceSubS packed the substring order into the top.
//
// The final substring is recorded as length 0, otherwise impossible. It is
// the only substring that runs into the sentinel, so its true length would
// need a comparison against a symbol that is not materialized; an impossible
// length makes assignIDs treat it as unequal to everything without looking.
func lmsLengths[S symbol](text []S, sa []int64) {
	end := 0 // end of the previously seen (rightward) LMS substring

	// Backward classification scan, as in placeLMS.
	c0, c1, isTypeS := S(0), S(0), false
	for i := len(text) - 1; i >= 0; i-- {
		c0, c1 = text[i], c0
		if c0 < c1 {
			isTypeS = true
		} else if c0 > c1 && isTypeS {
			isTypeS = false

			j := i + 1
			var code int64
			if end != 0 {
				code = int64(end - j)
			}
			sa[j>>1] = code
			end = j + 1
		}
	}
}

// assignIDs renames the LMS substrings with dense integer names, walking
// them in sorted order (the top numLMS slots of sa) and giving equal
// neighbors equal names. Names start at 1 and increase with substring order.
// Each substring's name replaces its length in sa[j/2]. Returns the maximum
// assigned name; if it equals numLMS, every substring is unique.
func assignIDs[S symbol](text []S, sa []int64, numLMS int) int {
	id := 0
	lastLen := int64(-1) // impossible length
	lastPos := int64(0)
	for _, j := range sa[len(sa)-numLMS:] {
		n := sa[j/2]
		if n != lastLen {
			goto New
		}
		{
			// Same length as the previous substring; compare content.
			n := int(n)
			this := text[j:][:n]
			last := text[lastPos:][:n]
			for i := 0; i < n; i++ {
				if this[i] != last[i] {
					goto New
				}
			}
			goto Same
		}
	New:
		id++
		lastPos = j
		lastLen = n
	Same:
		sa[j/2] = int64(id)
	}
	return id
}

// mapSubstrings compacts the names scattered through the lower half of sa
// into the reduced text, packed against the top of sa and renumbered to
// start at 0. The reduced text lists the LMS substrings in text order, so
// its suffix array orders the LMS suffixes exactly.
func mapSubstrings(sa []int64) {
	w := len(sa)
	for i := len(sa) / 2; i >= 0; i-- {
		if j := sa[i]; j > 0 {
			w--
			sa[w] = j - 1
		}
	}
}

// unmapSubproblem translates the solved reduced suffix array, sa[:numLMS] in
// reduced-name space, back into original text positions. The top of sa is
// free again after the recursion, so the name-to-position table is rebuilt
// there by re-running the LMS scan, then applied.
func unmapSubproblem[S symbol](text []S, sa []int64, numLMS int) {
	unmap := sa[len(sa)-numLMS:]
	j := len(unmap)

	// Backward classification scan, as in placeLMS.
	c0, c1, isTypeS := S(0), S(0), false
	for i := len(text) - 1; i >= 0; i-- {
		c0, c1 = text[i], c0
		if c0 < c1 {
			isTypeS = true
		} else if c0 > c1 && isTypeS {
			isTypeS = false

			j--
			unmap[j] = int64(i + 1)
		}
	}

	sa = sa[:numLMS]
	for i := 0; i < len(sa); i++ {
		sa[i] = unmap[sa[i]]
	}
}
