// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

// The suffix array is built inside per-symbol buckets: bucket c is the
// contiguous region of sa reserved for the suffixes starting with symbol c,
// sized by the symbol counts. L-type suffixes fill their bucket from the
// head, S-type suffixes from the tail, so each induction scan needs the
// cursors initialized to one or the other end.

// countSymbols returns the per-symbol occurrence counts for text.
// If freq is nil, the counts are built in bucket and returned.
// If freq is non-nil, freq[0] >= 0 means the counts from an earlier scan are
// still valid and are returned as is; whoever clobbers the scratch buffer
// must store -1 into freq[0] to force a recount.
func countSymbols[S symbol](text []S, freq, bucket []int64) []int64 {
	if freq != nil && freq[0] >= 0 {
		return freq // still valid from an earlier scan
	}
	if freq == nil {
		freq = bucket
	}
	clear(freq)
	for _, c := range text {
		freq[c]++
	}
	return freq
}

// bucketHeads initializes bucket[c] to the first index of bucket c,
// the cursor position for placing L-type suffixes.
func bucketHeads[S symbol](text []S, freq, bucket []int64) {
	freq = countSymbols(text, freq, bucket)
	total := int64(0)
	for i, n := range freq {
		bucket[i] = total
		total += n
	}
}

// bucketTails initializes bucket[c] to one past the last index of bucket c,
// the cursor position for placing S-type suffixes.
func bucketTails[S symbol](text []S, freq, bucket []int64) {
	freq = countSymbols(text, freq, bucket)
	total := int64(0)
	for i, n := range freq {
		total += n
		bucket[i] = total
	}
}
