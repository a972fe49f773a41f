// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SuffixSortNaive returns the suffix array of t by direct comparison sort.
// A shorter suffix precedes its extensions, matching the implicit-sentinel
// convention. This is the quadratic reference oracle for cross-checking
// linear-time construction; keep inputs modest.
func SuffixSortNaive[S constraints.Integer](t []S) []int64 {
	sa := make([]int64, len(t))
	for i := range sa {
		sa[i] = int64(i)
	}
	sort.Slice(sa, func(x, y int) bool {
		a, b := t[sa[x]:], t[sa[y]:]
		m := len(a)
		if len(b) < m {
			m = len(b)
		}
		for i := 0; i < m; i++ {
			if a[i] != b[i] {
				return a[i] < b[i]
			}
		}
		return len(a) < len(b)
	})
	return sa
}
