// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

// verifySA reports ErrInternal unless sa is a permutation of the positions
// of t that lists the suffixes of t in strictly increasing order. A failure
// means the library itself is broken, never the input; the construction
// entry points reject bad inputs before the pipeline runs.
func verifySA[S symbol](t []S, sa []int64) error {
	if len(sa) != len(t) {
		return ErrInternal
	}
	seen := make([]bool, len(sa))
	for _, j := range sa {
		if j < 0 || j >= int64(len(t)) || seen[j] {
			return ErrInternal
		}
		seen[j] = true
	}
	for i := 0; i+1 < len(sa); i++ {
		if compareSuffixes(t, sa[i], sa[i+1]) >= 0 {
			return ErrInternal
		}
	}
	return nil
}

// compareSuffixes orders t[i:] against t[j:]. A suffix precedes its
// extensions, matching the implicit-sentinel convention of the construction.
func compareSuffixes[S symbol](t []S, i, j int64) int {
	a, b := t[i:], t[j:]
	m := len(a)
	if len(b) < m {
		m = len(b)
	}
	for x := 0; x < m; x++ {
		switch {
		case a[x] < b[x]:
			return -1
		case a[x] > b[x]:
			return +1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return +1
	}
	return 0
}
