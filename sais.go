// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais constructs suffix arrays in linear time and linear auxiliary
// space using the Suffix Array by Induced Sorting (SA-IS) methodology by
// Nong, Zhang, and Chan.
//
// Three entry points cover three symbol widths: ComputeSA for byte sequences,
// ComputeSA16 for 16-bit symbols, and ComputeSA32 for 32-bit symbols over a
// caller-declared alphabet. All of them write a 64-bit indexed suffix array
// into a caller-provided buffer and optionally report the symbol histogram.
// The algorithm core is shared; only the symbol type differs.
//
// The core is a generalization over symbol widths of the SA-IS implementation
// in the Go standard library's index/suffixarray package, which in turn
// descends from the C sais implementation by Yuta Mori.
//
// References:
//	https://sites.google.com/site/yuta256/sais
//	https://go.dev/src/index/suffixarray/sais.go
//	Nong, Zhang, Chan, "Two Efficient Algorithms for Linear Time Suffix
//	Array Construction", IEEE Transactions on Computers, 2011
package sais

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "sais: " + string(e) }

var (
	// ErrInvalid indicates a malformed argument: an output buffer shorter
	// than the input, a histogram buffer of the wrong length, an alphabet
	// size out of range, or an input symbol outside the declared alphabet.
	ErrInvalid error = Error("invalid argument")

	// ErrNoSpace indicates that the scratch space required by the algorithm
	// could not be sized on this platform. A true out-of-memory condition
	// aborts the program before it can be reported, so this error only
	// covers sizes that overflow the platform int.
	ErrNoSpace error = Error("scratch space unobtainable")

	// ErrInternal indicates that a postcondition check on the constructed
	// suffix array failed. It cannot occur unless the library itself is
	// broken; the checks run only in tests and debug builds.
	ErrInternal error = Error("internal invariant violation")
)

// maxAlphabet is the largest alphabet size accepted by ComputeSA32.
const maxAlphabet = 1<<31 - 1

// ComputeSA computes the suffix array of t and stores it in sa[:len(t)],
// such that t[sa[i]:] < t[sa[i+1]:] for all i, using the convention that a
// shorter suffix precedes its extensions.
//
// sa must have at least len(t) entries. Any entries beyond len(t) are used as
// scratch space for the duration of the call, avoiding internal allocation
// when there are enough of them; their contents are unspecified on return.
//
// If freq is non-nil, it must have 256 entries, and freq[c] is set to the
// number of occurrences of c in t. The histogram is always recomputed from t;
// prior contents of freq are ignored and overwritten.
func ComputeSA(t []byte, sa []int64, freq []int64) (err error) {
	defer errRecover(&err)
	if len(sa) < len(t) {
		return ErrInvalid
	}
	if freq != nil && len(freq) != 256 {
		return ErrInvalid
	}
	if freq != nil {
		histogram(t, freq)
	}
	return construct(t, 256, sa, len(t))
}

// ComputeSA16 is like ComputeSA for sequences of 16-bit symbols.
// If freq is non-nil, it must have 65536 entries.
func ComputeSA16(t []uint16, sa []int64, freq []int64) (err error) {
	defer errRecover(&err)
	if len(sa) < len(t) {
		return ErrInvalid
	}
	if freq != nil && len(freq) != 1<<16 {
		return ErrInvalid
	}
	if freq != nil {
		histogram(t, freq)
	}
	return construct(t, 1<<16, sa, len(t))
}

// ComputeSA32 is like ComputeSA for sequences of 32-bit symbols drawn from
// the alphabet [0, k). Every symbol of t must lie in that range, else
// ErrInvalid is reported. k must satisfy 0 < k <= 1<<31 - 1.
// If freq is non-nil, it must have k entries.
//
// Since the 32-bit symbol domain is too large for a fixed-size bucket array,
// k is the caller's assertion of an upper bound on the symbol values present;
// a tight bound minimizes the scratch space needed.
func ComputeSA32(t []int32, k int32, sa []int64, freq []int64) (err error) {
	defer errRecover(&err)
	if k <= 0 || int64(k) > maxAlphabet {
		return ErrInvalid
	}
	if len(sa) < len(t) {
		return ErrInvalid
	}
	if freq != nil && len(freq) != int(k) {
		return ErrInvalid
	}

	// Validate the declared alphabet and, when requested, produce the
	// histogram in the same pass. On failure the histogram is abandoned
	// half-filled; callers may not read it without a nil error.
	if freq != nil {
		clear(freq)
		for _, c := range t {
			if c < 0 || c >= k {
				return ErrInvalid
			}
			freq[c]++
		}
	} else {
		for _, c := range t {
			if c < 0 || c >= k {
				return ErrInvalid
			}
		}
	}
	return construct(t, int(k), sa, len(t))
}

// construct zeroes the working prefix of sa, carves scratch space for an
// alphabet of numSyms symbols out of the remainder, and runs the pipeline.
func construct[S symbol](t []S, numSyms int, sa []int64, n int) error {
	if n == 0 {
		return nil
	}
	work := sa[:n]
	clear(work)
	tmp, err := scratch(sa, n, numSyms)
	if err != nil {
		return err
	}
	computeSA(t, numSyms, work, tmp)
	if debugVerify {
		return verifySA(t, work)
	}
	return nil
}

// scratch returns a buffer of at least numSyms entries for symbol counts and
// bucket cursors, preferring 2*numSyms so that counts survive between scans.
// The spare tail of sa is used when large enough; otherwise a heap buffer is
// allocated, so that a caller granting no spare space still succeeds.
func scratch(sa []int64, n, numSyms int) ([]int64, error) {
	fs := len(sa) - n
	if n2 := 2 * numSyms; n2 > numSyms && fs >= n2 {
		return sa[n : n+n2], nil
	}
	if fs >= numSyms {
		return sa[n : n+numSyms], nil
	}
	if n2 := 2 * numSyms; n2 > numSyms {
		return make([]int64, n2), nil
	}
	return nil, ErrNoSpace
}

// histogram counts the occurrences of every symbol of t into freq,
// overwriting whatever was there.
func histogram[S symbol](t []S, freq []int64) {
	clear(freq)
	for _, c := range t {
		freq[c]++
	}
}
