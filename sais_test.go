// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/dsnet/sais/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestComputeSA(t *testing.T) {
	vectors := []struct {
		input  string  // The input test string
		output []int64 // Expected suffix array
	}{{
		input:  "",
		output: []int64{},
	}, {
		input:  "a",
		output: []int64{0},
	}, {
		input:  "ab",
		output: []int64{0, 1},
	}, {
		input:  "ba",
		output: []int64{1, 0},
	}, {
		input:  "aaaaa",
		output: []int64{4, 3, 2, 1, 0},
	}, {
		input:  "banana",
		output: []int64{5, 3, 1, 0, 4, 2},
	}, {
		input:  "abracadabra",
		output: []int64{10, 7, 0, 3, 5, 8, 1, 4, 6, 9, 2},
	}, {
		input:  "mississippi",
		output: []int64{10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2},
	}, {
		input:  "GATTACA",
		output: []int64{6, 4, 1, 5, 0, 3, 2},
	}}

	for i, v := range vectors {
		sa := make([]int64, len(v.input))
		if err := ComputeSA([]byte(v.input), sa, nil); err != nil {
			t.Errorf("test %d (%q), unexpected error: %v", i, v.input, err)
			continue
		}
		if d := cmp.Diff(v.output, sa); d != "" {
			t.Errorf("test %d (%q), mismatching suffix array (-want +got):\n%s", i, v.input, d)
		}
	}
}

// testPatterns generates the adversarial and random input families from a
// given length and alphabet size, as 32-bit symbols (the widest variant;
// narrower tests convert down).
var testPatterns = []struct {
	name string
	gen  func(r *testutil.Rand, n, k int) []int32
}{{
	name: "Random",
	gen: func(r *testutil.Rand, n, k int) []int32 {
		return testutil.Symbols[int32](r, n, k)
	},
}, {
	name: "AllEqual",
	gen: func(r *testutil.Rand, n, k int) []int32 {
		t := make([]int32, n)
		for i := range t {
			t[i] = int32(k - 1)
		}
		return t
	},
}, {
	name: "Increasing",
	gen: func(r *testutil.Rand, n, k int) []int32 {
		t := make([]int32, n)
		for i := range t {
			t[i] = int32(i % k)
		}
		return t
	},
}, {
	name: "Decreasing",
	gen: func(r *testutil.Rand, n, k int) []int32 {
		t := make([]int32, n)
		for i := range t {
			t[i] = int32((k - 1) - i%k)
		}
		return t
	},
}, {
	name: "Periodic",
	gen: func(r *testutil.Rand, n, k int) []int32 {
		period := testutil.Symbols[int32](r, 7, k)
		t := make([]int32, n)
		for i := range t {
			t[i] = period[i%len(period)]
		}
		return t
	},
}}

// TestReference cross-checks all three symbol widths against the naive
// comparison sort on random and adversarial inputs.
func TestReference(t *testing.T) {
	lengths := []int{0, 1, 2, 3, 7, 64, 256, 2000}
	alphabets := []int{1, 2, 3, 26, 256, 1000}

	r := testutil.NewRand(0)
	for _, p := range testPatterns {
		t.Run(p.name, func(t *testing.T) {
			for _, n := range lengths {
				for _, k := range alphabets {
					t32 := p.gen(r, n, k)
					want := testutil.SuffixSortNaive(t32)
					name := fmt.Sprintf("n=%d,k=%d", n, k)

					sa := make([]int64, n)
					if err := ComputeSA32(t32, int32(k), sa, nil); err != nil {
						t.Fatalf("%s, unexpected ComputeSA32 error: %v", name, err)
					}
					if d := cmp.Diff(want, sa); d != "" {
						t.Fatalf("%s, mismatching ComputeSA32 output (-want +got):\n%s", name, d)
					}

					if k <= 1<<16 {
						t16 := make([]uint16, n)
						for i, c := range t32 {
							t16[i] = uint16(c)
						}
						clear(sa)
						if err := ComputeSA16(t16, sa, nil); err != nil {
							t.Fatalf("%s, unexpected ComputeSA16 error: %v", name, err)
						}
						if d := cmp.Diff(want, sa); d != "" {
							t.Fatalf("%s, mismatching ComputeSA16 output (-want +got):\n%s", name, d)
						}
					}

					if k <= 1<<8 {
						t8 := make([]byte, n)
						for i, c := range t32 {
							t8[i] = byte(c)
						}
						clear(sa)
						if err := ComputeSA(t8, sa, nil); err != nil {
							t.Fatalf("%s, unexpected ComputeSA error: %v", name, err)
						}
						if d := cmp.Diff(want, sa); d != "" {
							t.Fatalf("%s, mismatching ComputeSA output (-want +got):\n%s", name, d)
						}
					}
				}
			}
		})
	}
}

// TestDeepRecursion runs inputs long and repetitive enough to drive several
// reduction levels through the explicit frame stack, checking the results
// by the library's own postcondition verifier.
func TestDeepRecursion(t *testing.T) {
	r := testutil.NewRand(1)
	vectors := [][]byte{
		testutil.Symbols[byte](r, 100000, 2),
		testutil.Symbols[byte](r, 100000, 3),
		testutil.ResizeData([]byte("ab"), 100000),    // pure LS alternation
		testutil.ResizeData([]byte("abaab"), 100000), // Fibonacci-word-like
		testutil.ResizeData(r.Bytes(25000), 100000),  // replicated random
	}
	for i, input := range vectors {
		sa := make([]int64, len(input))
		if err := ComputeSA(input, sa, nil); err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		if err := verifySA(input, sa); err != nil {
			t.Errorf("test %d, corrupt suffix array: %v", i, err)
		}
	}
}

// TestScratchSpace checks that granting extra scratch space changes neither
// the suffix array nor the histogram, only whether the call allocates.
func TestScratchSpace(t *testing.T) {
	r := testutil.NewRand(2)
	input := testutil.Symbols[byte](r, 5000, 30)
	n := len(input)

	want := make([]int64, n)
	wantFreq := make([]int64, 256)
	if err := ComputeSA(input, want, wantFreq); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fs := range []int{1, 7, 256, 512, 4096} {
		sa := make([]int64, n+fs)
		for i := range sa {
			sa[i] = -123 // ensure no phase trusts stale buffer contents
		}
		freq := make([]int64, 256)
		if err := ComputeSA(input, sa, freq); err != nil {
			t.Fatalf("fs=%d, unexpected error: %v", fs, err)
		}
		if d := cmp.Diff(want, sa[:n]); d != "" {
			t.Errorf("fs=%d, mismatching suffix array (-want +got):\n%s", fs, d)
		}
		if d := cmp.Diff(wantFreq, freq); d != "" {
			t.Errorf("fs=%d, mismatching histogram (-want +got):\n%s", fs, d)
		}
	}
}

func TestHistogram(t *testing.T) {
	r := testutil.NewRand(3)
	input := testutil.Symbols[byte](r, 3000, 256)

	want := make([]int64, 256)
	for _, c := range input {
		want[c]++
	}

	// The histogram is recomputed on every call; pre-poisoned contents
	// must not leak through, and a caller-supplied table is never trusted
	// as a substitute for counting.
	freq := make([]int64, 256)
	for i := range freq {
		freq[i] = int64(i) - 57
	}
	sa := make([]int64, len(input))
	if err := ComputeSA(input, sa, freq); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := cmp.Diff(want, freq); d != "" {
		t.Errorf("mismatching histogram (-want +got):\n%s", d)
	}
	var total int64
	for _, cnt := range freq {
		total += cnt
	}
	if total != int64(len(input)) {
		t.Errorf("histogram total: got %d, want %d", total, len(input))
	}

	// The suffix array must not depend on whether the histogram was
	// requested.
	sa2 := make([]int64, len(input))
	if err := ComputeSA(input, sa2, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := cmp.Diff(sa, sa2); d != "" {
		t.Errorf("histogram request changed suffix array (-want +got):\n%s", d)
	}
}

func TestDeterminism(t *testing.T) {
	input := testutil.Symbols[int32](testutil.NewRand(4), 4000, 100)
	sa1 := make([]int64, len(input)+100)
	sa2 := make([]int64, len(input))
	freq1 := make([]int64, 100)
	freq2 := make([]int64, 100)
	if err := ComputeSA32(input, 100, sa1, freq1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ComputeSA32(input, 100, sa2, freq2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := cmp.Diff(sa1[:len(input)], sa2); d != "" {
		t.Errorf("non-deterministic suffix array (-first +second):\n%s", d)
	}
	if d := cmp.Diff(freq1, freq2); d != "" {
		t.Errorf("non-deterministic histogram (-first +second):\n%s", d)
	}
}

func TestInvalidInputs(t *testing.T) {
	vectors := []struct {
		name string
		call func() error
	}{{
		name: "ShortSA",
		call: func() error {
			return ComputeSA([]byte("abc"), make([]int64, 2), nil)
		},
	}, {
		name: "ShortSA16",
		call: func() error {
			return ComputeSA16([]uint16{1, 2, 3}, make([]int64, 2), nil)
		},
	}, {
		name: "ShortSA32",
		call: func() error {
			return ComputeSA32([]int32{1, 2, 3}, 4, make([]int64, 2), nil)
		},
	}, {
		name: "BadFreqLen",
		call: func() error {
			return ComputeSA([]byte("abc"), make([]int64, 3), make([]int64, 255))
		},
	}, {
		name: "BadFreqLen16",
		call: func() error {
			return ComputeSA16([]uint16{1}, make([]int64, 1), make([]int64, 256))
		},
	}, {
		name: "BadFreqLen32",
		call: func() error {
			return ComputeSA32([]int32{1}, 4, make([]int64, 1), make([]int64, 5))
		},
	}, {
		name: "ZeroAlphabet",
		call: func() error {
			return ComputeSA32([]int32{}, 0, []int64{}, nil)
		},
	}, {
		name: "NegativeAlphabet",
		call: func() error {
			return ComputeSA32([]int32{1}, -5, make([]int64, 1), nil)
		},
	}, {
		name: "SymbolTooLarge",
		call: func() error {
			return ComputeSA32([]int32{0, 4, 1}, 4, make([]int64, 3), nil)
		},
	}, {
		name: "SymbolNegative",
		call: func() error {
			return ComputeSA32([]int32{0, -1, 1}, 4, make([]int64, 3), nil)
		},
	}, {
		name: "SymbolTooLargeWithFreq",
		call: func() error {
			return ComputeSA32([]int32{0, 9, 1}, 4, make([]int64, 3), make([]int64, 4))
		},
	}}

	for _, v := range vectors {
		if err := v.call(); err != ErrInvalid {
			t.Errorf("test %s, got %v, want %v", v.name, err, ErrInvalid)
		}
	}
}

// TestBoundaries covers the degenerate sizes explicitly.
func TestBoundaries(t *testing.T) {
	if err := ComputeSA(nil, nil, nil); err != nil {
		t.Errorf("empty input, unexpected error: %v", err)
	}
	freq := make([]int64, 256)
	freq[0] = 99
	if err := ComputeSA(nil, nil, freq); err != nil {
		t.Errorf("empty input with freq, unexpected error: %v", err)
	}
	if freq[0] != 0 {
		t.Errorf("empty input, histogram not cleared: freq[0] = %d", freq[0])
	}

	sa := []int64{-1}
	if err := ComputeSA([]byte{42}, sa, nil); err != nil {
		t.Errorf("single symbol, unexpected error: %v", err)
	}
	if sa[0] != 0 {
		t.Errorf("single symbol: got SA=%v, want [0]", sa)
	}
}

// TestCorpus sorts a natural-language corpus, both as raw bytes and as a
// decoded rune sequence, checking results against the postcondition verifier.
// The corpus is repetitive multilingual text, so the byte view stresses dense
// alphabets and the rune view stresses sparse ones.
func TestCorpus(t *testing.T) {
	input := testutil.MustLoadFile("testdata/phrases.txt.xz")

	sa := make([]int64, len(input))
	if err := ComputeSA(input, sa, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := verifySA(input, sa); err != nil {
		t.Errorf("byte corpus, corrupt suffix array: %v", err)
	}

	runes := []int32(string(input))
	sa = make([]int64, len(runes))
	if err := ComputeSA32(runes, utf8.MaxRune+1, sa, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := verifySA(runes, sa); err != nil {
		t.Errorf("rune corpus, corrupt suffix array: %v", err)
	}
}

func TestVerifySA(t *testing.T) {
	input := []byte("banana")
	sa := make([]int64, len(input))
	if err := ComputeSA(input, sa, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := verifySA(input, sa); err != nil {
		t.Errorf("valid suffix array rejected: %v", err)
	}

	sa[0], sa[1] = sa[1], sa[0]
	if err := verifySA(input, sa); err != ErrInternal {
		t.Errorf("swapped entries, got %v, want %v", err, ErrInternal)
	}
	sa[0], sa[1] = sa[1], sa[0]

	sa[2] = sa[3]
	if err := verifySA(input, sa); err != ErrInternal {
		t.Errorf("duplicate entry, got %v, want %v", err, ErrInternal)
	}
}

func BenchmarkComputeSA(b *testing.B) {
	for _, n := range []int{1e4, 1e5, 1e6} {
		input := testutil.ResizeData(testutil.NewRand(5).Bytes(1e4), n)
		sa := make([]int64, n)
		b.Run(fmt.Sprintf("n=%.0e", float64(n)), func(b *testing.B) {
			b.SetBytes(int64(n))
			for i := 0; i < b.N; i++ {
				if err := ComputeSA(input, sa, nil); err != nil {
					b.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}
}
