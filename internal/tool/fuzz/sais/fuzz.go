// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz

// Under the gofuzz tag the library verifies every suffix array it builds,
// so a bad construction surfaces as an error here without any oracle.
package sais

import (
	"fmt"

	"github.com/dsnet/sais"
)

func Fuzz(data []byte) int {
	sa8 := testWidth8(data)
	testWidth16(data, sa8)
	testWidth32(data, sa8)
	if len(data) > 0 {
		return 1
	}
	return 0
}

func testWidth8(data []byte) []int64 {
	// Scratch space must never change the answer, only the allocations.
	sa := make([]int64, len(data))
	freq := make([]int64, 256)
	if err := sais.ComputeSA(data, sa, freq); err != nil {
		panic(err)
	}
	var total int64
	for _, cnt := range freq {
		total += cnt
	}
	if total != int64(len(data)) {
		panic(fmt.Sprintf("histogram total %d for %d symbols", total, len(data)))
	}

	sa2 := make([]int64, len(data)+2*256)
	if err := sais.ComputeSA(data, sa2, nil); err != nil {
		panic(err)
	}
	mustEqual(sa, sa2[:len(data)])
	return sa
}

func testWidth16(data []byte, sa8 []int64) {
	// A widened copy of the input must sort identically.
	t := make([]uint16, len(data))
	for i, c := range data {
		t[i] = uint16(c)
	}
	sa := make([]int64, len(t))
	if err := sais.ComputeSA16(t, sa, nil); err != nil {
		panic(err)
	}
	mustEqual(sa8, sa)

	// Reinterpreting byte pairs as symbols exercises the dense 16-bit path.
	t = t[:len(data)/2]
	for i := range t {
		t[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	sa = make([]int64, len(t))
	if err := sais.ComputeSA16(t, sa, nil); err != nil {
		panic(err)
	}
}

func testWidth32(data []byte, sa8 []int64) {
	t := make([]int32, len(data))
	var max int32
	for i, c := range data {
		t[i] = int32(c)
		if t[i] >= max {
			max = t[i] + 1
		}
	}
	sa := make([]int64, len(t))
	if err := sais.ComputeSA32(t, 256, sa, nil); err != nil {
		panic(err)
	}
	mustEqual(sa8, sa)

	// The tightest possible alphabet bound must not change the answer.
	if len(t) > 0 {
		sa2 := make([]int64, len(t))
		if err := sais.ComputeSA32(t, max, sa2, nil); err != nil {
			panic(err)
		}
		mustEqual(sa, sa2)
	}
}

func mustEqual(x, y []int64) {
	if len(x) != len(y) {
		panic(fmt.Sprintf("length mismatch: %d != %d", len(x), len(y)))
	}
	for i := range x {
		if x[i] != y[i] {
			panic(fmt.Sprintf("suffix array mismatch at %d: %d != %d", i, x[i], y[i]))
		}
	}
}
