// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore

// Generates repeats.bin. This test file is dense with repeated substrings at
// varying distances and lengths, which forces suffix sorting through many
// levels of problem reduction: long repeats mean long runs of equal-ranked
// positions that only resolve deep in the recursion.
package main

import (
	"math/rand"
	"os"
)

const (
	name = "repeats.bin"
	size = 1 << 18
)

func main() {
	var b []byte
	r := rand.New(rand.NewSource(0))

	// Lengths and distances are drawn from rough power-law buckets so that
	// both short periodic repeats and screen-sized copies appear.
	randLen := func() int {
		n := 4 << (r.Int() % 7) // 4..256
		return n + r.Int()%n
	}
	randDist := func() (d int) {
		for d == 0 || d > len(b) {
			d = 1 << (r.Int() % 16) // 1..32768
			d += r.Int() % d
		}
		return d
	}

	writeRand := func(l int) {
		for i := 0; i < l; i++ {
			b = append(b, byte(r.Int()))
		}
	}
	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}

	writeRand(randLen())
	for len(b) < size {
		switch p := r.Float32(); {
		case p <= 0.1:
			// Fresh random data.
			writeRand(randLen())
		case p <= 0.5:
			// A copy from far away: a long repeated substring.
			d, l := randDist(), randLen()
			for d <= l {
				d, l = randDist(), randLen()
			}
			writeCopy(d, l)
		default:
			// A possibly overlapping copy: a periodic run.
			writeCopy(randDist(), randLen())
		}
	}

	if err := os.WriteFile(name, b[:size], 0664); err != nil {
		panic(err)
	}
}
