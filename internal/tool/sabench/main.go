// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Benchmark tool to compare suffix array construction implementations.
//
// Example usage:
//	$ go build -o sabench github.com/dsnet/sais/internal/tool/sabench
//	$ ./sabench \
//		-files  twain.txt \
//		-widths 8,16,32   \
//		-sizes  1e4,1e5,1e6
//
//	BENCHMARK: construct
//		benchmark            sais MB/s  delta      std MB/s  delta
//		twain.txt:8:1e4          38.12  1.00x         21.44  0.56x
//		twain.txt:8:1e5          29.60  1.00x         14.91  0.50x
//		twain.txt:8:1e6          24.48  1.00x          9.77  0.40x
//		twain.txt:16:1e4         35.77  1.00x
//		twain.txt:16:1e5         28.02  1.00x
//		twain.txt:16:1e6         23.55  1.00x
//		twain.txt:32:1e4         34.31  1.00x
//		twain.txt:32:1e5         27.16  1.00x
//		twain.txt:32:1e6         22.90  1.00x
//
//	RUNTIME: 42.17s
//
// The std implementation is index/suffixarray, which only accepts byte
// inputs; wider widths report sais alone. For the 16 and 32-bit widths the
// file is decoded as NFC-normalized UTF-8 and sorted as a rune sequence,
// which exercises the sparse-alphabet paths that byte corpora never reach.
package main

import (
	"flag"
	"fmt"
	"index/suffixarray"
	"math"
	"os"
	"path"
	"regexp"
	"runtime"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/dsnet/sais"
	"github.com/dsnet/sais/internal/testutil"
	"golang.org/x/text/unicode/norm"
)

const (
	defaultWidths = "8,16,32"
	defaultSizes  = "1e4,1e5,1e6"
)

var paths []string

func main() {
	f0 := flag.String("paths", "testdata", "List of paths to search for test files")
	f1 := flag.String("files", "", "List of input files to benchmark")
	f2 := flag.String("widths", defaultWidths, "List of symbol widths to benchmark")
	f3 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	flag.Parse()

	sep := regexp.MustCompile("[,:]")
	paths = sep.Split(*f0, -1)
	files := sep.Split(*f1, -1)
	var widths, sizes []int
	for _, s := range sep.Split(*f2, -1) {
		switch s {
		case "8", "16", "32":
			var w int
			fmt.Sscanf(s, "%d", &w)
			widths = append(widths, w)
		default:
			panic("invalid width")
		}
	}
	for _, s := range sep.Split(*f3, -1) {
		nf, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil {
			panic("invalid size")
		}
		sizes = append(sizes, int(nf))
	}
	if len(files) == 1 && files[0] == "" {
		fmt.Fprintln(os.Stderr, "no input files; pass -files")
		os.Exit(1)
	}

	ts := time.Now()
	runBenchmarks(files, widths, sizes)
	te := time.Now()
	fmt.Printf("RUNTIME: %v\n", te.Sub(ts))
}

type result struct {
	R float64 // Rate (MB/s)
	D float64 // Delta ratio relative to primary benchmark
}

func runBenchmarks(files []string, widths, sizes []int) {
	fmt.Println("BENCHMARK: construct")

	var results [][]result
	var names []string
	algos := []string{"sais", "std"}

	var cnt int
	total := len(files) * len(widths) * len(sizes) * len(algos)
	tick := func() {
		pct := 100.0 * float64(cnt) / float64(total)
		fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
		cnt++
	}

	for _, f := range files {
		input := testutil.MustLoadFile(getPath(f))
		for _, w := range widths {
			for _, n := range sizes {
				b := testutil.ResizeData(input, n)
				names = append(names, getName(f, w, len(b)))
				row := make([]result, len(algos))
				tick()
				row[0] = benchSAIS(b, w)
				tick()
				if w == 8 {
					row[1] = benchStd(b)
				}
				for i := range row {
					row[i].D = row[i].R / row[0].R
				}
				results = append(results, row)
			}
		}
	}
	fmt.Printf("\t%s\r", strings.Repeat(" ", 40))

	printResults(results, names, algos)
	fmt.Println()
}

func benchSAIS(input []byte, width int) result {
	var run func(b *testing.B)
	switch width {
	case 8:
		sa := make([]int64, len(input))
		run = func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := sais.ComputeSA(input, sa, nil); err != nil {
					b.Fatalf("unexpected error: %v", err)
				}
				b.SetBytes(int64(len(input)))
			}
		}
	case 16:
		t := decodeRunes(input)
		t16 := make([]uint16, len(t))
		for i, c := range t {
			t16[i] = uint16(c) // BMP collisions are fine for throughput
		}
		sa := make([]int64, len(t16))
		run = func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := sais.ComputeSA16(t16, sa, nil); err != nil {
					b.Fatalf("unexpected error: %v", err)
				}
				b.SetBytes(int64(len(input)))
			}
		}
	case 32:
		t := decodeRunes(input)
		sa := make([]int64, len(t))
		run = func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := sais.ComputeSA32(t, utf8.MaxRune+1, sa, nil); err != nil {
					b.Fatalf("unexpected error: %v", err)
				}
				b.SetBytes(int64(len(input)))
			}
		}
	}
	return rate(benchmark(run))
}

func benchStd(input []byte) result {
	return rate(benchmark(func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			suffixarray.New(input)
			b.SetBytes(int64(len(input)))
		}
	}))
}

func benchmark(run func(b *testing.B)) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		run(b)
	})
}

func rate(r testing.BenchmarkResult) result {
	if r.N == 0 {
		return result{}
	}
	us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
	return result{R: float64(r.Bytes) / us}
}

// decodeRunes converts the corpus to a sequence of 32-bit symbols by decoding
// it as NFC-normalized UTF-8. Invalid bytes decode as RuneError, which is as
// good a symbol as any for benchmarking purposes.
func decodeRunes(input []byte) []int32 {
	input = norm.NFC.Bytes(input)
	t := make([]int32, 0, len(input))
	for len(input) > 0 {
		r, n := utf8.DecodeRune(input)
		t = append(t, r)
		input = input[n:]
	}
	return t
}

func getPath(file string) string {
	if path.IsAbs(file) {
		return file
	}
	for _, p := range paths {
		p = path.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

func getName(f string, w, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile("\\.0*e\\+0*")
		sn = re.ReplaceAllString(s, "e")
	default:
		s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%d:%s", path.Base(f), w, sn)
}

func printResults(results [][]result, names, algos []string) {
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(algos))
	}

	cells[0][0] = "benchmark"
	for i, a := range algos {
		cells[0][1+2*i] = a + " MB/s"
		cells[0][2+2*i] = "delta"
	}

	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R)
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	maxLens := make([]int, 1+2*len(algos))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
