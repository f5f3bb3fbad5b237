// Copyright 2018, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Benchmark tool to compare the lzstring codec against general-purpose
// compressors. Individual implementations are referred to as codecs.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-tests  encRate,decRate,ratio \
//		-codecs lzstring,std-flate,kp-zstd,xz \
//		-files  text,repeats \
//		-sizes  1e4,1e5,1e6
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/dsnet/lzstring/internal/tool/bench"
)

var (
	codecs []string
	files  []string
	sizes  []int
	tests  []string
)

func main() {
	parseFlags()
	ts := time.Now()
	for _, tt := range tests {
		var suite func([]string, []string, []int, func()) ([][]bench.Result, []string)
		var unit string
		switch tt {
		case "encRate":
			suite, unit = bench.EncodeRateSuite, "MB/s"
		case "decRate":
			suite, unit = bench.DecodeRateSuite, "MB/s"
		case "ratio":
			suite, unit = bench.RatioSuite, "ratio"
		default:
			fmt.Fprintln(os.Stderr, "unknown test:", tt)
			os.Exit(1)
		}
		fmt.Printf("BENCHMARK: %s\n", tt)
		results, names := suite(codecs, files, sizes, func() { fmt.Print(".") })
		fmt.Println()
		printResults(results, names, unit)
		fmt.Println()
	}
	fmt.Println("RUNTIME:", time.Since(ts))
}

func parseFlags() {
	codecsFlag := flag.String("codecs", strings.Join(defaultCodecs(), ","), "comma-separated list of codecs to benchmark")
	filesFlag := flag.String("files", strings.Join(bench.Corpora, ","), "comma-separated list of synthetic corpora")
	sizesFlag := flag.String("sizes", "1e4,1e5,1e6", "comma-separated list of input sizes")
	testsFlag := flag.String("tests", "encRate,decRate,ratio", "comma-separated list of tests")
	flag.Parse()

	codecs = strings.Split(*codecsFlag, ",")
	files = strings.Split(*filesFlag, ",")
	tests = strings.Split(*testsFlag, ",")
	for _, s := range strings.Split(*sizesFlag, ",") {
		nf, err := strconv.ParsePrefix(s, strconv.AutoParse)
		if err != nil || nf <= 0 {
			fmt.Fprintln(os.Stderr, "invalid size:", s)
			os.Exit(1)
		}
		sizes = append(sizes, int(nf))
	}
	for _, c := range codecs {
		if _, ok := bench.Codecs[c]; !ok {
			fmt.Fprintln(os.Stderr, "unknown codec:", c)
			os.Exit(1)
		}
	}
}

func defaultCodecs() []string {
	s := []string{"lzstring"}
	for name := range bench.Codecs {
		if name != "lzstring" {
			s = append(s, name)
		}
	}
	return s
}

func printResults(results [][]bench.Result, names []string, unit string) {
	hdr := fmt.Sprintf("\t%-24s", "benchmark")
	for _, c := range codecs {
		hdr += fmt.Sprintf("  %12s  delta", c+" "+unit)
	}
	fmt.Println(hdr)
	for i, row := range results {
		line := fmt.Sprintf("\t%-24s", names[i])
		for _, r := range row {
			line += fmt.Sprintf("  %12.2f  %0.2fx", r.R, r.D)
		}
		fmt.Println(line)
	}
}
