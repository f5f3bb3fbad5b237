// Copyright 2018, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of the lzstring codec against
// general-purpose compressors with respect to encode rate, decode rate,
// and compression ratio.
package bench

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
	"testing"

	strconv "github.com/dsnet/golib/unitconv"
	"github.com/dsnet/lzstring/internal/testutil"
)

// A Codec compresses and decompresses byte streams in memory. Codecs
// operating on wide chars interpret each input byte as one 16-bit code unit.
type Codec struct {
	Encode func([]byte) []byte
	Decode func([]byte) ([]byte, error)
}

// Codecs is the registry of comparison codecs, keyed by name.
var Codecs = make(map[string]Codec)

func Register(name string, c Codec) { Codecs[name] = c }

// Corpora names the synthetic test inputs available to TestData.
var Corpora = []string{"zeros", "repeats", "text", "random"}

// TestData deterministically generates the named corpus of length n.
func TestData(name string, n int) []byte {
	rand := testutil.NewRand(0)
	b := make([]byte, n)
	switch name {
	case "zeros":
	case "random":
		b = rand.Bytes(n)
	case "text":
		words := []string{"the ", "quick ", "brown ", "fox ", "jumps ", "over "}
		s := []byte{}
		for len(s) < n {
			s = append(s, words[rand.Intn(len(words))]...)
		}
		b = s[:n]
	case "repeats":
		// Mostly copies from a short distance back, favoring dictionary
		// based compression.
		s := rand.Bytes(64)
		for len(s) < n {
			dist := 1 + rand.Intn(len(s))
			cnt := 4 + rand.Intn(60)
			for i := 0; i < cnt; i++ {
				s = append(s, s[len(s)-dist])
			}
		}
		b = s[:n]
	default:
		panic("unknown corpus: " + name)
	}
	return b
}

// Result is a single benchmark measurement.
type Result struct {
	R float64 // Rate (MB/s) or ratio (rawSize/compSize)
	D float64 // Delta ratio relative to the first codec measured
}

// BenchmarkEncode benchmarks a single codec encoding the given input.
func BenchmarkEncode(input []byte, c Codec) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			c.Encode(input)
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkDecode benchmarks a single codec decoding the pre-compressed
// form of the given input.
func BenchmarkDecode(input []byte, c Codec) testing.BenchmarkResult {
	output := c.Encode(input)
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, err := c.Decode(output); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// EncodeRateSuite, DecodeRateSuite, and RatioSuite run one measurement per
// codec, corpus, and size. The result has the following structure:
//	results: [len(corpora)*len(sizes)][len(codecs)]Result

func EncodeRateSuite(codecs, corpora []string, sizes []int, tick func()) ([][]Result, []string) {
	return suite(codecs, corpora, sizes, tick, func(input []byte, name string) Result {
		r := BenchmarkEncode(input, Codecs[name])
		if r.N == 0 {
			return Result{}
		}
		us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
		return Result{R: float64(r.Bytes) / us}
	})
}

func DecodeRateSuite(codecs, corpora []string, sizes []int, tick func()) ([][]Result, []string) {
	return suite(codecs, corpora, sizes, tick, func(input []byte, name string) Result {
		r := BenchmarkDecode(input, Codecs[name])
		if r.N == 0 {
			return Result{}
		}
		us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
		return Result{R: float64(r.Bytes) / us}
	})
}

func RatioSuite(codecs, corpora []string, sizes []int, tick func()) ([][]Result, []string) {
	return suite(codecs, corpora, sizes, tick, func(input []byte, name string) Result {
		output := Codecs[name].Encode(input)
		return Result{R: float64(len(input)) / float64(len(output))}
	})
}

func suite(codecs, corpora []string, sizes []int, tick func(), run func([]byte, string) Result) ([][]Result, []string) {
	results := make([][]Result, 0, len(corpora)*len(sizes))
	names := make([]string, 0, len(corpora)*len(sizes))
	for _, f := range corpora {
		for _, n := range sizes {
			input := TestData(f, n)
			row := make([]Result, len(codecs))
			for j, c := range codecs {
				if tick != nil {
					tick()
				}
				row[j] = run(input, c)
				row[j].D = row[j].R / row[0].R
			}
			results = append(results, row)
			names = append(names, benchName(f, n))
		}
	}
	return results, names
}

func benchName(f string, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile(`\.0*e\+0*`)
		sn = re.ReplaceAllString(s, "e")
	default:
		s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%s", f, sn)
}
