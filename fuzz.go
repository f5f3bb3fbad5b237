// Copyright 2018, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

// This file exists to export an entry point for fuzz testing.

package lzstring

import "reflect"

func Fuzz(data []byte) int {
	// Interpret the input as wide chars and round trip every transport.
	wide := make([]uint16, len(data)/2)
	for i := range wide {
		wide[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	got, err := Decompress(Compress(wide))
	check(wide, got, err)
	got, err = DecompressFromUTF16(CompressToUTF16(wide))
	check(wide, got, err)
	got, err = DecompressFromEncodedURIComponent(CompressToEncodedURIComponent(wide))
	check(wide, got, err)
	got, err = DecompressFromBase64(CompressToBase64(wide))
	check(wide, got, err)
	got, err = DecompressFromUint8Array(CompressToUint8Array(wide))
	check(wide, got, err)

	// The input may also be an arbitrary stream; it must never panic.
	if _, err := DecompressFromUint8Array(data); err != nil {
		return 0
	}
	return 1
}

func check(want, got []uint16, err error) {
	if err != nil {
		panic(err)
	}
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		panic("round trip mismatch")
	}
}
