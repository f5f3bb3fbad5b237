// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring_test

import (
	"fmt"

	"github.com/dsnet/lzstring"
)

func ExampleCompressToEncodedURIComponent() {
	c := lzstring.CompressToEncodedURIComponent(lzstring.EncodeUTF16("Hello, world"))
	fmt.Println(c)

	d, err := lzstring.DecompressFromEncodedURIComponent(c)
	if err != nil {
		panic(err)
	}
	fmt.Println(lzstring.DecodeUTF16(d))
	// Output:
	// BIUwNmD2A0AEDukBOYAmQ
	// Hello, world
}

func ExampleCompressToUint8Array() {
	b := lzstring.CompressToUint8Array(lzstring.EncodeUTF16("AIAIAIAIAIAIA"))
	fmt.Println(b)

	d, err := lzstring.DecompressFromUint8Array(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(lzstring.DecodeUTF16(d))
	// Output:
	// [32 132 149 237 56 128]
	// AIAIAIAIAIAIA
}
