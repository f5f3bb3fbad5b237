// Copyright 2018, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// lzstring is a command line filter that compresses or decompresses data in
// the lz-string format between stdin and stdout.
//
// Example usage:
//	$ echo -n "Hello, world" | lzstring -f uri
//	$ echo -n "BIUwNmD2A0AEDukBOYAmQ" | lzstring -d -f uri
package main

import (
	"flag"
	"io/ioutil"
	"log"
	"os"

	"github.com/dsnet/lzstring"
)

func main() {
	log.SetFlags(0)
	decode := flag.Bool("d", false, "decompress instead of compress")
	format := flag.String("f", "base64", "transport format: utf16, uri, base64, or bytes")
	flag.Parse()

	input, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	var output []byte
	if *decode {
		var units []uint16
		switch *format {
		case "utf16":
			units, err = lzstring.DecompressFromUTF16(string(input))
		case "uri":
			units, err = lzstring.DecompressFromEncodedURIComponent(string(input))
		case "base64":
			units, err = lzstring.DecompressFromBase64(string(input))
		case "bytes":
			units, err = lzstring.DecompressFromUint8Array(input)
		default:
			log.Fatalf("unknown format: %s", *format)
		}
		if err != nil {
			log.Fatal(err)
		}
		output = []byte(lzstring.DecodeUTF16(units))
	} else {
		units := lzstring.EncodeUTF16(string(input))
		switch *format {
		case "utf16":
			output = []byte(lzstring.CompressToUTF16(units))
		case "uri":
			output = []byte(lzstring.CompressToEncodedURIComponent(units))
		case "base64":
			output = []byte(lzstring.CompressToBase64(units))
		case "bytes":
			output = lzstring.CompressToUint8Array(units)
		default:
			log.Fatalf("unknown format: %s", *format)
		}
	}
	if _, err := os.Stdout.Write(output); err != nil {
		log.Fatal(err)
	}
}
