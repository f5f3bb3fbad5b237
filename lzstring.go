// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzstring implements the lz-string compressed data format.
//
// The format is a variant of LZW that operates on sequences of 16-bit code
// units and packs variable-width dictionary codes into a stream of B-bit
// transport symbols. Alternate transport encodings re-encode the raw symbol
// stream so that compressed data can be carried safely through UTF-16
// strings, URI components, Base64 text, or byte arrays.
//
// The codec makes no assumption that its input or output is valid UTF-16;
// code units are treated as opaque 16-bit values. Compression never fails.
// Decompression fails on any corrupted or truncated stream.
//
// References:
//	https://pieroxy.net/blog/pages/lz-string/index.html
//	https://github.com/pieroxy/lz-string
package lzstring

import (
	"runtime"
	"unicode/utf16"
)

// Three codes are reserved at the start of every stream. Learned dictionary
// entries are assigned codes monotonically starting at firstCode.
const (
	charCode     = 0 // Next 8 bits are a literal code unit
	wideCharCode = 1 // Next 16 bits are a literal code unit
	closeCode    = 2 // End of stream
	firstCode    = 3

	initCodeBits = 2 // Width of the leading code in every stream
)

// Transport alphabets. Both are 64 entries; the Base64 alphabet carries the
// pad character '=' as a 65th entry so that padded input decodes as zero bits.
const (
	uriKey    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+-$"
	base64Key = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="
)

// invalidSym marks bytes outside a transport alphabet.
const invalidSym = 0xff

var (
	uriLUT    [256]byte
	base64LUT [256]byte
)

func init() {
	for i := range uriLUT {
		uriLUT[i] = invalidSym
		base64LUT[i] = invalidSym
	}
	for i := 0; i < len(uriKey); i++ {
		uriLUT[uriKey[i]] = byte(i)
	}
	for i := 0; i < len(base64Key); i++ {
		base64LUT[base64Key[i]] = byte(i)
	}
}

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "lzstring: " + string(e) }

var (
	// ErrUnexpectedEOS is returned when the bit stream runs out of
	// transport symbols in the middle of a code.
	ErrUnexpectedEOS error = Error("unexpected end of stream")

	// ErrInvalidFirstCode is returned when the leading code of a stream is
	// not a literal prefix or the close code.
	ErrInvalidFirstCode error = Error("invalid first code")

	// ErrInvalidReference is returned when a decoded code references a
	// dictionary entry that cannot exist yet.
	ErrInvalidReference error = Error("invalid dictionary reference")

	// ErrInvalidSymbol is returned when transport input contains a
	// character outside the configured alphabet, or a byte array has odd
	// length.
	ErrInvalidSymbol error = Error("invalid transport symbol")
)

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// EncodeUTF16 converts s into its sequence of UTF-16 code units.
func EncodeUTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// DecodeUTF16 interprets units as UTF-16 code units and converts them to a
// string. Unpaired surrogates become U+FFFD.
func DecodeUTF16(units []uint16) string {
	return string(utf16.Decode(units))
}
