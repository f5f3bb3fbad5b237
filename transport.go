// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import "encoding/binary"

// The transport encodings below are bijections between the raw 16-bit
// symbol stream and a form that survives a particular carrier. Each pairs a
// bits-per-symbol value with a symbol mapping:
//
//	Transport  Bits/symbol  Carrier
//	raw        16           []uint16, possibly invalid UTF-16
//	UTF-16     15           valid UTF-16 string, symbols shifted by +32
//	URI        6            URI-safe text
//	Base64     6            Base64 text, '='-padded to a multiple of 4
//	bytes      16           big-endian byte pairs

// CompressToUTF16 compresses data into a valid UTF-16 string. Every symbol
// is shifted into the range [32, 32800) and a trailing space sentinel is
// always appended, even when the final symbol already encodes as a space.
func CompressToUTF16(data []uint16) string {
	syms := compress(data, 15, func(v uint32) uint16 { return uint16(v + 32) })
	syms = append(syms, ' ')
	return DecodeUTF16(syms)
}

// DecompressFromUTF16 decompresses a string produced by CompressToUTF16.
func DecompressFromUTF16(s string) ([]uint16, error) {
	units := EncodeUTF16(s)
	syms := make([]uint16, len(units))
	for i, u := range units {
		if u < 32 {
			return nil, ErrInvalidSymbol
		}
		syms[i] = u - 32
	}
	return decompress(syms, 15)
}

// CompressToEncodedURIComponent compresses data into text that is safe to
// embed in a URI component without escaping.
func CompressToEncodedURIComponent(data []uint16) string {
	syms := compress(data, 6, func(v uint32) uint16 { return uint16(uriKey[v]) })
	return asciiString(syms)
}

// DecompressFromEncodedURIComponent decompresses a string produced by
// CompressToEncodedURIComponent. Spaces are treated as '+', which URI
// transports frequently substitute.
func DecompressFromEncodedURIComponent(s string) ([]uint16, error) {
	syms := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			c = '+'
		}
		v := uriLUT[c]
		if v == invalidSym {
			return nil, ErrInvalidSymbol
		}
		syms[i] = uint16(v)
	}
	return decompress(syms, 6)
}

// CompressToBase64 compresses data into Base64 text, right-padded with '='
// to a multiple of four characters.
func CompressToBase64(data []uint16) string {
	syms := compress(data, 6, func(v uint32) uint16 { return uint16(base64Key[v]) })
	b := make([]byte, len(syms), len(syms)+3)
	for i, s := range syms {
		b[i] = byte(s)
	}
	for len(b)%4 > 0 {
		b = append(b, '=')
	}
	return string(b)
}

// DecompressFromBase64 decompresses a string produced by CompressToBase64.
// Pad characters map to index 64, which reads as zero bits under the 6-bit
// mask and so never perturbs the code stream.
func DecompressFromBase64(s string) ([]uint16, error) {
	syms := make([]uint16, len(s))
	for i := 0; i < len(s); i++ {
		v := base64LUT[s[i]]
		if v == invalidSym {
			return nil, ErrInvalidSymbol
		}
		syms[i] = uint16(v)
	}
	return decompress(syms, 6)
}

// CompressToUint8Array compresses data into a byte array, splitting each
// 16-bit symbol into two bytes big-endian.
func CompressToUint8Array(data []uint16) []byte {
	syms := Compress(data)
	b := make([]byte, 2*len(syms))
	for i, s := range syms {
		binary.BigEndian.PutUint16(b[2*i:], s)
	}
	return b
}

// DecompressFromUint8Array decompresses a byte array produced by
// CompressToUint8Array. Odd-length input is rejected.
func DecompressFromUint8Array(data []byte) ([]uint16, error) {
	if len(data)%2 > 0 {
		return nil, ErrInvalidSymbol
	}
	syms := make([]uint16, len(data)/2)
	for i := range syms {
		syms[i] = binary.BigEndian.Uint16(data[2*i:])
	}
	return decompress(syms, 16)
}

// asciiString converts transport symbols known to be ASCII into a string.
func asciiString(syms []uint16) string {
	b := make([]byte, len(syms))
	for i, s := range syms {
		b[i] = byte(s)
	}
	return string(b)
}
