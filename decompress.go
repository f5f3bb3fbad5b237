// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

// decompressor consumes variable-width codes through a bitReader and
// rebuilds the dictionary the compressor grew, producing the original
// wide-char sequence.
type decompressor struct {
	dict      [][]uint16 // Code to wide-char entry
	numBits   uint       // Current code width
	enlargeIn uint32     // Code slots remaining before widening
	br        bitReader
}

func decompress(syms []uint16, nbits uint) (out []uint16, err error) {
	if len(syms) == 0 {
		return nil, nil
	}
	defer errRecover(&err)

	var zd decompressor
	zd.br.Init(syms, nbits)
	return zd.Decompress(), nil
}

// Decompress decodes the symbol stream.
// Corrupt or truncated streams cause a panic with one of the exported
// errors, recovered at the public API boundary.
func (zd *decompressor) Decompress() (out []uint16) {
	// Slots 0..2 hold the reserved codes and are never materialized into
	// output, but their indices participate in dictionary arithmetic. The
	// first learned entry must occupy slot 3.
	zd.dict = append(zd.dict[:0], nil, nil, nil)

	var x uint32
	switch first := zd.br.ReadBits(initCodeBits); first {
	case charCode:
		x = zd.br.ReadBits(8)
	case wideCharCode:
		x = zd.br.ReadBits(16)
	case closeCode:
		return nil
	default:
		panic(ErrInvalidFirstCode)
	}
	zd.dict = append(zd.dict, []uint16{uint16(x)})
	w := zd.dict[firstCode]
	out = append(out, uint16(x))

	// The first learned entry brings the live dictionary to four slots, so
	// the code width jumps straight to 3 bits without going through the
	// ordinary widening path. Required for wire compatibility.
	zd.numBits = initCodeBits + 1
	zd.enlargeIn = 1 << initCodeBits

	for {
		code := int(zd.br.ReadBits(zd.numBits))
		switch code {
		case charCode, wideCharCode:
			n := uint(8)
			if code == wideCharCode {
				n = 16
			}
			x := zd.br.ReadBits(n)
			zd.dict = append(zd.dict, []uint16{uint16(x)})
			code = len(zd.dict) - 1
			zd.enlargeIn--
		case closeCode:
			return out
		}
		if zd.enlargeIn == 0 {
			zd.enlargeIn = 1 << zd.numBits
			zd.numBits++
		}

		var entry []uint16
		switch {
		case code < len(zd.dict):
			entry = zd.dict[code]
		case code == len(zd.dict):
			// The KwKwK case: the referenced entry is the one being
			// defined, so it must be w plus its own first char.
			entry = appendSeq(w, w[0])
		default:
			panic(ErrInvalidReference)
		}
		out = append(out, entry...)

		zd.dict = append(zd.dict, appendSeq(w, entry[0]))
		zd.enlargeIn--
		w = entry
		// Mirrors the compressor's second countdown per emitted code.
		if zd.enlargeIn == 0 {
			zd.enlargeIn = 1 << zd.numBits
			zd.numBits++
		}
	}
}

// appendSeq returns a copy of w with c appended.
func appendSeq(w []uint16, c uint16) []uint16 {
	s := make([]uint16, len(w)+1)
	copy(s, w)
	s[len(w)] = c
	return s
}

// Decompress decompresses a raw stream of 16-bit transport symbols, as
// produced by Compress. An empty input decompresses to an empty sequence.
func Decompress(data []uint16) ([]uint16, error) {
	return decompress(data, 16)
}
