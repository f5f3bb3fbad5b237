// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

// bitWriter packs a sequence of variable-width codes into a stream of
// fixed-width transport symbols. The accumulator fills most-significant bit
// first, while multi-bit values are emitted least-significant bit first.
// Both orderings are part of the wire format.
type bitWriter struct {
	syms   []uint16            // Completed transport symbols
	val    uint32              // Bit accumulator
	pos    uint                // Number of bits currently in val
	nbits  uint                // Bits per transport symbol
	toChar func(uint32) uint16 // Maps a filled accumulator to a symbol
}

func (bw *bitWriter) Init(nbits uint, toChar func(uint32) uint16) {
	bw.syms = bw.syms[:0]
	bw.val, bw.pos = 0, 0
	bw.nbits = nbits
	bw.toChar = toChar
}

// WriteBit shifts a single bit into the accumulator, emitting a transport
// symbol whenever the accumulator fills.
func (bw *bitWriter) WriteBit(b uint32) {
	bw.val = bw.val<<1 | b
	if bw.pos == bw.nbits-1 {
		bw.syms = append(bw.syms, bw.toChar(bw.val))
		bw.val, bw.pos = 0, 0
	} else {
		bw.pos++
	}
}

// WriteBits emits the low n bits of v, least-significant bit first.
func (bw *bitWriter) WriteBits(n uint, v uint32) {
	for i := uint(0); i < n; i++ {
		bw.WriteBit(v & 1)
		v >>= 1
	}
}

// Flush zero-pads the accumulator until exactly one more transport symbol
// has been emitted, even if that symbol is all padding.
func (bw *bitWriter) Flush() {
	cnt := len(bw.syms)
	for len(bw.syms) == cnt {
		bw.WriteBit(0)
	}
}
