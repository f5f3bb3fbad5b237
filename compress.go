// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

// compressor drives LZW dictionary growth over a wide-char input and emits
// variable-width codes through a bitWriter.
//
// The dictionary is keyed on the byte encoding of a wide-char sequence.
// The current prefix w is tracked as an index range into the input, so the
// hot "extend" path performs no allocations: each lookup re-encodes w into a
// reusable scratch buffer, and a key string is materialized only when a new
// entry is inserted.
type compressor struct {
	dict      map[string]uint32 // Wide-char sequence to assigned code
	pending   map[uint16]bool   // Single chars awaiting literal emission
	dictSize  uint32            // Next code to assign
	numBits   uint              // Current code width
	enlargeIn uint32            // Code slots remaining before widening
	bw        bitWriter
	key       []byte // Reusable scratch buffer for dictionary keys
}

func (zc *compressor) Init(nbits uint, toChar func(uint32) uint16) {
	zc.dict = make(map[string]uint32)
	zc.pending = make(map[uint16]bool)
	zc.dictSize = firstCode
	zc.numBits = initCodeBits
	zc.enlargeIn = 2
	zc.bw.Init(nbits, toChar)
}

// Compress encodes data as a stream of transport symbols.
func (zc *compressor) Compress(data []uint16) []uint16 {
	ws, we := 0, 0 // Current prefix w is data[ws:we]
	for i := range data {
		if _, ok := zc.lookup(data[i : i+1]); !ok {
			zc.insert(data[i : i+1])
			zc.pending[data[i]] = true
		}
		if _, ok := zc.lookup(data[ws : i+1]); ok {
			we = i + 1 // Extend w in place
		} else {
			zc.produce(data[ws:we])
			zc.insert(data[ws : i+1])
			ws, we = i, i+1
		}
	}
	if we > ws {
		zc.produce(data[ws:we])
	}
	zc.bw.WriteBits(zc.numBits, closeCode)
	zc.bw.Flush()
	return zc.bw.syms
}

// produce emits the code for the prefix w. The first time a single-char
// entry is emitted, its payload is written as a literal behind a charCode or
// wideCharCode prefix; afterwards only the learned code is written.
func (zc *compressor) produce(w []uint16) {
	if c := w[0]; len(w) == 1 && zc.pending[c] {
		if c < 256 {
			zc.bw.WriteBits(zc.numBits, charCode)
			zc.bw.WriteBits(8, uint32(c))
		} else {
			zc.bw.WriteBits(zc.numBits, wideCharCode)
			zc.bw.WriteBits(16, uint32(c))
		}
		delete(zc.pending, c)
		zc.enlarge()
	} else {
		code, _ := zc.lookup(w)
		zc.bw.WriteBits(zc.numBits, code)
	}
	// Both branches count down a second time. The double decrement is part
	// of the wire format.
	zc.enlarge()
}

// enlarge counts down the remaining code slots, widening the code width when
// the countdown reaches zero.
func (zc *compressor) enlarge() {
	zc.enlargeIn--
	if zc.enlargeIn == 0 {
		zc.enlargeIn = 1 << zc.numBits
		zc.numBits++
	}
}

// seqKey encodes s into the reusable key buffer.
func (zc *compressor) seqKey(s []uint16) []byte {
	b := zc.key[:0]
	for _, c := range s {
		b = append(b, byte(c), byte(c>>8))
	}
	zc.key = b
	return b
}

func (zc *compressor) lookup(s []uint16) (uint32, bool) {
	code, ok := zc.dict[string(zc.seqKey(s))]
	return code, ok
}

func (zc *compressor) insert(s []uint16) {
	zc.dict[string(zc.seqKey(s))] = zc.dictSize
	zc.dictSize++
}

func compress(data []uint16, nbits uint, toChar func(uint32) uint16) []uint16 {
	var zc compressor
	zc.Init(nbits, toChar)
	return zc.Compress(data)
}

// Compress compresses a sequence of 16-bit code units into the raw stream of
// 16-bit transport symbols. The output is not guaranteed to be valid UTF-16;
// use CompressToUTF16 for a transport-safe string.
func Compress(data []uint16) []uint16 {
	return compress(data, 16, func(v uint32) uint16 { return uint16(v) })
}
