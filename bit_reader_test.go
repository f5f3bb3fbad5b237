// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzstring

import "testing"

func TestBitReader(t *testing.T) {
	// Bits come out of each symbol most-significant first and accumulate
	// least-significant first, mirroring bitWriter.
	var br bitReader
	br.Init([]uint16{0xb}, 4)
	if got := br.ReadBits(4); got != 0xd {
		t.Errorf("value mismatch: got %#x, want %#x", got, 0xd)
	}

	// Values spanning symbol boundaries.
	var bw bitWriter
	bw.Init(6, identity)
	bw.WriteBits(5, 0x11)
	bw.WriteBits(13, 0x1eee)
	bw.Flush()
	br.Init(bw.syms, 6)
	if got := br.ReadBits(5); got != 0x11 {
		t.Errorf("value mismatch: got %#x, want %#x", got, 0x11)
	}
	if got := br.ReadBits(13); got != 0x1eee {
		t.Errorf("value mismatch: got %#x, want %#x", got, 0x1eee)
	}
}

func TestBitReaderEOS(t *testing.T) {
	readPast := func(syms []uint16, nbits, n uint) (err error) {
		defer errRecover(&err)
		var br bitReader
		br.Init(syms, nbits)
		br.ReadBits(n)
		return nil
	}

	if err := readPast([]uint16{0xffff}, 16, 16); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := readPast([]uint16{0xffff}, 16, 17); err != ErrUnexpectedEOS {
		t.Errorf("got %v, want %v", err, ErrUnexpectedEOS)
	}
	if err := readPast(nil, 16, 1); err != ErrUnexpectedEOS {
		t.Errorf("got %v, want %v", err, ErrUnexpectedEOS)
	}
}
