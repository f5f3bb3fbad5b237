// Copyright 2018, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"compress/flate"
	"io/ioutil"

	"github.com/dsnet/lzstring"
	kpflate "github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

func init() {
	Register("lzstring", Codec{
		Encode: func(b []byte) []byte {
			return lzstring.CompressToUint8Array(widen(b))
		},
		Decode: func(b []byte) ([]byte, error) {
			units, err := lzstring.DecompressFromUint8Array(b)
			if err != nil {
				return nil, err
			}
			return narrow(units), nil
		},
	})

	Register("std-flate", Codec{
		Encode: func(b []byte) []byte {
			buf := new(bytes.Buffer)
			zw, err := flate.NewWriter(buf, flate.DefaultCompression)
			if err != nil {
				panic(err)
			}
			if _, err := zw.Write(b); err != nil {
				panic(err)
			}
			if err := zw.Close(); err != nil {
				panic(err)
			}
			return buf.Bytes()
		},
		Decode: func(b []byte) ([]byte, error) {
			zr := flate.NewReader(bytes.NewReader(b))
			defer zr.Close()
			return ioutil.ReadAll(zr)
		},
	})

	Register("kp-flate", Codec{
		Encode: func(b []byte) []byte {
			buf := new(bytes.Buffer)
			zw, err := kpflate.NewWriter(buf, kpflate.DefaultCompression)
			if err != nil {
				panic(err)
			}
			if _, err := zw.Write(b); err != nil {
				panic(err)
			}
			if err := zw.Close(); err != nil {
				panic(err)
			}
			return buf.Bytes()
		},
		Decode: func(b []byte) ([]byte, error) {
			zr := kpflate.NewReader(bytes.NewReader(b))
			defer zr.Close()
			return ioutil.ReadAll(zr)
		},
	})

	zstdEnc, err := zstd.NewWriter(nil)
	if err != nil {
		panic(err)
	}
	zstdDec, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	Register("kp-zstd", Codec{
		Encode: func(b []byte) []byte {
			return zstdEnc.EncodeAll(b, nil)
		},
		Decode: func(b []byte) ([]byte, error) {
			return zstdDec.DecodeAll(b, nil)
		},
	})

	Register("xz", Codec{
		Encode: func(b []byte) []byte {
			buf := new(bytes.Buffer)
			zw, err := xz.NewWriter(buf)
			if err != nil {
				panic(err)
			}
			if _, err := zw.Write(b); err != nil {
				panic(err)
			}
			if err := zw.Close(); err != nil {
				panic(err)
			}
			return buf.Bytes()
		},
		Decode: func(b []byte) ([]byte, error) {
			zr, err := xz.NewReader(bytes.NewReader(b))
			if err != nil {
				return nil, err
			}
			return ioutil.ReadAll(zr)
		},
	})
}

// widen maps each byte to one 16-bit code unit.
func widen(b []byte) []uint16 {
	s := make([]uint16, len(b))
	for i, c := range b {
		s[i] = uint16(c)
	}
	return s
}

// narrow maps code units known to be bytes back to bytes.
func narrow(s []uint16) []byte {
	b := make([]byte, len(s))
	for i, c := range s {
		b[i] = byte(c)
	}
	return b
}
