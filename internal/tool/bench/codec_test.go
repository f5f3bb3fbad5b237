// Copyright 2018, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"fmt"
	"testing"
)

// TestCodecs tests that the output of each registered codec's encoder is a
// valid input for its own decoder on every synthetic corpus.
func TestCodecs(t *testing.T) {
	for _, corpus := range Corpora {
		data := TestData(corpus, 1e5)
		t.Run(fmt.Sprintf("Corpus:%v", corpus), func(t *testing.T) {
			for name, c := range Codecs {
				name, c := name, c
				t.Run(fmt.Sprintf("Codec:%v", name), func(t *testing.T) {
					t.Parallel()
					output, err := c.Decode(c.Encode(data))
					if err != nil {
						t.Fatalf("unexpected Decode error: %v", err)
					}
					if !bytes.Equal(output, data) {
						t.Error("data mismatch")
					}
				})
			}
		})
	}
}

func TestDataDeterminism(t *testing.T) {
	for _, corpus := range Corpora {
		if !bytes.Equal(TestData(corpus, 1e4), TestData(corpus, 1e4)) {
			t.Errorf("corpus %v is not deterministic", corpus)
		}
	}
}
