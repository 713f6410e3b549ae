// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keysched implements the key schedule shared by RC5 and RC6 with
// 32-bit words.
package keysched

import (
	"errors"
	"math/bits"

	"github.com/rcfamily/crypto/internal/words"
)

// Magic constants for 32-bit words, derived from e and the golden ratio.
const (
	P32 uint32 = 0xB7E15163
	Q32 uint32 = 0x9E3779B9
)

const mask = 8*words.Size - 1

// ErrTableSize is returned when a round-key table cannot hold even one
// round's worth of sub-keys.
var ErrTableSize = errors.New("the size of the round-key table must be at least 2")

// Expand fills s with the round keys derived from key.
//
// An empty key is accepted: the table is then a fixed permutation of the
// seed values and provides no secrecy.
func Expand(s []uint32, key []byte) error {
	if len(s) < 2 {
		return ErrTableSize
	}
	Init(s)
	return Mix(s, words.FromBytes(key, words.Size))
}

// Init seeds s with P32, P32+Q32, P32+2*Q32, ...
func Init(s []uint32) {
	if len(s) == 0 {
		return
	}
	s[0] = P32
	for i := 1; i < len(s); i++ {
		s[i] = s[i-1] + Q32
	}
}

// Mix runs the three-pass mixing of the key words l into the seeded table s.
// Both slices are overwritten.
func Mix(s, l []uint32) error {
	if len(s) < 2 {
		return ErrTableSize
	}
	n := len(s)
	if len(l) > n {
		n = len(l)
	}

	var a, b uint32
	i, j := 0, 0
	for k := 0; k < 3*n; k++ {
		a = bits.RotateLeft32(s[i]+a+b, 3)
		s[i] = a
		// Without key words b stays zero.
		if len(l) > 0 {
			b = bits.RotateLeft32(l[j]+a+b, int((a+b)&mask))
			l[j] = b
			j = (j + 1) % len(l)
		}
		i = (i + 1) % len(s)
	}
	return nil
}
