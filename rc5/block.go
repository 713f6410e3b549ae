// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rc5

import "math/bits"

// mask reduces a word to a rotation amount.
const mask = 31

// encryptBlock applies len(s)/2-1 rounds to src and writes the result to dst.
func encryptBlock(s []uint32, dst, src *Block) {
	rounds := len(s)/2 - 1
	_ = s[2*rounds+1] // bounds check elimination hint

	a := src[0] + s[0]
	b := src[1] + s[1]
	for i := 1; i <= rounds; i++ {
		a = bits.RotateLeft32(a^b, int(b&mask)) + s[2*i]
		b = bits.RotateLeft32(b^a, int(a&mask)) + s[2*i+1]
	}
	dst[0], dst[1] = a, b
}

// decryptBlock inverts encryptBlock. Each rotation amount comes from the
// word updated just before it.
func decryptBlock(s []uint32, dst, src *Block) {
	rounds := len(s)/2 - 1
	_ = s[2*rounds+1] // bounds check elimination hint

	a, b := src[0], src[1]
	for i := rounds; i >= 1; i-- {
		b = bits.RotateLeft32(b-s[2*i+1], -int(a&mask)) ^ a
		a = bits.RotateLeft32(a-s[2*i], -int(b&mask)) ^ b
	}
	dst[0], dst[1] = a-s[0], b-s[1]
}
