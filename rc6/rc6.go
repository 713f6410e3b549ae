// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rc6 implements the RC6 block cipher with 32-bit words, a 128-bit
// block, and 20 rounds (RC6-32/20/b).
//
// RC6 was derived from RC5 for the AES competition and shares its key
// schedule. Keys may be 0 to 255 bytes long; 16, 24 and 32 bytes are the
// common sizes.
package rc6 // import "github.com/rcfamily/crypto/rc6"

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"math/bits"
	"strconv"

	"github.com/rcfamily/crypto/internal/alias"
	"github.com/rcfamily/crypto/internal/keysched"
	"github.com/rcfamily/crypto/internal/words"
)

// BlockSize is the RC6 block size in bytes.
const BlockSize = 16

const (
	rounds    = 20
	tableSize = 2*rounds + 4
)

// KeySizeError is returned for keys longer than 255 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rc6: invalid key size " + strconv.Itoa(int(k))
}

// Cipher is an instance of RC6 using a particular key.
type Cipher struct {
	s [tableSize]uint32
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher returns a Cipher ready to use as a block cipher.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) > 255 {
		return nil, KeySizeError(len(key))
	}
	// The key is zero-padded at the end to whole little-endian words, and
	// RC6 always mixes at least one word.
	n := (len(key) + words.Size - 1) / words.Size
	if n == 0 {
		n = 1
	}
	padded := make([]byte, n*words.Size)
	copy(padded, key)
	l := make([]uint32, n)
	for i := range l {
		l[i] = binary.LittleEndian.Uint32(padded[words.Size*i:])
	}

	c := new(Cipher)
	keysched.Init(c.s[:])
	if err := keysched.Mix(c.s[:], l); err != nil {
		return nil, fmt.Errorf("rc6: %w", err)
	}
	return c, nil
}

// BlockSize returns BlockSize.
func (c *Cipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block in src into dst.
// Dst and src must overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rc6: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rc6: output not full block")
	}
	if alias.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("rc6: invalid buffer overlap")
	}
	a := binary.LittleEndian.Uint32(src[0:])
	b := binary.LittleEndian.Uint32(src[4:])
	d := binary.LittleEndian.Uint32(src[12:])
	cc := binary.LittleEndian.Uint32(src[8:])

	b += c.s[0]
	d += c.s[1]
	for i := 1; i <= rounds; i++ {
		t := bits.RotateLeft32(b*(2*b+1), 5)
		u := bits.RotateLeft32(d*(2*d+1), 5)
		a = bits.RotateLeft32(a^t, int(u&31)) + c.s[2*i]
		cc = bits.RotateLeft32(cc^u, int(t&31)) + c.s[2*i+1]
		a, b, cc, d = b, cc, d, a
	}
	a += c.s[2*rounds+2]
	cc += c.s[2*rounds+3]

	binary.LittleEndian.PutUint32(dst[0:], a)
	binary.LittleEndian.PutUint32(dst[4:], b)
	binary.LittleEndian.PutUint32(dst[8:], cc)
	binary.LittleEndian.PutUint32(dst[12:], d)
}

// Decrypt decrypts the first block in src into dst.
// Dst and src must overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rc6: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rc6: output not full block")
	}
	if alias.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("rc6: invalid buffer overlap")
	}
	a := binary.LittleEndian.Uint32(src[0:])
	b := binary.LittleEndian.Uint32(src[4:])
	cc := binary.LittleEndian.Uint32(src[8:])
	d := binary.LittleEndian.Uint32(src[12:])

	cc -= c.s[2*rounds+3]
	a -= c.s[2*rounds+2]
	for i := rounds; i >= 1; i-- {
		a, b, cc, d = d, a, b, cc
		u := bits.RotateLeft32(d*(2*d+1), 5)
		t := bits.RotateLeft32(b*(2*b+1), 5)
		cc = bits.RotateLeft32(cc-c.s[2*i+1], -int(t&31)) ^ u
		a = bits.RotateLeft32(a-c.s[2*i], -int(u&31)) ^ t
	}
	d -= c.s[1]
	b -= c.s[0]

	binary.LittleEndian.PutUint32(dst[0:], a)
	binary.LittleEndian.PutUint32(dst[4:], b)
	binary.LittleEndian.PutUint32(dst[8:], cc)
	binary.LittleEndian.PutUint32(dst[12:], d)
}
