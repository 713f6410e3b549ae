// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rc5

import "github.com/rcfamily/crypto/internal/words"

// EncryptECB encrypts plaintext in electronic codebook mode and returns the
// ciphertext, which is len(plaintext) rounded up to a multiple of BlockSize.
//
// Unaligned input is padded with zeros: a trailing partial word gets zero
// bytes in front of its bytes and a missing second word is zero. There is no
// length prefix, so callers that need the exact plaintext back must keep
// track of its length and layout.
//
// Every block is encrypted independently, with no chaining and no IV, so
// equal plaintext blocks produce equal ciphertext blocks. Do not use ECB to
// protect real data.
func (c *Cipher) EncryptECB(plaintext []byte) []byte {
	return c.cryptECB(plaintext, encryptBlock)
}

// DecryptECB reverses EncryptECB. Input that is not a multiple of BlockSize
// is zero-padded the same way.
func (c *Cipher) DecryptECB(ciphertext []byte) []byte {
	return c.cryptECB(ciphertext, decryptBlock)
}

func (c *Cipher) cryptECB(in []byte, fn func(s []uint32, dst, src *Block)) []byte {
	it := words.New(in, words.Size)
	out := make([]byte, 0, (len(in)+BlockSize-1)/BlockSize*BlockSize)
	for {
		var blk Block
		var ok bool
		if blk[0], ok = it.Next(); !ok {
			break
		}
		// A missing second word is zero.
		blk[1], _ = it.Next()
		fn(c.s, &blk, &blk)
		out = words.AppendBytes(out, words.Size, blk[0], blk[1])
	}
	return out
}
