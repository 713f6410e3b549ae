// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rc5 implements the RC5 block cipher with 32-bit words, a 64-bit
// block, and 12 rounds by default (RC5-32/12/b), as described in Rivest's
// "The RC5 Encryption Algorithm".
//
// Keys may be 0 to 255 bytes long. An empty key is accepted but yields a
// fixed, key-independent permutation.
//
// The ECB helpers apply the block cipher to each block independently. ECB
// leaks repeated plaintext blocks and is not a secure mode.
package rc5 // import "github.com/rcfamily/crypto/rc5"

import (
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/rcfamily/crypto/internal/alias"
	"github.com/rcfamily/crypto/internal/keysched"
	"github.com/rcfamily/crypto/internal/words"
)

const (
	// BlockSize is the RC5 block size in bytes.
	BlockSize = 2 * words.Size

	// Rounds is the default number of rounds.
	Rounds = 12

	// MaxRounds is the largest round count NewCipherWithRounds accepts.
	MaxRounds = 255

	// MaxKeySize is the largest key size in bytes.
	MaxKeySize = 255
)

// Block is a single RC5 block as two words.
type Block [2]uint32

// KeySizeError is returned for keys longer than MaxKeySize bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rc5: invalid key size " + strconv.Itoa(int(k)) + ", the max size of key is " + strconv.Itoa(MaxKeySize)
}

// RoundsError is returned for round counts outside [0, MaxRounds].
type RoundsError int

func (r RoundsError) Error() string {
	return "rc5: invalid number of rounds " + strconv.Itoa(int(r))
}

var logger atomic.Value // *log.Logger

func init() {
	logger.Store(log.New(os.Stderr, "rc5: ", log.LstdFlags))
}

// SetLogger sets the logger used for advisory messages, such as the use of
// an empty key. A nil logger discards them. It is safe to call concurrently
// with NewCipher.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger.Store(l)
}

func currentLogger() *log.Logger {
	return logger.Load().(*log.Logger)
}

// Cipher is an instance of RC5 using a particular key. It is immutable and
// safe for concurrent use.
type Cipher struct {
	s []uint32 // 2*(rounds+1) round keys
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher returns a Cipher using Rounds rounds.
func NewCipher(key []byte) (*Cipher, error) {
	return NewCipherWithRounds(key, Rounds)
}

// NewCipherWithRounds returns a Cipher using the given number of rounds.
func NewCipherWithRounds(key []byte, rounds int) (*Cipher, error) {
	if len(key) > MaxKeySize {
		return nil, KeySizeError(len(key))
	}
	if rounds < 0 || rounds > MaxRounds {
		return nil, RoundsError(rounds)
	}
	if len(key) == 0 {
		currentLogger().Print("the length of the key is 0, no encryption is provided")
	}

	c := &Cipher{s: make([]uint32, 2*(rounds+1))}
	if err := keysched.Expand(c.s, key); err != nil {
		return nil, fmt.Errorf("rc5: %w", err)
	}
	return c, nil
}

// Rounds returns the number of rounds c applies.
func (c *Cipher) Rounds() int { return len(c.s)/2 - 1 }

// BlockSize returns BlockSize.
func (c *Cipher) BlockSize() int { return BlockSize }

// EncryptBlock encrypts the block src into dst. Dst and src may be the same.
func (c *Cipher) EncryptBlock(dst, src *Block) { encryptBlock(c.s, dst, src) }

// DecryptBlock decrypts the block src into dst. Dst and src may be the same.
func (c *Cipher) DecryptBlock(dst, src *Block) { decryptBlock(c.s, dst, src) }

// Encrypt encrypts the first block in src into dst.
// Dst and src must overlap entirely or not at all.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rc5: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rc5: output not full block")
	}
	if alias.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("rc5: invalid buffer overlap")
	}
	b := Block{binary.LittleEndian.Uint32(src[0:]), binary.LittleEndian.Uint32(src[4:])}
	encryptBlock(c.s, &b, &b)
	binary.LittleEndian.PutUint32(dst[0:], b[0])
	binary.LittleEndian.PutUint32(dst[4:], b[1])
}

// Decrypt decrypts the first block in src into dst.
// Dst and src must overlap entirely or not at all.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rc5: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rc5: output not full block")
	}
	if alias.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("rc5: invalid buffer overlap")
	}
	b := Block{binary.LittleEndian.Uint32(src[0:]), binary.LittleEndian.Uint32(src[4:])}
	decryptBlock(c.s, &b, &b)
	binary.LittleEndian.PutUint32(dst[0:], b[0])
	binary.LittleEndian.PutUint32(dst[4:], b[1])
}
