// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package words converts between byte strings and the 32-bit words the RC
// family of ciphers operates on.
//
// Words are little-endian. When the input length is not a multiple of the
// chunk size, the trailing chunk is placed in the high-order bytes of its
// word and the missing low-order bytes are zero. Converting back therefore
// restores the input exactly only for aligned lengths; otherwise the last
// word comes back with its zero bytes in front of the trailing chunk.
package words

// Size is the number of bytes in a word.
const Size = 4

// Iter is a lazy, restartable sequence of the words in a byte string.
type Iter struct {
	b   []byte
	n   int
	off int
}

// New returns an Iter over b that assembles one word from every n bytes.
// It panics if n is not in the range [1, Size].
//
// For n < Size the bytes fill the low n bytes of the word, so [12 34] with
// n = 2 gives 0x3412. This deliberately differs from swapping the bytes of
// the whole 32-bit word, which would give 0x34120000 and could not be
// converted back with AppendBytes. The ciphers only use n = Size, where both
// agree.
func New(b []byte, n int) *Iter {
	checkSize(n)
	return &Iter{b: b, n: n}
}

// Len returns the total number of words in the sequence.
func (it *Iter) Len() int {
	return (len(it.b) + it.n - 1) / it.n
}

// Next returns the next word and true, or zero and false once the sequence
// is exhausted.
func (it *Iter) Next() (uint32, bool) {
	if it.off >= len(it.b) {
		return 0, false
	}
	end := it.off + it.n
	if end > len(it.b) {
		end = len(it.b)
	}
	w := assemble(it.b[it.off:end], it.n)
	it.off = end
	return w, true
}

// Reset rewinds the sequence to its first word.
func (it *Iter) Reset() {
	it.off = 0
}

// FromBytes returns all the words of b at once. See New.
func FromBytes(b []byte, n int) []uint32 {
	it := New(b, n)
	ws := make([]uint32, 0, it.Len())
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		ws = append(ws, w)
	}
	return ws
}

// AppendBytes appends n bytes per word to dst, least-significant byte first,
// and returns the extended buffer.
func AppendBytes(dst []byte, n int, ws ...uint32) []byte {
	checkSize(n)
	for _, w := range ws {
		for i := 0; i < n; i++ {
			dst = append(dst, byte(w>>(8*uint(i))))
		}
	}
	return dst
}

// ToBytes returns the len(ws)*n bytes of ws. See AppendBytes.
func ToBytes(ws []uint32, n int) []byte {
	return AppendBytes(make([]byte, 0, len(ws)*n), n, ws...)
}

// assemble builds a word from a chunk of at most n bytes. Byte i of a chunk
// of length k lands at byte position i+n-k.
func assemble(chunk []byte, n int) uint32 {
	var w uint32
	shift := uint(n - len(chunk))
	for i, c := range chunk {
		w |= uint32(c) << (8 * (uint(i) + shift))
	}
	return w
}

func checkSize(n int) {
	if n < 1 || n > Size {
		panic("words: invalid word size")
	}
}
