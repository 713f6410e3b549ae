// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package words

import (
	"bytes"
	"testing"
)

var fromBytesTests = []struct {
	in   []byte
	n    int
	want []uint32
}{
	{nil, Size, []uint32{}},
	{[]byte{0x12, 0x34, 0x56, 0x78}, Size, []uint32{0x78563412}},
	{[]byte{0x12, 0x34, 0x56}, Size, []uint32{0x56341200}},
	{[]byte{0x12}, Size, []uint32{0x12000000}},
	{[]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}, Size, []uint32{0x33221100, 0x77665544}},
	{[]byte{0x00, 0x11, 0x22, 0x33, 0x44}, Size, []uint32{0x33221100, 0x44000000}},
	{[]byte{0x12, 0x34, 0x56}, 2, []uint32{0x3412, 0x5600}},
	{[]byte{0x12, 0x34}, 1, []uint32{0x12, 0x34}},
}

func TestFromBytes(t *testing.T) {
	for i, tt := range fromBytesTests {
		got := FromBytes(tt.in, tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("#%d: got %d words, want %d", i, len(got), len(tt.want))
			continue
		}
		for j := range got {
			if got[j] != tt.want[j] {
				t.Errorf("#%d: word %d = %#08x, want %#08x", i, j, got[j], tt.want[j])
			}
		}
	}
}

func TestToBytes(t *testing.T) {
	got := ToBytes([]uint32{0x12345678}, Size)
	want := []byte{0x78, 0x56, 0x34, 0x12}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
	if got := ToBytes(nil, Size); len(got) != 0 {
		t.Errorf("ToBytes(nil) = % x, want empty", got)
	}
	got = ToBytes([]uint32{0x3412, 0x5600}, 2)
	want = []byte{0x12, 0x34, 0x00, 0x56}
	if !bytes.Equal(got, want) {
		t.Errorf("2-byte words: got % x, want % x", got, want)
	}
}

func TestAppendBytes(t *testing.T) {
	dst := []byte{0xaa}
	got := AppendBytes(dst, Size, 0x33221100, 0x77665544)
	want := []byte{0xaa, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	for n := 1; n <= Size; n++ {
		for l := 0; l < 3*Size; l++ {
			in := make([]byte, l)
			for i := range in {
				in[i] = byte(i*7 + 1)
			}
			out := ToBytes(FromBytes(in, n), n)
			padded := (l + n - 1) / n * n
			if len(out) != padded {
				t.Fatalf("n=%d len=%d: got %d bytes, want %d", n, l, len(out), padded)
			}
			if l%n == 0 {
				if !bytes.Equal(out, in) {
					t.Errorf("n=%d len=%d: got % x, want % x", n, l, out, in)
				}
			}
		}
	}
}

func TestIterRestart(t *testing.T) {
	it := New([]byte{1, 2, 3, 4, 5, 6}, Size)
	if it.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", it.Len())
	}
	var first []uint32
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		first = append(first, w)
	}
	if _, ok := it.Next(); ok {
		t.Fatal("Next() after exhaustion returned a word")
	}
	it.Reset()
	for i := range first {
		w, ok := it.Next()
		if !ok || w != first[i] {
			t.Errorf("after Reset word %d = %#08x, %v; want %#08x", i, w, ok, first[i])
		}
	}
	if want := []uint32{0x04030201, 0x06050000}; first[0] != want[0] || first[1] != want[1] {
		t.Errorf("got %#08x, want %#08x", first, want)
	}
}

func TestInvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, Size + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New with n=%d did not panic", n)
				}
			}()
			New([]byte{1}, n)
		}()
	}
}

func TestUnalignedRoundTrip(t *testing.T) {
	got := ToBytes(FromBytes([]byte{0x12, 0x34, 0x56}, Size), Size)
	want := []byte{0x00, 0x12, 0x34, 0x56}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", got, want)
	}
}
