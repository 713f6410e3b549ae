// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alias

import "testing"

func TestInexactOverlap(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 16)
	for _, tt := range []struct {
		name string
		x, y []byte
		want bool
	}{
		{"same", a[:16], a[:16], false},
		{"disjoint", a[:16], b, false},
		{"adjacent", a[:16], a[16:], false},
		{"x ahead", a[1:17], a[:16], true},
		{"y ahead", a[:16], a[15:31], true},
		{"empty", a[:0], a[:0], false},
	} {
		if got := InexactOverlap(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
