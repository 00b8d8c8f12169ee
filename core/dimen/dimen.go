// Package dimen implements pixel dimensions and their string notation.
//
/*
BSD License

Copyright (c) 2017–21, Norbert Pillmayer (norbert@pillmayer.com)

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */
package dimen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxSize is the default upper bound for any width or height.
const MaxSize = 65535

// Size is a width/height pair in pixels.
type Size struct {
	W, H int
}

// Stringer implementation, using the "WxH" notation.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// ParseSize parses a string in notation "WxH".
// Either component may be missing ("10x", "x20", "10"); missing or
// unparsable components are returned as 0 and flagged in ok.
// Negative values are clamped to 0.
func ParseSize(s string) (size Size, okW, okH bool) {
	w, h, okW, okH := parsePair(s, 'x')
	return Size{W: ClampLow(w), H: ClampLow(h)}, okW, okH
}

// ParseMargin parses a margin in notation "HxV". A single number sets
// both components.
func ParseMargin(s string) (horiz, vert int) {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "xX") {
		n, ok := ParseInt(s)
		if !ok {
			return 0, 0
		}
		return ClampLow(n), ClampLow(n)
	}
	horiz, vert, _, _ = parsePair(s, 'x')
	return ClampLow(horiz), ClampLow(vert)
}

// ParseIntPair parses two integers separated by sep, as in "0:1000".
func ParseIntPair(s string, sep byte) (a, b int, okA, okB bool) {
	return parsePair(s, sep)
}

func parsePair(s string, sep byte) (a, b int, okA, okB bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	i := strings.IndexByte(strings.ToLower(s), sep)
	if i < 0 {
		a, okA = ParseInt(s)
		return
	}
	a, okA = ParseInt(s[:i])
	b, okB = ParseInt(s[i+1:])
	return
}

// ParseInt parses a decimal integer, tolerating surrounding white space.
func ParseInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseFloat parses a decimal floating point number.
func ParseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// --- Character units -------------------------------------------------------

// Character units are 1/4 of the average character width horizontally and
// 1/8 of the character height vertically.

// HorizToRaster converts horizontal character units to pixels.
func HorizToRaster(units, charWidth int) int {
	return (units * charWidth) / 4
}

// VertToRaster converts vertical character units to pixels.
func VertToRaster(units, charHeight int) int {
	return (units * charHeight) / 8
}

// RasterToHoriz converts pixels to horizontal character units.
func RasterToHoriz(px, charWidth int) int {
	if charWidth <= 0 {
		return 0
	}
	return (px * 4) / charWidth
}

// RasterToVert converts pixels to vertical character units.
func RasterToVert(px, charHeight int) int {
	if charHeight <= 0 {
		return 0
	}
	return (px * 8) / charHeight
}

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ClampLow returns d, or 0 if d is negative.
func ClampLow(d int) int {
	if d < 0 {
		return 0
	}
	return d
}

// Clamp restricts d to [lo,hi]. If hi < lo, lo wins.
func Clamp(d, lo, hi int) int {
	if d > hi {
		d = hi
	}
	if d < lo {
		d = lo
	}
	return d
}

// CeilDiv returns ⌈a/b⌉ for non-negative a and positive b.
func CeilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
