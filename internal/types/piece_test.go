/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaredOfIsA3Cycle(t *testing.T) {
	assert.Equal(t, Elephant, Lion.ScaredOf())
	assert.Equal(t, Mouse, Elephant.ScaredOf())
	assert.Equal(t, Lion, Mouse.ScaredOf())

	pt := Mouse
	for i := 0; i < 3; i++ {
		pt = pt.ScaredOf()
	}
	assert.Equal(t, Mouse, pt)
}

func TestMakePieceRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for _, pt := range []PieceType{Mouse, Lion, Elephant} {
			p := MakePiece(c, pt)
			assert.Equal(t, c, p.ColorOf())
			assert.Equal(t, pt, p.TypeOf())
			assert.True(t, p.IsValid())
		}
	}
}

func TestPieceFromCharRoundTrip(t *testing.T) {
	cases := map[byte]Piece{
		'M': MakePiece(White, Mouse),
		'L': MakePiece(White, Lion),
		'E': MakePiece(White, Elephant),
		'm': MakePiece(Black, Mouse),
		'l': MakePiece(Black, Lion),
		'e': MakePiece(Black, Elephant),
	}
	for ch, want := range cases {
		got, ok := PieceFromChar(ch)
		assert.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, string(ch), got.Char())
	}

	none, ok := PieceFromChar('.')
	assert.True(t, ok)
	assert.Equal(t, PieceNone, none)

	_, ok = PieceFromChar('?')
	assert.False(t, ok)
}

func TestColorFlip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
}
