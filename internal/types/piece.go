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

// Piece packs a Color and a PieceType into a single "herd" identity.
// Bit 2 carries the color, bits 0-1 carry the piece type.
type Piece uint8

const (
	PieceNone Piece = 0
)

// MakePiece combines a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(pt) | Piece(c)<<2
}

// TypeOf extracts the PieceType.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 0x3)
}

// ColorOf extracts the Color.
func (p Piece) ColorOf() Color {
	return Color((p >> 2) & 0x1)
}

// IsValid reports whether p encodes a real piece.
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid()
}

// PieceFromChar parses a single character into a Piece, following the
// position-string convention: M/L/E white, m/l/e black, '.' empty. Unknown
// characters yield PieceNone and false.
func PieceFromChar(c byte) (Piece, bool) {
	switch c {
	case 'M':
		return MakePiece(White, Mouse), true
	case 'L':
		return MakePiece(White, Lion), true
	case 'E':
		return MakePiece(White, Elephant), true
	case 'm':
		return MakePiece(Black, Mouse), true
	case 'l':
		return MakePiece(Black, Lion), true
	case 'e':
		return MakePiece(Black, Elephant), true
	case '.':
		return PieceNone, true
	default:
		return PieceNone, false
	}
}

// Char renders the piece as its single-character position-string form.
func (p Piece) Char() string {
	if p == PieceNone {
		return "."
	}
	c := p.TypeOf().Char()
	if p.ColorOf() == Black {
		return string(c[0] + ('a' - 'A'))
	}
	return c
}

// String renders a human-readable description, e.g. "White Mouse".
func (p Piece) String() string {
	if p == PieceNone {
		return "None"
	}
	colorName := "White"
	if p.ColorOf() == Black {
		colorName = "Black"
	}
	return colorName + " " + p.TypeOf().String()
}
