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

// PieceType identifies one of the three Barca piece types. Mouse moves like a
// rook, Lion like a bishop, Elephant like a queen.
type PieceType uint8

const (
	PtNone PieceType = iota
	Mouse
	Lion
	Elephant
	PtLength
)

var pieceTypeToString = [PtLength]string{"None", "Mouse", "Lion", "Elephant"}
var pieceTypeToChar = [PtLength]string{"-", "M", "L", "E"}

// IsValid reports whether pt is one of Mouse, Lion, Elephant.
func (pt PieceType) IsValid() bool {
	return pt == Mouse || pt == Lion || pt == Elephant
}

// IsOrthogonalSlider reports whether pt moves along ranks/files (Mouse, Elephant).
func (pt PieceType) IsOrthogonalSlider() bool {
	return pt == Mouse || pt == Elephant
}

// IsDiagonalSlider reports whether pt moves along diagonals (Lion, Elephant).
func (pt PieceType) IsDiagonalSlider() bool {
	return pt == Lion || pt == Elephant
}

// ScaredOf returns the piece type that threatens pt in the 3-cycle predator
// relation: Lion is scared of Elephant, Elephant of Mouse, Mouse of Lion.
func (pt PieceType) ScaredOf() PieceType {
	switch pt {
	case Lion:
		return Elephant
	case Elephant:
		return Mouse
	case Mouse:
		return Lion
	default:
		return PtNone
	}
}

// Scares returns the piece type that pt threatens in the 3-cycle predator
// relation: Lion scares Mouse, Elephant scares Lion, Mouse scares Elephant.
func (pt PieceType) Scares() PieceType {
	switch pt {
	case Lion:
		return Mouse
	case Elephant:
		return Lion
	case Mouse:
		return Elephant
	default:
		return PtNone
	}
}

// String returns the full name of the piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

// Char returns the single-character abbreviation of the piece type.
func (pt PieceType) Char() string {
	return pieceTypeToChar[pt]
}
