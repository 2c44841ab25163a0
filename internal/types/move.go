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

// Move packs a from/to square pair into a 16-bit value:
//  BITMAP 16-bit
//  |-from --------|-to -----------|
//  1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  -------------------------------
//                  1 1 1 1 1 1 1 1  to   (8 bits, bits 0-7)
//  1 1 1 1 1 1 1 1                  from (8 bits, bits 8-15, shifted by fromShift)
type Move uint16

// MoveNone is the empty/invalid move.
const MoveNone Move = 0xFFFF

const (
	toShift   uint  = 0
	fromShift uint  = 8
	scalarMask Move = 0xFF
)

// CreateMove packs a from/to square pair into a Move.
func CreateMove(from, to Square) Move {
	return Move(from)<<fromShift | Move(to)<<toShift
}

// From returns the move's origin square.
func (m Move) From() Square {
	return Square((m >> fromShift) & scalarMask)
}

// To returns the move's destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & scalarMask)
}

// IsValid reports whether m has two distinct, on-board squares.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.From() != m.To()
}

// String renders a move as "<from><to>", e.g. "a1b2".
func (m Move) String() string {
	if m == MoveNone {
		return "NoMove"
	}
	return m.From().String() + m.To().String()
}
