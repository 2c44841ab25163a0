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

// Package types holds the primitive, packed scalar types shared across the
// engine: squares, colors, piece types, pieces and moves.
package types

import "fmt"

// Square is a scalar board index in [0, 99]. Square 0 is a1, square 99 is j10.
// Row = square / 10, column = square % 10.
type Square int8

// SqNone is the invalid/sentinel square.
const SqNone Square = -1

// SqLength is the number of squares on the board.
const SqLength = 100

// Dim is the board's row/column dimension.
const Dim = 10

// MakeSquare builds a Square from a 0-based row and column. Returns SqNone if
// either is out of range.
func MakeSquare(row, col int) Square {
	if row < 0 || row >= Dim || col < 0 || col >= Dim {
		return SqNone
	}
	return Square(row*Dim + col)
}

// IsValid reports whether s is a square on the board.
func (s Square) IsValid() bool {
	return s >= 0 && s < SqLength
}

// Row returns the 0-based row (0 = rank 1).
func (s Square) Row() int {
	return int(s) / Dim
}

// Col returns the 0-based column (0 = file a).
func (s Square) Col() int {
	return int(s) % Dim
}

// Diag returns row-col, which is constant along a diagonal running from
// lower left to upper right (a1 towards j10).
func (s Square) Diag() int {
	return s.Row() - s.Col()
}

// Antidiag returns row+col, constant along the other diagonal direction.
func (s Square) Antidiag() int {
	return s.Row() + s.Col()
}

var fileChars = "abcdefghij"

// String renders a square as file letter + 1-based rank, e.g. "a1", "j10".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", fileChars[s.Col()], s.Row()+1)
}

// ParseSquare parses a square string of the form "<file a..j><rank 1..10>".
func ParseSquare(str string) Square {
	if len(str) < 2 || len(str) > 3 {
		return SqNone
	}
	col := int(str[0]) - 'a'
	if col < 0 || col >= Dim {
		return SqNone
	}
	var rank int
	if _, err := fmt.Sscanf(str[1:], "%d", &rank); err != nil {
		return SqNone
	}
	return MakeSquare(rank-1, col)
}
