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

// Package bitboard implements a 100-bit set type for the 10x10 Barca board
// and the tables of precomputed line masks, sliding-piece sight tables and
// Zobrist keys built on top of it.
package bitboard

import (
	"math/bits"
	"strings"

	"github.com/frankkopp/barca/internal/types"
)

// hiMask keeps only the 36 valid bits (64..99) of the high limb.
const hiMask uint64 = (1 << 36) - 1

// Bitboard100 is a 100-bit set over squares 0..99, represented as two 64-bit
// limbs: Lo holds squares 0-63, Hi holds squares 64-99 in its low 36 bits.
type Bitboard100 struct {
	Lo uint64
	Hi uint64
}

// Empty is the zero-value bitboard.
var Empty = Bitboard100{}

// SquareBb returns a bitboard with only sq set.
func SquareBb(sq types.Square) Bitboard100 {
	var b Bitboard100
	b.Set(sq)
	return b
}

// Set sets sq in b.
func (b *Bitboard100) Set(sq types.Square) {
	if sq < 64 {
		b.Lo |= 1 << uint(sq)
	} else {
		b.Hi |= 1 << uint(sq-64)
	}
}

// Clear clears sq in b.
func (b *Bitboard100) Clear(sq types.Square) {
	if sq < 64 {
		b.Lo &^= 1 << uint(sq)
	} else {
		b.Hi &^= 1 << uint(sq-64)
	}
}

// Has reports whether sq is set in b.
func (b Bitboard100) Has(sq types.Square) bool {
	if sq < 64 {
		return b.Lo&(1<<uint(sq)) != 0
	}
	return b.Hi&(1<<uint(sq-64)) != 0
}

// And returns b & o.
func (b Bitboard100) And(o Bitboard100) Bitboard100 {
	return Bitboard100{b.Lo & o.Lo, b.Hi & o.Hi}
}

// Or returns b | o.
func (b Bitboard100) Or(o Bitboard100) Bitboard100 {
	return Bitboard100{b.Lo | o.Lo, b.Hi | o.Hi}
}

// Xor returns b ^ o.
func (b Bitboard100) Xor(o Bitboard100) Bitboard100 {
	return Bitboard100{b.Lo ^ o.Lo, b.Hi ^ o.Hi}
}

// AndNot returns b &^ o.
func (b Bitboard100) AndNot(o Bitboard100) Bitboard100 {
	return Bitboard100{b.Lo &^ o.Lo, b.Hi &^ o.Hi}
}

// Not returns the complement of b within the valid 100 bits.
func (b Bitboard100) Not() Bitboard100 {
	return Bitboard100{^b.Lo, ^b.Hi & hiMask}
}

// IsEmpty reports whether b has no set bits.
func (b Bitboard100) IsEmpty() bool {
	return b.Lo == 0 && b.Hi == 0
}

// PopCount returns the number of set bits.
func (b Bitboard100) PopCount() int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// Shl returns b shifted left (toward higher square indices) by n bits.
func (b Bitboard100) Shl(n uint) Bitboard100 {
	if n == 0 {
		return b
	}
	if n >= 100 {
		return Empty
	}
	var r Bitboard100
	if n >= 64 {
		r.Hi = b.Lo << (n - 64)
		r.Lo = 0
	} else {
		r.Hi = (b.Hi << n) | (b.Lo >> (64 - n))
		r.Lo = b.Lo << n
	}
	r.Hi &= hiMask
	return r
}

// Shr returns b shifted right (toward lower square indices) by n bits.
func (b Bitboard100) Shr(n uint) Bitboard100 {
	if n == 0 {
		return b
	}
	if n >= 100 {
		return Empty
	}
	var r Bitboard100
	if n >= 64 {
		r.Lo = b.Hi >> (n - 64)
		r.Hi = 0
	} else {
		r.Lo = (b.Lo >> n) | (b.Hi << (64 - n))
		r.Hi = b.Hi >> n
	}
	return r
}

// ScanForward returns the lowest set square, or SqNone if b is empty.
func (b Bitboard100) ScanForward() types.Square {
	if b.Lo != 0 {
		return types.Square(bits.TrailingZeros64(b.Lo))
	}
	if b.Hi != 0 {
		return types.Square(64 + bits.TrailingZeros64(b.Hi))
	}
	return types.SqNone
}

// ScanReverse returns the highest set square, or SqNone if b is empty.
func (b Bitboard100) ScanReverse() types.Square {
	if b.Hi != 0 {
		return types.Square(64 + 63 - bits.LeadingZeros64(b.Hi))
	}
	if b.Lo != 0 {
		return types.Square(63 - bits.LeadingZeros64(b.Lo))
	}
	return types.SqNone
}

// PopLsb clears and returns the lowest set square, or SqNone if b is empty.
func (b *Bitboard100) PopLsb() types.Square {
	sq := b.ScanForward()
	if sq != types.SqNone {
		b.Clear(sq)
	}
	return sq
}

// PopMsb clears and returns the highest set square, or SqNone if b is empty.
func (b *Bitboard100) PopMsb() types.Square {
	sq := b.ScanReverse()
	if sq != types.SqNone {
		b.Clear(sq)
	}
	return sq
}

// CollapseToRow ORs every row of b down into row 0: a set bit anywhere in
// column c produces a set bit at (row 0, col c).
func (b Bitboard100) CollapseToRow() Bitboard100 {
	var result Bitboard100
	for r := 0; r < types.Dim; r++ {
		result = result.Or(b.Shr(uint(r * types.Dim)))
	}
	return result.And(rowZeroMask)
}

// CollapseToFile ORs every column of b left into column 0: a set bit
// anywhere in row r produces a set bit at (row r, col 0).
func (b Bitboard100) CollapseToFile() Bitboard100 {
	var result Bitboard100
	for c := 0; c < types.Dim; c++ {
		result = result.Or(b.Shr(uint(c)))
	}
	return result.And(colZeroMask)
}

// FileToRow transposes a value confined to column 0 into row 0: the bit at
// (r, 0) moves to (0, r).
func (b Bitboard100) FileToRow() Bitboard100 {
	var result Bitboard100
	for r := 0; r < types.Dim; r++ {
		if b.Has(types.MakeSquare(r, 0)) {
			result.Set(types.MakeSquare(0, r))
		}
	}
	return result
}

// StretchRow replicates a value confined to row 0 into every row.
func (b Bitboard100) StretchRow() Bitboard100 {
	var result Bitboard100
	row0 := b.And(rowZeroMask)
	for r := 0; r < types.Dim; r++ {
		result = result.Or(row0.Shl(uint(r * types.Dim)))
	}
	return result
}

// StretchFile replicates a value confined to column 0 into every column.
func (b Bitboard100) StretchFile() Bitboard100 {
	var result Bitboard100
	col0 := b.And(colZeroMask)
	for c := 0; c < types.Dim; c++ {
		result = result.Or(col0.Shl(uint(c)))
	}
	return result
}

// rowZeroMask / colZeroMask hold row 0 and column 0. They are filled by this
// file's init, which runs before the table initialization in tables.go.
var rowZeroMask Bitboard100
var colZeroMask Bitboard100

func init() {
	for c := 0; c < types.Dim; c++ {
		rowZeroMask.Set(types.MakeSquare(0, c))
	}
	for r := 0; r < types.Dim; r++ {
		colZeroMask.Set(types.MakeSquare(r, 0))
	}
}

// FromString parses a human-readable grid into a bitboard: '1' sets a bit,
// '.' leaves it clear, any other rune is ignored. Row 10 (the top row) comes
// first in the string, matching the position-string row order.
func FromString(s string) Bitboard100 {
	var b Bitboard100
	row := types.Dim - 1
	col := 0
	for _, ch := range s {
		switch ch {
		case '1':
			b.Set(types.MakeSquare(row, col))
			col++
		case '.':
			col++
		default:
			continue
		}
		if col == types.Dim {
			col = 0
			row--
		}
	}
	return b
}

// String renders b as a 10x10 grid, row 10 first, for diagnostics.
func (b Bitboard100) String() string {
	var sb strings.Builder
	for r := types.Dim - 1; r >= 0; r-- {
		for c := 0; c < types.Dim; c++ {
			if b.Has(types.MakeSquare(r, c)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
