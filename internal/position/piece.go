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

package position

import (
	"github.com/frankkopp/barca/internal/bitboard"
	"github.com/frankkopp/barca/internal/types"
)

// Piece is a single mutable piece record: its immutable herd identity (color,
// type) plus mutable positional/cache state maintained incrementally as the
// board changes.
type Piece struct {
	Color types.Color
	Type  types.PieceType

	Square types.Square
	Pos    bitboard.Bitboard100 // single-bit bitboard at Square

	Sight bitboard.Bitboard100 // line-of-sight reachable squares, cached
	Moves bitboard.Bitboard100 // Sight minus the predator's threat map

	Adjacency bitboard.Bitboard100 // precomputed neighbor mask at Square

	Threatened bool
	Forced     bool
	SightDirty bool
}

// herdIndex packs color (bit 2) and type (bits 0-1) into the same encoding
// internal/types.Piece uses, so it can index bitboard.Zobrist directly.
func (p *Piece) herdIndex() int {
	return int(types.MakePiece(p.Color, p.Type))
}

// slidesOrthogonally / slidesDiagonally report whether p moves along
// rows and files, or along diagonals.
func (p *Piece) slidesOrthogonally() bool { return p.Type.IsOrthogonalSlider() }
func (p *Piece) slidesDiagonally() bool   { return p.Type.IsDiagonalSlider() }
