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

// Package position implements the Barca board: piece records, occupancy and
// threat bitboards maintained incrementally, and the staged-move-generation
// support (sight caches, forced-move rule) the search and evaluator read.
package position

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/frankkopp/barca/internal/bitboard"
	"github.com/frankkopp/barca/internal/logging"
	"github.com/frankkopp/barca/internal/types"
)

// StartFen is the canonical Barca starting position string: six pieces per
// side (two Mice, two Lions, two Elephants) arrayed near their own baseline,
// the four watering holes empty at the board's center.
const StartFen = "" +
	"...LMML..." +
	"....EE...." +
	".........." +
	".........." +
	".........." +
	".........." +
	".........." +
	".........." +
	"....ee...." +
	"...lmml..."

var log = logging.GetLog("position")

// Board owns the twelve pieces and all derived, incrementally-maintained
// state: occupancy, per-herd threat maps, the Zobrist key and whose turn it
// is.
type Board struct {
	pieces  []*Piece
	pieceAt [types.SqLength]*Piece

	byColor    [types.ColorLength]bitboard.Bitboard100
	occupancy  bitboard.Bitboard100
	threatMap  [types.ColorLength][types.PtLength]bitboard.Bitboard100
	sideToMove types.Color

	key          bitboard.Bitboard100
	isSideForced bool
}

// NewBoard parses a position string into a new Board and initializes its
// derived state. Unknown characters are ignored; the first 100 recognized
// characters fill the board, row 10 first.
func NewBoard(posStr string) *Board {
	b := &Board{sideToMove: types.White}
	row, col := types.Dim-1, 0
	for _, ch := range posStr {
		if row < 0 {
			break
		}
		piece, ok := types.PieceFromChar(byte(ch))
		if !ok {
			continue
		}
		sq := types.MakeSquare(row, col)
		if piece != types.PieceNone {
			p := &Piece{Color: piece.ColorOf(), Type: piece.TypeOf(), Square: sq, SightDirty: true}
			p.Pos.Set(sq)
			b.pieces = append(b.pieces, p)
			b.pieceAt[sq] = p
		}
		col++
		if col == types.Dim {
			col = 0
			row--
		}
	}
	b.init()
	return b
}

func (b *Board) init() {
	b.occupancy = bitboard.Empty
	b.byColor[types.White] = bitboard.Empty
	b.byColor[types.Black] = bitboard.Empty
	b.key = bitboard.Empty
	for _, p := range b.pieces {
		b.occupancy = b.occupancy.Or(p.Pos)
		b.byColor[p.Color] = b.byColor[p.Color].Or(p.Pos)
		b.key = b.key.Xor(bitboard.Zobrist[p.herdIndex()][p.Square])
		p.Adjacency = bitboard.Adjacency[p.Square]
	}
	b.rebuildThreatMaps()
	b.UpdateMoveSets()
	log.Debugf("board initialized, key=%v", b.key)
}

func (b *Board) rebuildThreatMaps() {
	for c := types.White; c < types.ColorLength; c++ {
		for pt := types.Mouse; pt <= types.Elephant; pt++ {
			b.threatMap[c][pt] = bitboard.Empty
		}
	}
	for _, p := range b.pieces {
		b.threatMap[p.Color][p.Type] = b.threatMap[p.Color][p.Type].Or(p.Adjacency)
	}
	for _, p := range b.pieces {
		p.Threatened = b.threatMap[p.Color.Flip()][p.Type.ScaredOf()].Has(p.Square)
	}
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() types.Color { return b.sideToMove }

// Key returns the full 100-bit Zobrist signature of the current position.
func (b *Board) Key() bitboard.Bitboard100 { return b.key }

// Occupancy returns the union of all piece positions.
func (b *Board) Occupancy() bitboard.Bitboard100 { return b.occupancy }

// ByColor returns the occupancy bitboard of one side.
func (b *Board) ByColor(c types.Color) bitboard.Bitboard100 { return b.byColor[c] }

// Pieces returns all twelve piece records (both sides).
func (b *Board) Pieces() []*Piece { return b.pieces }

// PieceAt returns the piece occupying sq, or nil.
func (b *Board) PieceAt(sq types.Square) *Piece { return b.pieceAt[sq] }

// ThreatMap returns the union of adjacency masks of herd (color, type).
func (b *Board) ThreatMap(c types.Color, pt types.PieceType) bitboard.Bitboard100 {
	return b.threatMap[c][pt]
}

// IsSideForced reports whether at least one piece of the side to move is
// threatened with a safe escape, forcing only such pieces to move.
func (b *Board) IsSideForced() bool { return b.isSideForced }

// WateringHolesHeld counts the watering holes occupied by pieces of c.
func (b *Board) WateringHolesHeld(c types.Color) int {
	n := 0
	for _, wh := range bitboard.WateringHoles {
		if p := b.pieceAt[wh]; p != nil && p.Color == c {
			n++
		}
	}
	return n
}

// GameLost reports whether the side to move has already lost, i.e. the
// opponent holds at least three of the four watering holes.
func (b *Board) GameLost() bool {
	return b.WateringHolesHeld(b.sideToMove.Flip()) >= 3
}

// MovePiece relocates p to dest, updating occupancy, the Zobrist key, sight
// dirtiness of affected pieces, threat maps and the side to move. It does
// not validate that dest is a legal destination; callers (move generation,
// search) are expected to only ever pass legal moves.
func (b *Board) MovePiece(p *Piece, dest types.Square) {
	from := p.Square

	// 1. remove p from its old square
	b.pieceAt[from] = nil
	b.occupancy = b.occupancy.AndNot(p.Pos)
	b.byColor[p.Color] = b.byColor[p.Color].AndNot(p.Pos)

	// 2. incremental zobrist update
	herd := p.herdIndex()
	b.key = b.key.Xor(bitboard.Zobrist[herd][from])
	b.key = b.key.Xor(bitboard.Zobrist[herd][dest])
	b.key = b.key.Xor(bitboard.SideToggle)

	// 3. mark sight-dirty on any piece sharing a line with the old or new square
	for _, q := range b.pieces {
		if q == p {
			continue
		}
		if sharesLine(q, from) || sharesLine(q, dest) {
			q.SightDirty = true
		}
	}

	// 4. reposition p
	p.Square = dest
	p.Pos = bitboard.Empty
	p.Pos.Set(dest)
	p.SightDirty = true

	// 5. place pointer, update occupancy
	b.pieceAt[dest] = p
	b.occupancy = b.occupancy.Or(p.Pos)
	b.byColor[p.Color] = b.byColor[p.Color].Or(p.Pos)

	// 6. recompute adjacency and herd threat map
	p.Adjacency = bitboard.Adjacency[dest]
	b.threatMap[p.Color][p.Type] = bitboard.Empty
	for _, q := range b.pieces {
		if q.Color == p.Color && q.Type == p.Type {
			b.threatMap[p.Color][p.Type] = b.threatMap[p.Color][p.Type].Or(q.Adjacency)
		}
	}

	// 7. refresh threatened flags for every piece against the updated threat maps
	for _, q := range b.pieces {
		q.Threatened = b.threatMap[q.Color.Flip()][q.Type.ScaredOf()].Has(q.Square)
	}

	// 8. flip side to move
	b.sideToMove = b.sideToMove.Flip()
}

// sharesLine reports whether q's current square shares a row/column (for
// orthogonal sliders) or a diagonal/antidiagonal (for diagonal sliders)
// with sq — i.e. whether q's sight could change because of a move touching
// sq.
func sharesLine(q *Piece, sq types.Square) bool {
	if q.slidesOrthogonally() {
		if q.Square.Row() == sq.Row() || q.Square.Col() == sq.Col() {
			return true
		}
	}
	if q.slidesDiagonally() {
		if q.Square.Diag() == sq.Diag() || q.Square.Antidiag() == sq.Antidiag() {
			return true
		}
	}
	return false
}

// updatePieceSight recomputes p.Sight from scratch against current
// occupancy, via the collapse/lookup/stretch row and file tables for
// orthogonal lines, and direct line scans for diagonals.
func (b *Board) updatePieceSight(p *Piece) {
	var sight bitboard.Bitboard100
	sq := p.Square
	if p.slidesOrthogonally() {
		rowOcc := b.occupancy.And(bitboard.RowMask[sq]).CollapseToRow()
		idx := int(rowOcc.Lo & 0x3FF)
		sight = sight.Or(bitboard.RowSight(idx, sq.Col()).And(bitboard.RowMask[sq]))

		fileOcc := b.occupancy.And(bitboard.FileMask[sq]).CollapseToFile().FileToRow()
		idx = int(fileOcc.Lo & 0x3FF)
		sight = sight.Or(bitboard.FileSight(idx, sq.Row()).And(bitboard.FileMask[sq]))
	}
	if p.slidesDiagonally() {
		sight = sight.Or(bitboard.DiagReachable(b.occupancy, sq))
		sight = sight.Or(bitboard.AntidiagReachable(b.occupancy, sq))
	}
	p.Sight = sight
	p.SightDirty = false
}

// UpdateMoveSets refreshes sight (where dirty), threat maps and threatened
// flags for every piece on the board, recomputes the move bitboards of the
// side to move, clears those of the opposing side, and applies the
// forced-move rule.
func (b *Board) UpdateMoveSets() {
	b.rebuildThreatMaps()
	for _, p := range b.pieces {
		if p.SightDirty {
			b.updatePieceSight(p)
		}
		if p.Color != b.sideToMove {
			p.Moves = bitboard.Empty
			continue
		}
		scaredOf := b.threatMap[p.Color.Flip()][p.Type.ScaredOf()]
		p.Moves = p.Sight.AndNot(scaredOf)
	}
	b.applyForcedRule()
}

// QuickMoveSets is the cheaper variant used inside search: it only refreshes
// move sets for the side to move, trusting that threat maps and sight of the
// opponent are already current from their own last move.
func (b *Board) QuickMoveSets() {
	for _, p := range b.pieces {
		if p.Color != b.sideToMove {
			continue
		}
		if p.SightDirty {
			b.updatePieceSight(p)
		}
		scaredOf := b.threatMap[p.Color.Flip()][p.Type.ScaredOf()]
		p.Moves = p.Sight.AndNot(scaredOf)
	}
	b.applyForcedRule()
}

// applyForcedRule implements the forced-move rule: if any piece of the side
// to move is threatened and has at least one safe move, only such pieces
// may move this turn.
func (b *Board) applyForcedRule() {
	anyForced := false
	for _, p := range b.pieces {
		if p.Color != b.sideToMove {
			continue
		}
		p.Forced = p.Threatened && !p.Moves.IsEmpty()
		if p.Forced {
			anyForced = true
		}
	}
	b.isSideForced = anyForced
	if anyForced {
		for _, p := range b.pieces {
			if p.Color == b.sideToMove && !p.Forced {
				p.Moves = bitboard.Empty
			}
		}
	}
}

// String renders the board as a 10x10 grid, row 10 first, plus side to move.
func (b *Board) String() string {
	var sb strings.Builder
	for r := types.Dim - 1; r >= 0; r-- {
		for c := 0; c < types.Dim; c++ {
			sq := types.MakeSquare(r, c)
			if p := b.pieceAt[sq]; p != nil {
				sb.WriteString(types.MakePiece(p.Color, p.Type).Char())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "side to move: %s\n", b.sideToMove)
	return sb.String()
}

// DumpDiagnostics renders a deep dump of the board for fatal-inconsistency
// reporting (spec error-handling category: internal inconsistency).
func (b *Board) DumpDiagnostics() string {
	return b.String() + "\n" + spew.Sdump(b)
}
