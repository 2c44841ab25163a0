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

package search

import (
	"strings"

	"github.com/frankkopp/barca/internal/position"
	"github.com/frankkopp/barca/internal/types"
)

// PVLine is a fixed-capacity principal variation: a move sequence built
// bottom-up out of negamax, one move prefixed at a time.
type PVLine struct {
	moves [types.MaxLineLen]types.Move
	len   int
}

// Len returns the number of moves currently held.
func (pv *PVLine) Len() int { return pv.len }

// Move returns the i-th move of the line.
func (pv *PVLine) Move(i int) types.Move { return pv.moves[i] }

// Clear empties the line.
func (pv *PVLine) Clear() { pv.len = 0 }

// SetSingle makes the line hold exactly one move.
func (pv *PVLine) SetSingle(m types.Move) {
	pv.moves[0] = m
	pv.len = 1
}

// Prepend makes pv hold m followed by child's moves, truncated to capacity.
func (pv *PVLine) Prepend(m types.Move, child *PVLine) {
	n := child.len
	if n > len(pv.moves)-1 {
		n = len(pv.moves) - 1
	}
	var tail [types.MaxLineLen]types.Move
	copy(tail[:n], child.moves[:n])
	pv.moves[0] = m
	copy(pv.moves[1:], tail[:n])
	pv.len = n + 1
}

// ShiftLeft drops the first move, as done when the engine's own move matches
// pv[0] so the remaining line stays useful for the next search.
func (pv *PVLine) ShiftLeft() {
	if pv.len == 0 {
		return
	}
	copy(pv.moves[:], pv.moves[1:pv.len])
	pv.len--
}

// Append appends a single move (used when extending the PV from the TT past
// the depth actually searched).
func (pv *PVLine) Append(m types.Move) bool {
	if pv.len >= len(pv.moves) {
		return false
	}
	pv.moves[pv.len] = m
	pv.len++
	return true
}

// CopyFrom replaces the contents of pv with other's.
func (pv *PVLine) CopyFrom(other *PVLine) {
	pv.len = other.len
	copy(pv.moves[:pv.len], other.moves[:pv.len])
}

// String renders the first move of the line in "<piece><from><to>" form,
// e.g. "Ma1b2"; the board must be the position the move was generated from.
func (pv *PVLine) String(b *position.Board) string {
	if pv.len == 0 {
		return ""
	}
	m := pv.moves[0]
	var pieceChar string
	if p := b.PieceAt(m.From()); p != nil {
		pieceChar = types.MakePiece(p.Color, p.Type).Char()
	}
	return pieceChar + m.From().String() + m.To().String()
}

// UciString renders the whole line space-separated, plain "<from><to>" per
// move, for logging.
func (pv *PVLine) UciString() string {
	var sb strings.Builder
	for i := 0; i < pv.len; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(pv.moves[i].String())
	}
	return sb.String()
}
