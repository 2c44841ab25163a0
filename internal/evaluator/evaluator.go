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

// Package evaluator provides the static positional score used at search
// leaves: piece-square tables built from concentric ring masks and
// watering-hole line bonuses, plus a threat penalty and a small
// side-to-move bonus.
package evaluator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/barca/internal/bitboard"
	"github.com/frankkopp/barca/internal/logging"
	"github.com/frankkopp/barca/internal/position"
	"github.com/frankkopp/barca/internal/types"
)

var log = logging.GetLog("evaluator")
var out = message.NewPrinter(language.German)

// Ring base values, outermost to innermost.
const (
	ringOuter    types.Value = 500
	ringMiddle   types.Value = 1000
	ringInner    types.Value = 4000
	ringCore     types.Value = 5000
	wateringHole types.Value = 20000

	orthoLineBonus types.Value = 2500
	diagLineBonus  types.Value = 1000
	diagDoubleBonus types.Value = 2500

	threatPenalty   types.Value = 5000
	sideToMoveBonus types.Value = 1000
)

// psqt[pieceType][square] is the static value of placing a piece of that
// type on that square, independent of color (mirrored at lookup time would
// be pointless here since the board isn't oriented, so both colors share
// one table).
var psqt [types.PtLength][types.SqLength]types.Value

func init() {
	buildTables()
	log.Debugf("evaluator tables built: %s", out.Sprintf("%d squares", types.SqLength))
}

func ringValue(sq types.Square) types.Value {
	row, col := sq.Row(), sq.Col()
	d := row
	if v := types.Dim - 1 - row; v < d {
		d = v
	}
	if v := col; v < d {
		d = v
	}
	if v := types.Dim - 1 - col; v < d {
		d = v
	}
	switch {
	case d <= 0:
		return ringOuter
	case d == 1:
		return ringMiddle
	case d == 2:
		return ringInner
	default:
		return ringCore
	}
}

func buildTables() {
	for sq := types.Square(0); sq < types.SqLength; sq++ {
		base := ringValue(sq)

		mouseVal := base
		lionVal := base
		elephantVal := base

		if bitboard.WateringHoleOrthoLines.Has(sq) {
			mouseVal += orthoLineBonus
			elephantVal += orthoLineBonus
		}
		if bitboard.WateringHoleDiagLines.Has(sq) {
			bonus := diagLineBonus
			if bitboard.DiagMask[sq].And(bitboard.WateringHoleMask).PopCount()+
				bitboard.AntidiagMask[sq].And(bitboard.WateringHoleMask).PopCount() >= 2 {
				bonus = diagDoubleBonus
			}
			lionVal += bonus
			elephantVal += bonus
		}
		if bitboard.WateringHoleMask.Has(sq) {
			mouseVal = wateringHole
			lionVal = wateringHole
			elephantVal = wateringHole
		}

		psqt[types.Mouse][sq] = mouseVal
		psqt[types.Lion][sq] = lionVal
		psqt[types.Elephant][sq] = elephantVal
	}
}

// Evaluate returns the static score of b from the perspective of the side to
// move.
func Evaluate(b *position.Board) types.Value {
	var score types.Value
	side := b.SideToMove()
	for _, p := range b.Pieces() {
		v := psqt[p.Type][p.Square]
		if p.Threatened {
			v -= threatPenalty
		}
		if p.Color == side {
			score += v
		} else {
			score -= v
		}
	}
	if !score.IsMate() {
		score += sideToMoveBonus
	}
	return score
}
