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
	"github.com/frankkopp/barca/internal/config"
	"github.com/frankkopp/barca/internal/transpositiontable"
	"github.com/frankkopp/barca/internal/types"
)

// searchFixedDepth runs one iterative-deepening iteration at depth, with
// aspiration windowing around the previous iteration's principal variation
// when enabled, and updates e.lastPV / e.lastEval / e.completedIterations on
// success. An aborted iteration leaves all three untouched.
func (e *Engine) searchFixedDepth(depth int) {
	alpha, beta := types.ValueNegInf, types.ValueInf

	if config.Settings.Search.UseAspiration && depth > 1 && e.lastPV.Len() >= depth-1 {
		estimate := e.estimateFromPV(depth)
		alpha = estimate - types.AspirationWindow
		beta = estimate + types.AspirationWindow
	}

	var pv PVLine
	value := e.alphabeta(depth, alpha, beta, 0, &pv)
	if value == types.ValueAborted {
		return
	}

	if value <= alpha {
		e.statistics.AspirationResearches++
		pv.Clear()
		value = e.alphabeta(depth, types.ValueNegInf, alpha, 0, &pv)
		if value == types.ValueAborted {
			return
		}
		if value >= alpha {
			pv.Clear()
			value = e.alphabeta(depth, types.ValueNegInf, types.ValueInf, 0, &pv)
			if value == types.ValueAborted {
				return
			}
		}
	} else if value >= beta {
		e.statistics.AspirationResearches++
		pv.Clear()
		value = e.alphabeta(depth, beta, types.ValueInf, 0, &pv)
		if value == types.ValueAborted {
			return
		}
		if value <= beta {
			pv.Clear()
			value = e.alphabeta(depth, types.ValueNegInf, types.ValueInf, 0, &pv)
			if value == types.ValueAborted {
				return
			}
		}
	}

	if pv.Len() > 0 {
		e.lastPV.CopyFrom(&pv)
	}
	e.extendPVFromTT(depth)

	if e.board.SideToMove() == types.Black {
		e.lastEval = -value
	} else {
		e.lastEval = value
	}
	e.completedIterations++
}

// estimateFromPV walks the previous iteration's PV for depth-1 plies, runs a
// 1-ply search at the resulting leaf, negates the result if depth is even
// (the leaf's side to move is then the opponent's), and unwinds back to the
// search root before returning.
func (e *Engine) estimateFromPV(depth int) types.Value {
	b := e.board
	played := 0
	for played < depth-1 && played < e.lastPV.Len() {
		m := e.lastPV.Move(played)
		p := b.PieceAt(m.From())
		if p == nil {
			break
		}
		b.MovePiece(p, m.To())
		b.QuickMoveSets()
		e.gamePly++
		played++
	}

	var pv PVLine
	estimate := e.alphabeta(1, types.ValueNegInf, types.ValueInf, played, &pv)
	if depth%2 == 0 {
		estimate = -estimate
	}

	for played > 0 {
		played--
		m := e.lastPV.Move(played)
		p := b.PieceAt(m.To())
		b.MovePiece(p, m.From())
		b.QuickMoveSets()
		e.gamePly--
	}
	return estimate
}

// extendPVFromTT walks e.lastPV, then keeps appending the move stored at the
// resulting position as long as the TT entry there is an Exact hit deep
// enough to still be trustworthy at the iteration's remaining depth, up to
// MaxLineLen.
func (e *Engine) extendPVFromTT(depth int) {
	if !config.Settings.Search.UseTT || e.tt == nil {
		return
	}
	b := e.board
	played := 0
	for played < e.lastPV.Len() {
		m := e.lastPV.Move(played)
		p := b.PieceAt(m.From())
		if p == nil {
			break
		}
		b.MovePiece(p, m.To())
		b.QuickMoveSets()
		played++
	}

	for e.lastPV.Len() < int(types.MaxLineLen) {
		res := e.tt.Probe(b.Key(), 0, types.ValueNegInf, types.ValueInf, played)
		if !res.Found || res.Flag != transpositiontable.FlagExact {
			break
		}
		if res.Depth < depth-e.lastPV.Len() {
			break
		}
		p := b.PieceAt(res.MoveHint.From())
		if p == nil || !e.lastPV.Append(res.MoveHint) {
			break
		}
		b.MovePiece(p, res.MoveHint.To())
		b.QuickMoveSets()
		played++
	}

	for played > 0 {
		played--
		m := e.lastPV.Move(played)
		p := b.PieceAt(m.To())
		b.MovePiece(p, m.From())
		b.QuickMoveSets()
	}
}
