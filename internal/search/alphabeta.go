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
	"github.com/frankkopp/barca/internal/evaluator"
	"github.com/frankkopp/barca/internal/movegen"
	"github.com/frankkopp/barca/internal/config"
	"github.com/frankkopp/barca/internal/transpositiontable"
	"github.com/frankkopp/barca/internal/types"
)

// alphabeta is the recursive negamax search. rootDist counts plies from the
// current iteration's root (not the game's start). pvOut is cleared and,
// when this node raises alpha, filled with this node's best move followed
// by the child's principal variation.
func (e *Engine) alphabeta(depth int, alpha, beta types.Value, rootDist int, pvOut *PVLine) types.Value {
	pvOut.Clear()

	if e.timeExceeded() && e.completedIterations > 0 {
		return types.ValueAborted
	}
	e.statistics.NodesVisited++

	b := e.board

	if b.GameLost() {
		return -types.ValueWin + types.Value(rootDist)
	}

	if e.tt.GhMatch(b.Key(), rootDist) {
		e.statistics.RepetitionDraws++
		if rootDist%2 == 0 {
			return -types.ValueDraw
		}
		return types.ValueDraw
	}

	ttMoveHint := types.MoveNone
	if config.Settings.Search.UseTT {
		res := e.tt.Probe(b.Key(), depth, alpha, beta, rootDist)
		if res.Found {
			e.statistics.TTHits++
			ttMoveHint = res.MoveHint
			if res.UsableValue {
				e.statistics.TTCuts++
				if res.Flag == transpositiontable.FlagExact {
					pvOut.SetSingle(res.MoveHint)
				}
				return res.Value
			}
		}
	}

	if depth == 0 {
		v := evaluator.Evaluate(b)
		if config.Settings.Search.UseTT {
			e.tt.Put(b.Key(), 0, transpositiontable.FlagStatic, v, types.MoveNone, e.gamePly, rootDist)
		}
		return v
	}

	e.tt.GhStore(b.Key())

	mark := e.stack.Mark()
	movegen.GenerateMoves(b, &e.stack)
	moves := e.stack.Slice(mark, e.stack.Mark())
	orderMoveHintFirst(moves, ttMoveHint)

	if len(moves) == 0 {
		// No legal moves but the game isn't lost: a rare deadlock the
		// corpus's rules don't otherwise define. Fall back to the static
		// evaluation rather than propagating an undefined terminal value.
		e.stack.TruncateTo(mark)
		e.tt.GhRemove(b.Key())
		return evaluator.Evaluate(b)
	}

	alphaRaised := false
	bestMove := types.MoveNone
	var childPV PVLine

	for _, m := range moves {
		p := b.PieceAt(m.From())
		from := p.Square

		b.MovePiece(p, m.To())
		b.QuickMoveSets()
		e.gamePly++

		childValue := e.alphabeta(depth-1, -beta, -alpha, rootDist+1, &childPV)

		e.gamePly--
		b.MovePiece(p, from)
		b.QuickMoveSets()

		if childValue == types.ValueAborted {
			e.tt.GhRemove(b.Key())
			e.stack.TruncateTo(mark)
			return types.ValueAborted
		}
		value := -childValue

		if value >= beta {
			if config.Settings.Search.UseTT {
				e.tt.Put(b.Key(), depth, transpositiontable.FlagBeta, beta, m, e.gamePly, rootDist)
			}
			e.tt.GhRemove(b.Key())
			e.stack.TruncateTo(mark)
			return beta
		}
		if value > alpha {
			alpha = value
			bestMove = m
			alphaRaised = true
			pvOut.Prepend(m, &childPV)
		}
	}

	e.stack.TruncateTo(mark)
	e.tt.GhRemove(b.Key())

	flag := transpositiontable.FlagAlpha
	if alphaRaised {
		flag = transpositiontable.FlagExact
	}
	if config.Settings.Search.UseTT {
		e.tt.Put(b.Key(), depth, flag, alpha, bestMove, e.gamePly, rootDist)
	}
	return alpha
}

// orderMoveHintFirst moves ttMove to the front of moves, if present, so the
// transposition table's remembered best move is tried first.
func orderMoveHintFirst(moves []types.Move, ttMove types.Move) {
	if ttMove == types.MoveNone {
		return
	}
	for i, m := range moves {
		if m == ttMove {
			moves[0], moves[i] = moves[i], moves[0]
			return
		}
	}
}
