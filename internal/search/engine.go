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

// Package search implements iterative-deepening negamax with aspiration
// windows over a transposition table, driving one Board in place with
// paired make/unmake calls rather than position copies.
package search

import (
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/frankkopp/barca/internal/config"
	"github.com/frankkopp/barca/internal/logging"
	"github.com/frankkopp/barca/internal/movegen"
	"github.com/frankkopp/barca/internal/position"
	"github.com/frankkopp/barca/internal/transpositiontable"
	"github.com/frankkopp/barca/internal/types"
)

var log = logging.GetLog("search")

// Engine owns a board, its transposition table and the move stack used
// during search, and drives iterative deepening one call at a time.
type Engine struct {
	board *position.Board
	tt    *transpositiontable.Table
	stack movegen.Stack

	// reentrant guards Search/SearchAbort against being called again from
	// another goroutine while one call is in flight; the search algorithm
	// itself is single-threaded, this only protects the handoff.
	reentrant *semaphore.Weighted

	searching           bool
	startTime           time.Time
	allotted            time.Duration
	currentDepth        int
	completedIterations int
	gamePly             int

	lastPV    PVLine
	lastEval  types.Value
	statistics Statistics
}

// NewEngine attaches a new Engine to board. Call Init before the first
// Search.
func NewEngine(board *position.Board) *Engine {
	return &Engine{
		board:     board,
		reentrant: semaphore.NewWeighted(1),
		lastEval:  types.ValueUnknown,
	}
}

// Init allocates the transposition table per configuration, and records the
// starting position as the head of its own repetition chain.
func (e *Engine) Init() {
	e.tt = transpositiontable.NewTable(config.Settings.Search.TtSizeMb)
	e.tt.GhStore(e.board.Key())
	log.Infof("search engine initialized: %s", e.tt)
}

// Search advances the iterative-deepening loop by exactly one ply. It
// returns true while iteration should continue, false once finished (either
// maxDepth reached, a proven mate found, or the time budget exhausted after
// at least one complete iteration).
func (e *Engine) Search(maxTimeMs int, maxDepth int) bool {
	if !e.reentrant.TryAcquire(1) {
		log.Warning("Search called re-entrantly; ignoring")
		return e.searching
	}
	defer e.reentrant.Release(1)

	if maxDepth > int(types.MaxLineLen) {
		maxDepth = int(types.MaxLineLen)
	}

	if !e.searching {
		e.startTime = time.Now()
		e.allotted = time.Duration(maxTimeMs) * time.Millisecond
		e.statistics = Statistics{}
		e.completedIterations = 0
		e.currentDepth = 0
		e.searching = true
		if config.Settings.Search.UseTT {
			e.tt.AgeEntries()
			log.Infof("transposition table aged: %s", e.tt)
		}
	}

	if e.currentDepth >= maxDepth || (e.completedIterations > 0 && e.lastEval.IsMate()) {
		e.searching = false
		e.board.UpdateMoveSets()
		return false
	}

	completedBefore := e.completedIterations
	e.searchFixedDepth(e.currentDepth + 1)
	if e.completedIterations > completedBefore {
		e.currentDepth++
	}
	e.board.UpdateMoveSets()

	if time.Since(e.startTime) > e.allotted && e.completedIterations > 0 {
		e.searching = false
		log.Infof("search stopped: time exceeded at depth %d, %s", e.currentDepth, e.statistics)
		return false
	}
	return true
}

// SearchAbort forces the next alpha-beta node-entry time check to abort the
// search.
func (e *Engine) SearchAbort() {
	e.allotted = 0
}

// OnMovePlayed updates the engine's notion of the current position after a
// move is actually played in the game (as opposed to inside search). An
// illegal move (no piece at its source, or a destination outside that
// piece's move set) is silently ignored.
func (e *Engine) OnMovePlayed(m types.Move) {
	p := e.board.PieceAt(m.From())
	if p == nil || !p.Moves.Has(m.To()) {
		log.Warningf("ignoring illegal move %s", m)
		return
	}
	e.board.MovePiece(p, m.To())
	e.board.UpdateMoveSets()
	e.gamePly++
	e.tt.GhStore(e.board.Key())

	if e.lastPV.Len() > 0 && e.lastPV.Move(0) == m {
		e.lastPV.ShiftLeft()
	} else {
		e.lastPV.Clear()
	}
}

// SuggestedMove returns the engine's current best move, or MoveNone.
func (e *Engine) SuggestedMove() types.Move {
	if e.lastPV.Len() == 0 {
		return types.MoveNone
	}
	return e.lastPV.Move(0)
}

// SearchEval renders the last completed iteration's evaluation.
func (e *Engine) SearchEval() string {
	return e.lastEval.String()
}

// SearchPV renders the first line of the current principal variation.
func (e *Engine) SearchPV() string {
	return e.lastPV.String(e.board)
}

// SearchDepth returns the depth of the last completed iteration.
func (e *Engine) SearchDepth() int {
	return e.currentDepth
}

// SearchDuration returns elapsed time of the current (or last) search, in
// seconds.
func (e *Engine) SearchDuration() float64 {
	return time.Since(e.startTime).Seconds()
}

// SearchOngoing reports whether a search is between Search calls expecting
// another invocation.
func (e *Engine) SearchOngoing() bool {
	return e.searching
}

// Close releases the transposition table and its repetition chains.
func (e *Engine) Close() {
	if e.tt != nil {
		e.tt.Clear()
		e.tt = nil
	}
}

// Statistics returns the counters accumulated over the current search
// session.
func (e *Engine) Statistics() Statistics {
	return e.statistics
}

func (e *Engine) timeExceeded() bool {
	return time.Since(e.startTime) > e.allotted
}
