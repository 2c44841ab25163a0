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
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/barca/internal/types"
)

var out = message.NewPrinter(language.German)

// Result is the public outcome of a finished (or aborted) search.
type Result struct {
	BestMove   types.Move
	BestValue  types.Value
	SearchTime time.Duration
	Depth      int
	SeldDepth  int
}

// String renders a one-line human-readable summary.
func (r Result) String() string {
	return out.Sprintf("bestmove %s value %s depth %d time %d ms",
		r.BestMove, r.BestValue, r.Depth, r.SearchTime.Milliseconds())
}

// Statistics accumulates counters over a search session.
type Statistics struct {
	NodesVisited         uint64
	TTHits               uint64
	TTCuts               uint64
	AspirationResearches uint64
	MateDistancePrunes   uint64
	RepetitionDraws      uint64
}

// String renders the counters, locale-formatted.
func (s Statistics) String() string {
	return out.Sprintf("nodes=%d ttHits=%d ttCuts=%d aspirationResearches=%d matePrunes=%d repetitionDraws=%d",
		s.NodesVisited, s.TTHits, s.TTCuts, s.AspirationResearches, s.MateDistancePrunes, s.RepetitionDraws)
}
